package pdf

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kpauljoseph/gestionpdf/pkg/logger"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var ErrNoPages = errors.New("no pages selected")

// CPUOpener opens documents through pdfcpu.
type CPUOpener struct {
	conf     *model.Configuration
	optimize bool
	logger   *logger.Logger
}

type OpenerOption func(*CPUOpener)

// WithOptimize runs pdfcpu's optimizer on the source after validation so
// shared resources are deduplicated before pages are copied out.
func WithOptimize(optimize bool) OpenerOption {
	return func(o *CPUOpener) {
		o.optimize = optimize
	}
}

func WithConfiguration(conf *model.Configuration) OpenerOption {
	return func(o *CPUOpener) {
		o.conf = conf
	}
}

func NewOpener(logger *logger.Logger, options ...OpenerOption) *CPUOpener {
	o := &CPUOpener{
		optimize: true,
		logger:   logger,
	}
	for _, opt := range options {
		opt(o)
	}
	if o.conf == nil {
		o.conf = model.NewDefaultConfiguration()
	}
	return o
}

func (o *CPUOpener) Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	ctx, err := api.ReadContext(f, o.conf)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	if err := api.ValidateContext(ctx); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to validate PDF: %w", err)
	}

	if o.optimize {
		if err := api.OptimizeContext(ctx); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to optimize PDF: %w", err)
		}
	}

	if err := ctx.EnsurePageCount(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}

	o.logger.Trace("Opened %s with pdfcpu: %d pages", path, ctx.PageCount)

	return &cpuDocument{
		file: f,
		ctx:  ctx,
	}, nil
}

type cpuDocument struct {
	file *os.File
	ctx  *model.Context
}

func (d *cpuDocument) PageCount() int {
	return d.ctx.PageCount
}

func (d *cpuDocument) WritePages(w io.Writer, pageNrs []int) error {
	if len(pageNrs) == 0 {
		return ErrNoPages
	}

	for _, nr := range pageNrs {
		if nr < 1 || nr > d.ctx.PageCount {
			return fmt.Errorf("page %d out of range (1-%d)", nr, d.ctx.PageCount)
		}
	}

	// ExtractPages builds a fresh context each call; the source context is
	// only read from.
	unit, err := pdfcpu.ExtractPages(d.ctx, pageNrs, false)
	if err != nil {
		return fmt.Errorf("failed to extract pages %d-%d: %w", pageNrs[0], pageNrs[len(pageNrs)-1], err)
	}

	if err := api.WriteContext(unit, w); err != nil {
		return fmt.Errorf("failed to serialize pages %d-%d: %w", pageNrs[0], pageNrs[len(pageNrs)-1], err)
	}

	return nil
}

func (d *cpuDocument) Close() error {
	return d.file.Close()
}

// PageRange returns the page numbers first..last inclusive.
func PageRange(first, last int) []int {
	if last < first {
		return nil
	}
	nrs := make([]int, 0, last-first+1)
	for nr := first; nr <= last; nr++ {
		nrs = append(nrs, nr)
	}
	return nrs
}
