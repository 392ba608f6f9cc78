package split

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/kpauljoseph/gestionpdf/internal/pdf"
	"github.com/kpauljoseph/gestionpdf/pkg/logger"
	"github.com/kpauljoseph/gestionpdf/pkg/models"
	"github.com/kpauljoseph/gestionpdf/pkg/utils"
)

// PartNameFormat is applied to the source base name and the 1-based part
// sequence number.
const PartNameFormat = "%s_partie_%03d.pdf"

var (
	ErrNotFound       = fmt.Errorf("source PDF not found: %w", fs.ErrNotExist)
	ErrInvalidMaxSize = errors.New("maximum size must be a positive number of megabytes")
)

type Splitter struct {
	opener pdf.Opener
	logger *logger.Logger
}

func NewSplitter(opener pdf.Opener, logger *logger.Logger) *Splitter {
	return &Splitter{
		opener: opener,
		logger: logger,
	}
}

func PartName(baseName string, seq int) string {
	return fmt.Sprintf(PartNameFormat, baseName, seq)
}

func ValidateMaxSize(maxSizeMB float64) error {
	if math.IsNaN(maxSizeMB) || math.IsInf(maxSizeMB, 0) || maxSizeMB <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidMaxSize, maxSizeMB)
	}
	return nil
}

// Split partitions sourcePath into contiguous page ranges whose serialized
// size stays at or under maxSizeMB, writing each range to outputDir. An
// empty outputDir means the directory of the source. Parts are returned in
// page order.
//
// A page that alone exceeds maxSizeMB is still written, as a part of its own.
// Parts written before an error are left on disk.
func (s *Splitter) Split(sourcePath string, maxSizeMB float64, outputDir string) ([]models.Part, error) {
	if err := ValidateMaxSize(maxSizeMB); err != nil {
		return nil, err
	}

	info, err := os.Stat(sourcePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, sourcePath)
		}
		return nil, fmt.Errorf("failed to stat source PDF: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("source is a directory: %s", sourcePath)
	}

	if outputDir == "" {
		outputDir = filepath.Dir(sourcePath)
	}

	s.logger.Info("Reading PDF: %s", sourcePath)
	s.logger.Info("Original size: %.2f MB", utils.BytesToMB(info.Size()))
	s.logger.Info("Maximum size per file: %g MB", maxSizeMB)

	doc, err := s.opener.Open(sourcePath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	run := &splitRun{
		doc:       doc,
		logger:    s.logger,
		maxBytes:  maxSizeMB * utils.BytesPerMB,
		outputDir: outputDir,
		baseName:  strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath)),
	}

	s.logger.Info("Total pages: %d", doc.PageCount())

	if err := run.execute(); err != nil {
		return run.parts, err
	}

	s.logger.Info("Done: %d files created in %s", len(run.parts), outputDir)

	return run.parts, nil
}

// splitRun holds the state of one Split call. The pending unit is the page
// range [start, end] over the source document.
type splitRun struct {
	doc       pdf.Document
	logger    *logger.Logger
	maxBytes  float64
	outputDir string
	baseName  string

	parts []models.Part
}

func (r *splitRun) execute() error {
	total := r.doc.PageCount()
	start := 1

	for end := 1; end <= total; end++ {
		size, err := r.measure(start, end)
		if err != nil {
			return err
		}

		r.logger.Trace("Pages %d-%d measure %.2f MB", start, end, utils.BytesToMB(size))

		last := end == total

		switch {
		case float64(size) > r.maxBytes && end > start:
			// Evict the page that caused the overflow; it seeds the next unit.
			if err := r.flush(start, end-1); err != nil {
				return err
			}
			start = end
			if last {
				if err := r.flush(start, end); err != nil {
					return err
				}
				start = end + 1
			}
		case last:
			if err := r.flush(start, end); err != nil {
				return err
			}
			start = end + 1
		}
	}

	if start <= total {
		if err := r.flush(start, total); err != nil {
			return err
		}
	}

	return nil
}

func (r *splitRun) measure(first, last int) (int64, error) {
	var counter countingWriter
	if err := r.doc.WritePages(&counter, pdf.PageRange(first, last)); err != nil {
		return 0, fmt.Errorf("failed to measure pages %d-%d: %w", first, last, err)
	}
	return counter.n, nil
}

func (r *splitRun) flush(first, last int) error {
	name := PartName(r.baseName, len(r.parts)+1)
	path := filepath.Join(r.outputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}

	counter := countingWriter{w: f}
	if err := r.doc.WritePages(&counter, pdf.PageRange(first, last)); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close %s: %w", name, err)
	}

	part := models.Part{
		Path:      path,
		FirstPage: first,
		LastPage:  last,
		SizeBytes: counter.n,
	}
	r.parts = append(r.parts, part)

	r.logger.Info("Created: %s", name)
	r.logger.Info("   Pages: %s | Size: %.2f MB", part.Range(), part.SizeMB())

	return nil
}

// countingWriter counts bytes written and forwards them to w when set.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.w == nil {
		c.n += int64(len(p))
		return len(p), nil
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
