package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/kpauljoseph/gestionpdf/internal/pdf"
	"github.com/kpauljoseph/gestionpdf/pkg/logger"
	"github.com/kpauljoseph/gestionpdf/pkg/models"
)

type Method string

const (
	MethodAuto  Method = "auto"
	MethodFitz  Method = "fitz"
	MethodPlain Method = "plain"
)

const separatorWidth = 60

var (
	ErrNotFound      = fmt.Errorf("source PDF not found: %w", fs.ErrNotExist)
	ErrUnknownMethod = errors.New("unknown extraction method")
	ErrNothingToSave = errors.New("no text to save")
	ErrNoOutputPath  = errors.New("no output file specified")
)

func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodAuto, MethodFitz, MethodPlain:
		return m, nil
	case "":
		return MethodAuto, nil
	default:
		return "", fmt.Errorf("%w: %q (want auto, fitz or plain)", ErrUnknownMethod, s)
	}
}

// ProgressFunc is called once per extracted page with the backend in use.
type ProgressFunc func(backend string, page, total int)

type Extractor struct {
	primary  pdf.TextExtractor
	fallback pdf.TextExtractor
	logger   *logger.Logger
}

// NewExtractor uses go-fitz first and ledongthuc/pdf as the fallback.
func NewExtractor(logger *logger.Logger) *Extractor {
	return NewExtractorWithBackends(pdf.FitzExtractor{}, pdf.PlainExtractor{}, logger)
}

func NewExtractorWithBackends(primary, fallback pdf.TextExtractor, logger *logger.Logger) *Extractor {
	return &Extractor{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (e *Extractor) backendsFor(method Method) ([]pdf.TextExtractor, error) {
	switch method {
	case MethodAuto, "":
		return []pdf.TextExtractor{e.primary, e.fallback}, nil
	case Method(e.primary.Name()):
		return []pdf.TextExtractor{e.primary}, nil
	case Method(e.fallback.Name()):
		return []pdf.TextExtractor{e.fallback}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// Extract returns the formatted text of every page. With MethodAuto the
// fallback backend is only tried when the primary one fails.
func (e *Extractor) Extract(path string, method Method, progress ProgressFunc) (*models.Extraction, error) {
	backends, err := e.backendsFor(method)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat source PDF: %w", err)
	}

	var failures []error
	for _, backend := range backends {
		name := backend.Name()
		e.logger.Debug("Extracting %s with %s", path, name)

		pages, err := backend.ExtractText(path, func(page, total int) {
			e.logger.Trace("Extracting with %s... page %d/%d", name, page, total)
			if progress != nil {
				progress(name, page, total)
			}
		})
		if err != nil {
			e.logger.Warn("%s extraction failed: %v", name, err)
			failures = append(failures, fmt.Errorf("%s: %w", name, err))
			continue
		}

		text := FormatPages(pages)
		e.logger.Info("Extraction finished with %s: %d pages, %d characters", name, len(pages), len([]rune(text)))

		return &models.Extraction{
			Source:    path,
			Method:    name,
			PageCount: len(pages),
			Text:      text,
		}, nil
	}

	return nil, fmt.Errorf("failed to extract text: %w", errors.Join(failures...))
}

// FormatPages joins page texts, each preceded by a PAGE n banner.
func FormatPages(pages []string) string {
	rule := strings.Repeat("=", separatorWidth)

	var b strings.Builder
	for i, text := range pages {
		fmt.Fprintf(&b, "\n%s\nPAGE %d\n%s\n\n", rule, i+1, rule)
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

// Save writes text to path as UTF-8.
func Save(text, path string) error {
	if text == "" {
		return ErrNothingToSave
	}
	if path == "" {
		return ErrNoOutputPath
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to save text: %w", err)
	}
	return nil
}
