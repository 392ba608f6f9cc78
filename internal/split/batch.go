package split

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/kpauljoseph/gestionpdf/internal/scanner"
	"github.com/kpauljoseph/gestionpdf/pkg/models"
	"github.com/kpauljoseph/gestionpdf/pkg/utils"
)

var partNamePattern = regexp.MustCompile(`_partie_\d{3}\.pdf$`)

// IsPartName reports whether name looks like a file produced by Split.
func IsPartName(name string) bool {
	return partNamePattern.MatchString(filepath.Base(name))
}

type BatchResult struct {
	Source  scanner.PDFFile
	Parts   []models.Part
	Skipped bool
	Err     error
}

// SplitAll splits every PDF under dir that is larger than maxSizeMB,
// writing the parts next to each source. Earlier split outputs are ignored.
// A failure on one file is recorded in its result and does not stop the
// batch; cancellation is only observed between files.
func (s *Splitter) SplitAll(ctx context.Context, dir string, maxSizeMB float64) ([]BatchResult, error) {
	if err := ValidateMaxSize(maxSizeMB); err != nil {
		return nil, err
	}

	pdfs, err := scanner.New(s.logger).FindPDFs(ctx, dir)
	if err != nil {
		return nil, err
	}

	var results []BatchResult
	for _, file := range pdfs {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		if IsPartName(file.AbsolutePath) {
			s.logger.Debug("Skipping split output: %s", file.RelativePath)
			continue
		}

		if utils.BytesToMB(file.SizeBytes) <= maxSizeMB {
			s.logger.Info("Skipping %s: already under %g MB", file.RelativePath, maxSizeMB)
			results = append(results, BatchResult{Source: file, Skipped: true})
			continue
		}

		parts, err := s.Split(file.AbsolutePath, maxSizeMB, "")
		if err != nil {
			s.logger.Error("Error splitting %s: %v", file.RelativePath, err)
			err = fmt.Errorf("%s: %w", file.RelativePath, err)
		}
		results = append(results, BatchResult{Source: file, Parts: parts, Err: err})
	}

	return results, nil
}
