package split

import (
	"fmt"

	"github.com/kpauljoseph/gestionpdf/internal/pdf"
)

type VerifyReport struct {
	SourcePages int
	PartPages   []int
}

func (r VerifyReport) TotalPartPages() int {
	total := 0
	for _, n := range r.PartPages {
		total += n
	}
	return total
}

// Verify checks that the parts together hold exactly as many pages as the
// source.
func Verify(opener pdf.Opener, sourcePath string, partPaths []string) (VerifyReport, error) {
	var report VerifyReport

	count := func(path string) (int, error) {
		doc, err := opener.Open(path)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		defer doc.Close()
		return doc.PageCount(), nil
	}

	n, err := count(sourcePath)
	if err != nil {
		return report, err
	}
	report.SourcePages = n

	for _, path := range partPaths {
		n, err := count(path)
		if err != nil {
			return report, err
		}
		report.PartPages = append(report.PartPages, n)
	}

	if total := report.TotalPartPages(); total != report.SourcePages {
		return report, fmt.Errorf("parts hold %d pages, source has %d", total, report.SourcePages)
	}

	return report, nil
}
