package models

import (
	"fmt"

	"github.com/kpauljoseph/gestionpdf/pkg/utils"
)

// Part is one finalized output file of a split. Pages are 1-based and
// inclusive.
type Part struct {
	Path      string `json:"path"`
	FirstPage int    `json:"first_page"`
	LastPage  int    `json:"last_page"`
	SizeBytes int64  `json:"size_bytes"`
}

func (p Part) PageCount() int {
	return p.LastPage - p.FirstPage + 1
}

// Range renders the page range as "first-last", or just "n" for a
// one-page part.
func (p Part) Range() string {
	if p.FirstPage == p.LastPage {
		return fmt.Sprintf("%d", p.FirstPage)
	}
	return fmt.Sprintf("%d-%d", p.FirstPage, p.LastPage)
}

func (p Part) SizeMB() float64 {
	return utils.BytesToMB(p.SizeBytes)
}
