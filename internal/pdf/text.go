package pdf

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
	ledongthuc "github.com/ledongthuc/pdf"
)

// FitzExtractor reads page text through MuPDF.
type FitzExtractor struct{}

func (FitzExtractor) Name() string {
	return "fitz"
}

func (FitzExtractor) ExtractText(path string, progress func(page, total int)) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	total := doc.NumPage()
	texts := make([]string, 0, total)

	//Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < total; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum+1, err)
		}
		texts = append(texts, text)
		if progress != nil {
			progress(pageNum+1, total)
		}
	}

	return texts, nil
}

// PlainExtractor reads page text with the pure Go ledongthuc/pdf reader.
type PlainExtractor struct{}

func (PlainExtractor) Name() string {
	return "plain"
}

func (PlainExtractor) ExtractText(path string, progress func(page, total int)) ([]string, error) {
	f, r, err := ledongthuc.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	total := r.NumPage()
	texts := make([]string, 0, total)

	for pageNum := 1; pageNum <= total; pageNum++ {
		page := r.Page(pageNum)
		text := ""
		if !page.V.IsNull() {
			text, err = page.GetPlainText(nil)
			if err != nil {
				return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum, err)
			}
		}
		texts = append(texts, text)
		if progress != nil {
			progress(pageNum, total)
		}
	}

	return texts, nil
}
