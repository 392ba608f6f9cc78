package acceptance

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"

	"github.com/kpauljoseph/gestionpdf/internal/testutil"
)

// Fixture is a generated source PDF with a known page layout.
type Fixture struct {
	Name        string
	Pages       int
	PaddingKiB  int
}

var Fixtures = []Fixture{
	{Name: "six_pages_100k.pdf", Pages: 6, PaddingKiB: 100},
	{Name: "single_page_300k.pdf", Pages: 1, PaddingKiB: 300},
}

func (f Fixture) Path(dir string) string {
	return filepath.Join(dir, f.Name)
}

// WriteFixtures generates every fixture into dir.
func WriteFixtures(dir string) error {
	for _, f := range Fixtures {
		pages := testutil.UniformPages(f.Pages, f.PaddingKiB*1024)
		if err := testutil.WritePDF(f.Path(dir), pages); err != nil {
			return fmt.Errorf("failed to write fixture %s: %w", f.Name, err)
		}
	}
	return nil
}

// PageTexts returns the text of each page of the PDF at path.
func PageTexts(path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	texts := make([]string, 0, doc.NumPage())
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// ListDir returns the names of the entries in dir.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
