package main

import (
	"fmt"
	"os"

	"github.com/gen2brain/go-fitz"
	"github.com/kpauljoseph/gestionpdf/internal/pdf"
	"github.com/kpauljoseph/gestionpdf/internal/split"
	"github.com/kpauljoseph/gestionpdf/pkg/logger"
	"github.com/kpauljoseph/gestionpdf/pkg/utils"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: verify_split source.pdf part1.pdf [part2.pdf ...]")
		os.Exit(1)
	}

	sourcePath := os.Args[1]
	partPaths := os.Args[2:]

	report, err := split.Verify(pdf.NewOpener(logger.Discard()), sourcePath, partPaths)
	fmt.Printf("\nPage counts:\n")
	fmt.Printf("Source: %d\n", report.SourcePages)
	for i, n := range report.PartPages {
		fmt.Printf("Part %d (%s): %d\n", i+1, partPaths[i], n)
	}
	if err != nil {
		fmt.Printf("Verification failed: %v\n", err)
		os.Exit(1)
	}

	sourceHashes, err := pageTextHashes(sourcePath)
	if err != nil {
		fmt.Printf("Error reading source text: %v\n", err)
		os.Exit(1)
	}

	var partHashes []string
	for _, path := range partPaths {
		hashes, err := pageTextHashes(path)
		if err != nil {
			fmt.Printf("Error reading text of %s: %v\n", path, err)
			os.Exit(1)
		}
		partHashes = append(partHashes, hashes...)
	}

	if len(partHashes) != len(sourceHashes) {
		fmt.Printf("Text pages: source %d, parts %d\n", len(sourceHashes), len(partHashes))
		os.Exit(1)
	}

	mismatches := 0
	for i, hash := range sourceHashes {
		if partHashes[i] != hash {
			fmt.Printf("Page %d: text differs\n", i+1)
			mismatches++
		}
	}

	if mismatches > 0 {
		fmt.Printf("\n%d pages differ\n", mismatches)
		os.Exit(1)
	}

	fmt.Printf("\nAll %d pages present exactly once, in order\n", report.SourcePages)
}

// pageTextHashes hashes the extracted text of every page.
func pageTextHashes(path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	hashes := make([]string, 0, doc.NumPage())
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNum+1, err)
		}
		hashes = append(hashes, utils.GenerateTextHash(text))
	}
	return hashes, nil
}
