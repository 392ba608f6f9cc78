package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kpauljoseph/gestionpdf/internal/split"
	"github.com/kpauljoseph/gestionpdf/pkg/utils"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func main() {
	pdfPath := flag.String("file", "", "Path to PDF file")
	sizeMB := flag.Float64("size", 0, "show whether the file needs splitting at this size in MB")
	flag.Parse()

	if *pdfPath == "" {
		fmt.Println("Please provide a PDF file path using -file flag")
		os.Exit(1)
	}

	fmt.Printf("Analyzing PDF: %s\n", *pdfPath)

	size, err := utils.FileSizeMB(*pdfPath)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Size: %.2f MB\n", size)

	pageCount, err := api.PageCountFile(*pdfPath)
	if err != nil {
		fmt.Printf("Error counting pages: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Pages: %d\n", pageCount)

	if *sizeMB > 0 {
		if err := split.ValidateMaxSize(*sizeMB); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Needs splitting at %g MB: %v\n", *sizeMB, size > *sizeMB)
	}

	dims, err := api.PageDimsFile(*pdfPath)
	if err != nil {
		fmt.Printf("Error getting page dimensions: %v\n", err)
		os.Exit(1)
	}

	for i, dim := range dims {
		fmt.Printf("\nPage %d:\n", i+1)
		fmt.Printf("Dimensions (Width x Height): %.3f x %.3f points\n", dim.Width, dim.Height)
	}
}
