package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kpauljoseph/gestionpdf/internal/config"
	"github.com/kpauljoseph/gestionpdf/internal/extract"
	"github.com/kpauljoseph/gestionpdf/pkg/logger"
)

func main() {
	var outputFile string

	configPath := flag.String("config", "", "path to YAML config file")
	method := flag.String("method", "", "extraction method: auto, fitz or plain (default from config, auto)")
	flag.StringVar(&outputFile, "output", "", "text file to write (default: standard output)")
	flag.StringVar(&outputFile, "o", "", "shorthand for -output")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		logger.New(logger.WithPrefix("[pdfextract] ")).Fatal("Error loading config: %v", err)
	}

	// Logs go to stderr so the extracted text can be piped.
	log := logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithPrefix("[pdfextract] "),
		logger.WithLevels(*verbose || cfg.Log.Verbose, *debug || cfg.Log.Debug),
	)

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input.pdf>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *method == "" {
		*method = cfg.Extract.Method
	}
	m, err := extract.ParseMethod(*method)
	if err != nil {
		log.Fatal("%v", err)
	}

	if outputFile == "" {
		outputFile = cfg.Extract.OutputFile
	}

	extractor := extract.NewExtractor(log)
	result, err := extractor.Extract(flag.Arg(0), m, func(backend string, page, total int) {
		log.Debug("Extracting with %s... page %d/%d", backend, page, total)
	})
	if err != nil {
		log.Fatal("Error extracting %s: %v", flag.Arg(0), err)
	}

	if outputFile == "" {
		fmt.Print(result.Text)
		return
	}

	if err := extract.Save(result.Text, outputFile); err != nil {
		log.Fatal("Error saving text: %v", err)
	}
	log.Info("Text saved to %s (%d pages, %d characters, via %s)", outputFile, result.PageCount, result.CharCount(), result.Method)
}
