package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kpauljoseph/gestionpdf/internal/config"
	"github.com/kpauljoseph/gestionpdf/internal/pdf"
	"github.com/kpauljoseph/gestionpdf/internal/split"
	"github.com/kpauljoseph/gestionpdf/pkg/logger"
	"github.com/kpauljoseph/gestionpdf/pkg/updater"
	"github.com/kpauljoseph/gestionpdf/pkg/version"
)

func main() {
	var (
		sizeMB    float64
		outputDir string
	)

	configPath := flag.String("config", "", "path to YAML config file")
	flag.Float64Var(&sizeMB, "size", 0, "maximum size per file in MB (default from config, 20)")
	flag.Float64Var(&sizeMB, "s", 0, "shorthand for -size")
	flag.StringVar(&outputDir, "output", "", "output directory (default: the input file's directory)")
	flag.StringVar(&outputDir, "o", "", "shorthand for -output")
	batchDir := flag.String("dir", "", "split every PDF larger than the limit under this directory")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version information and exit")
	checkUpdate := flag.Bool("check-update", false, "check GitHub for a newer release and exit")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <input.pdf>\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Splits a PDF into files no larger than the given size.\n\n")
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\nExamples:\n  %[1]s report.pdf\n  %[1]s -s 10 report.pdf\n  %[1]s -s 25 -o ./parts report.pdf\n  %[1]s -dir ./scans -s 5\n", os.Args[0])
	}
	flag.Parse()

	if *showVersion {
		fmt.Print(version.GetDetailedVersionInfo())
		return
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		logger.New(logger.WithPrefix("[pdfsplit] ")).Fatal("Error loading config: %v", err)
	}

	log := logger.New(
		logger.WithPrefix("[pdfsplit] "),
		logger.WithLevels(*verbose || cfg.Log.Verbose, *debug || cfg.Log.Debug),
	)
	log.Debug("Verbose logging enabled")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *checkUpdate {
		runUpdateCheck(ctx, log)
		return
	}

	if sizeMB == 0 {
		sizeMB = cfg.Split.MaxSizeMB
	}
	if outputDir == "" {
		outputDir = cfg.Split.OutputDir
	}

	if err := split.ValidateMaxSize(sizeMB); err != nil {
		log.Fatal("%v", err)
	}

	opener := pdf.NewOpener(log, pdf.WithOptimize(cfg.OptimizeEnabled()))
	splitter := split.NewSplitter(opener, log)

	start := time.Now()

	if *batchDir != "" {
		runBatch(ctx, log, splitter, *batchDir, sizeMB)
		log.Info("Batch finished in %s", time.Since(start).Round(time.Millisecond))
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	parts, err := splitter.Split(flag.Arg(0), sizeMB, outputDir)
	if err != nil {
		log.Fatal("Error splitting %s: %v", flag.Arg(0), err)
	}

	log.Info("Split into %d files in %s", len(parts), time.Since(start).Round(time.Millisecond))
	for _, part := range parts {
		fmt.Println(part.Path)
	}
}

func runBatch(ctx context.Context, log *logger.Logger, splitter *split.Splitter, dir string, sizeMB float64) {
	results, err := splitter.SplitAll(ctx, dir, sizeMB)
	if err != nil {
		log.Fatal("Error processing %s: %v", dir, err)
	}

	var splitCount, skipped, failed int
	for _, result := range results {
		switch {
		case result.Err != nil:
			failed++
		case result.Skipped:
			skipped++
		default:
			splitCount++
		}
	}

	log.Info("Processing complete:")
	log.Info("- PDFs split: %d", splitCount)
	log.Info("- PDFs already under %g MB: %d", sizeMB, skipped)
	log.Info("- PDFs failed: %d", failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func runUpdateCheck(ctx context.Context, log *logger.Logger) {
	info, err := updater.NewChecker(log).CheckForUpdates(ctx)
	if err != nil {
		log.Fatal("Update check failed: %v", err)
	}
	if !info.IsAvailable {
		log.Info("%s is up to date", version.GetVersionInfo())
		return
	}
	log.Info("New version available: %s (current %s)", info.LatestVersion, info.CurrentVersion)
	log.Info("Download: %s", info.DownloadURL)
}
