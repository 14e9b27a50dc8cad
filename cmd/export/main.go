// Command export writes the journal export files for one subject into a
// directory and, with -archive, uploads them to the configured bucket.
// It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/heartmarshall/pet-health-journal/internal/app"
	"github.com/heartmarshall/pet-health-journal/internal/config"
)

func main() {
	subject := flag.String("cat", "", "subject id to export (required)")
	outDir := flag.String("out", ".", "directory for the export files")
	upload := flag.Bool("archive", false, "also upload the files to the archive bucket")
	flag.Parse()

	if *subject == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, closeStore, err := app.OpenStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	svc, err := app.NewExportService(ctx, cfg.Archive, store, logger)
	if err != nil {
		logger.Error("create export service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	files, err := svc.Files(ctx, *subject)
	if err != nil {
		logger.Error("build export", slog.String("cat", *subject), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Error("create output dir", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for _, f := range files {
		path := filepath.Join(*outDir, f.Name)
		if err := os.WriteFile(path, f.Body, 0o644); err != nil {
			logger.Error("write export file", slog.String("path", path), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("export written", slog.String("path", path), slog.Int("bytes", len(f.Body)))
	}

	if !*upload {
		return
	}

	keys, err := svc.Archive(ctx, *subject)
	if err != nil {
		logger.Error("archive export", slog.String("cat", *subject), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("export archived", slog.Any("files", keys))
}
