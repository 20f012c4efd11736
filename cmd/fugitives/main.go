package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fugitives/internal/config"
	"fugitives/internal/logger"
	"fugitives/internal/pipeline"
	"fugitives/internal/scraper"
	"fugitives/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)
	logger.Init(cfg.LogLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	cmd := os.Args[1]
	switch cmd {
	case "proxy:verify":
		must(cfg.Require("PROXY_USERNAME", cfg.ProxyUsername))
		must(cfg.Require("PROXY_PASSWORD", cfg.ProxyPassword))
		client := scraper.NewClient(cfg)
		info, err := client.VerifyProxy(context.Background())
		must(err)
		fmt.Printf("proxy ok: %s\n", info)
	case "scrape":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		pages := fs.Int("pages", cfg.ScrapePages, "listing pages to scrape")
		_ = fs.Parse(os.Args[2:])
		svc := scraper.NewScrapeService(db, cfg)
		result, err := svc.ScrapeAll(context.Background(), *pages)
		must(err)
		fmt.Printf("scrape done pages=%d found=%d stored=%d skipped=%d\n", result.Pages, result.Found, result.Stored, result.Skipped)
	case "clean":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		batch := fs.Int("batch", 1000, "max profiles per run")
		_ = fs.Parse(os.Args[2:])
		svc := pipeline.NewCleaningService(db, cfg)
		result, err := svc.CleanPending(*batch)
		must(err)
		fmt.Printf("clean done profiles=%d unmappedPlaces=%d unparseableDobs=%d\n", result.Profiles, result.UnmappedPlaces, result.UnparseableDOBs)
	case "export:csv", "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output file path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		rows, err := db.ListCleanedRows()
		must(err)
		if len(rows) == 0 {
			must(fmt.Errorf("no cleaned rows to export, run clean first"))
		}
		if cmd == "export:csv" {
			must(pipeline.ExportRowsToCSV(rows, *out))
		} else {
			must(pipeline.ExportRowsToXLSX(rows, *out))
		}
		fmt.Printf("exported %d rows to %s\n", len(rows), *out)
	case "export:json":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output file path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		profiles, err := db.ListRawProfiles()
		must(err)
		if len(profiles) == 0 {
			must(fmt.Errorf("no profiles to export, run scrape first"))
		}
		must(pipeline.ExportRawToJSON(profiles, *out))
		fmt.Printf("exported %d profiles to %s\n", len(profiles), *out)
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		pages := fs.Int("pages", cfg.ScrapePages, "listing pages to scrape")
		outdir := fs.String("outdir", cfg.OutputDir, "output directory")
		_ = fs.Parse(os.Args[2:])

		svc := scraper.NewScrapeService(db, cfg)
		scraped, err := svc.ScrapeAll(context.Background(), *pages)
		must(err)
		fmt.Printf("scraped %d profiles\n", scraped.Stored)

		// Clean everything pending, not just this run's stores, so profiles
		// left fetched by an interrupted earlier run make it into the exports.
		cleaner := pipeline.NewCleaningService(db, cfg)
		cleaned, err := cleaner.CleanPending(1000)
		must(err)
		fmt.Printf("cleaned %d profiles\n", cleaned.Profiles)

		profiles, err := db.ListRawProfiles()
		must(err)
		rows, err := db.ListCleanedRows()
		must(err)

		jsonPath := filepath.Join(*outdir, fmt.Sprintf("fugitives_data_%dpages.json", *pages))
		rawCSVPath := filepath.Join(*outdir, fmt.Sprintf("fugitives_dataframe_%dpages.csv", *pages))
		rawXLSXPath := filepath.Join(*outdir, fmt.Sprintf("fugitives_dataframe_%dpages.xlsx", *pages))
		csvPath := filepath.Join(*outdir, fmt.Sprintf("fugitives_cleaned_%dpages.csv", *pages))
		xlsxPath := filepath.Join(*outdir, fmt.Sprintf("fugitives_cleaned_%dpages.xlsx", *pages))

		must(pipeline.ExportRawToJSON(profiles, jsonPath))
		must(pipeline.ExportRawToCSV(profiles, rawCSVPath))
		must(pipeline.ExportRawToXLSX(profiles, rawXLSXPath))
		must(pipeline.ExportRowsToCSV(rows, csvPath))
		must(pipeline.ExportRowsToXLSX(rows, xlsxPath))

		fmt.Printf("run done rows=%d outdir=%s\n", len(rows), *outdir)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: fugitives <command>")
	fmt.Println("commands:")
	fmt.Println("  proxy:verify")
	fmt.Println("  scrape --pages=1")
	fmt.Println("  clean [--batch=1000]")
	fmt.Println("  export:csv --out=./out/cleaned.csv")
	fmt.Println("  export:xlsx --out=./out/cleaned.xlsx")
	fmt.Println("  export:json --out=./out/raw.json")
	fmt.Println("  run --pages=1 --outdir=./out")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
