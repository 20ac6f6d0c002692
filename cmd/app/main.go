// Command app checks a YAML product catalog against the catalog domain rules
// and exits non-zero when any record is invalid.
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"catalog/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs := cmd.LoadConfig()
	log.SetLevel(gommonLevel(configs.LogLevel))
	log.SetHeader("${time_rfc3339} ${level}")

	app := cmd.NewCompositionRoot(configs, os.Stderr)

	f, err := os.Open(configs.CatalogFile)
	if err != nil {
		log.Fatalf("Error opening catalog file: %v", err)
	}
	defer f.Close()

	report, err := app.CheckCatalog(context.Background(), f)
	if err != nil {
		log.Fatalf("Error reading catalog %s: %v", configs.CatalogFile, err)
	}

	for _, failure := range report.Failures {
		log.Warnf("record %d (%q): %s %v", failure.Index, failure.ProductID, failure.Code, failure.Err)
	}
	log.Infof("%s: %d valid, %d invalid", configs.CatalogFile, report.Valid, len(report.Failures))

	if !report.OK() {
		f.Close()
		os.Exit(1)
	}
}

func gommonLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
