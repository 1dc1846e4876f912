// seed-pack validates seed catalogue files and writes them, merged, as one
// gzip-compressed catalogue ready to upload under the S3 seed prefix.
//
//	seed-pack -o catalog.yaml.gz data/seed/catalog.yaml [more.yaml ...]
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stock-admin/internal/config"
	"stock-admin/internal/seed"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet := pflag.NewFlagSet("seed-pack", pflag.ContinueOnError)
	output := flagSet.StringP("output", "o", "data/seed/catalog.yaml.gz", "file to write; a .gz suffix compresses it")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	inputs := flagSet.Args()
	if len(inputs) == 0 {
		return fmt.Errorf("at least one seed file is required")
	}

	logger := config.NewLogger(config.LoggerConfig{Level: "warn", Format: "console"}, os.Stderr)

	catalog, err := seed.LoadAll(context.Background(), seed.NewFileLoader(logger), inputs)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := seed.Encode(file, catalog, strings.HasSuffix(*output, ".gz")); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", *output, err)
	}

	fmt.Printf("Wrote %s with %d categories and %d products\n",
		*output, len(catalog.Categories), len(catalog.Products))

	return nil
}
