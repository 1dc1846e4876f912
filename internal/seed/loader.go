package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// fileLoader implements Loader for reading seed files from the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a seed file and returns its catalogue.
func (l *fileLoader) Load(ctx context.Context, path string) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logger.Info().Str("file", path).Msg("loading seed file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer file.Close()

	catalog, err := Decode(file, isGzip(path))
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read seed file")
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("categories", len(catalog.Categories)).
		Int("products", len(catalog.Products)).
		Msg("seed file loaded successfully")

	return catalog, nil
}

// LoadAll loads every path concurrently and merges the results in path order.
func LoadAll(ctx context.Context, loader Loader, paths []string) (*Catalog, error) {
	catalogs := make([]*Catalog, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			catalog, err := loader.Load(gctx, path)
			if err != nil {
				return err
			}
			catalogs[i] = catalog
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load seed catalogue: %w", err)
	}

	merged := Merge(catalogs...)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed catalogue: %w", err)
	}
	return merged, nil
}
