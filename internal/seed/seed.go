// Package seed reads the demo catalogue that the refill-mocks admin action
// loads into an emptied database.
//
// A catalogue file is YAML, optionally gzip-compressed (".gz" suffix):
//
//	categories:
//	  - Tools
//	products:
//	  - name: Hammer
//	    category: Tools
//	    image_url: /images/hammer.png
//	    quantity: 12
package seed

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"
)

// Catalog is the content of one or more seed files.
type Catalog struct {
	Categories []string  `yaml:"categories"`
	Products   []Product `yaml:"products"`
}

// Product references its category by name; IDs are assigned on insert.
type Product struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	ImageURL string `yaml:"image_url"`
	Quantity int    `yaml:"quantity"`
}

// Loader defines the interface for loading seed files.
type Loader interface {
	// Load reads a seed file and returns its catalogue.
	Load(ctx context.Context, path string) (*Catalog, error)
}

// isGzip reports whether path names a gzip-compressed file.
func isGzip(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

// Decode parses a catalogue from r, decompressing it first when gzipped.
// Category references are not checked here: a file may use categories
// declared in another file, so Validate runs on the merged catalogue.
func Decode(r io.Reader, gzipped bool) (*Catalog, error) {
	if gzipped {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var catalog Catalog
	if err := yaml.NewDecoder(r).Decode(&catalog); err != nil {
		if err == io.EOF {
			return &Catalog{}, nil
		}
		return nil, fmt.Errorf("failed to decode catalogue: %w", err)
	}

	return &catalog, nil
}

// Encode writes catalog as YAML to w, gzip-compressed when gzipped is set.
func Encode(w io.Writer, catalog *Catalog, gzipped bool) (err error) {
	if gzipped {
		gzipWriter := gzip.NewWriter(w)
		defer func() {
			if closeErr := gzipWriter.Close(); err == nil && closeErr != nil {
				err = fmt.Errorf("failed to flush gzip stream: %w", closeErr)
			}
		}()
		w = gzipWriter
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(catalog); err != nil {
		return fmt.Errorf("failed to encode catalogue: %w", err)
	}
	return enc.Close()
}

// Validate checks names, quantities and category references.
func (c *Catalog) Validate() error {
	known := make(map[string]bool, len(c.Categories))
	for _, name := range c.Categories {
		if name == "" {
			return fmt.Errorf("category name must not be empty")
		}
		known[name] = true
	}

	for i, p := range c.Products {
		if p.Name == "" {
			return fmt.Errorf("product %d: name must not be empty", i)
		}
		if p.Quantity < 0 {
			return fmt.Errorf("product %q: quantity must not be negative", p.Name)
		}
		if !known[p.Category] {
			return fmt.Errorf("product %q: unknown category %q", p.Name, p.Category)
		}
	}

	return nil
}

// Merge combines catalogues in order. Categories are de-duplicated by name;
// products are concatenated.
func Merge(catalogs ...*Catalog) *Catalog {
	merged := &Catalog{}
	seen := make(map[string]bool)

	for _, c := range catalogs {
		if c == nil {
			continue
		}
		for _, name := range c.Categories {
			if !seen[name] {
				seen[name] = true
				merged.Categories = append(merged.Categories, name)
			}
		}
		merged.Products = append(merged.Products, c.Products...)
	}

	return merged
}
