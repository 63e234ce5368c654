// Package catalogfile loads the delivery catalog from a configuration file.
//
// The file holds a single object mapping each item name to the list of
// couriers that can deliver it:
//
//	{
//	  "Cold Beer (330ml)": ["Express Collection", "Courier"],
//	  "Cookies": ["Pick-up point", "Mailbox delivery"]
//	}
//
// Files ending in .yaml or .yml are read as YAML with the same shape; every
// other file is read as JSON.
package catalogfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"basketsplit/internal/core/domain/model/catalog"
	"basketsplit/internal/core/ports"

	"gopkg.in/yaml.v3"
)

var (
	// ErrCatalogFileNotFound is returned when the catalog file does not exist.
	ErrCatalogFileNotFound = errors.New("catalog file not found")
	// ErrCatalogFileMalformed is returned when the file cannot be parsed or
	// describes an invalid catalog.
	ErrCatalogFileMalformed = errors.New("catalog file is malformed")
)

// Loader reads a catalog from a file path on every Load call.
type Loader struct {
	path string
}

var _ ports.CatalogSource = (*Loader)(nil)

// NewLoader creates a Loader for path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Load reads and parses the catalog file.
func (l *Loader) Load(ctx context.Context) (*catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogFileNotFound, l.path)
		}
		return nil, fmt.Errorf("read catalog file %s: %w", l.path, err)
	}

	c, err := Parse(data, formatOf(l.path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return c, nil
}

// Format selects the syntax Parse expects.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes catalog data in the given format.
// Syntax errors and invalid entries both wrap ErrCatalogFileMalformed.
func Parse(data []byte, format Format) (*catalog.Catalog, error) {
	var entries map[string][]string

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &entries)
	default:
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogFileMalformed, err)
	}

	c, err := catalog.NewCatalog(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogFileMalformed, err)
	}
	return c, nil
}
