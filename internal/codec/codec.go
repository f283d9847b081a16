package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"flowboard/internal/domain"
)

// Importer interface for importing element sequences from various formats
type Importer interface {
	Parse(r io.Reader) (domain.Elements, error)
	Format() string
}

// Exporter interface for exporting element sequences to various formats
type Exporter interface {
	Export(els domain.Elements, w io.Writer) error
	Format() string
}

// Codec both imports and exports one format
type Codec interface {
	Importer
	Exporter
	ContentType() string
}

// ForFormat returns the codec for a format name ("json", "yaml" or "yml")
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// LoadFile parses a seed file, picking the codec from its extension
func LoadFile(path string) (domain.Elements, error) {
	c, err := ForFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	els, err := c.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := els.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return els, nil
}
