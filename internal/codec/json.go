package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"flowboard/internal/domain"
)

// JSONCodec handles JSON import/export using the graph-UI element shape
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// ContentType returns the MIME type of the format
func (c *JSONCodec) ContentType() string {
	return "application/json"
}

// Parse imports an element array from JSON
func (c *JSONCodec) Parse(r io.Reader) (domain.Elements, error) {
	var els domain.Elements
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&els); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if els == nil {
		els = domain.Elements{}
	}

	return els, nil
}

// Export exports an element array to JSON
func (c *JSONCodec) Export(els domain.Elements, w io.Writer) error {
	if els == nil {
		els = domain.Elements{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(els); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
