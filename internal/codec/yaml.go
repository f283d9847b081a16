package codec

import (
	"errors"
	"fmt"
	"io"

	"flowboard/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// ContentType returns the MIME type of the format
func (c *YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

// yamlDocument represents the YAML structure for a diagram
type yamlDocument struct {
	Elements []yamlElement `yaml:"elements"`
}

// yamlElement is the union of node and edge fields. Source and Target are
// pointers so that an edge can be told apart from a node by key presence.
type yamlElement struct {
	ID       string        `yaml:"id"`
	Type     string        `yaml:"type,omitempty"`
	Data     *yamlData     `yaml:"data,omitempty"`
	Position *yamlPosition `yaml:"position,omitempty"`

	Source       *string        `yaml:"source,omitempty"`
	Target       *string        `yaml:"target,omitempty"`
	SourceHandle string         `yaml:"sourceHandle,omitempty"`
	TargetHandle string         `yaml:"targetHandle,omitempty"`
	Animated     bool           `yaml:"animated,omitempty"`
	Label        string         `yaml:"label,omitempty"`
	Style        map[string]any `yaml:"style,omitempty"`
}

type yamlData struct {
	Label string `yaml:"label"`
}

type yamlPosition struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Parse imports an element sequence from YAML
func (c *YAMLCodec) Parse(r io.Reader) (domain.Elements, error) {
	var doc yamlDocument
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	els := make(domain.Elements, 0, len(doc.Elements))
	for _, ye := range doc.Elements {
		if ye.Source != nil && ye.Target != nil {
			els = append(els, domain.EdgeElement(domain.Edge{
				ID:           ye.ID,
				Source:       *ye.Source,
				Target:       *ye.Target,
				SourceHandle: ye.SourceHandle,
				TargetHandle: ye.TargetHandle,
				Animated:     ye.Animated,
				Label:        ye.Label,
				Style:        ye.Style,
			}))
			continue
		}

		node := domain.Node{
			ID:   ye.ID,
			Type: domain.NodeType(ye.Type),
		}
		if ye.Data != nil {
			node.Data.Label = ye.Data.Label
		}
		if ye.Position != nil {
			node.MoveTo(ye.Position.X, ye.Position.Y)
		}
		els = append(els, domain.NodeElement(node))
	}

	return els, nil
}

// Export exports an element sequence to YAML
func (c *YAMLCodec) Export(els domain.Elements, w io.Writer) error {
	doc := yamlDocument{
		Elements: make([]yamlElement, 0, len(els)),
	}

	for _, el := range els {
		switch {
		case el.IsEdge():
			edge := el.Edge
			source, target := edge.Source, edge.Target
			doc.Elements = append(doc.Elements, yamlElement{
				ID:           edge.ID,
				Source:       &source,
				Target:       &target,
				SourceHandle: edge.SourceHandle,
				TargetHandle: edge.TargetHandle,
				Animated:     edge.Animated,
				Label:        edge.Label,
				Style:        edge.Style,
			})
		case el.IsNode():
			node := el.Node
			doc.Elements = append(doc.Elements, yamlElement{
				ID:       node.ID,
				Type:     string(node.Type),
				Data:     &yamlData{Label: node.Data.Label},
				Position: &yamlPosition{X: node.Position.X, Y: node.Position.Y},
			})
		default:
			return fmt.Errorf("failed to encode YAML: %w", domain.ErrEmptyElement)
		}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
