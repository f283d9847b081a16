package domain

import (
	"maps"
	"strings"
)

// Edge represents a connection from a source node to a target node
type Edge struct {
	ID           string         `json:"id"`
	Source       string         `json:"source"`
	Target       string         `json:"target"`
	SourceHandle string         `json:"sourceHandle,omitempty"`
	TargetHandle string         `json:"targetHandle,omitempty"`
	Animated     bool           `json:"animated,omitempty"`
	Label        string         `json:"label,omitempty"`
	Style        map[string]any `json:"style,omitempty"`
}

// NewEdge creates a new edge with a derived ID
func NewEdge(source, target string) *Edge {
	edge := &Edge{
		Source: source,
		Target: target,
	}
	edge.ID = edge.GenerateID()
	return edge
}

// GenerateID derives the edge ID from its endpoints and handles.
// "1" -> "2" yields "e1-2".
func (e *Edge) GenerateID() string {
	var b strings.Builder
	b.WriteString("e")
	b.WriteString(e.Source)
	b.WriteString(e.SourceHandle)
	b.WriteString("-")
	b.WriteString(e.Target)
	b.WriteString(e.TargetHandle)
	return b.String()
}

func (e Edge) clone() Edge {
	e.Style = maps.Clone(e.Style)
	return e
}
