package domain

import (
	"fmt"
	"maps"
	"strings"

	"github.com/google/uuid"
)

// ConnectParams describes an edge drawn between two node endpoints
type ConnectParams struct {
	Source       string         `json:"source"`
	Target       string         `json:"target"`
	SourceHandle string         `json:"sourceHandle,omitempty"`
	TargetHandle string         `json:"targetHandle,omitempty"`
	Animated     bool           `json:"animated,omitempty"`
	Label        string         `json:"label,omitempty"`
	Style        map[string]any `json:"style,omitempty"`
}

// Validate checks that both endpoints are present. It does not check that
// they name existing nodes.
func (p ConnectParams) Validate() error {
	if strings.TrimSpace(p.Source) == "" {
		return fmt.Errorf("%w: source required", ErrInvalidEndpoint)
	}
	if strings.TrimSpace(p.Target) == "" {
		return fmt.Errorf("%w: target required", ErrInvalidEndpoint)
	}
	return nil
}

// Edge builds the edge described by the params. The ID is left to the caller.
func (p ConnectParams) Edge() Edge {
	return Edge{
		Source:       p.Source,
		Target:       p.Target,
		SourceHandle: p.SourceHandle,
		TargetHandle: p.TargetHandle,
		Animated:     p.Animated,
		Label:        p.Label,
		Style:        maps.Clone(p.Style),
	}
}

// IDFunc picks an ID for a new edge that is not taken in els
type IDFunc func(edge Edge, els Elements) string

// UniqueEdgeID returns the derived edge ID, suffixed with a random token
// while it collides with an existing element.
func UniqueEdgeID(edge Edge, els Elements) string {
	base := edge.GenerateID()
	id := base
	for els.Contains(id) {
		id = base + "-" + uuid.NewString()[:8]
	}
	return id
}

// AddEdge appends a new edge built from params to a copy of els
func AddEdge(params ConnectParams, els Elements) (Elements, Edge, error) {
	return AddEdgeWithID(params, els, UniqueEdgeID)
}

// AddEdgeWithID is AddEdge with a custom ID function
func AddEdgeWithID(params ConnectParams, els Elements, idFunc IDFunc) (Elements, Edge, error) {
	if err := params.Validate(); err != nil {
		return els, Edge{}, err
	}

	edge := params.Edge()
	edge.ID = idFunc(edge, els)
	if edge.ID == "" || els.Contains(edge.ID) {
		return els, Edge{}, fmt.Errorf("%w: %q", ErrDuplicateID, edge.ID)
	}

	out := make(Elements, 0, len(els)+1)
	out = append(out, els.Clone()...)
	out = append(out, EdgeElement(edge.clone()))
	return out, edge, nil
}
