package domain

import "fmt"

// Elements is the ordered element sequence of a diagram
type Elements []Element

// Clone returns a deep copy of the sequence
func (els Elements) Clone() Elements {
	out := make(Elements, len(els))
	for i, el := range els {
		out[i] = el.Clone()
	}
	return out
}

// IDs returns the element IDs in order
func (els Elements) IDs() []string {
	ids := make([]string, len(els))
	for i, el := range els {
		ids[i] = el.ID()
	}
	return ids
}

// Find returns the element with the given ID
func (els Elements) Find(id string) (Element, bool) {
	for _, el := range els {
		if el.ID() == id {
			return el, true
		}
	}
	return Element{}, false
}

// Contains reports whether an element with the given ID exists
func (els Elements) Contains(id string) bool {
	_, ok := els.Find(id)
	return ok
}

// HasNode reports whether a node with the given ID exists
func (els Elements) HasNode(id string) bool {
	el, ok := els.Find(id)
	return ok && el.IsNode()
}

// Nodes returns copies of all nodes in order
func (els Elements) Nodes() []Node {
	nodes := make([]Node, 0, len(els))
	for _, el := range els {
		if el.IsNode() {
			nodes = append(nodes, *el.Node)
		}
	}
	return nodes
}

// Edges returns copies of all edges in order
func (els Elements) Edges() []Edge {
	edges := make([]Edge, 0, len(els))
	for _, el := range els {
		if el.IsEdge() {
			edges = append(edges, el.Edge.clone())
		}
	}
	return edges
}

// DanglingEdges returns the edges whose source or target names no node
func (els Elements) DanglingEdges() []Edge {
	var dangling []Edge
	for _, edge := range els.Edges() {
		if !els.HasNode(edge.Source) || !els.HasNode(edge.Target) {
			dangling = append(dangling, edge)
		}
	}
	return dangling
}

// Validate checks that every element has a non-empty, unique ID and that
// node types are known.
func (els Elements) Validate() error {
	seen := make(map[string]struct{}, len(els))
	for i, el := range els {
		if el.Node == nil && el.Edge == nil {
			return fmt.Errorf("element %d: %w", i, ErrEmptyElement)
		}
		id := el.ID()
		if id == "" {
			return fmt.Errorf("element %d: id required", i)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
		if el.IsNode() && !el.Node.Type.Valid() {
			return fmt.Errorf("node %s: unknown type %q", id, el.Node.Type)
		}
	}
	return nil
}
