package domain

import (
	"encoding/json"
	"fmt"
)

// Element is either a Node or an Edge. Exactly one of the two is set.
type Element struct {
	Node *Node
	Edge *Edge
}

// NodeElement wraps a node
func NodeElement(n Node) Element {
	return Element{Node: &n}
}

// EdgeElement wraps an edge
func EdgeElement(e Edge) Element {
	return Element{Edge: &e}
}

// IsNode reports whether the element is a node
func (el Element) IsNode() bool {
	return el.Node != nil && el.Edge == nil
}

// IsEdge reports whether the element is an edge
func (el Element) IsEdge() bool {
	return el.Edge != nil
}

// ID returns the element ID
func (el Element) ID() string {
	switch {
	case el.Edge != nil:
		return el.Edge.ID
	case el.Node != nil:
		return el.Node.ID
	}
	return ""
}

// Clone returns a copy that shares no memory with el
func (el Element) Clone() Element {
	switch {
	case el.Edge != nil:
		return EdgeElement(el.Edge.clone())
	case el.Node != nil:
		return NodeElement(*el.Node)
	}
	return Element{}
}

// MarshalJSON encodes the wrapped node or edge without a tag
func (el Element) MarshalJSON() ([]byte, error) {
	switch {
	case el.Edge != nil:
		return json.Marshal(el.Edge)
	case el.Node != nil:
		return json.Marshal(el.Node)
	}
	return nil, ErrEmptyElement
}

// UnmarshalJSON decodes an edge when both source and target keys are
// present, otherwise a node.
func (el *Element) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return fmt.Errorf("decode element: %w", err)
	}

	_, hasSource := keys["source"]
	_, hasTarget := keys["target"]
	if hasSource && hasTarget {
		var edge Edge
		if err := json.Unmarshal(data, &edge); err != nil {
			return fmt.Errorf("decode edge: %w", err)
		}
		*el = Element{Edge: &edge}
		return nil
	}

	var node Node
	if err := json.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("decode node: %w", err)
	}
	*el = Element{Node: &node}
	return nil
}
