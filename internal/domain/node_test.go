package domain

import (
	"testing"
)

func TestNewNode(t *testing.T) {
	node := NewNode("1", NodeTypeInput, "Start Node", 250, 5)

	if node.ID != "1" {
		t.Errorf("expected ID '1', got %s", node.ID)
	}
	if node.Type != NodeTypeInput {
		t.Errorf("expected Type %s, got %s", NodeTypeInput, node.Type)
	}
	if node.Label() != "Start Node" {
		t.Errorf("expected label 'Start Node', got %s", node.Label())
	}
	if node.Position != (Position{X: 250, Y: 5}) {
		t.Errorf("unexpected position %+v", node.Position)
	}
}

func TestNodeEffectiveType(t *testing.T) {
	tests := []struct {
		name     string
		nodeType NodeType
		want     NodeType
	}{
		{"unset defaults", "", NodeTypeDefault},
		{"input", NodeTypeInput, NodeTypeInput},
		{"output", NodeTypeOutput, NodeTypeOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := NewNode("n", tt.nodeType, "N", 0, 0)
			if got := node.EffectiveType(); got != tt.want {
				t.Errorf("EffectiveType() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNodeTypeValid(t *testing.T) {
	for _, nt := range []NodeType{"", NodeTypeInput, NodeTypeDefault, NodeTypeOutput} {
		if !nt.Valid() {
			t.Errorf("expected %q to be valid", nt)
		}
	}
	if NodeType("group").Valid() {
		t.Error("expected unknown type to be invalid")
	}
}

func TestNodeMoveTo(t *testing.T) {
	node := NewNode("n", NodeTypeDefault, "N", 0, 0)
	node.MoveTo(10, 20)

	if node.Position.X != 10 || node.Position.Y != 20 {
		t.Errorf("expected (10, 20), got %+v", node.Position)
	}
}
