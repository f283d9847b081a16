package domain

import (
	"testing"
)

func TestNewEdge(t *testing.T) {
	t.Run("creates edge with derived ID", func(t *testing.T) {
		edge := NewEdge("1", "2")

		if edge.Source != "1" {
			t.Errorf("expected Source '1', got %s", edge.Source)
		}
		if edge.Target != "2" {
			t.Errorf("expected Target '2', got %s", edge.Target)
		}
		if edge.ID != "e1-2" {
			t.Errorf("expected ID 'e1-2', got %s", edge.ID)
		}
		if edge.Animated {
			t.Error("expected Animated to be false by default")
		}
	})
}

func TestEdgeGenerateID(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		want string
	}{
		{"plain endpoints", Edge{Source: "1", Target: "2"}, "e1-2"},
		{"direction matters", Edge{Source: "2", Target: "1"}, "e2-1"},
		{"handles appended", Edge{Source: "a", SourceHandle: "out", Target: "b", TargetHandle: "in"}, "eaout-bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.edge.GenerateID(); got != tt.want {
				t.Errorf("GenerateID() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEdgeCloneStyle(t *testing.T) {
	edge := NewEdge("1", "2")
	edge.Style = map[string]any{"stroke": "red"}

	copied := edge.clone()
	copied.Style["stroke"] = "blue"

	if val := edge.Style["stroke"]; val != "red" {
		t.Errorf("expected source style 'red', got %v", val)
	}

	var empty Edge
	if empty.clone().Style != nil {
		t.Error("expected nil style to stay nil")
	}
}
