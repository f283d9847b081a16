package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-test/deep"
)

func TestElementVariant(t *testing.T) {
	node := NodeElement(*NewNode("1", NodeTypeInput, "Start", 0, 0))
	edge := EdgeElement(*NewEdge("1", "2"))

	if !node.IsNode() || node.IsEdge() {
		t.Errorf("expected node element, got %+v", node)
	}
	if !edge.IsEdge() || edge.IsNode() {
		t.Errorf("expected edge element, got %+v", edge)
	}
	if node.ID() != "1" || edge.ID() != "e1-2" {
		t.Errorf("unexpected ids %q %q", node.ID(), edge.ID())
	}
	if (Element{}).ID() != "" {
		t.Error("expected empty element to have empty id")
	}
}

func TestElementUnmarshalJSON(t *testing.T) {
	raw := `[
		{"id": "1", "type": "input", "data": {"label": "Start Node"}, "position": {"x": 250, "y": 5}},
		{"id": "2", "data": {"label": "Another Node"}, "position": {"x": 100, "y": 100}},
		{"id": "e1-2", "source": "1", "target": "2", "animated": true}
	]`

	var els Elements
	if err := json.Unmarshal([]byte(raw), &els); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := deep.Equal(els, DefaultSeed()); diff != nil {
		t.Error(diff)
	}
}

func TestElementMarshalJSON(t *testing.T) {
	t.Run("edge has no tag", func(t *testing.T) {
		data, err := json.Marshal(EdgeElement(Edge{ID: "e1-2", Source: "1", Target: "2", Animated: true}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"id":"e1-2","source":"1","target":"2","animated":true}`
		if string(data) != want {
			t.Errorf("expected %s, got %s", want, data)
		}
	})

	t.Run("default node omits type", func(t *testing.T) {
		data, err := json.Marshal(NodeElement(*NewNode("2", "", "Another Node", 100, 100)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"id":"2","data":{"label":"Another Node"},"position":{"x":100,"y":100}}`
		if string(data) != want {
			t.Errorf("expected %s, got %s", want, data)
		}
	})

	t.Run("empty element fails", func(t *testing.T) {
		_, err := json.Marshal(Element{})
		if !errors.Is(err, ErrEmptyElement) {
			t.Errorf("expected ErrEmptyElement, got %v", err)
		}
	})

	t.Run("edge with only source decodes as node", func(t *testing.T) {
		var el Element
		if err := json.Unmarshal([]byte(`{"id": "x", "source": "1"}`), &el); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !el.IsNode() {
			t.Error("expected node element")
		}
	})
}

func TestElementsValidate(t *testing.T) {
	tests := []struct {
		name    string
		els     Elements
		wantErr error
	}{
		{"seed is valid", DefaultSeed(), nil},
		{"empty is valid", Elements{}, nil},
		{
			"duplicate id",
			Elements{NodeElement(*NewNode("1", "", "a", 0, 0)), EdgeElement(Edge{ID: "1", Source: "1", Target: "1"})},
			ErrDuplicateID,
		},
		{"empty element", Elements{{}}, ErrEmptyElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.els.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("unknown node type", func(t *testing.T) {
		els := Elements{NodeElement(*NewNode("1", "group", "a", 0, 0))}
		if err := els.Validate(); err == nil {
			t.Error("expected error for unknown node type")
		}
	})
}

func TestElementsClone(t *testing.T) {
	seed := DefaultSeed()
	copied := seed.Clone()
	copied[0].Node.Data.Label = "Changed"
	copied[2].Edge.Style = map[string]any{"stroke": "red"}

	if seed[0].Node.Label() != "Start Node" {
		t.Error("expected clone not to share nodes")
	}
	if _, ok := seed[2].Edge.Style["stroke"]; ok {
		t.Error("expected clone not to share edge style")
	}
}

func TestElementsDanglingEdges(t *testing.T) {
	els := RemoveElements([]string{"2"}, DefaultSeed())

	dangling := els.DanglingEdges()
	if len(dangling) != 1 || dangling[0].ID != "e1-2" {
		t.Errorf("expected e1-2 to dangle, got %+v", dangling)
	}
	if len(DefaultSeed().DanglingEdges()) != 0 {
		t.Error("expected seed to have no dangling edges")
	}
}
