package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-test/deep"
)

func TestAddEdge(t *testing.T) {
	t.Run("appends edge and leaves input untouched", func(t *testing.T) {
		seed := DefaultSeed()
		out, edge, err := AddEdge(ConnectParams{Source: "2", Target: "1"}, seed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out) != 4 {
			t.Fatalf("expected 4 elements, got %d", len(out))
		}
		if len(seed) != 3 {
			t.Errorf("expected input to keep 3 elements, got %d", len(seed))
		}
		if edge.ID == "e1-2" {
			t.Error("expected new edge id to differ from e1-2")
		}
		if edge.Source != "2" || edge.Target != "1" {
			t.Errorf("expected 2->1, got %s->%s", edge.Source, edge.Target)
		}
		if out[3].ID() != edge.ID {
			t.Errorf("expected new edge last, got %s", out[3].ID())
		}
	})

	t.Run("missing endpoints fail", func(t *testing.T) {
		for _, params := range []ConnectParams{{Target: "1"}, {Source: "1"}, {Source: " ", Target: "2"}} {
			out, _, err := AddEdge(params, DefaultSeed())
			if !errors.Is(err, ErrInvalidEndpoint) {
				t.Errorf("expected ErrInvalidEndpoint for %+v, got %v", params, err)
			}
			if len(out) != 3 {
				t.Errorf("expected sequence unchanged, got %d elements", len(out))
			}
		}
	})

	t.Run("unknown endpoints are accepted", func(t *testing.T) {
		out, edge, err := AddEdge(ConnectParams{Source: "ghost", Target: "1"}, DefaultSeed())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Contains(edge.ID) {
			t.Error("expected edge to be added")
		}
	})

	t.Run("repeated connect derives unique ids", func(t *testing.T) {
		els := DefaultSeed()
		var err error
		for i := 0; i < 3; i++ {
			els, _, err = AddEdge(ConnectParams{Source: "1", Target: "2"}, els)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if err := els.Validate(); err != nil {
			t.Errorf("expected unique ids, got %v", err)
		}
	})

	t.Run("carries style attributes", func(t *testing.T) {
		style := map[string]any{"stroke": "red"}
		_, edge, err := AddEdge(ConnectParams{Source: "1", Target: "2", Animated: true, Label: "x", Style: style}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		style["stroke"] = "blue"

		if !edge.Animated || edge.Label != "x" {
			t.Errorf("expected animated labelled edge, got %+v", edge)
		}
		if val := edge.Style["stroke"]; val != "red" {
			t.Errorf("expected style copied, got %v", val)
		}
	})

	t.Run("custom id function collision fails", func(t *testing.T) {
		fixed := func(Edge, Elements) string { return "e1-2" }
		_, _, err := AddEdgeWithID(ConnectParams{Source: "1", Target: "2"}, DefaultSeed(), fixed)
		if !errors.Is(err, ErrDuplicateID) {
			t.Errorf("expected ErrDuplicateID, got %v", err)
		}
	})
}

func TestConnectGrowsByCallCount(t *testing.T) {
	for n := 0; n <= 10; n++ {
		t.Run(fmt.Sprintf("%d connects", n), func(t *testing.T) {
			els := DefaultSeed()
			for i := 0; i < n; i++ {
				var err error
				els, _, err = AddEdge(ConnectParams{Source: fmt.Sprint(i % 2), Target: "2"}, els)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
			if len(els) != 3+n {
				t.Errorf("expected %d elements, got %d", 3+n, len(els))
			}
		})
	}
}

func TestRemoveElements(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{"remove node keeps edge", []string{"2"}, []string{"1", "e1-2"}},
		{"remove edge", []string{"e1-2"}, []string{"1", "2"}},
		{"remove unknown is no-op", []string{"nope"}, []string{"1", "2", "e1-2"}},
		{"remove nothing", nil, []string{"1", "2", "e1-2"}},
		{"remove all", []string{"e1-2", "1", "2"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RemoveElements(tt.ids, DefaultSeed())
			if diff := deep.Equal(out.IDs(), tt.want); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestRemoveElementsIdempotent(t *testing.T) {
	ids := []string{"1", "missing"}
	once := RemoveElements(ids, DefaultSeed())
	twice := RemoveElements(ids, once)

	if diff := deep.Equal(once, twice); diff != nil {
		t.Error(diff)
	}
	for _, id := range ids {
		if twice.Contains(id) {
			t.Errorf("expected %s to be removed", id)
		}
	}
}

func TestConnectThenRemoveRoundTrip(t *testing.T) {
	before := DefaultSeed()
	after, edge, err := AddEdge(ConnectParams{Source: "2", Target: "1"}, before)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored := RemoveElements([]string{edge.ID}, after)
	if diff := deep.Equal(restored, before); diff != nil {
		t.Error(diff)
	}
}

func TestRemoveElementsCascade(t *testing.T) {
	els, _, err := AddEdge(ConnectParams{Source: "2", Target: "1"}, DefaultSeed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := RemoveElementsCascade([]string{"2"}, els)
	if diff := deep.Equal(out.IDs(), []string{"1"}); diff != nil {
		t.Error(diff)
	}
}

func TestSeedScenario(t *testing.T) {
	els, edge, err := AddEdge(ConnectParams{Source: "2", Target: "1"}, DefaultSeed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(els) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(els))
	}

	out := RemoveElements(ElementIDs([]Element{NodeElement(Node{ID: "2"})}), els)
	if len(out) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(out))
	}
	if out.Contains("2") {
		t.Error("expected node 2 to be removed")
	}
	if !out.Contains("e1-2") || !out.Contains(edge.ID) {
		t.Error("expected both edges to remain")
	}
}
