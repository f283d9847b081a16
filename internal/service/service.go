package service

import (
	"context"
	"fmt"
	"io"
	"sync"

	"flowboard/internal/codec"
	"flowboard/internal/domain"
	"flowboard/internal/render"
	"flowboard/internal/store"
)

// SeedFunc loads the sequence the diagram is reset to
type SeedFunc func() (domain.Elements, error)

// FlowService provides business logic for diagram operations
type FlowService struct {
	// mu orders each mutation together with its event, so subscribers see
	// revisions in increasing order
	mu sync.Mutex

	store    *store.Store
	eventBus *EventBus
	seed     SeedFunc
	title    string
}

// NewFlowService creates a new flow service. A nil seed resets to the
// default seed.
func NewFlowService(st *store.Store, eventBus *EventBus, seed SeedFunc) *FlowService {
	if seed == nil {
		seed = func() (domain.Elements, error) {
			return domain.DefaultSeed(), nil
		}
	}
	return &FlowService{
		store:    st,
		eventBus: eventBus,
		seed:     seed,
		title:    "flowboard",
	}
}

// SetTitle sets the page title used by Render
func (s *FlowService) SetTitle(title string) {
	s.title = title
}

// GetElements returns the current element sequence
func (s *FlowService) GetElements(ctx context.Context) (store.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return store.Snapshot{}, err
	}
	return s.store.Snapshot(), nil
}

// Connect adds an edge between two node endpoints
func (s *FlowService) Connect(ctx context.Context, params domain.ConnectParams) (store.Snapshot, domain.Edge, error) {
	if err := ctx.Err(); err != nil {
		return store.Snapshot{}, domain.Edge{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, edge, err := s.store.Connect(params)
	if err != nil {
		return store.Snapshot{}, domain.Edge{}, fmt.Errorf("connect %s -> %s: %w", params.Source, params.Target, err)
	}

	s.eventBus.Publish(Event{
		Type: EventElementsConnected,
		Payload: ElementsPayload{
			Revision: snap.Revision,
			Elements: snap.Elements,
			Edge:     &edge,
		},
	})

	return snap, edge, nil
}

// Remove deletes the elements with the given IDs. Unknown IDs are ignored
// and publish nothing.
func (s *FlowService) Remove(ctx context.Context, ids []string, cascade bool) (store.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return store.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.store.Elements()

	var (
		snap    store.Snapshot
		changed bool
	)
	if cascade {
		snap, changed = s.store.RemoveCascade(ids)
	} else {
		snap, changed = s.store.Remove(ids)
	}

	if changed {
		s.eventBus.Publish(Event{
			Type: EventElementsRemoved,
			Payload: ElementsPayload{
				Revision: snap.Revision,
				Elements: snap.Elements,
				Removed:  removedIDs(before, snap.Elements),
			},
		})
	}

	return snap, nil
}

// removedIDs lists the IDs of before that are missing from after, including
// edges dropped by a cascade
func removedIDs(before, after domain.Elements) []string {
	kept := make(map[string]struct{}, len(after))
	for _, id := range after.IDs() {
		kept[id] = struct{}{}
	}

	var removed []string
	for _, id := range before.IDs() {
		if _, ok := kept[id]; !ok {
			removed = append(removed, id)
		}
	}
	return removed
}

// Reseed replaces the diagram with a freshly loaded seed
func (s *FlowService) Reseed(ctx context.Context) (store.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return store.Snapshot{}, err
	}

	seed, err := s.seed()
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("load seed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Reset(seed)
	if err != nil {
		return store.Snapshot{}, err
	}

	s.eventBus.Publish(Event{
		Type: EventElementsReset,
		Payload: ElementsPayload{
			Revision: snap.Revision,
			Elements: snap.Elements,
		},
	})

	return snap, nil
}

// Export writes the current sequence in the given format
func (s *FlowService) Export(ctx context.Context, format string, w io.Writer) error {
	c, err := codec.ForFormat(format)
	if err != nil {
		return err
	}

	snap, err := s.GetElements(ctx)
	if err != nil {
		return err
	}

	return c.Export(snap.Elements, w)
}

// Render writes a static HTML snapshot of the current diagram
func (s *FlowService) Render(ctx context.Context, w io.Writer) error {
	snap, err := s.GetElements(ctx)
	if err != nil {
		return err
	}

	return render.Diagram(snap.Elements, w, render.Options{
		Title:    s.title,
		Revision: snap.Revision,
	})
}
