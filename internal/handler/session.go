package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"flowboard/internal/domain"
	"flowboard/internal/service"
	"flowboard/internal/store"
)

// Session ops
const (
	OpSnapshot = "snapshot"
	OpConnect  = "connect"
	OpRemove   = "remove"
	OpReset    = "reset"
	OpSync     = "sync"
)

// Frame is a client request on the interaction channel
type Frame struct {
	Op      string               `json:"op"`
	Params  domain.ConnectParams `json:"params,omitempty"`
	IDs     []string             `json:"ids,omitempty"`
	Cascade bool                 `json:"cascade,omitempty"`
}

// Reply is a server message on the interaction channel
type Reply struct {
	Op       string          `json:"op"`
	Revision uint64          `json:"revision,omitempty"`
	Elements domain.Elements `json:"elements,omitzero"`
	Edge     *domain.Edge    `json:"edge,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// SessionHandler serves the websocket interaction channel. The page calls
// connect and remove over it and re-renders from the sequence in each reply.
type SessionHandler struct {
	svc      *service.FlowService
	bus      *service.EventBus
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewSessionHandler creates a websocket session handler. A nil bus disables
// pushing other clients' changes.
func NewSessionHandler(svc *service.FlowService, bus *service.EventBus, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		svc: svc,
		bus: bus,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// safeConn serializes writes from the read loop and the event forwarder
type safeConn struct {
	c       *websocket.Conn
	writeMu sync.Mutex
}

func (s *safeConn) writeJSON(v any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.c.WriteJSON(v)
}

// ServeHTTP upgrades the connection and runs the session
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", "err", err)
		return
	}
	defer c.Close()

	conn := &safeConn{c: c}
	ctx := r.Context()

	if h.bus != nil {
		events := make(chan service.Event, 16)
		h.bus.Subscribe(events)
		defer h.bus.Unsubscribe(events)

		done := make(chan struct{})
		defer close(done)
		go h.forward(conn, events, done)
	}

	snap, err := h.svc.GetElements(ctx)
	if err != nil {
		h.logger.Error("ws initial snapshot failed", "err", err)
		return
	}
	if err := conn.writeJSON(snapshotReply(OpSnapshot, snap)); err != nil {
		return
	}

	for {
		var f Frame
		if err := c.ReadJSON(&f); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("ws read failed", "err", err)
			}
			return
		}

		if err := conn.writeJSON(h.handle(r, f)); err != nil {
			h.logger.Debug("ws write failed", "err", err)
			return
		}
	}
}

// handle applies one client frame and builds the reply
func (h *SessionHandler) handle(r *http.Request, f Frame) Reply {
	ctx := r.Context()

	switch f.Op {
	case OpSnapshot:
		snap, err := h.svc.GetElements(ctx)
		if err != nil {
			return Reply{Op: f.Op, Error: err.Error()}
		}
		return snapshotReply(f.Op, snap)

	case OpConnect:
		snap, edge, err := h.svc.Connect(ctx, f.Params)
		if err != nil {
			return Reply{Op: f.Op, Error: err.Error()}
		}
		reply := snapshotReply(f.Op, snap)
		reply.Edge = &edge
		return reply

	case OpRemove:
		snap, err := h.svc.Remove(ctx, f.IDs, f.Cascade)
		if err != nil {
			return Reply{Op: f.Op, Error: err.Error()}
		}
		return snapshotReply(f.Op, snap)

	case OpReset:
		snap, err := h.svc.Reseed(ctx)
		if err != nil {
			return Reply{Op: f.Op, Error: err.Error()}
		}
		return snapshotReply(f.Op, snap)

	default:
		return Reply{Op: f.Op, Error: "unknown op"}
	}
}

// forward pushes bus events to the client as sync replies
func (h *SessionHandler) forward(conn *safeConn, events <-chan service.Event, done <-chan struct{}) {
	for {
		select {
		case ev := <-events:
			p, ok := ev.Payload.(service.ElementsPayload)
			if !ok {
				continue
			}
			reply := snapshotReply(OpSync, store.Snapshot{Revision: p.Revision, Elements: p.Elements})
			if err := conn.writeJSON(reply); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func snapshotReply(op string, snap store.Snapshot) Reply {
	resp := elementsResponse(snap)
	return Reply{Op: op, Revision: resp.Revision, Elements: resp.Elements}
}
