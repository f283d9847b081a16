package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"flowboard/internal/codec"
	"flowboard/internal/domain"
	"flowboard/internal/service"
	"flowboard/internal/store"
)

// Settings is what the page needs to mount the diagram
type Settings struct {
	Title           string `json:"title"`
	MountID         string `json:"mount_id"`
	DeleteKeyCode   int    `json:"delete_key_code"`
	DeleteKey       string `json:"delete_key"`
	StrictEndpoints bool   `json:"strict_endpoints"`
}

// FlowHandler handles diagram API requests
type FlowHandler struct {
	svc      *service.FlowService
	settings Settings
	logger   *slog.Logger
}

// NewFlowHandler creates a new flow handler
func NewFlowHandler(svc *service.FlowService, settings Settings, logger *slog.Logger) *FlowHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FlowHandler{svc: svc, settings: settings, logger: logger}
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ElementsResponse carries the sequence after a read or a mutation
type ElementsResponse struct {
	Revision uint64          `json:"revision"`
	Elements domain.Elements `json:"elements"`
}

// ConnectResponse is returned after a successful connect
type ConnectResponse struct {
	Revision uint64          `json:"revision"`
	Edge     domain.Edge     `json:"edge"`
	Elements domain.Elements `json:"elements"`
}

func elementsResponse(snap store.Snapshot) ElementsResponse {
	els := snap.Elements
	if els == nil {
		els = domain.Elements{}
	}
	return ElementsResponse{Revision: snap.Revision, Elements: els}
}

// RemoveRequest selects elements by ID or by the elements themselves
type RemoveRequest struct {
	IDs      []string        `json:"ids,omitempty"`
	Elements domain.Elements `json:"elements,omitempty"`
	Cascade  bool            `json:"cascade,omitempty"`
}

// ids merges both selection forms
func (req RemoveRequest) ids() []string {
	ids := append([]string{}, req.IDs...)
	return append(ids, domain.ElementIDs(req.Elements)...)
}

// GetElements returns the current element sequence
func (h *FlowHandler) GetElements(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.GetElements(r.Context())
	if err != nil {
		h.logger.Error("Failed to get elements", "err", err)
		h.writeError(w, "Failed to get elements", err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, elementsResponse(snap), http.StatusOK)
}

// Connect adds an edge between two nodes
func (h *FlowHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var params domain.ConnectParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	snap, edge, err := h.svc.Connect(r.Context(), params)
	if err != nil {
		h.logger.Warn("Failed to connect", "source", params.Source, "target", params.Target, "err", err)
		h.writeError(w, "Failed to connect", err.Error(), statusFor(err))
		return
	}

	h.writeJSON(w, ConnectResponse{
		Revision: snap.Revision,
		Edge:     edge,
		Elements: snap.Elements,
	}, http.StatusCreated)
}

// Remove deletes the selected elements
func (h *FlowHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req RemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	snap, err := h.svc.Remove(r.Context(), req.ids(), req.Cascade)
	if err != nil {
		h.logger.Error("Failed to remove elements", "err", err)
		h.writeError(w, "Failed to remove elements", err.Error(), statusFor(err))
		return
	}

	h.writeJSON(w, elementsResponse(snap), http.StatusOK)
}

// Reset reloads the configured seed
func (h *FlowHandler) Reset(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Reseed(r.Context())
	if err != nil {
		h.logger.Error("Failed to reset elements", "err", err)
		h.writeError(w, "Failed to reset elements", err.Error(), statusFor(err))
		return
	}

	h.writeJSON(w, elementsResponse(snap), http.StatusOK)
}

// ExportJSON exports the sequence as JSON
func (h *FlowHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "json")
}

// ExportYAML exports the sequence as YAML
func (h *FlowHandler) ExportYAML(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "yaml")
}

func (h *FlowHandler) export(w http.ResponseWriter, r *http.Request, format string) {
	c, err := codec.ForFormat(format)
	if err != nil {
		h.writeError(w, "Unsupported export format", err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", c.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename=elements."+c.Format())

	if err := h.svc.Export(r.Context(), format, w); err != nil {
		h.logger.Error("Failed to export", "format", format, "err", err)
		// Can't write error response as we already set headers
		return
	}
}

// Render returns a static HTML snapshot of the diagram
func (h *FlowHandler) Render(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := h.svc.Render(r.Context(), w); err != nil {
		h.logger.Error("Failed to render diagram", "err", err)
		return
	}
}

// GetSettings returns the mount settings for the page
func (h *FlowHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.settings, http.StatusOK)
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidEndpoint):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownEndpoint):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDuplicateID), errors.Is(err, domain.ErrEmptyElement):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Helper methods

func (h *FlowHandler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	writeJSON(w, h.logger, data, statusCode)
}

func (h *FlowHandler) writeError(w http.ResponseWriter, error, details string, statusCode int) {
	h.writeJSON(w, ErrorResponse{Error: error, Details: details}, statusCode)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", "err", err)
	}
}
