package handler

import "net/http"

// Register mounts the diagram API on mux
func (h *FlowHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/elements", h.GetElements)
	mux.HandleFunc("POST /api/connect", h.Connect)
	mux.HandleFunc("POST /api/remove", h.Remove)
	mux.HandleFunc("POST /api/reset", h.Reset)

	mux.HandleFunc("GET /api/export/json", h.ExportJSON)
	mux.HandleFunc("GET /api/export/yaml", h.ExportYAML)
	mux.HandleFunc("GET /api/render", h.Render)

	mux.HandleFunc("GET /api/settings", h.GetSettings)
}
