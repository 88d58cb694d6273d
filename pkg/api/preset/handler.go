package preset

import (
	"encoding/json"
	"net/http"

	corepreset "dividend_valuation/pkg/core/preset"
)

// Handler holds dependencies for preset endpoints.
type Handler struct {
	Library *corepreset.Library
}

// NewHandler creates a new preset handler.
func NewHandler(lib *corepreset.Library) *Handler {
	return &Handler{Library: lib}
}

// ListResponse is the GET /api/presets payload.
type ListResponse struct {
	Default string              `json:"default"`
	Presets []corepreset.Preset `json:"presets"`
}

// HandleList is GET /api/presets.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	resp := ListResponse{
		Default: corepreset.Default().Name,
		Presets: h.Library.List(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleGet is GET /api/presets/get?name=<preset>.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "Missing name parameter", http.StatusBadRequest)
		return
	}

	p, err := h.Library.Get(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}
