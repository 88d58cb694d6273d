package docs

import (
	"encoding/json"
	"net/http"

	coredocs "dividend_valuation/pkg/core/docs"
)

// Response is the rendered explainer for one model.
type Response struct {
	Model string `json:"model"`
	HTML  string `json:"html"`
}

// HandleExplainer is GET /api/docs?model=<key>. Without a model parameter
// it lists the available keys.
func HandleExplainer(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	model := r.URL.Query().Get("model")
	w.Header().Set("Content-Type", "application/json")

	if model == "" {
		json.NewEncoder(w).Encode(map[string][]string{"models": coredocs.List()})
		return
	}

	html, err := coredocs.RenderHTML(model)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(Response{Model: model, HTML: html})
}
