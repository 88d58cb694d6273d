package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	apidocs "dividend_valuation/pkg/api/docs"
	apipreset "dividend_valuation/pkg/api/preset"
	"dividend_valuation/pkg/api/valuation"
	"dividend_valuation/pkg/api/web"
	"dividend_valuation/pkg/core/preset"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Preset library: built-ins plus whatever the preset directory holds.
	presetDir := getEnv("PRESET_DIR", "config")
	library := preset.NewLibrary()
	if err := library.LoadFromDirectory(presetDir); err != nil {
		fmt.Printf("[WARNING] No preset directory loaded: %v\n", err)
		fmt.Println("  Falling back to built-in presets")
	}
	fmt.Printf("[PRESET] %d presets available\n", library.Count())

	// Valuation endpoint
	http.HandleFunc("/api/valuation/compute", valuation.HandleCompute)

	// Preset endpoints
	presetHandler := apipreset.NewHandler(library)
	http.HandleFunc("/api/presets", presetHandler.HandleList)
	http.HandleFunc("/api/presets/get", presetHandler.HandleGet)

	// Model explainer endpoint
	http.HandleFunc("/api/docs", apidocs.HandleExplainer)

	// The calculator page itself
	webHandler := web.NewHandler()
	http.HandleFunc("/", webHandler.HandleIndex)

	port := getEnv("PORT", "8080")
	fmt.Printf("DDM calculator starting on :%s...\n", port)
	fmt.Println("  - GET  /                        (calculator page)")
	fmt.Println("  - POST /api/valuation/compute")
	fmt.Println("  - GET  /api/presets")
	fmt.Println("  - GET  /api/presets/get?name=")
	fmt.Println("  - GET  /api/docs?model=")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
