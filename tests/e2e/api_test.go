package e2e_test

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	apidocs "dividend_valuation/pkg/api/docs"
	apipreset "dividend_valuation/pkg/api/preset"
	"dividend_valuation/pkg/api/valuation"
	"dividend_valuation/pkg/api/web"
	"dividend_valuation/pkg/core/preset"
)

// newServer wires the same routes as cmd/api against a test listener.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/valuation/compute", valuation.HandleCompute)

	presetHandler := apipreset.NewHandler(preset.NewLibrary())
	mux.HandleFunc("/api/presets", presetHandler.HandleList)
	mux.HandleFunc("/api/presets/get", presetHandler.HandleGet)

	mux.HandleFunc("/api/docs", apidocs.HandleExplainer)
	mux.HandleFunc("/", web.NewHandler().HandleIndex)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestE2E_ComputeRoundTrip(t *testing.T) {
	srv := newServer(t)

	// Textbook case: D0=5, r=10%, g=5%.
	// No-growth: 5/0.10 = 50. Gordon: 5*1.05/0.05 = 105.
	body := `{"d0": 5, "required_return_pct": 10, "constant_growth_pct": 5,
	          "short_term_growth_pct": 15, "long_term_growth_pct": 5, "short_years": 5}`
	resp, err := http.Post(srv.URL+"/api/valuation/compute", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST compute: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var out valuation.ComputeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Decode response: %v", err)
	}

	if math.Abs(out.Result.PriceNoGrowth.Value-50) > 1e-9 {
		t.Errorf("Expected no-growth price 50, got %f", out.Result.PriceNoGrowth.Value)
	}
	if math.Abs(out.Result.PriceConstantGrowth.Value-105) > 1e-9 {
		t.Errorf("Expected Gordon price 105, got %f", out.Result.PriceConstantGrowth.Value)
	}
	if out.Formatted["price_constant_growth"] != "$105.00" {
		t.Errorf("Expected formatted $105.00, got %q", out.Formatted["price_constant_growth"])
	}
	if len(out.Result.Rows) != 11 || len(out.Labels) != 11 {
		t.Errorf("Expected 11 rows and 11 labels, got %d/%d", len(out.Result.Rows), len(out.Labels))
	}
	if out.Labels[0] != "Year 0" || out.Labels[10] != "Year 10" {
		t.Errorf("Unexpected labels: %v", out.Labels)
	}
	if out.RequestID == "" {
		t.Error("Expected a request id")
	}
}

func TestE2E_ComputeInvalidModelStillResponds(t *testing.T) {
	srv := newServer(t)

	// g == r: Gordon undefined, but the call must still succeed and the
	// other models must still price.
	body := `{"d0": 5, "required_return_pct": 5, "constant_growth_pct": 5,
	          "short_term_growth_pct": 10, "long_term_growth_pct": 2, "short_years": 3}`
	resp, err := http.Post(srv.URL+"/api/valuation/compute", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST compute: %v", err)
	}
	defer resp.Body.Close()

	var out valuation.ComputeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Decode response: %v", err)
	}

	if out.Formatted["price_constant_growth"] != "Invalid" {
		t.Errorf("Expected Invalid, got %q", out.Formatted["price_constant_growth"])
	}
	if _, ok := out.Result.Errors["constant_growth"]; !ok {
		t.Errorf("Expected constant_growth validation entry, got %v", out.Result.Errors)
	}
	if !out.Result.PriceNoGrowth.Valid {
		t.Error("No-growth model should still be valid")
	}
	// Row 0 must carry the negated no-growth price and a null Gordon entry.
	row0 := out.Result.Rows[0]
	if row0.NoGrowth == nil || *row0.NoGrowth != -out.Result.PriceNoGrowth.Value {
		t.Error("Year-0 no-growth entry should be the negated price")
	}
	if row0.ConstantGrowth != nil {
		t.Error("Year-0 Gordon entry should be null when the price is undefined")
	}
}

func TestE2E_ComputeAcceptsHandTypedPayload(t *testing.T) {
	srv := newServer(t)

	// Single quotes and a trailing comma, as pasted into a terminal.
	body := `{'d0': 5, 'required_return_pct': 10,}`
	resp, err := http.Post(srv.URL+"/api/valuation/compute", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST compute: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected lenient parse to succeed, got %d", resp.StatusCode)
	}

	var out valuation.ComputeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Decode response: %v", err)
	}
	if math.Abs(out.Result.PriceNoGrowth.Value-50) > 1e-9 {
		t.Errorf("Expected no-growth price 50, got %f", out.Result.PriceNoGrowth.Value)
	}
}

func TestE2E_PresetEndpoints(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/api/presets")
	if err != nil {
		t.Fatalf("GET presets: %v", err)
	}
	defer resp.Body.Close()

	var list apipreset.ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("Decode presets: %v", err)
	}
	if len(list.Presets) < 3 {
		t.Fatalf("Expected at least the built-in presets, got %d", len(list.Presets))
	}
	if list.Default == "" {
		t.Error("Expected a default preset name")
	}

	one, err := http.Get(srv.URL + "/api/presets/get?name=" + strings.ReplaceAll(list.Default, " ", "%20"))
	if err != nil {
		t.Fatalf("GET preset: %v", err)
	}
	defer one.Body.Close()
	if one.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 for default preset, got %d", one.StatusCode)
	}

	missing, err := http.Get(srv.URL + "/api/presets/get?name=Nonexistent")
	if err != nil {
		t.Fatalf("GET missing preset: %v", err)
	}
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown preset, got %d", missing.StatusCode)
	}
}

func TestE2E_DocsRenderAsHTML(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/api/docs?model=constant_growth")
	if err != nil {
		t.Fatalf("GET docs: %v", err)
	}
	defer resp.Body.Close()

	var body apidocs.Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode docs: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body.HTML))
	if err != nil {
		t.Fatalf("Parse explainer HTML: %v", err)
	}
	if doc.Find("h2").Length() != 1 {
		t.Errorf("Expected one <h2> in the explainer, got %d", doc.Find("h2").Length())
	}
	if !strings.Contains(doc.Find("h2").Text(), "Gordon") {
		t.Errorf("Expected the Gordon heading, got %q", doc.Find("h2").Text())
	}
}

func TestE2E_CalculatorPage(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatalf("Parse page: %v", err)
	}

	// One input per engine parameter, pre-filled from the default preset.
	for _, id := range []string{"d0", "required_return_pct", "constant_growth_pct",
		"short_term_growth_pct", "long_term_growth_pct", "short_years"} {
		if doc.Find("#"+id).Length() != 1 {
			t.Errorf("Expected input #%s on the page", id)
		}
	}
	if v, _ := doc.Find("#d0").Attr("value"); v != "2" {
		t.Errorf("Expected D0 pre-filled with 2, got %q", v)
	}
	if doc.Find("#chart").Length() != 1 {
		t.Error("Expected the chart canvas")
	}
}
