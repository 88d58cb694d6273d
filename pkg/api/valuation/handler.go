package valuation

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"dividend_valuation/pkg/core/ddm"
	"dividend_valuation/pkg/core/format"
	"dividend_valuation/pkg/core/utils"
)

// ComputeRequest carries the form's values. Rates arrive as percentages
// exactly as typed (10 means 10%); the handler divides by 100 before the
// engine sees them.
type ComputeRequest struct {
	D0                 float64 `json:"d0"`
	RequiredReturnPct  float64 `json:"required_return_pct"`
	ConstantGrowthPct  float64 `json:"constant_growth_pct"`
	ShortTermGrowthPct float64 `json:"short_term_growth_pct"`
	LongTermGrowthPct  float64 `json:"long_term_growth_pct"`
	ShortYears         int     `json:"short_years"`
}

func (r ComputeRequest) inputs() ddm.Inputs {
	return ddm.Inputs{
		LatestDividend:  r.D0,
		RequiredReturn:  r.RequiredReturnPct / 100,
		ConstantGrowth:  r.ConstantGrowthPct / 100,
		ShortTermGrowth: r.ShortTermGrowthPct / 100,
		LongTermGrowth:  r.LongTermGrowthPct / 100,
		ShortYears:      r.ShortYears,
	}
}

// ComputeResponse wraps the engine output with presentation extras: chart
// labels and display-ready price strings ("Invalid" for undefined models).
type ComputeResponse struct {
	RequestID string            `json:"request_id"`
	Result    ddm.Output        `json:"result"`
	Formatted map[string]string `json:"formatted"`
	Labels    []string          `json:"labels"`
}

// HandleCompute is POST /api/valuation/compute.
func HandleCompute(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Lenient decode: hand-typed curl payloads are expected here.
	var req ComputeRequest
	if err := utils.SmartParse(string(body), &req); err != nil {
		http.Error(w, fmt.Sprintf("Unparseable request body: %v", err), http.StatusBadRequest)
		return
	}

	reqID := uuid.New().String()
	fmt.Printf("[VALUATION] %s compute: D0=%.4f r=%.2f%% gC=%.2f%% gS=%.2f%% gL=%.2f%% N=%d\n",
		reqID[:8], req.D0, req.RequiredReturnPct, req.ConstantGrowthPct,
		req.ShortTermGrowthPct, req.LongTermGrowthPct, req.ShortYears)

	out := ddm.Compute(req.inputs())
	if len(out.Errors) > 0 {
		fmt.Printf("[VALUATION] %s validation: %v\n", reqID[:8], out.Errors)
	}

	resp := ComputeResponse{
		RequestID: reqID,
		Result:    out,
		Formatted: map[string]string{
			"price_no_growth":       format.Price(out.PriceNoGrowth),
			"price_constant_growth": format.Price(out.PriceConstantGrowth),
			"price_changing_growth": format.Price(out.PriceChangingGrowth),
		},
		Labels: yearLabels(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func yearLabels() []string {
	labels := make([]string, 0, ddm.HorizonYears+1)
	for t := 0; t <= ddm.HorizonYears; t++ {
		labels = append(labels, fmt.Sprintf("Year %d", t))
	}
	return labels
}
