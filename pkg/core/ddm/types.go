// Package ddm implements the dividend discount valuation engine: three
// closed-form share-price models (no-growth perpetuity, Gordon constant
// growth, two-stage growth) plus a projected cash-flow series for charting.
// Compute is pure and stateless; identical inputs always yield identical
// output, and no numeric input causes a panic.
package ddm

import "math"

// HorizonYears is the chart projection length. The cash-flow table holds
// years 1..HorizonYears plus the year-0 outflow row.
const HorizonYears = 10

// Inputs holds the six scalar parameters of a valuation run.
// All rates are decimal fractions (0.10 means 10%).
type Inputs struct {
	LatestDividend  float64 `json:"d0"`                // D0, most recent dividend per share
	RequiredReturn  float64 `json:"required_return"`   // r, the investor's discount rate
	ConstantGrowth  float64 `json:"constant_growth"`   // g for the constant-growth model
	ShortTermGrowth float64 `json:"short_term_growth"` // high-phase growth for the two-stage model
	LongTermGrowth  float64 `json:"long_term_growth"`  // sustainable growth for the two-stage model
	ShortYears      int     `json:"short_years"`       // years of high growth in the two-stage model
}

// Price is the outcome of one model: a value, or Undefined with a reason.
// Mathematically undefined conditions (e.g. g >= r in the Gordon formula)
// surface here, never as an error or panic.
type Price struct {
	Value  float64 `json:"value"`
	Valid  bool    `json:"valid"`
	Reason string  `json:"reason,omitempty"`
}

// ValidPrice wraps a computed share price.
func ValidPrice(v float64) Price {
	return Price{Value: v, Valid: true}
}

// Undefined marks a model's price as mathematically undefined.
func Undefined(reason string) Price {
	return Price{Valid: false, Reason: reason}
}

// Float returns the price as a float64, with NaN standing in for an
// undefined price. Provided for callers that prefer the classic
// check-for-finiteness convention over inspecting Valid.
func (p Price) Float() float64 {
	if !p.Valid {
		return math.NaN()
	}
	return p.Value
}

// CashFlowRow is one year of the projected cash-flow table. Year 0 carries
// each model's negated price (the initial investment outflow); years
// 1..HorizonYears carry projected dividends. A nil entry means the model's
// price is undefined and its whole series is suppressed.
type CashFlowRow struct {
	Year           int      `json:"year"`
	NoGrowth       *float64 `json:"no_growth"`
	ConstantGrowth *float64 `json:"constant_growth"`
	ChangingGrowth *float64 `json:"changing_growth"`
}

// Output is the full result of one Compute call: three model prices, the
// ordered cash-flow table (HorizonYears+1 rows), and the advisory
// validation map. It has no identity beyond its inputs.
type Output struct {
	PriceNoGrowth       Price             `json:"price_no_growth"`
	PriceConstantGrowth Price             `json:"price_constant_growth"`
	PriceChangingGrowth Price             `json:"price_changing_growth"`
	Rows                []CashFlowRow     `json:"data"`
	Errors              map[string]string `json:"errors"`
}
