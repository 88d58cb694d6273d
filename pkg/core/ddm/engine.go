package ddm

import "math"

// Validate checks the input constraints and returns a field-keyed message
// map (keys match the JSON field names of Inputs). An empty map means all
// constraints hold. Violations are independent and advisory: Compute
// proceeds regardless and marks only the affected model prices Undefined.
func Validate(in Inputs) map[string]string {
	errs := make(map[string]string)
	if in.LatestDividend <= 0 {
		errs["d0"] = "Most recent dividend must be greater than zero"
	}
	if in.RequiredReturn <= 0 {
		errs["required_return"] = "Required return must be greater than zero"
	}
	if in.ConstantGrowth >= in.RequiredReturn {
		errs["constant_growth"] = "Constant growth rate must be below the required return"
	}
	if in.LongTermGrowth >= in.RequiredReturn {
		errs["long_term_growth"] = "Long-term growth rate must be below the required return"
	}
	return errs
}

// Compute runs all three dividend discount models and builds the
// cash-flow table. It never returns an error: undefined prices are tagged
// in the Price result and their chart series left nil.
func Compute(in Inputs) Output {
	out := Output{Errors: Validate(in)}

	out.PriceNoGrowth = noGrowthPrice(in)
	out.PriceConstantGrowth = constantGrowthPrice(in)
	out.PriceChangingGrowth = changingGrowthPrice(in)
	out.Rows = buildCashFlowRows(in, out)

	return out
}

// noGrowthPrice values the share as a flat perpetuity: D0 / r.
func noGrowthPrice(in Inputs) Price {
	if in.RequiredReturn <= 0 {
		return Undefined("required return must be positive")
	}
	return ValidPrice(in.LatestDividend / in.RequiredReturn)
}

// constantGrowthPrice applies the Gordon growth model:
//
//	P = D0 * (1 + g) / (r - g), defined only for 0 <= g < r.
func constantGrowthPrice(in Inputs) Price {
	g, r := in.ConstantGrowth, in.RequiredReturn
	if g < 0 {
		return Undefined("constant growth rate must be non-negative")
	}
	if g >= r {
		return Undefined("constant growth rate must be below the required return")
	}
	return ValidPrice(in.LatestDividend * (1 + g) / (r - g))
}

// changingGrowthPrice values a high-growth phase dividend by dividend, then
// capitalizes everything after it with Gordon growth:
//
//	P = Sum t=1..N [ D0(1+gS)^t / (1+r)^t ]
//	  + D0(1+gS)^N (1+gL) / (r - gL) / (1+r)^N
func changingGrowthPrice(in Inputs) Price {
	gS, gL, r := in.ShortTermGrowth, in.LongTermGrowth, in.RequiredReturn
	if gS < 0 {
		return Undefined("short-term growth rate must be non-negative")
	}
	if gL < 0 {
		return Undefined("long-term growth rate must be non-negative")
	}
	if gL >= r {
		return Undefined("long-term growth rate must be below the required return")
	}
	if in.ShortYears < 0 {
		return Undefined("high-growth years must be non-negative")
	}

	var pvHighPhase float64
	for t := 1; t <= in.ShortYears; t++ {
		div := in.LatestDividend * math.Pow(1+gS, float64(t))
		pvHighPhase += div / math.Pow(1+r, float64(t))
	}

	// First dividend of the sustainable phase, capitalized as of the end of
	// the high-growth phase and discounted back to today.
	terminalDiv := in.LatestDividend * math.Pow(1+gS, float64(in.ShortYears)) * (1 + gL)
	terminalValue := terminalDiv / (r - gL)
	pvTerminal := terminalValue / math.Pow(1+r, float64(in.ShortYears))

	return ValidPrice(pvHighPhase + pvTerminal)
}

// buildCashFlowRows assembles the HorizonYears+1 chart rows. Row 0 is the
// negated price per model (the outflow bar); later rows are projected
// dividends. A model with an undefined price contributes nil to every row,
// so the chart never mixes a valid dividend path with an invalid price.
func buildCashFlowRows(in Inputs, out Output) []CashFlowRow {
	rows := make([]CashFlowRow, 0, HorizonYears+1)

	outflow := func(p Price) *float64 {
		if !p.Valid {
			return nil
		}
		v := -p.Value
		return &v
	}
	rows = append(rows, CashFlowRow{
		Year:           0,
		NoGrowth:       outflow(out.PriceNoGrowth),
		ConstantGrowth: outflow(out.PriceConstantGrowth),
		ChangingGrowth: outflow(out.PriceChangingGrowth),
	})

	for t := 1; t <= HorizonYears; t++ {
		row := CashFlowRow{Year: t}
		if out.PriceNoGrowth.Valid {
			v := in.LatestDividend
			row.NoGrowth = &v
		}
		if out.PriceConstantGrowth.Valid {
			v := in.LatestDividend * math.Pow(1+in.ConstantGrowth, float64(t))
			row.ConstantGrowth = &v
		}
		if out.PriceChangingGrowth.Valid {
			v := projectedTwoStageDividend(in, t)
			row.ChangingGrowth = &v
		}
		rows = append(rows, row)
	}
	return rows
}

// projectedTwoStageDividend is the year-t dividend under the two-stage
// model: compounding at the short-term rate through the high-growth phase,
// then at the long-term rate.
func projectedTwoStageDividend(in Inputs, t int) float64 {
	if t <= in.ShortYears {
		return in.LatestDividend * math.Pow(1+in.ShortTermGrowth, float64(t))
	}
	endOfPhase := in.LatestDividend * math.Pow(1+in.ShortTermGrowth, float64(in.ShortYears))
	return endOfPhase * math.Pow(1+in.LongTermGrowth, float64(t-in.ShortYears))
}
