package main

import (
	"fmt"

	"dividend_valuation/pkg/core/ddm"
	"dividend_valuation/pkg/core/format"
	"dividend_valuation/pkg/core/preset"
)

// Prints a full worked valuation for the default scenario so the model
// math can be eyeballed against a spreadsheet.
func main() {
	p := preset.Default()
	in := p.Inputs()
	out := ddm.Compute(in)

	fmt.Println("====================================================================================================")
	fmt.Printf("                  DIVIDEND DISCOUNT MODEL VERIFICATION  (%s)\n", p.Name)
	fmt.Println("====================================================================================================")
	fmt.Printf("D0=%s  r=%s  gConst=%s  gShort=%s  gLong=%s  N=%d\n",
		format.Currency(in.LatestDividend), format.Percent(in.RequiredReturn),
		format.Percent(in.ConstantGrowth), format.Percent(in.ShortTermGrowth),
		format.Percent(in.LongTermGrowth), in.ShortYears)

	if len(out.Errors) > 0 {
		fmt.Println("--- Validation ---")
		for field, msg := range out.Errors {
			fmt.Printf("  %-20s %s\n", field, msg)
		}
	}

	fmt.Println("----------------------------------------------------------------------------------------------------")
	fmt.Printf("%-35s | %15s\n", "MODEL", "PRICE")
	fmt.Println("----------------------------------------------------------------------------------------------------")
	pRow := func(label string, price ddm.Price) {
		fmt.Printf("%-35s | %15s\n", label, format.Price(price))
	}
	pRow("No-Growth Perpetuity", out.PriceNoGrowth)
	pRow("Constant Growth (Gordon)", out.PriceConstantGrowth)
	pRow("Two-Stage Growth", out.PriceChangingGrowth)

	fmt.Println("====================================================================================================")
	fmt.Println("                            PROJECTED CASH FLOWS")
	fmt.Println("====================================================================================================")
	fmt.Printf("%-8s | %15s | %15s | %15s\n", "YEAR", "NO GROWTH", "CONSTANT", "TWO-STAGE")
	fmt.Println("----------------------------------------------------------------------------------------------------")
	cell := func(v *float64) string {
		if v == nil {
			return "n/a"
		}
		return format.Currency(*v)
	}
	for _, row := range out.Rows {
		fmt.Printf("%-8d | %15s | %15s | %15s\n",
			row.Year, cell(row.NoGrowth), cell(row.ConstantGrowth), cell(row.ChangingGrowth))
	}
	fmt.Println("====================================================================================================")
}
