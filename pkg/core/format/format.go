// Package format renders engine output for display. Formatting is a
// presentation concern: the engine hands out plain numbers and tagged
// prices, and everything dollar-sign shaped happens here.
package format

import (
	"fmt"
	"math"
	"strings"

	"dividend_valuation/pkg/core/ddm"
)

// InvalidLabel is shown wherever a model's price is undefined.
const InvalidLabel = "Invalid"

// Currency formats a value as "$1,234.57". Negative values keep the sign
// ahead of the dollar sign, matching the chart's outflow convention.
func Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return InvalidLabel
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	whole := fmt.Sprintf("%.2f", v)
	dot := strings.Index(whole, ".")
	intPart, fracPart := whole[:dot], whole[dot:]

	// Insert thousands separators right-to-left.
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + "$" + strings.Join(groups, ",") + fracPart
}

// Price formats a tagged price, falling back to InvalidLabel when the model
// is undefined.
func Price(p ddm.Price) string {
	if !p.Valid {
		return InvalidLabel
	}
	return Currency(p.Value)
}

// Percent renders a decimal rate as a percentage, e.g. 0.105 -> "10.5%".
func Percent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}
