package format

import (
	"math"
	"testing"

	"dividend_valuation/pkg/core/ddm"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{105, "$105.00"},
		{1234.567, "$1,234.57"}, // rounds half up at the cent
		{1000000, "$1,000,000.00"},
		{-50, "-$50.00"},
		{999.995, "$1,000.00"}, // rounding can grow a digit group
	}
	for _, c := range cases {
		if got := Currency(c.in); got != c.want {
			t.Errorf("Currency(%f) = %q, want %q", c.in, got, c.want)
		}
	}

	if got := Currency(math.NaN()); got != InvalidLabel {
		t.Errorf("Currency(NaN) = %q, want %q", got, InvalidLabel)
	}
}

func TestPrice(t *testing.T) {
	if got := Price(ddm.ValidPrice(105)); got != "$105.00" {
		t.Errorf("Price(valid 105) = %q", got)
	}
	if got := Price(ddm.Undefined("g >= r")); got != InvalidLabel {
		t.Errorf("Price(undefined) = %q, want %q", got, InvalidLabel)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.105); got != "10.5%" {
		t.Errorf("Percent(0.105) = %q", got)
	}
	if got := Percent(0); got != "0.0%" {
		t.Errorf("Percent(0) = %q", got)
	}
}
