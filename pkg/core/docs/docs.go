// Package docs holds the educational write-ups for each valuation model
// and renders them to HTML for the explanation panel.
package docs

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
)

// Model keys as used by the API and the page.
const (
	ModelNoGrowth       = "no_growth"
	ModelConstantGrowth = "constant_growth"
	ModelChangingGrowth = "changing_growth"
)

var explainers = map[string]string{
	ModelNoGrowth: `## No-Growth Model

Treats the stock as a flat perpetuity: the company pays the same dividend
forever, and the share is worth the present value of that infinite stream.

**Price = D0 / r**

where *D0* is the most recent dividend per share and *r* is your required
rate of return. A 5.00 dividend at a 10% required return prices the share
at 50.00. Doubling the required return halves the price: this model is the
cleanest illustration of discounting.`,

	ModelConstantGrowth: `## Constant-Growth (Gordon) Model

Assumes the dividend grows at one constant rate *g* forever.

**Price = D0 × (1 + g) / (r − g)**

The model is only defined while *g* is below *r*: as growth approaches the
required return the denominator collapses and the implied price runs off to
infinity. The calculator reports **Invalid** for g ≥ r instead of a number.`,

	ModelChangingGrowth: `## Two-Stage (Changing Growth) Model

Splits the future in two: a high-growth phase of *N* years at a short-term
rate, then sustainable growth forever after.

1. Discount each high-phase dividend back to today.
2. Value everything after year *N* with the Gordon formula on the first
   post-transition dividend (the *terminal value*).
3. Discount the terminal value back *N* years and add the two pieces.

When the short- and long-term rates are equal the result collapses to the
constant-growth price, which is a handy sanity check.`,
}

// List returns the available model keys, sorted.
func List() []string {
	keys := make([]string, 0, len(explainers))
	for k := range explainers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CleanMarkdown strips an outer markdown code fence if one slipped in, so
// authors can paste fenced snippets into the explainer map verbatim.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)
	if strings.HasPrefix(cleaned, "```markdown") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```markdown")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}

// RenderHTML converts the explainer for the given model key to HTML.
func RenderHTML(model string) (string, error) {
	md, ok := explainers[model]
	if !ok {
		return "", fmt.Errorf("no explainer for model %q", model)
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(CleanMarkdown(md)), &buf); err != nil {
		return "", fmt.Errorf("failed to render explainer for %q: %w", model, err)
	}
	return buf.String(), nil
}
