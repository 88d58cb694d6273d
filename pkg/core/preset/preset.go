// Package preset ships ready-made parameter sets for the calculator so the
// page opens with realistic numbers instead of zeros. Presets carry rates
// as percentages, matching what the form shows; conversion to the engine's
// decimal fractions happens in Inputs().
package preset

import (
	"fmt"
	"sort"

	"dividend_valuation/pkg/core/ddm"
)

// Preset is one named scenario. Rate fields are percentages (10 means 10%).
type Preset struct {
	Name               string  `json:"name" yaml:"name"`
	Description        string  `json:"description" yaml:"description"`
	D0                 float64 `json:"d0" yaml:"d0"`
	RequiredReturnPct  float64 `json:"required_return_pct" yaml:"required_return_pct"`
	ConstantGrowthPct  float64 `json:"constant_growth_pct" yaml:"constant_growth_pct"`
	ShortTermGrowthPct float64 `json:"short_term_growth_pct" yaml:"short_term_growth_pct"`
	LongTermGrowthPct  float64 `json:"long_term_growth_pct" yaml:"long_term_growth_pct"`
	ShortYears         int     `json:"short_years" yaml:"short_years"`
}

// Inputs converts the preset's percentages into engine inputs.
func (p Preset) Inputs() ddm.Inputs {
	return ddm.Inputs{
		LatestDividend:  p.D0,
		RequiredReturn:  p.RequiredReturnPct / 100,
		ConstantGrowth:  p.ConstantGrowthPct / 100,
		ShortTermGrowth: p.ShortTermGrowthPct / 100,
		LongTermGrowth:  p.LongTermGrowthPct / 100,
		ShortYears:      p.ShortYears,
	}
}

// Default is the scenario the form opens with.
func Default() Preset {
	return Preset{
		Name:               "Dividend Growth Stock",
		Description:        "A steady dividend payer with a strong near-term run",
		D0:                 2.00,
		RequiredReturnPct:  10,
		ConstantGrowthPct:  5,
		ShortTermGrowthPct: 20,
		LongTermGrowthPct:  8,
		ShortYears:         5,
	}
}

// builtins are always available, even with no preset directory on disk.
func builtins() []Preset {
	return []Preset{
		Default(),
		{
			Name:               "Mature Utility",
			Description:        "Slow, regulated growth; dividends are the whole story",
			D0:                 3.20,
			RequiredReturnPct:  9,
			ConstantGrowthPct:  3,
			ShortTermGrowthPct: 4,
			LongTermGrowthPct:  3,
			ShortYears:         5,
		},
		{
			Name:               "High-Growth Tech",
			Description:        "Small dividend today, rapid growth before settling down",
			D0:                 0.80,
			RequiredReturnPct:  12,
			ConstantGrowthPct:  6,
			ShortTermGrowthPct: 25,
			LongTermGrowthPct:  6,
			ShortYears:         6,
		},
	}
}

// Library holds the registered presets by name.
type Library struct {
	presets map[string]Preset
}

// NewLibrary returns a library seeded with the built-in presets.
func NewLibrary() *Library {
	lib := &Library{presets: make(map[string]Preset)}
	for _, p := range builtins() {
		// Built-ins are maintained to pass validation; ignore the error.
		lib.Register(p)
	}
	return lib
}

// Register adds a preset. A preset whose inputs fail engine validation is
// rejected so the page never pre-fills a broken scenario.
func (l *Library) Register(p Preset) error {
	if p.Name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if errs := ddm.Validate(p.Inputs()); len(errs) > 0 {
		return fmt.Errorf("preset %q fails validation: %v", p.Name, errs)
	}
	l.presets[p.Name] = p
	return nil
}

// Get retrieves a preset by name.
func (l *Library) Get(name string) (Preset, error) {
	p, ok := l.presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("preset %q not found", name)
	}
	return p, nil
}

// List returns all presets, sorted by name for stable output.
func (l *Library) List() []Preset {
	out := make([]Preset, 0, len(l.presets))
	for _, p := range l.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Count reports how many presets are registered.
func (l *Library) Count() int {
	return len(l.presets)
}
