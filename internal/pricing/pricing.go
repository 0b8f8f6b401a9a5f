// Package pricing implements the flat-fee quote calculation: a per-brand
// court lookup plus a violation-type modifier. Both tables carry a mandatory
// "default" entry for unmatched keys.
package pricing

import "sort"

// DefaultKey is the fallback entry present in every table.
const DefaultKey = "default"

// Complexity tiers drive staffing expectations, not price.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// CourtRate is the base flat fee and complexity tier for one court.
type CourtRate struct {
	Base       int
	Complexity Complexity
}

// Quote is the result of a price calculation. TotalPrice is always
// BasePrice + ViolationModifier; there is no rounding and no minimum clamp,
// so a negative modifier can undercut the base.
type Quote struct {
	BasePrice         int        `json:"basePrice"`
	ViolationModifier int        `json:"violationModifier"`
	TotalPrice        int        `json:"totalPrice"`
	Complexity        Complexity `json:"complexity"`
}

// Table pairs a brand's court rates with the shared violation modifiers.
type Table struct {
	courts map[string]CourtRate
}

// Calculate returns the quote for a court/violation pair. Unmatched court
// names use the default rate; unmatched (or empty) violation types use the
// default modifier of 0. Deterministic and side-effect free.
func (t *Table) Calculate(courtName, violationType string) Quote {
	court, ok := t.courts[courtName]
	if !ok {
		court = t.courts[DefaultKey]
	}
	mod, ok := violationModifiers[violationType]
	if !ok {
		mod = violationModifiers[DefaultKey]
	}
	return Quote{
		BasePrice:         court.Base,
		ViolationModifier: mod,
		TotalPrice:        court.Base + mod,
		Complexity:        court.Complexity,
	}
}

// Courts lists the table's court names, sorted, excluding the default entry.
func (t *Table) Courts() []string {
	names := make([]string, 0, len(t.courts)-1)
	for name := range t.courts {
		if name == DefaultKey {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForBrand returns the pricing table for a brand key. Unknown keys get the
// Pierce table, which is also the deployment default.
func ForBrand(key string) *Table {
	if key == "rivercrest" {
		return &rivercrestTable
	}
	return &pierceTable
}

// ViolationTypes lists the selectable violation types, sorted.
func ViolationTypes() []string {
	names := make([]string, 0, len(violationModifiers)-1)
	for name := range violationModifiers {
		if name == DefaultKey {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
