package catalog

import "strings"

const chickenTendersPlatter = "Chicken Tenders Platter"

// SortExtrasForProduct orders a product's extras list for display. For the
// Chicken Tenders Platter, extras named after Honey Mustard are moved to the
// front while the relative order of everything else is preserved. Any other
// product gets its extras back untouched.
func SortExtrasForProduct(productName string, extras []OptionConfig) []OptionConfig {
	if productName != chickenTendersPlatter {
		return extras
	}

	sorted := make([]OptionConfig, 0, len(extras))
	var rest []OptionConfig
	for _, extra := range extras {
		if strings.Contains(extra.Name, "Honey Mustard") {
			sorted = append(sorted, extra)
			continue
		}
		rest = append(rest, extra)
	}
	return append(sorted, rest...)
}
