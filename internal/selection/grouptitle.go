package selection

import "strings"

type groupTitleRule struct {
	match func(key string) bool
	title string
}

// Ordered so more specific terms win over generic ones, e.g. "substitute"
// excludes the sauce rule and typed matches precede the bare "type" terms.
var groupTitleRules = []groupTitleRule{
	{func(k string) bool { return strings.Contains(k, "sauce") && !strings.Contains(k, "substitute") }, "Sauce"},
	{contains("dressing"), "Dressing"},
	{contains("side"), "Sides"},
	{contains("cheese"), "Cheese"},
	{contains("base"), "Salad Base"},
	{contains("toppings"), "Toppings"},
	{contains("platter"), "Platter Options"},
	{func(k string) bool { return strings.Contains(k, "specialinstructions") || strings.Contains(k, "instructions") }, "Special Instructions"},
	{contains("dipping"), "Pizza Dippings"},
	{func(k string) bool { return strings.Contains(k, "type") && strings.Contains(k, "pasta") }, "Pasta Type"},
	{func(k string) bool { return strings.Contains(k, "type") && strings.Contains(k, "wrap") }, "Wrap Type"},
	{func(k string) bool { return strings.Contains(k, "type") && strings.Contains(k, "panini") }, "Panini Type"},
	{contains("substitute"), "Substitutions"},
	{contains("quantity"), "Quantity"},
	{contains("toast"), "Toast Option"},
	{contains("soup"), "Soup"},
	{contains("addition"), "Additions"},
	{contains("extra"), "Extras"},
}

func contains(term string) func(string) bool {
	return func(key string) bool {
		return strings.Contains(key, term)
	}
}

// InferGroupTitle derives a display group title from a raw-source key when no
// lookup-derived title exists for an id. The key is matched case-insensitively
// against an ordered keyword list; "" means no rule matched and the caller
// must supply its own fallback or omit the title.
func InferGroupTitle(key string) string {
	lowered := strings.ToLower(key)
	for _, rule := range groupTitleRules {
		if rule.match(lowered) {
			return rule.title
		}
	}
	return ""
}
