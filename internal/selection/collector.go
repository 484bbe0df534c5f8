package selection

import (
	"strings"
	"unicode/utf8"

	"github.com/appetiteclub/storefront/internal/catalog"
)

// DefaultSelectionType is assumed when nothing more specific is known.
const DefaultSelectionType = "topping"

// RequiredOptionType marks selections coming from quantity or size controls.
const RequiredOptionType = "required_option"

// CartSelection is one line entry destined for cart display. Within a single
// product's selection list there is at most one entry per option id.
type CartSelection struct {
	ID               string `json:"id"`
	Label            string `json:"label"`
	Type             string `json:"type"`
	GroupID          string `json:"group_id,omitempty"`
	GroupTitle       string `json:"group_title,omitempty"`
	BeverageCategory string `json:"beverage_category,omitempty"`
	Distribution     string `json:"distribution,omitempty"` // left, whole or right
	ProductID        string `json:"product_id,omitempty"`
	DisplayName      string `json:"display_name,omitempty"`
}

// AddOptions carries the per-insert annotations for AddIfMissing.
type AddOptions struct {
	Type             string
	GroupID          string
	GroupTitle       string
	QuantityLabel    string
	BeverageCategory string
	Distribution     string
	Context          string
}

// Collector appends normalized cart selections, reporting label fallbacks
// through the injected diagnostics.
type Collector struct {
	diag Diagnostics
}

// NewCollector creates a Collector. A nil diagnostics falls back to a no-op.
func NewCollector(diag Diagnostics) *Collector {
	if diag == nil {
		diag = NewNoopDiagnostics()
	}
	return &Collector{diag: diag}
}

// HasSelectionWithID reports whether some entry in selections carries the id.
// Selection lists are bounded by menu size, so a linear scan is fine.
func HasSelectionWithID(id string, selections []CartSelection) bool {
	for _, sel := range selections {
		if sel.ID == id {
			return true
		}
	}
	return false
}

// AddIfMissing appends one selection for id unless the id is empty or already
// present. The display name comes from resolve; when the resolver returns ""
// or echoes the id back, the name is synthesized from the id's text and a
// warning diagnostic is emitted so internal identifiers never reach the cart
// UI verbatim. A quantity label, when given, is suffixed onto the label while
// DisplayName keeps the unsuffixed name.
func (c *Collector) AddIfMissing(selections *[]CartSelection, id string, resolve NameResolver, product catalog.ProductRef, opts AddOptions) {
	if selections == nil || id == "" {
		return
	}
	if HasSelectionWithID(id, *selections) {
		return
	}

	var name string
	if resolve != nil {
		name = resolve(id)
	}
	if name == "" || name == id {
		name = HumanizeID(id)
		c.diag.Warn("no canonical label for selection",
			"id", id,
			"context", opts.Context,
			"product_id", product.ID,
			"product_name", product.Name,
		)
	}

	label := name
	if opts.QuantityLabel != "" {
		label = name + " " + opts.QuantityLabel
	}

	selType := opts.Type
	if selType == "" {
		selType = DefaultSelectionType
	}

	*selections = append(*selections, CartSelection{
		ID:               id,
		Label:            label,
		Type:             selType,
		GroupID:          opts.GroupID,
		GroupTitle:       opts.GroupTitle,
		BeverageCategory: opts.BeverageCategory,
		Distribution:     opts.Distribution,
		ProductID:        product.ID,
		DisplayName:      name,
	})
}

// CompleteFromRawSources extends selections with every id found in the named
// raw sources. Group metadata comes from the lookup when the id is known
// there; otherwise the source key drives the fallback type ("required_option"
// for quantity and size controls) and the keyword group-title heuristic. The
// heuristic also fills in when the lookup group carries no title of its own.
// A nil resolve defaults to the lookup's own resolver.
func (c *Collector) CompleteFromRawSources(selections *[]CartSelection, sources []NamedSource, lookup *Lookup, resolve NameResolver, product catalog.ProductRef) {
	if selections == nil {
		return
	}
	if resolve == nil && lookup != nil {
		resolve = lookup.Resolver()
	}

	before := len(*selections)
	for _, src := range sources {
		if src.Source == nil {
			continue
		}

		lowered := strings.ToLower(src.Key)
		fallbackType := DefaultSelectionType
		if strings.Contains(lowered, "quantity") || strings.Contains(lowered, "size") {
			fallbackType = RequiredOptionType
		}
		fallbackTitle := InferGroupTitle(src.Key)

		for _, id := range ExtractIDs(src.Source) {
			opts := AddOptions{
				Type:       fallbackType,
				GroupTitle: fallbackTitle,
				Context:    src.Key,
			}
			if meta, ok := lookup.Meta(id); ok {
				opts.GroupID = meta.GroupID
				if meta.GroupTitle != "" {
					opts.GroupTitle = meta.GroupTitle
				}
				if meta.Type != "" {
					opts.Type = meta.Type
				}
			}
			c.AddIfMissing(selections, id, resolve, product, opts)
		}
	}

	c.diag.Debug("completed selections from raw sources",
		"product_id", product.ID,
		"sources", len(sources),
		"before", before,
		"after", len(*selections),
	)
}

// HumanizeID turns an internal identifier into a presentable label by
// splitting on hyphens and underscores and title-casing each fragment, e.g.
// "grilled-chicken" becomes "Grilled Chicken".
func HumanizeID(id string) string {
	fragments := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, fragment := range fragments {
		first, size := utf8.DecodeRuneInString(fragment)
		fragments[i] = strings.ToUpper(string(first)) + fragment[size:]
	}
	return strings.Join(fragments, " ")
}
