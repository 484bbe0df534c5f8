package selection

import (
	"testing"

	"github.com/appetiteclub/storefront/internal/catalog"
)

// captureDiagnostics records emitted diagnostics for assertions.
type captureDiagnostics struct {
	warns  []capturedEntry
	infos  []capturedEntry
	debugs []capturedEntry
}

type capturedEntry struct {
	msg  string
	args []any
}

func (c *captureDiagnostics) Warn(msg string, args ...any) {
	c.warns = append(c.warns, capturedEntry{msg: msg, args: args})
}

func (c *captureDiagnostics) Info(msg string, args ...any) {
	c.infos = append(c.infos, capturedEntry{msg: msg, args: args})
}

func (c *captureDiagnostics) Debug(msg string, args ...any) {
	c.debugs = append(c.debugs, capturedEntry{msg: msg, args: args})
}

func testProduct() catalog.ProductRef {
	return catalog.ProductRef{ID: "prod-42", Name: "Build Your Own Pizza"}
}

func namedResolver(names map[string]string) NameResolver {
	return func(id string) string {
		return names[id]
	}
}

func TestHasSelectionWithID(t *testing.T) {
	selections := []CartSelection{
		{ID: "bacon"},
		{ID: "ranch"},
	}

	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "present", id: "bacon", want: true},
		{name: "absent", id: "pepperoni", want: false},
		{name: "emptyID", id: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasSelectionWithID(tt.id, selections); got != tt.want {
				t.Errorf("HasSelectionWithID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestAddIfMissingIdempotent(t *testing.T) {
	c := NewCollector(nil)
	resolve := namedResolver(map[string]string{"bacon": "Bacon"})

	var selections []CartSelection
	c.AddIfMissing(&selections, "bacon", resolve, testProduct(), AddOptions{})
	c.AddIfMissing(&selections, "bacon", resolve, testProduct(), AddOptions{})

	if got := len(selections); got != 1 {
		t.Fatalf("AddIfMissing() twice yielded %d entries, want 1", got)
	}
	if selections[0].Label != "Bacon" {
		t.Errorf("CartSelection.Label = %q, want %q", selections[0].Label, "Bacon")
	}
}

func TestAddIfMissingSkipsEmptyID(t *testing.T) {
	c := NewCollector(nil)

	var selections []CartSelection
	c.AddIfMissing(&selections, "", namedResolver(nil), testProduct(), AddOptions{})

	if got := len(selections); got != 0 {
		t.Errorf("AddIfMissing() with empty id yielded %d entries, want 0", got)
	}
}

func TestAddIfMissingFallbackHumanization(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		resolved  string
		wantLabel string
	}{
		{
			name:      "resolverEchoesID",
			id:        "grilled-chicken",
			resolved:  "grilled-chicken",
			wantLabel: "Grilled Chicken",
		},
		{
			name:      "resolverReturnsEmpty",
			id:        "sun_dried_tomatoes",
			resolved:  "",
			wantLabel: "Sun Dried Tomatoes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diag := &captureDiagnostics{}
			c := NewCollector(diag)
			resolve := namedResolver(map[string]string{tt.id: tt.resolved})

			var selections []CartSelection
			c.AddIfMissing(&selections, tt.id, resolve, testProduct(), AddOptions{Context: "sideToppings"})

			if len(selections) != 1 {
				t.Fatalf("AddIfMissing() yielded %d entries, want 1", len(selections))
			}
			if selections[0].Label != tt.wantLabel {
				t.Errorf("CartSelection.Label = %q, want %q", selections[0].Label, tt.wantLabel)
			}
			if selections[0].DisplayName != tt.wantLabel {
				t.Errorf("CartSelection.DisplayName = %q, want %q", selections[0].DisplayName, tt.wantLabel)
			}
			if len(diag.warns) != 1 {
				t.Fatalf("expected exactly one warning diagnostic, got %d", len(diag.warns))
			}
		})
	}
}

func TestAddIfMissingNoWarningWhenResolved(t *testing.T) {
	diag := &captureDiagnostics{}
	c := NewCollector(diag)

	var selections []CartSelection
	c.AddIfMissing(&selections, "bacon", namedResolver(map[string]string{"bacon": "Bacon"}), testProduct(), AddOptions{})

	if len(diag.warns) != 0 {
		t.Errorf("expected no warning for a resolved label, got %d", len(diag.warns))
	}
}

func TestAddIfMissingQuantityLabel(t *testing.T) {
	c := NewCollector(nil)
	resolve := namedResolver(map[string]string{"fountain-drink": "Fountain Drink"})

	var selections []CartSelection
	c.AddIfMissing(&selections, "fountain-drink", resolve, testProduct(), AddOptions{
		Type:          "required_option",
		QuantityLabel: "Large",
	})

	if len(selections) != 1 {
		t.Fatalf("AddIfMissing() yielded %d entries, want 1", len(selections))
	}
	if selections[0].Label != "Fountain Drink Large" {
		t.Errorf("CartSelection.Label = %q, want %q", selections[0].Label, "Fountain Drink Large")
	}
	if selections[0].DisplayName != "Fountain Drink" {
		t.Errorf("CartSelection.DisplayName = %q, want unsuffixed %q", selections[0].DisplayName, "Fountain Drink")
	}
	if selections[0].Type != "required_option" {
		t.Errorf("CartSelection.Type = %q, want %q", selections[0].Type, "required_option")
	}
}

func TestAddIfMissingDefaults(t *testing.T) {
	c := NewCollector(nil)
	product := testProduct()

	var selections []CartSelection
	c.AddIfMissing(&selections, "bacon", namedResolver(map[string]string{"bacon": "Bacon"}), product, AddOptions{
		GroupID:      "side_toppings",
		GroupTitle:   "Side Toppings",
		Distribution: "left",
	})

	sel := selections[0]
	if sel.Type != DefaultSelectionType {
		t.Errorf("CartSelection.Type = %q, want default %q", sel.Type, DefaultSelectionType)
	}
	if sel.GroupID != "side_toppings" || sel.GroupTitle != "Side Toppings" {
		t.Errorf("group fields = (%q, %q), want (%q, %q)", sel.GroupID, sel.GroupTitle, "side_toppings", "Side Toppings")
	}
	if sel.Distribution != "left" {
		t.Errorf("CartSelection.Distribution = %q, want %q", sel.Distribution, "left")
	}
	if sel.ProductID != product.ID {
		t.Errorf("CartSelection.ProductID = %q, want %q", sel.ProductID, product.ID)
	}
}

func TestCompleteFromRawSourcesEndToEnd(t *testing.T) {
	lookup := BuildLookup([]catalog.OptionGroup{
		{
			ID:    "pasta_vegetables",
			Title: "Vegetables",
			Type:  "topping",
			Options: []catalog.OptionConfig{
				{ID: "v1", Name: "Broccoli"},
			},
		},
	})

	diag := &captureDiagnostics{}
	c := NewCollector(diag)
	product := catalog.ProductRef{ID: "prod-7", Name: "Pasta Primavera"}

	var selections []CartSelection
	sources := []NamedSource{
		{Key: "pastaVegetables", Source: FlagRecord{{ID: "v1", Selected: true}}},
	}

	c.CompleteFromRawSources(&selections, sources, lookup, nil, product)

	if len(selections) != 1 {
		t.Fatalf("CompleteFromRawSources() yielded %d entries, want 1", len(selections))
	}

	sel := selections[0]
	if sel.ID != "v1" {
		t.Errorf("CartSelection.ID = %q, want %q", sel.ID, "v1")
	}
	if sel.Label != "Broccoli" {
		t.Errorf("CartSelection.Label = %q, want %q", sel.Label, "Broccoli")
	}
	if sel.Type != "topping" {
		t.Errorf("CartSelection.Type = %q, want %q", sel.Type, "topping")
	}
	if sel.GroupID != "pasta_vegetables" {
		t.Errorf("CartSelection.GroupID = %q, want %q", sel.GroupID, "pasta_vegetables")
	}
	if sel.GroupTitle != "Vegetables" {
		t.Errorf("CartSelection.GroupTitle = %q, want %q", sel.GroupTitle, "Vegetables")
	}
	if sel.ProductID != product.ID {
		t.Errorf("CartSelection.ProductID = %q, want %q", sel.ProductID, product.ID)
	}
	if len(diag.warns) != 0 {
		t.Errorf("expected no warnings for a fully resolved selection, got %d", len(diag.warns))
	}
	if len(diag.debugs) != 1 {
		t.Errorf("expected one aggregate debug diagnostic, got %d", len(diag.debugs))
	}
}

func TestCompleteFromRawSourcesFallbacks(t *testing.T) {
	tests := []struct {
		name           string
		key            string
		wantType       string
		wantGroupTitle string
	}{
		{
			name:           "quantityKeyBecomesRequiredOption",
			key:            "drinkQuantity",
			wantType:       RequiredOptionType,
			wantGroupTitle: "Quantity",
		},
		{
			name:           "sizeKeyBecomesRequiredOption",
			key:            "pizzaSize",
			wantType:       RequiredOptionType,
			wantGroupTitle: "",
		},
		{
			name:           "otherKeyDefaultsToTopping",
			key:            "sideToppings",
			wantType:       DefaultSelectionType,
			wantGroupTitle: "Sides",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(&captureDiagnostics{})

			var selections []CartSelection
			sources := []NamedSource{
				{Key: tt.key, Source: IDList{"mystery-option"}},
			}
			c.CompleteFromRawSources(&selections, sources, nil, namedResolver(nil), testProduct())

			if len(selections) != 1 {
				t.Fatalf("CompleteFromRawSources() yielded %d entries, want 1", len(selections))
			}
			if selections[0].Type != tt.wantType {
				t.Errorf("CartSelection.Type = %q, want %q", selections[0].Type, tt.wantType)
			}
			if selections[0].GroupTitle != tt.wantGroupTitle {
				t.Errorf("CartSelection.GroupTitle = %q, want %q", selections[0].GroupTitle, tt.wantGroupTitle)
			}
			if selections[0].Label != "Mystery Option" {
				t.Errorf("CartSelection.Label = %q, want humanized %q", selections[0].Label, "Mystery Option")
			}
		})
	}
}

func TestCompleteFromRawSourcesInfersTitleWhenLookupGroupUntitled(t *testing.T) {
	lookup := NewLookup()
	RegisterOptions(lookup, []catalog.OptionConfig{{ID: "bacon", Name: "Bacon"}}, GroupConfig{
		GroupID: "side_toppings",
		Type:    "topping",
	})

	c := NewCollector(&captureDiagnostics{})

	var selections []CartSelection
	sources := []NamedSource{
		{Key: "sideToppings", Source: IDList{"bacon"}},
	}
	c.CompleteFromRawSources(&selections, sources, lookup, nil, testProduct())

	if len(selections) != 1 {
		t.Fatalf("CompleteFromRawSources() yielded %d entries, want 1", len(selections))
	}
	if selections[0].GroupID != "side_toppings" {
		t.Errorf("CartSelection.GroupID = %q, want %q", selections[0].GroupID, "side_toppings")
	}
	if selections[0].GroupTitle != "Sides" {
		t.Errorf("CartSelection.GroupTitle = %q, want keyword-inferred %q", selections[0].GroupTitle, "Sides")
	}
}

func TestCompleteFromRawSourcesSkipsAbsentSources(t *testing.T) {
	c := NewCollector(&captureDiagnostics{})

	var selections []CartSelection
	sources := []NamedSource{
		{Key: "sauce", Source: nil},
		{Key: "sideToppings", Source: IDList{"bacon"}},
	}
	c.CompleteFromRawSources(&selections, sources, nil, namedResolver(map[string]string{"bacon": "Bacon"}), testProduct())

	if len(selections) != 1 {
		t.Fatalf("CompleteFromRawSources() yielded %d entries, want 1", len(selections))
	}
	if selections[0].ID != "bacon" {
		t.Errorf("CartSelection.ID = %q, want %q", selections[0].ID, "bacon")
	}
}

func TestCompleteFromRawSourcesDeduplicatesAcrossSources(t *testing.T) {
	c := NewCollector(&captureDiagnostics{})
	resolve := namedResolver(map[string]string{"bacon": "Bacon"})

	var selections []CartSelection
	sources := []NamedSource{
		{Key: "sideToppings", Source: IDList{"bacon"}},
		{Key: "extraToppings", Source: FlagRecord{{ID: "bacon", Selected: true}}},
	}
	c.CompleteFromRawSources(&selections, sources, nil, resolve, testProduct())

	if len(selections) != 1 {
		t.Errorf("CompleteFromRawSources() yielded %d entries, want 1 (deduplicated)", len(selections))
	}
}

func TestCompleteFromRawSourcesExtendsExistingList(t *testing.T) {
	c := NewCollector(&captureDiagnostics{})
	resolve := namedResolver(map[string]string{"bacon": "Bacon", "ranch": "Ranch"})

	selections := []CartSelection{{ID: "bacon", Label: "Bacon", Type: "topping"}}
	sources := []NamedSource{
		{Key: "dressings", Source: IDList{"bacon", "ranch"}},
	}
	c.CompleteFromRawSources(&selections, sources, nil, resolve, testProduct())

	if len(selections) != 2 {
		t.Fatalf("CompleteFromRawSources() yielded %d entries, want 2", len(selections))
	}
	if selections[0].ID != "bacon" || selections[1].ID != "ranch" {
		t.Errorf("selection order = [%q, %q], want existing entry first", selections[0].ID, selections[1].ID)
	}
}

func TestHumanizeID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "hyphens", id: "grilled-chicken", want: "Grilled Chicken"},
		{name: "underscores", id: "sun_dried_tomatoes", want: "Sun Dried Tomatoes"},
		{name: "mixedSeparators", id: "extra_honey-mustard", want: "Extra Honey Mustard"},
		{name: "singleFragment", id: "bacon", want: "Bacon"},
		{name: "alreadyCapitalized", id: "BBQ", want: "BBQ"},
		{name: "consecutiveSeparators", id: "a--b__c", want: "A B C"},
		{name: "multiByteInitial", id: "épice-noire", want: "Épice Noire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HumanizeID(tt.id); got != tt.want {
				t.Errorf("HumanizeID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
