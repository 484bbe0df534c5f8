package catalog

import "testing"

func TestValidateOptionGroup(t *testing.T) {
	tests := []struct {
		name       string
		group      OptionGroup
		wantErrors int
	}{
		{
			name: "validGroup",
			group: OptionGroup{
				ID:    "pizza_toppings",
				Title: "Toppings",
				Type:  "topping",
				Options: []OptionConfig{
					{ID: "bacon", Name: "Bacon", Price: 1.75},
				},
			},
			wantErrors: 0,
		},
		{
			name: "missingID",
			group: OptionGroup{
				Title: "Toppings",
			},
			wantErrors: 1,
		},
		{
			name: "missingTitle",
			group: OptionGroup{
				ID: "pizza_toppings",
			},
			wantErrors: 1,
		},
		{
			name: "unknownType",
			group: OptionGroup{
				ID:    "pizza_toppings",
				Title: "Toppings",
				Type:  "garnish",
			},
			wantErrors: 1,
		},
		{
			name: "emptyTypeTolerated",
			group: OptionGroup{
				ID:    "pizza_toppings",
				Title: "Toppings",
			},
			wantErrors: 0,
		},
		{
			name: "optionWithoutID",
			group: OptionGroup{
				ID:    "pizza_toppings",
				Title: "Toppings",
				Options: []OptionConfig{
					{Name: "Ghost"},
				},
			},
			wantErrors: 1,
		},
		{
			name: "duplicateOptionID",
			group: OptionGroup{
				ID:    "pizza_toppings",
				Title: "Toppings",
				Options: []OptionConfig{
					{ID: "bacon", Name: "Bacon"},
					{ID: "bacon", Name: "Bacon Again"},
				},
			},
			wantErrors: 1,
		},
		{
			name: "negativePrice",
			group: OptionGroup{
				ID:    "pizza_toppings",
				Title: "Toppings",
				Options: []OptionConfig{
					{ID: "bacon", Name: "Bacon", Price: -1},
				},
			},
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateOptionGroup(&tt.group)
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidateOptionGroup() returned %d errors, want %d: %v", len(errors), tt.wantErrors, errors)
			}
		})
	}
}
