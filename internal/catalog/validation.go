package catalog

import (
	"fmt"
	"strings"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateOptionGroup validates an option group before it is written to the
// catalog. Options without ids are tolerated by the registry (they are
// silently skipped during registration) but rejected here so the catalog
// never stores unreachable entries.
func ValidateOptionGroup(group *OptionGroup) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(group.ID) == "" {
		errors = append(errors, ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if strings.TrimSpace(group.Title) == "" {
		errors = append(errors, ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if group.Type != "" && OptionTypeByName(group.Type) == nil {
		errors = append(errors, ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("unknown option type %q", group.Type),
		})
	}

	seen := make(map[string]bool)
	for i, opt := range group.Options {
		if strings.TrimSpace(opt.ID) == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("options[%d].id", i),
				Message: "option id is required",
			})
			continue
		}
		if seen[opt.ID] {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("options[%d].id", i),
				Message: fmt.Sprintf("duplicate option id %q within group", opt.ID),
			})
		}
		seen[opt.ID] = true

		if opt.Price < 0 {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("options[%d].price", i),
				Message: "price cannot be negative",
			})
		}
	}

	return errors
}
