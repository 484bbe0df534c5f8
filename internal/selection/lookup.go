package selection

import (
	"github.com/appetiteclub/storefront/internal/catalog"
)

// Meta is the canonical, flattened display metadata retained for one option id.
type Meta struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	GroupID    string `json:"group_id"`
	GroupTitle string `json:"group_title"`
	Type       string `json:"type"`
}

// Lookup maps option ids to their canonical display metadata. It is built once
// per catalog revision and treated as read-only afterwards; concurrent
// mutation during reads is a caller discipline violation.
type Lookup struct {
	ByOptionID map[string]Meta
}

// GroupConfig identifies the group an option is registered under.
type GroupConfig struct {
	GroupID    string
	GroupTitle string
	Type       string
}

// Category pairs an optional catalog option array with the group it belongs
// to. Categories with no options are skipped during registration.
type Category struct {
	Key     string
	Group   GroupConfig
	Options []catalog.OptionConfig
}

// NameResolver resolves an option id to a display string. Returning "" or the
// id itself signals that no canonical label exists.
type NameResolver func(id string) string

// NewLookup returns an empty lookup ready for registration.
func NewLookup() *Lookup {
	return &Lookup{ByOptionID: make(map[string]Meta)}
}

// BuildLookup constructs a fresh lookup from pre-grouped catalog data.
// Options with empty ids are skipped. Later groups overwrite earlier entries
// for duplicate ids (last-write-wins).
func BuildLookup(groups []catalog.OptionGroup) *Lookup {
	lookup := NewLookup()
	for _, group := range groups {
		RegisterOptions(lookup, group.Options, GroupConfig{
			GroupID:    group.ID,
			GroupTitle: group.Title,
			Type:       group.Type,
		})
	}
	return lookup
}

// RegisterOptions writes one entry per option into the lookup, in place.
// Label priority is name over label over title over the raw id. Options with
// empty ids are skipped; duplicate ids overwrite (last-write-wins).
func RegisterOptions(lookup *Lookup, options []catalog.OptionConfig, group GroupConfig) {
	if lookup == nil {
		return
	}
	for _, opt := range options {
		if opt.ID == "" {
			continue
		}
		lookup.ByOptionID[opt.ID] = Meta{
			ID:         opt.ID,
			Label:      labelFor(opt),
			GroupID:    group.GroupID,
			GroupTitle: group.GroupTitle,
			Type:       group.Type,
		}
	}
}

// RegisterCategories registers every category that actually carries options.
// This is the bulk path used when a catalog arrives as independent per-product
// option arrays rather than pre-grouped data.
func RegisterCategories(lookup *Lookup, categories []Category) {
	for _, cat := range categories {
		if len(cat.Options) == 0 {
			continue
		}
		RegisterOptions(lookup, cat.Options, cat.Group)
	}
}

// Resolver returns a NameResolver backed by this lookup. Unknown ids resolve
// to "".
func (l *Lookup) Resolver() NameResolver {
	return func(id string) string {
		if l == nil {
			return ""
		}
		if meta, ok := l.ByOptionID[id]; ok {
			return meta.Label
		}
		return ""
	}
}

// Meta returns the retained metadata for an option id.
func (l *Lookup) Meta(id string) (Meta, bool) {
	if l == nil {
		return Meta{}, false
	}
	meta, ok := l.ByOptionID[id]
	return meta, ok
}

func labelFor(opt catalog.OptionConfig) string {
	switch {
	case opt.Name != "":
		return opt.Name
	case opt.Label != "":
		return opt.Label
	case opt.Title != "":
		return opt.Title
	default:
		return opt.ID
	}
}
