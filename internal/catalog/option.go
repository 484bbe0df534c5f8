package catalog

// OptionConfig is one sellable or selectable catalog item within a group.
// The id is the stable identifier used everywhere else; Name is the primary
// display label, with Label and Title as alternate sources.
type OptionConfig struct {
	ID    string  `json:"id" bson:"id"`
	Name  string  `json:"name,omitempty" bson:"name,omitempty"`
	Label string  `json:"label,omitempty" bson:"label,omitempty"`
	Title string  `json:"title,omitempty" bson:"title,omitempty"`
	Price float64 `json:"price,omitempty" bson:"price,omitempty"`
	Image string  `json:"image,omitempty" bson:"image,omitempty"`
}

// OptionGroup is a named, typed collection of options backing one UI section.
// Slice order is the catalog's display order.
type OptionGroup struct {
	ID           string         `json:"id" bson:"_id"`
	Title        string         `json:"title" bson:"title"`
	Type         string         `json:"type" bson:"type"`
	Options      []OptionConfig `json:"options" bson:"options"`
	DisplayOrder int            `json:"display_order" bson:"display_order"`
}

// ProductRef is the minimal product identity threaded through cart selections
// and diagnostics.
type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GetID returns the group id.
func (g *OptionGroup) GetID() string {
	return g.ID
}

// ResourceType returns the resource type for URL generation.
func (g *OptionGroup) ResourceType() string {
	return "catalog/group"
}
