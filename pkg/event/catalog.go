package event

import "time"

const (
	CatalogTopic             = "storefront.catalog"
	EventCatalogGroupCreated = "catalog.group.created"
	EventCatalogGroupUpdated = "catalog.group.updated"
	EventCatalogGroupDeleted = "catalog.group.deleted"
)

// CatalogChangedEvent is published whenever the option catalog changes.
// Consumers rebuild their selection lookups from the current catalog state.
type CatalogChangedEvent struct {
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	GroupID    string    `json:"group_id"`
	Revision   string    `json:"revision,omitempty"`

	// Denormalized data for consumers that only log the change
	GroupTitle string `json:"group_title,omitempty"`
	GroupType  string `json:"group_type,omitempty"`
}
