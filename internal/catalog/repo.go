package catalog

import "context"

// GroupRepo defines the repository interface for option groups
type GroupRepo interface {
	Create(ctx context.Context, group *OptionGroup) error
	Get(ctx context.Context, id string) (*OptionGroup, error)
	List(ctx context.Context) ([]*OptionGroup, error)
	Save(ctx context.Context, group *OptionGroup) error
	Delete(ctx context.Context, id string) error
}
