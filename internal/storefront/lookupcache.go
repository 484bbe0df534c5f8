package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/storefront/internal/catalog"
	"github.com/appetiteclub/storefront/internal/selection"
)

// LookupCache holds the selection lookup built from the current catalog.
// The lookup itself is read-only once built; the cache swaps in a fresh one
// whenever the catalog changes, so readers always see a consistent snapshot.
type LookupCache struct {
	mu     sync.RWMutex
	lookup *selection.Lookup

	repo   catalog.GroupRepo
	logger apt.Logger
}

// NewLookupCache creates a lookup cache over the catalog group repository.
func NewLookupCache(repo catalog.GroupRepo, logger apt.Logger) *LookupCache {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &LookupCache{
		lookup: selection.NewLookup(),
		repo:   repo,
		logger: logger,
	}
}

// Warm builds the initial lookup from the catalog repository.
func (c *LookupCache) Warm(ctx context.Context) error {
	return c.Rebuild(ctx)
}

// Rebuild loads the catalog groups and swaps in a freshly built lookup.
func (c *LookupCache) Rebuild(ctx context.Context) error {
	if c.repo == nil {
		return fmt.Errorf("no catalog repository configured")
	}

	groups, err := c.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("cannot load catalog groups: %w", err)
	}

	flattened := make([]catalog.OptionGroup, 0, len(groups))
	for _, group := range groups {
		if group != nil {
			flattened = append(flattened, *group)
		}
	}

	lookup := selection.BuildLookup(flattened)

	c.mu.Lock()
	c.lookup = lookup
	c.mu.Unlock()

	c.logger.Info("selection lookup rebuilt", "groups", len(flattened), "options", len(lookup.ByOptionID))
	return nil
}

// Current returns the lookup snapshot in effect.
func (c *LookupCache) Current() *selection.Lookup {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lookup
}

// Set replaces the lookup snapshot directly. Used by seeding and tests.
func (c *LookupCache) Set(lookup *selection.Lookup) {
	if lookup == nil {
		lookup = selection.NewLookup()
	}
	c.mu.Lock()
	c.lookup = lookup
	c.mu.Unlock()
}
