package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/appetiteclub/storefront/internal/storefront"
	"github.com/appetiteclub/storefront/pkg/event"
)

// CatalogSubscriber keeps the selection lookup in step with catalog changes
// announced on the catalog topic.
type CatalogSubscriber struct {
	subscriber events.Subscriber
	cache      *storefront.LookupCache
	logger     apt.Logger
}

func NewCatalogSubscriber(subscriber events.Subscriber, cache *storefront.LookupCache, logger apt.Logger) *CatalogSubscriber {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &CatalogSubscriber{
		subscriber: subscriber,
		cache:      cache,
		logger:     logger,
	}
}

func (s *CatalogSubscriber) Start(ctx context.Context) error {
	s.logger.Info("Starting CatalogSubscriber for topic: " + event.CatalogTopic)

	if err := s.subscriber.Subscribe(ctx, event.CatalogTopic, s.handleEvent); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", event.CatalogTopic, err)
	}

	s.logger.Info("CatalogSubscriber started successfully")
	return nil
}

func (s *CatalogSubscriber) handleEvent(ctx context.Context, msg []byte) error {
	var evt event.CatalogChangedEvent
	if err := json.Unmarshal(msg, &evt); err != nil {
		s.logger.Errorf("Failed to unmarshal catalog event: %v", err)
		return nil
	}

	switch evt.EventType {
	case event.EventCatalogGroupCreated, event.EventCatalogGroupUpdated, event.EventCatalogGroupDeleted:
	default:
		s.logger.Infof("Unknown catalog event type: %s", evt.EventType)
		return nil
	}

	if err := s.cache.Rebuild(ctx); err != nil {
		s.logger.Errorf("Failed to rebuild selection lookup: %v", err)
		return err
	}

	s.logger.Info("selection lookup rebuilt after catalog change",
		"event_type", evt.EventType,
		"group_id", evt.GroupID,
		"revision", evt.Revision,
	)
	return nil
}
