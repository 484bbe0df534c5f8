package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appetiteclub/apt"
	aptevents "github.com/appetiteclub/apt/events"
	"github.com/appetiteclub/apt/middleware"
	"github.com/appetiteclub/storefront/internal/catalog"
	"github.com/appetiteclub/storefront/internal/events"
	appmongo "github.com/appetiteclub/storefront/internal/mongo"
	"github.com/appetiteclub/storefront/internal/storefront"
	"github.com/appetiteclub/storefront/pkg"
	"github.com/appetiteclub/storefront/pkg/event"
)

const (
	appNamespace = "STOREFRONT"
	appName      = "storefront"
	appVersion   = "0.1.0"
)

func main() {
	config, err := apt.LoadConfig(appNamespace, os.Args[1:])
	if err != nil {
		log.Fatalf("%s(%s) cannot setup with error: %v", appName, appVersion, err)
	}

	logLevel, _ := config.GetString("log.level")
	logger := apt.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// Initialize repositories
	groupRepo := appmongo.NewGroupRepo(config, logger)

	// Selection lookup snapshot over the catalog
	cache := storefront.NewLookupCache(groupRepo, logger)

	// Initialize NATS
	natsURL := config.GetStringOrDef("nats.url", "nats://localhost:4222")

	hd := storefront.HandlerDeps{
		GroupRepo: groupRepo,
		Cache:     cache,
	}
	if publisher, err := pkg.NewNATSPublisher(natsURL); err != nil {
		logger.Errorf("NATS publisher unavailable (catalog change events disabled): %v", err)
	} else {
		hd.Publisher = publisher
	}

	// Initialize handler
	handler := storefront.NewHandler(hd, config, logger)

	// Lifecycle: repo connection, seeding, lookup warm-up, catalog subscriber
	lifecycle := []interface{}{
		groupRepo,
		apt.LifecycleHooks{
			OnStart: catalog.SeedingFunc(appName, groupRepo.GetDatabase, logger),
		},
		apt.LifecycleHooks{
			OnStart: cache.Warm,
		},
	}

	if subscriber, err := newCatalogEventSubscriber(config, natsURL, logger); err != nil {
		logger.Errorf("NATS subscriber unavailable (lookup rebuild on remote changes disabled): %v", err)
	} else {
		catalogSubscriber := events.NewCatalogSubscriber(subscriber, cache, logger)
		lifecycle = append(lifecycle, apt.LifecycleHooks{OnStart: catalogSubscriber.Start})
	}

	// Setup middleware
	stack := middleware.DefaultStack(middleware.StackOptions{
		Logger: logger,
	})

	// Register with Micro framework
	options := []apt.Option{
		apt.WithConfig(config),
		apt.WithLogger(logger),
		apt.WithHTTPMiddleware(stack...),
		apt.WithHTTPServerModules("web.port", handler),
		apt.WithLifecycle(lifecycle...),
		apt.WithHealthChecks(appName),
	}

	ms := apt.NewMicro(options...)
	logger.Infof("Starting %s(%s)", appName, appVersion)

	if err := ms.Run(ctx); err != nil {
		log.Fatalf("%s(%s) stopped with error: %v", appName, appVersion, err)
	}

	logger.Infof("%s(%s) stopped", appName, appVersion)
}

// newCatalogEventSubscriber picks the catalog event transport. With
// nats.stream.enabled a JetStream durable consumer is used so catalog changes
// published while the service was down are still delivered; otherwise a plain
// NATS subscription is enough, since the lookup warm-up already rebuilds from
// the database on start.
func newCatalogEventSubscriber(config *apt.Config, natsURL string, logger apt.Logger) (aptevents.Subscriber, error) {
	if config.GetStringOrDef("nats.stream.enabled", "false") != "true" {
		return pkg.NewNATSSubscriber(natsURL, logger)
	}

	return pkg.NewNATSStream(pkg.NATSStreamConfig{
		URL:          natsURL,
		StreamName:   config.GetStringOrDef("nats.stream.name", "STOREFRONT_CATALOG"),
		Topic:        event.CatalogTopic,
		ConsumerName: config.GetStringOrDef("nats.stream.consumer", appName),
		MaxAge:       24 * time.Hour,
	})
}
