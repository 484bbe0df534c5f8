package commands

import (
	"context"
	"fmt"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/storefront/internal/catalog"
	"go.mongodb.org/mongo-driver/bson"
)

// ClearCatalog removes the seeded option groups and their seed tracker record
// so the catalog can be reseeded from scratch. Groups created through the API
// are left alone.
func ClearCatalog(ctx context.Context, config *apt.Config, logger apt.Logger) error {
	logger.Info("Starting catalog cleanup...")

	client, err := connect(ctx, config)
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	logger.Info("Connected to MongoDB")

	db := client.Database(storefrontDatabase)

	var seededIDs []string
	for _, group := range catalog.DefaultGroups() {
		seededIDs = append(seededIDs, group.ID)
	}

	groupsCollection := db.Collection("option_groups")
	groupsResult, err := groupsCollection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": seededIDs}})
	if err != nil {
		return fmt.Errorf("delete seeded option groups: %w", err)
	}
	logger.Info("Deleted seeded option groups", "count", groupsResult.DeletedCount)

	seedsCollection := db.Collection("_seeds")
	trackerResult, err := seedsCollection.DeleteOne(ctx, bson.M{"_id": "2026-08-20_storefront_option_groups"})
	if err != nil {
		return fmt.Errorf("delete catalog seed tracker: %w", err)
	}
	logger.Info("Cleared catalog seed tracker", "deleted", trackerResult.DeletedCount)

	return nil
}
