package catalog

import (
	"context"
	"fmt"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/seed"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds returns all seeds for the Storefront service
func Seeds(db *mongo.Database) []seed.Seed {
	return []seed.Seed{
		{
			ID:          "2026-08-20_storefront_option_groups",
			Description: "Load the storefront option group catalog",
			Run: func(ctx context.Context) error {
				return seedOptionGroups(ctx, db)
			},
		},
	}
}

func seedOptionGroups(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection("option_groups")

	for _, group := range DefaultGroups() {
		_, err := collection.UpdateOne(ctx,
			bson.M{"_id": group.ID},
			bson.M{"$setOnInsert": bson.M{
				"title":         group.Title,
				"type":          group.Type,
				"options":       group.Options,
				"display_order": group.DisplayOrder,
			}},
			options.Update().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("seed option group %s: %w", group.ID, err)
		}
	}

	return nil
}

// DefaultGroups returns the built-in storefront option catalog. Options carry
// image URIs from the image registries where one exists.
func DefaultGroups() []OptionGroup {
	return []OptionGroup{
		{
			ID:           "pizza_toppings",
			Title:        "Toppings",
			Type:         OptionTypes.Topping.Code(),
			DisplayOrder: 1,
			Options: []OptionConfig{
				{ID: "pepperoni", Name: "Pepperoni", Price: 1.50, Image: ToppingImages["pepperoni"]},
				{ID: "italian-sausage", Name: "Italian Sausage", Price: 1.50, Image: ToppingImages["italian-sausage"]},
				{ID: "bacon", Name: "Bacon", Price: 1.75, Image: ToppingImages["bacon"]},
				{ID: "ham", Name: "Ham", Price: 1.50, Image: ToppingImages["ham"]},
				{ID: "grilled-chicken", Name: "Grilled Chicken", Price: 2.00, Image: ToppingImages["grilled-chicken"]},
				{ID: "mushrooms", Name: "Mushrooms", Price: 1.00, Image: ToppingImages["mushrooms"]},
				{ID: "red-onions", Name: "Red Onions", Price: 1.00, Image: ToppingImages["red-onions"]},
				{ID: "green-peppers", Name: "Green Peppers", Price: 1.00, Image: ToppingImages["green-peppers"]},
				{ID: "black-olives", Name: "Black Olives", Price: 1.00, Image: ToppingImages["black-olives"]},
				{ID: "banana-peppers", Name: "Banana Peppers", Price: 1.00, Image: ToppingImages["banana-peppers"]},
				{ID: "jalapenos", Name: "Jalapenos", Price: 1.00, Image: ToppingImages["jalapenos"]},
				{ID: "tomatoes", Name: "Tomatoes", Price: 1.00, Image: ToppingImages["tomatoes"]},
				{ID: "spinach", Name: "Spinach", Price: 1.00, Image: ToppingImages["spinach"]},
				{ID: "pineapple", Name: "Pineapple", Price: 1.25, Image: ToppingImages["pineapple"]},
				{ID: "extra-cheese", Name: "Extra Cheese", Price: 1.75, Image: ToppingImages["extra-cheese"]},
			},
		},
		{
			ID:           "pizza_sauces",
			Title:        "Sauce",
			Type:         OptionTypes.Sauce.Code(),
			DisplayOrder: 2,
			Options: []OptionConfig{
				{ID: "marinara", Name: "Marinara", Image: SauceImages["marinara"]},
				{ID: "alfredo", Name: "Alfredo", Price: 0.75, Image: SauceImages["alfredo"]},
				{ID: "bbq", Name: "BBQ", Image: SauceImages["bbq"]},
				{ID: "buffalo", Name: "Buffalo", Image: SauceImages["buffalo"]},
				{ID: "garlic-butter", Name: "Garlic Butter", Image: SauceImages["garlic-butter"]},
				{ID: "spicy-marinara", Name: "Spicy Marinara", Image: SauceImages["spicy-marinara"]},
			},
		},
		{
			ID:           "pizza_dippings",
			Title:        "Pizza Dippings",
			Type:         OptionTypes.Sauce.Code(),
			DisplayOrder: 3,
			Options: []OptionConfig{
				{ID: "ranch-dip", Name: "Ranch Dip", Price: 0.75},
				{ID: "garlic-dip", Name: "Garlic Dip", Price: 0.75},
				{ID: "marinara-dip", Name: "Marinara Dip", Price: 0.75},
			},
		},
		{
			ID:           "salad_bases",
			Title:        "Salad Base",
			Type:         OptionTypes.RequiredOption.Code(),
			DisplayOrder: 4,
			Options: []OptionConfig{
				{ID: "romaine", Name: "Romaine"},
				{ID: "spring-mix", Name: "Spring Mix"},
				{ID: "iceberg", Name: "Iceberg"},
			},
		},
		{
			ID:           "salad_dressings",
			Title:        "Dressing",
			Type:         OptionTypes.Dressing.Code(),
			DisplayOrder: 5,
			Options: []OptionConfig{
				{ID: "ranch", Name: "Ranch", Image: DressingImages["ranch"]},
				{ID: "caesar", Name: "Caesar", Image: DressingImages["caesar"]},
				{ID: "italian", Name: "Italian", Image: DressingImages["italian"]},
				{ID: "honey-mustard", Name: "Honey Mustard", Image: DressingImages["honey-mustard"]},
				{ID: "blue-cheese", Name: "Blue Cheese", Image: DressingImages["blue-cheese"]},
				{ID: "balsamic", Name: "Balsamic", Image: DressingImages["balsamic"]},
				{ID: "greek", Name: "Greek", Image: DressingImages["greek"]},
				{ID: "oil-and-vinegar", Name: "Oil & Vinegar", Image: DressingImages["oil-and-vinegar"]},
			},
		},
		{
			ID:           "pasta_vegetables",
			Title:        "Vegetables",
			Type:         OptionTypes.Topping.Code(),
			DisplayOrder: 6,
			Options: []OptionConfig{
				{ID: "broccoli", Name: "Broccoli"},
				{ID: "sun-dried-tomatoes", Name: "Sun-Dried Tomatoes"},
				{ID: "roasted-peppers", Name: "Roasted Peppers"},
				{ID: "artichokes", Name: "Artichokes"},
			},
		},
		{
			ID:           "sides",
			Title:        "Sides",
			Type:         OptionTypes.Side.Code(),
			DisplayOrder: 7,
			Options: []OptionConfig{
				{ID: "french-fries", Name: "French Fries", Price: 2.95},
				{ID: "onion-rings", Name: "Onion Rings", Price: 3.45},
				{ID: "coleslaw", Name: "Coleslaw", Price: 1.95},
				{ID: "garlic-bread", Name: "Garlic Bread", Price: 2.45},
			},
		},
		{
			ID:           "platter_extras",
			Title:        "Platter Options",
			Type:         OptionTypes.Extra.Code(),
			DisplayOrder: 8,
			Options: []OptionConfig{
				{ID: "extra-ranch", Name: "Extra Ranch", Price: 0.50},
				{ID: "extra-honey-mustard", Name: "Extra Honey Mustard Sauce", Price: 0.50},
				{ID: "extra-bbq", Name: "Extra BBQ Sauce", Price: 0.50},
				{ID: "extra-celery", Name: "Extra Celery", Price: 0.75},
			},
		},
	}
}

// SeedingFunc returns the OnStart hook that applies storefront seeds.
func SeedingFunc(appName string, dbFn func() *mongo.Database, logger apt.Logger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		logger.Info("Applying storefront service database seeds...")
		db := dbFn()
		tracker := seed.NewMongoTracker(db)
		seeds := Seeds(db)
		if err := seed.Apply(ctx, tracker, seeds, appName); err != nil {
			return fmt.Errorf("apply seeds: %w", err)
		}
		logger.Info("Storefront service database seeds applied successfully")
		return nil
	}
}
