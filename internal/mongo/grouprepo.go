package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/storefront/internal/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GroupRepo implements the catalog.GroupRepo interface using MongoDB
type GroupRepo struct {
	client     *mongo.Client
	db         *mongo.Database
	collection *mongo.Collection
	logger     apt.Logger
	config     *apt.Config
}

// NewGroupRepo creates a new MongoDB option group repository
func NewGroupRepo(config *apt.Config, logger apt.Logger) *GroupRepo {
	return &GroupRepo{
		logger: logger,
		config: config,
	}
}

// Start initializes the MongoDB connection
func (r *GroupRepo) Start(ctx context.Context) error {
	mongoURL, _ := r.config.GetString("db.mongo.url")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}

	dbName, _ := r.config.GetString("db.mongo.name")
	if dbName == "" {
		dbName = "appetite_storefront"
	}

	clientOptions := options.Client().ApplyURI(mongoURL).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("cannot connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("cannot ping MongoDB: %w", err)
	}

	r.client = client
	r.db = client.Database(dbName)
	r.collection = r.db.Collection("option_groups")

	typeIndexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "type", Value: 1}},
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, typeIndexModel); err != nil {
		return fmt.Errorf("cannot create type index: %w", err)
	}

	orderIndexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "display_order", Value: 1}},
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, orderIndexModel); err != nil {
		return fmt.Errorf("cannot create display_order index: %w", err)
	}

	r.logger.Infof("Connected to MongoDB: %s, database: %s, collection: option_groups", mongoURL, dbName)
	return nil
}

// Stop closes the MongoDB connection
func (r *GroupRepo) Stop(ctx context.Context) error {
	if r.client != nil {
		if err := r.client.Disconnect(ctx); err != nil {
			return fmt.Errorf("cannot disconnect from MongoDB: %w", err)
		}
		r.logger.Info("Disconnected from MongoDB")
	}
	return nil
}

// GetDatabase returns the MongoDB database instance
func (r *GroupRepo) GetDatabase() *mongo.Database {
	return r.db
}

// Create inserts a new option group
func (r *GroupRepo) Create(ctx context.Context, group *catalog.OptionGroup) error {
	if group == nil {
		return fmt.Errorf("option group cannot be nil")
	}

	_, err := r.collection.InsertOne(ctx, group)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("option group %s already exists", group.ID)
		}
		return fmt.Errorf("could not create option group: %w", err)
	}
	return nil
}

// Get retrieves an option group by its id
func (r *GroupRepo) Get(ctx context.Context, id string) (*catalog.OptionGroup, error) {
	var group catalog.OptionGroup

	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&group)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("option group %s not found", id)
		}
		return nil, fmt.Errorf("could not get option group: %w", err)
	}
	return &group, nil
}

// List retrieves all option groups in display order
func (r *GroupRepo) List(ctx context.Context) ([]*catalog.OptionGroup, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("could not list option groups: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []*catalog.OptionGroup
	for cursor.Next(ctx) {
		var group catalog.OptionGroup
		if err := cursor.Decode(&group); err != nil {
			return nil, fmt.Errorf("could not decode option group: %w", err)
		}
		groups = append(groups, &group)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return groups, nil
}

// Save updates an existing option group
func (r *GroupRepo) Save(ctx context.Context, group *catalog.OptionGroup) error {
	if group == nil {
		return fmt.Errorf("option group cannot be nil")
	}

	filter := bson.M{"_id": group.ID}
	opts := options.Replace().SetUpsert(false)

	result, err := r.collection.ReplaceOne(ctx, filter, group, opts)
	if err != nil {
		return fmt.Errorf("could not save option group: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("option group %s not found", group.ID)
	}
	return nil
}

// Delete removes an option group
func (r *GroupRepo) Delete(ctx context.Context, id string) error {
	filter := bson.M{"_id": id}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("could not delete option group: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("option group %s not found", id)
	}
	return nil
}
