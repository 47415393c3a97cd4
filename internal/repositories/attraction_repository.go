package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/wandermh/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AttractionRepository defines the interface for attraction data operations
type AttractionRepository interface {
	CreateAttraction(ctx context.Context, attraction *models.Attraction) error
	GetAttractionByID(ctx context.Context, id string) (*models.Attraction, error)
	ListAttractions(ctx context.Context, category, city string) ([]models.Attraction, error)
	CountAttractions(ctx context.Context) (int64, error)
}

// MongoAttractionRepository implements AttractionRepository for MongoDB
type MongoAttractionRepository struct {
	collection *mongo.Collection
}

// NewMongoAttractionRepository creates a new MongoAttractionRepository
func NewMongoAttractionRepository(db *mongo.Database) *MongoAttractionRepository {
	return &MongoAttractionRepository{collection: db.Collection("attractions")}
}

// CreateAttraction inserts a new attraction
func (r *MongoAttractionRepository) CreateAttraction(ctx context.Context, attraction *models.Attraction) error {
	attraction.ID = primitive.NewObjectID()
	attraction.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, attraction)
	return err
}

// GetAttractionByID retrieves an attraction by ID
func (r *MongoAttractionRepository) GetAttractionByID(ctx context.Context, id string) (*models.Attraction, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid attraction ID format: %w", err)
	}

	var attraction models.Attraction
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&attraction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}

// ListAttractions retrieves attractions with optional category/city filters
func (r *MongoAttractionRepository) ListAttractions(ctx context.Context, category, city string) ([]models.Attraction, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if city != "" {
		filter["city"] = city
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attractions []models.Attraction
	if err = cursor.All(ctx, &attractions); err != nil {
		return nil, err
	}
	return attractions, nil
}

// CountAttractions returns the number of attraction documents
func (r *MongoAttractionRepository) CountAttractions(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
