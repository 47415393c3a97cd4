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

// ItineraryRepository defines the interface for itinerary data operations
type ItineraryRepository interface {
	CreateItinerary(ctx context.Context, itinerary *models.Itinerary) error
	GetItineraryByID(ctx context.Context, id string) (*models.Itinerary, error)
	GetItinerariesByUserID(ctx context.Context, userID uint) ([]models.Itinerary, error)
	GetPublicItineraries(ctx context.Context, skip, limit int64) ([]models.Itinerary, error)
	UpdateItinerary(ctx context.Context, itinerary *models.Itinerary) error
	DeleteItinerary(ctx context.Context, id string) error
}

// MongoItineraryRepository implements ItineraryRepository for MongoDB
type MongoItineraryRepository struct {
	collection *mongo.Collection
}

// NewMongoItineraryRepository creates a new MongoItineraryRepository
func NewMongoItineraryRepository(db *mongo.Database) *MongoItineraryRepository {
	return &MongoItineraryRepository{collection: db.Collection("itineraries")}
}

// CreateItinerary creates a new itinerary in MongoDB
func (r *MongoItineraryRepository) CreateItinerary(ctx context.Context, itinerary *models.Itinerary) error {
	itinerary.ID = primitive.NewObjectID()
	itinerary.CreatedAt = time.Now()
	itinerary.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, itinerary)
	return err
}

// GetItineraryByID retrieves an itinerary by ID from MongoDB
func (r *MongoItineraryRepository) GetItineraryByID(ctx context.Context, id string) (*models.Itinerary, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid itinerary ID format: %w", err)
	}

	var itinerary models.Itinerary
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&itinerary)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

// GetItinerariesByUserID retrieves itineraries authored by a user
func (r *MongoItineraryRepository) GetItinerariesByUserID(ctx context.Context, userID uint) ([]models.Itinerary, error) {
	var itineraries []models.Itinerary
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &itineraries); err != nil {
		return nil, err
	}
	return itineraries, nil
}

// GetPublicItineraries retrieves shared itineraries with pagination
func (r *MongoItineraryRepository) GetPublicItineraries(ctx context.Context, skip, limit int64) ([]models.Itinerary, error) {
	var itineraries []models.Itinerary
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"is_public": true}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &itineraries); err != nil {
		return nil, err
	}
	return itineraries, nil
}

// UpdateItinerary updates an existing itinerary in MongoDB
func (r *MongoItineraryRepository) UpdateItinerary(ctx context.Context, itinerary *models.Itinerary) error {
	itinerary.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":       itinerary.Title,
			"description": itinerary.Description,
			"destination": itinerary.Destination,
			"days":        itinerary.Days,
			"start_date":  itinerary.StartDate,
			"end_date":    itinerary.EndDate,
			"budget":      itinerary.Budget,
			"is_public":   itinerary.IsPublic,
			"updated_at":  itinerary.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": itinerary.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("itinerary not found")
	}
	return nil
}

// DeleteItinerary deletes an itinerary by ID from MongoDB
func (r *MongoItineraryRepository) DeleteItinerary(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid itinerary ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("itinerary not found")
	}
	return nil
}
