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

// HotelRepository defines the interface for hotel data operations
type HotelRepository interface {
	CreateHotel(ctx context.Context, hotel *models.Hotel) error
	GetHotelByID(ctx context.Context, id string) (*models.Hotel, error)
	ListHotels(ctx context.Context, city string, maxPrice int) ([]models.Hotel, error)
	CountHotels(ctx context.Context) (int64, error)
}

// MongoHotelRepository implements HotelRepository for MongoDB
type MongoHotelRepository struct {
	collection *mongo.Collection
}

// NewMongoHotelRepository creates a new MongoHotelRepository
func NewMongoHotelRepository(db *mongo.Database) *MongoHotelRepository {
	return &MongoHotelRepository{collection: db.Collection("hotels")}
}

// CreateHotel inserts a new hotel
func (r *MongoHotelRepository) CreateHotel(ctx context.Context, hotel *models.Hotel) error {
	hotel.ID = primitive.NewObjectID()
	hotel.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, hotel)
	return err
}

// GetHotelByID retrieves a hotel by ID
func (r *MongoHotelRepository) GetHotelByID(ctx context.Context, id string) (*models.Hotel, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel ID format: %w", err)
	}

	var hotel models.Hotel
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&hotel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

// ListHotels retrieves hotels with optional city and price filters
func (r *MongoHotelRepository) ListHotels(ctx context.Context, city string, maxPrice int) ([]models.Hotel, error) {
	filter := bson.M{}
	if city != "" {
		filter["city"] = city
	}
	if maxPrice > 0 {
		filter["price_per_night"] = bson.M{"$lte": maxPrice}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err = cursor.All(ctx, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// CountHotels returns the number of hotel documents
func (r *MongoHotelRepository) CountHotels(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
