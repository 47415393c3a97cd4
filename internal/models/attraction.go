package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attraction represents a tourist attraction in Maharashtra (MongoDB)
type Attraction struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"` // fort, beach, temple, hill-station, wildlife, caves
	City        string             `json:"city" bson:"city"`
	District    string             `json:"district" bson:"district"`
	Latitude    float64            `json:"latitude" bson:"latitude"`
	Longitude   float64            `json:"longitude" bson:"longitude"`
	ImageURL    string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	BestSeason  string             `json:"best_season,omitempty" bson:"best_season,omitempty"`
	EntryFee    int                `json:"entry_fee" bson:"entry_fee"` // in rupees, 0 = free
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// AttractionWithDistance decorates an attraction with its distance from a
// query point, for nearby lookups
type AttractionWithDistance struct {
	Attraction
	DistanceKm float64 `json:"distance_km"`
}
