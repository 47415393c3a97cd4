package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hotel represents a hotel listing (MongoDB)
type Hotel struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	City          string             `json:"city" bson:"city"`
	Address       string             `json:"address" bson:"address"`
	PricePerNight int                `json:"price_per_night" bson:"price_per_night"` // in rupees
	Rating        float64            `json:"rating" bson:"rating"`                   // 0-5
	Latitude      float64            `json:"latitude" bson:"latitude"`
	Longitude     float64            `json:"longitude" bson:"longitude"`
	Amenities     []string           `json:"amenities,omitempty" bson:"amenities,omitempty"`
	ImageURL      string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

// HotelWithDistance decorates a hotel with its distance from a query point
type HotelWithDistance struct {
	Hotel
	DistanceKm float64 `json:"distance_km"`
}
