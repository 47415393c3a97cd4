package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItineraryDay is a single day's plan inside an itinerary
type ItineraryDay struct {
	Day    int      `json:"day" bson:"day"`
	Title  string   `json:"title" bson:"title"`
	Places []string `json:"places" bson:"places"`
	Notes  string   `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Itinerary represents a user-authored trip plan (MongoDB). Public
// itineraries are listed on the shared feed and readable by anyone.
type Itinerary struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      uint               `json:"user_id" bson:"user_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Destination string             `json:"destination" bson:"destination"`
	Days        []ItineraryDay     `json:"days" bson:"days"`
	StartDate   time.Time          `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate     time.Time          `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Budget      string             `json:"budget,omitempty" bson:"budget,omitempty"`
	IsPublic    bool               `json:"is_public" bson:"is_public"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type CreateItineraryRequest struct {
	Title       string         `json:"title" validate:"required,min=2,max=100"`
	Description string         `json:"description,omitempty"`
	Destination string         `json:"destination" validate:"required"`
	Days        []ItineraryDay `json:"days" validate:"omitempty,dive"`
	StartDate   time.Time      `json:"start_date,omitempty"`
	EndDate     time.Time      `json:"end_date,omitempty"`
	Budget      string         `json:"budget,omitempty"`
	IsPublic    bool           `json:"is_public"`
}

type UpdateItineraryRequest struct {
	Title       string         `json:"title,omitempty" validate:"omitempty,min=2,max=100"`
	Description string         `json:"description,omitempty"`
	Destination string         `json:"destination,omitempty"`
	Days        []ItineraryDay `json:"days,omitempty" validate:"omitempty,dive"`
	StartDate   time.Time      `json:"start_date,omitempty"`
	EndDate     time.Time      `json:"end_date,omitempty"`
	Budget      string         `json:"budget,omitempty"`
	IsPublic    *bool          `json:"is_public,omitempty"`
}
