package models

import "time"

// SavedAttraction represents a bookmarked attraction by a user
type SavedAttraction struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_attraction_save"`
	AttractionID string    `json:"attraction_id" gorm:"index;uniqueIndex:idx_user_attraction_save"`
	CreatedAt    time.Time `json:"created_at"`
}
