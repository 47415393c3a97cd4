package models

import "time"

// Notification types
const (
	NotifConnectionRequest  = "connection_request"
	NotifConnectionAccepted = "connection_accepted"
	NotifConnectionRejected = "connection_rejected"
)

// Notification represents a user notification (PostgreSQL)
type Notification struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Type         string    `json:"type" gorm:"size:30;index"`
	ActorID      uint      `json:"actor_id" gorm:"index"`
	RecipientID  uint      `json:"recipient_id" gorm:"index"`
	ConnectionID string    `json:"connection_id"` // Mongo hex id of the related connection
	Message      string    `json:"message"`
	IsRead       bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}
