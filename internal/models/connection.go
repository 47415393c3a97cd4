package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Connection lifecycle states. Pending is the only non-terminal state:
// the targeted guide may accept or reject, the initiating tourist may
// withdraw. A terminal connection never changes again.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusWithdrawn = "withdrawn"
)

// Connection represents a tourist-to-guide contact request (MongoDB).
// Every field except Status is write-once at creation.
type Connection struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FromUserID  uint               `json:"from_user_id" bson:"from_user_id"`
	ToUserID    uint               `json:"to_user_id" bson:"to_user_id"`
	Status      string             `json:"status" bson:"status"`
	Message     string             `json:"message" bson:"message"`
	TripDetails string             `json:"trip_details,omitempty" bson:"trip_details,omitempty"`
	Budget      string             `json:"budget,omitempty" bson:"budget,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// CreateConnectionRequest defines the request body for sending a connection
// request. The initiator is the authenticated user.
type CreateConnectionRequest struct {
	ToUserID    uint   `json:"to_user_id" validate:"required"`
	Message     string `json:"message" validate:"required"`
	TripDetails string `json:"trip_details,omitempty"`
	Budget      string `json:"budget,omitempty"`
}

// UpdateConnectionRequest defines the request body for accepting, rejecting
// or withdrawing a connection request
type UpdateConnectionRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected withdrawn"`
}

// ConnectionDetail enriches a connection with participant summaries for
// presentation
type ConnectionDetail struct {
	Connection
	FromUser UserCompact `json:"from_user"`
	ToUser   UserCompact `json:"to_user"`
}

// ConnectionInbox is the role-aware view of a user's connections. A pending
// connection shows up as outgoing for its tourist and incoming for its
// guide, never as both for the same viewer.
type ConnectionInbox struct {
	OutgoingPending []Connection `json:"outgoing_pending"`
	IncomingPending []Connection `json:"incoming_pending"`
	Accepted        []Connection `json:"accepted"`
	Rejected        []Connection `json:"rejected"`
	Withdrawn       []Connection `json:"withdrawn"`
}
