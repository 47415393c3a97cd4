package repositories

import (
	"context"
	"time"

	"github.com/wandermh/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoConnectionRepository persists connection records in MongoDB. Status
// transition legality lives in the connections package; this layer only
// guarantees that the conditional status write is atomic.
type MongoConnectionRepository struct {
	collection *mongo.Collection
}

// NewMongoConnectionRepository creates a new MongoConnectionRepository
func NewMongoConnectionRepository(db *mongo.Database) *MongoConnectionRepository {
	return &MongoConnectionRepository{collection: db.Collection("connections")}
}

// Create inserts a new connection record
func (r *MongoConnectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	conn.ID = primitive.NewObjectID()
	if conn.CreatedAt.IsZero() {
		conn.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, conn)
	return err
}

// GetByID retrieves a connection by its hex id. Returns (nil, nil) when no
// such record exists; a malformed id counts as not found.
func (r *MongoConnectionRepository) GetByID(ctx context.Context, id string) (*models.Connection, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var conn models.Connection
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&conn)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &conn, nil
}

// ListByParticipant retrieves every connection where the user is either
// endpoint. No ordering guarantee; callers sort.
func (r *MongoConnectionRepository) ListByParticipant(ctx context.Context, userID uint) ([]models.Connection, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"from_user_id": userID},
		bson.M{"to_user_id": userID},
	}}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conns []models.Connection
	if err = cursor.All(ctx, &conns); err != nil {
		return nil, err
	}
	return conns, nil
}

// UpdateStatusIfPending sets the status only while the record is still
// pending. The status filter makes the write a compare-and-swap: of two
// concurrent responders, exactly one matches and the loser gets false.
func (r *MongoConnectionRepository) UpdateStatusIfPending(ctx context.Context, id, status string) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objID, "status": models.StatusPending},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}
