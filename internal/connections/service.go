package connections

import (
	"context"
	"time"

	"github.com/wandermh/backend/internal/models"
)

// UserLookup is the slice of the user repository the service needs
type UserLookup interface {
	GetUserByID(id uint) (*models.User, error)
}

// Store is the persistence contract for connection records. Implemented by
// repositories.MongoConnectionRepository; tests use in-memory fakes.
type Store interface {
	Create(ctx context.Context, conn *models.Connection) error
	GetByID(ctx context.Context, id string) (*models.Connection, error)
	ListByParticipant(ctx context.Context, userID uint) ([]models.Connection, error)
	// UpdateStatusIfPending atomically sets the status only while the record
	// is still pending, and reports whether the write was applied. A false
	// result with a nil error means another caller finalized the record
	// first (or the status changed between read and write).
	UpdateStatusIfPending(ctx context.Context, id, status string) (bool, error)
}

// Service orchestrates the lifecycle rules against the store. It is the
// only entry point external callers use; handlers never re-derive the
// role or authorization predicates themselves.
type Service struct {
	users UserLookup
	store Store
	clock func() time.Time
}

func NewService(users UserLookup, store Store) *Service {
	return &Service{users: users, store: store, clock: time.Now}
}

func (s *Service) participant(id uint) (Participant, *models.User, error) {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		return Participant{}, nil, ErrNotFound
	}
	return Participant{ID: user.ID, Role: user.Role}, user, nil
}

// Request creates a pending connection from a tourist to a guide and
// returns it enriched with both participant summaries.
func (s *Service) Request(ctx context.Context, fromUserID, toUserID uint, message, tripDetails, budget string) (*models.ConnectionDetail, error) {
	from, fromUser, err := s.participant(fromUserID)
	if err != nil {
		return nil, err
	}
	to, toUser, err := s.participant(toUserID)
	if err != nil {
		return nil, err
	}

	conn, err := ValidateCreate(from, to, message, s.clock())
	if err != nil {
		return nil, err
	}
	conn.TripDetails = tripDetails
	conn.Budget = budget

	if err := s.store.Create(ctx, &conn); err != nil {
		return nil, err
	}

	return &models.ConnectionDetail{
		Connection: conn,
		FromUser:   fromUser.ToCompact(),
		ToUser:     toUser.ToCompact(),
	}, nil
}

// Respond applies a terminal transition (accept/reject by the guide,
// withdraw by the tourist). The store write is conditional on the record
// still being pending, so a raced duplicate surfaces ErrAlreadyFinalized
// rather than silently winning.
func (s *Service) Respond(ctx context.Context, connectionID string, actingUserID uint, newStatus string) (*models.Connection, error) {
	actor, _, err := s.participant(actingUserID)
	if err != nil {
		return nil, err
	}

	conn, err := s.store.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, ErrNotFound
	}

	updated, err := ValidateTransition(*conn, actor, newStatus)
	if err != nil {
		return nil, err
	}

	applied, err := s.store.UpdateStatusIfPending(ctx, connectionID, newStatus)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Lost the race: someone else finalized between our read and write.
		return nil, ErrAlreadyFinalized
	}

	return &updated, nil
}

// ListForViewer returns the viewer's classified connection inbox. The
// viewer must exist.
func (s *Service) ListForViewer(ctx context.Context, viewerID uint) (*models.ConnectionInbox, error) {
	if _, _, err := s.participant(viewerID); err != nil {
		return nil, err
	}

	conns, err := s.store.ListByParticipant(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	inbox := ClassifyForViewer(conns, viewerID)
	return &inbox, nil
}
