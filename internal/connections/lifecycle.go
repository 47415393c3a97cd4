package connections

import (
	"sort"
	"strings"
	"time"

	"github.com/wandermh/backend/internal/models"
)

// Participant is the identity slice of a user the lifecycle rules care
// about. Callers load the full user record; the rules only need id and role.
type Participant struct {
	ID   uint
	Role string
}

// ValidateCreate checks a proposed connection request and, when legal,
// returns the pending connection value to persist. Pure; the caller owns
// persistence.
//
// Rules: the two endpoints must differ, the initiator must be a tourist,
// the target a guide, and the message must contain something other than
// whitespace. The self check runs first so a tourist addressing themselves
// is told so rather than getting a role complaint.
func ValidateCreate(from, to Participant, message string, now time.Time) (models.Connection, error) {
	if from.ID == to.ID {
		return models.Connection{}, ErrSelfConnection
	}
	if from.Role != models.RoleTourist || to.Role != models.RoleGuide {
		return models.Connection{}, ErrInvalidRole
	}
	if strings.TrimSpace(message) == "" {
		return models.Connection{}, ErrEmptyMessage
	}
	return models.Connection{
		FromUserID: from.ID,
		ToUserID:   to.ID,
		Status:     models.StatusPending,
		Message:    message,
		CreatedAt:  now,
	}, nil
}

// ValidateTransition checks a proposed status change and, when legal,
// returns a copy of the connection with the new status. No other field
// changes. Pure; the caller persists the transition.
//
// Accept and reject belong to the targeted guide; withdraw belongs to the
// initiating tourist. Any transition off a non-pending connection fails
// with ErrAlreadyFinalized.
func ValidateTransition(conn models.Connection, actor Participant, newStatus string) (models.Connection, error) {
	switch newStatus {
	case models.StatusAccepted, models.StatusRejected:
		if actor.ID != conn.ToUserID {
			return models.Connection{}, ErrNotAuthorized
		}
	case models.StatusWithdrawn:
		if actor.ID != conn.FromUserID {
			return models.Connection{}, ErrNotAuthorized
		}
	default:
		return models.Connection{}, ErrInvalidTargetStatus
	}

	if conn.Status != models.StatusPending {
		return models.Connection{}, ErrAlreadyFinalized
	}

	conn.Status = newStatus
	return conn, nil
}

// ClassifyForViewer partitions connections into the viewer's inbox buckets.
// Each connection the viewer participates in lands in exactly one bucket;
// connections the viewer is no endpoint of are dropped. Pending requests
// are asymmetric: outgoing for the initiator, incoming for the target.
// Output order is deterministic: created_at ascending, id as tiebreak.
func ClassifyForViewer(conns []models.Connection, viewerID uint) models.ConnectionInbox {
	sorted := make([]models.Connection, len(conns))
	copy(sorted, conns)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID.Hex() < sorted[j].ID.Hex()
	})

	inbox := models.ConnectionInbox{
		OutgoingPending: []models.Connection{},
		IncomingPending: []models.Connection{},
		Accepted:        []models.Connection{},
		Rejected:        []models.Connection{},
		Withdrawn:       []models.Connection{},
	}

	for _, conn := range sorted {
		if conn.FromUserID != viewerID && conn.ToUserID != viewerID {
			continue
		}
		switch conn.Status {
		case models.StatusPending:
			if conn.FromUserID == viewerID {
				inbox.OutgoingPending = append(inbox.OutgoingPending, conn)
			} else {
				inbox.IncomingPending = append(inbox.IncomingPending, conn)
			}
		case models.StatusAccepted:
			inbox.Accepted = append(inbox.Accepted, conn)
		case models.StatusRejected:
			inbox.Rejected = append(inbox.Rejected, conn)
		case models.StatusWithdrawn:
			inbox.Withdrawn = append(inbox.Withdrawn, conn)
		}
	}
	return inbox
}
