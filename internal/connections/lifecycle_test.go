package connections

import (
	"errors"
	"testing"
	"time"

	"github.com/wandermh/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	tourist      = Participant{ID: 1, Role: models.RoleTourist}
	guide        = Participant{ID: 2, Role: models.RoleGuide}
	otherTourist = Participant{ID: 3, Role: models.RoleTourist}
	otherGuide   = Participant{ID: 4, Role: models.RoleGuide}
)

func TestValidateCreateSuccess(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	conn, err := ValidateCreate(tourist, guide, "Looking for a fort trek next weekend", now)
	if err != nil {
		t.Fatalf("validate create: %v", err)
	}
	if conn.FromUserID != 1 || conn.ToUserID != 2 {
		t.Fatalf("expected endpoints 1->2, got %d->%d", conn.FromUserID, conn.ToUserID)
	}
	if conn.Status != models.StatusPending {
		t.Fatalf("expected pending status, got %q", conn.Status)
	}
	if !conn.CreatedAt.Equal(now) {
		t.Fatalf("expected created_at %v, got %v", now, conn.CreatedAt)
	}
}

func TestValidateCreateFailures(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		from    Participant
		to      Participant
		message string
		want    error
	}{
		{"guide as initiator", guide, otherGuide, "hi", ErrInvalidRole},
		{"tourist as target", tourist, otherTourist, "hi", ErrInvalidRole},
		{"guide to self", guide, guide, "hi", ErrSelfConnection},
		{"self connection", tourist, Participant{ID: 1, Role: models.RoleTourist}, "hi", ErrSelfConnection},
		{"empty message", tourist, guide, "", ErrEmptyMessage},
		{"whitespace message", tourist, guide, "   \t\n", ErrEmptyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateCreate(tt.from, tt.to, tt.message, now)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func pendingConnection() models.Connection {
	return models.Connection{
		ID:         primitive.NewObjectID(),
		FromUserID: 1,
		ToUserID:   2,
		Status:     models.StatusPending,
		Message:    "Hi",
		CreatedAt:  time.Now(),
	}
}

func TestValidateTransitionByGuide(t *testing.T) {
	for _, status := range []string{models.StatusAccepted, models.StatusRejected} {
		conn := pendingConnection()
		updated, err := ValidateTransition(conn, guide, status)
		if err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("expected status %q, got %q", status, updated.Status)
		}
		// No other field changes.
		if updated.ID != conn.ID || updated.FromUserID != conn.FromUserID ||
			updated.ToUserID != conn.ToUserID || updated.Message != conn.Message ||
			!updated.CreatedAt.Equal(conn.CreatedAt) {
			t.Fatal("transition modified a field other than status")
		}
	}
}

func TestValidateTransitionWithdrawByTourist(t *testing.T) {
	conn := pendingConnection()

	updated, err := ValidateTransition(conn, tourist, models.StatusWithdrawn)
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if updated.Status != models.StatusWithdrawn {
		t.Fatalf("expected withdrawn, got %q", updated.Status)
	}

	// The guide may not withdraw on the tourist's behalf.
	if _, err := ValidateTransition(conn, guide, models.StatusWithdrawn); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for guide withdraw, got %v", err)
	}
}

func TestValidateTransitionAuthorization(t *testing.T) {
	conn := pendingConnection()

	// The initiating tourist may not accept or reject.
	for _, status := range []string{models.StatusAccepted, models.StatusRejected} {
		if _, err := ValidateTransition(conn, tourist, status); !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized for tourist %s, got %v", status, err)
		}
	}

	// A third party may do nothing at all.
	for _, status := range []string{models.StatusAccepted, models.StatusRejected, models.StatusWithdrawn} {
		if _, err := ValidateTransition(conn, otherGuide, status); !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized for third party %s, got %v", status, err)
		}
	}
}

func TestValidateTransitionTerminalStates(t *testing.T) {
	for _, terminal := range []string{models.StatusAccepted, models.StatusRejected, models.StatusWithdrawn} {
		conn := pendingConnection()
		conn.Status = terminal

		for _, next := range []string{models.StatusAccepted, models.StatusRejected} {
			if _, err := ValidateTransition(conn, guide, next); !errors.Is(err, ErrAlreadyFinalized) {
				t.Fatalf("expected ErrAlreadyFinalized for %s -> %s, got %v", terminal, next, err)
			}
		}
		if _, err := ValidateTransition(conn, tourist, models.StatusWithdrawn); !errors.Is(err, ErrAlreadyFinalized) {
			t.Fatalf("expected ErrAlreadyFinalized for %s -> withdrawn, got %v", terminal, err)
		}
	}
}

func TestValidateTransitionInvalidTarget(t *testing.T) {
	conn := pendingConnection()

	for _, status := range []string{models.StatusPending, "cancelled", "", "ACCEPTED"} {
		if _, err := ValidateTransition(conn, guide, status); !errors.Is(err, ErrInvalidTargetStatus) {
			t.Fatalf("expected ErrInvalidTargetStatus for %q, got %v", status, err)
		}
	}
}

func connAt(from, to uint, status string, created time.Time) models.Connection {
	return models.Connection{
		ID:         primitive.NewObjectID(),
		FromUserID: from,
		ToUserID:   to,
		Status:     status,
		Message:    "Hi",
		CreatedAt:  created,
	}
}

func TestClassifyForViewerBuckets(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	conns := []models.Connection{
		connAt(1, 2, models.StatusPending, base.Add(3*time.Hour)),
		connAt(1, 2, models.StatusAccepted, base.Add(2*time.Hour)),
		connAt(1, 4, models.StatusRejected, base.Add(1*time.Hour)),
		connAt(1, 4, models.StatusWithdrawn, base.Add(4*time.Hour)),
		connAt(3, 2, models.StatusPending, base),
	}

	// Tourist viewpoint: pending shows as outgoing only.
	inbox := ClassifyForViewer(conns, 1)
	if len(inbox.OutgoingPending) != 1 || len(inbox.IncomingPending) != 0 {
		t.Fatalf("tourist: expected 1 outgoing / 0 incoming, got %d/%d",
			len(inbox.OutgoingPending), len(inbox.IncomingPending))
	}
	if len(inbox.Accepted) != 1 || len(inbox.Rejected) != 1 || len(inbox.Withdrawn) != 1 {
		t.Fatalf("tourist: unexpected terminal buckets %d/%d/%d",
			len(inbox.Accepted), len(inbox.Rejected), len(inbox.Withdrawn))
	}

	// Guide viewpoint: the same pending connection is incoming, and the
	// other tourist's request shows up too.
	inbox = ClassifyForViewer(conns, 2)
	if len(inbox.OutgoingPending) != 0 || len(inbox.IncomingPending) != 2 {
		t.Fatalf("guide: expected 0 outgoing / 2 incoming, got %d/%d",
			len(inbox.OutgoingPending), len(inbox.IncomingPending))
	}
	if len(inbox.Accepted) != 1 {
		t.Fatalf("guide: expected 1 accepted, got %d", len(inbox.Accepted))
	}
	// Connections the guide is no endpoint of are dropped.
	if len(inbox.Rejected) != 0 || len(inbox.Withdrawn) != 0 {
		t.Fatalf("guide: saw connections for other users: %d rejected, %d withdrawn",
			len(inbox.Rejected), len(inbox.Withdrawn))
	}
}

func TestClassifyForViewerPartition(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	conns := []models.Connection{
		connAt(1, 2, models.StatusPending, base),
		connAt(1, 2, models.StatusAccepted, base.Add(time.Hour)),
		connAt(1, 2, models.StatusRejected, base.Add(2*time.Hour)),
		connAt(1, 2, models.StatusWithdrawn, base.Add(3*time.Hour)),
	}

	for _, viewer := range []uint{1, 2} {
		inbox := ClassifyForViewer(conns, viewer)
		total := len(inbox.OutgoingPending) + len(inbox.IncomingPending) +
			len(inbox.Accepted) + len(inbox.Rejected) + len(inbox.Withdrawn)
		if total != len(conns) {
			t.Fatalf("viewer %d: expected every connection in exactly one bucket, got %d of %d",
				viewer, total, len(conns))
		}
	}
}

func TestClassifyForViewerDeterministicOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	third := connAt(1, 2, models.StatusAccepted, base.Add(2*time.Hour))
	first := connAt(1, 2, models.StatusAccepted, base)
	second := connAt(1, 2, models.StatusAccepted, base.Add(time.Hour))

	inbox := ClassifyForViewer([]models.Connection{third, first, second}, 1)
	if len(inbox.Accepted) != 3 {
		t.Fatalf("expected 3 accepted, got %d", len(inbox.Accepted))
	}
	for i, want := range []models.Connection{first, second, third} {
		if inbox.Accepted[i].ID != want.ID {
			t.Fatalf("position %d: expected %s, got %s", i, want.ID.Hex(), inbox.Accepted[i].ID.Hex())
		}
	}
}
