package connections

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wandermh/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

type fakeUserLookup struct {
	users map[uint]*models.User
}

func (f *fakeUserLookup) GetUserByID(id uint) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeStore struct {
	conns      map[string]models.Connection
	updateFunc func(ctx context.Context, id, status string) (bool, error)
}

func newFakeStore() *fakeStore {
	return &fakeStore{conns: make(map[string]models.Connection)}
}

func (f *fakeStore) Create(ctx context.Context, conn *models.Connection) error {
	conn.ID = primitive.NewObjectID()
	f.conns[conn.ID.Hex()] = *conn
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*models.Connection, error) {
	if conn, ok := f.conns[id]; ok {
		c := conn
		return &c, nil
	}
	return nil, nil
}

func (f *fakeStore) ListByParticipant(ctx context.Context, userID uint) ([]models.Connection, error) {
	var out []models.Connection
	for _, conn := range f.conns {
		if conn.FromUserID == userID || conn.ToUserID == userID {
			out = append(out, conn)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateStatusIfPending(ctx context.Context, id, status string) (bool, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, id, status)
	}
	conn, ok := f.conns[id]
	if !ok || conn.Status != models.StatusPending {
		return false, nil
	}
	conn.Status = status
	f.conns[id] = conn
	return true, nil
}

func newTestService(store Store) *Service {
	lookup := &fakeUserLookup{users: map[uint]*models.User{
		1: {ID: 1, Name: "Asha", Role: models.RoleTourist, Phone: "+911234567890", City: "Mumbai"},
		2: {ID: 2, Name: "Ganesh", Role: models.RoleGuide, Phone: "+919876543210", City: "Pune"},
		3: {ID: 3, Name: "Kiran", Role: models.RoleTourist, City: "Nashik"},
	}}
	svc := NewService(lookup, store)
	svc.clock = func() time.Time {
		return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestRequestAndListForBothViewers(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	detail, err := svc.Request(ctx, 1, 2, "Hi", "3 day fort trek", "Rs 5000")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if detail.FromUserID != 1 || detail.ToUserID != 2 || detail.Status != models.StatusPending {
		t.Fatalf("unexpected connection %+v", detail.Connection)
	}
	if detail.FromUser.Name != "Asha" || detail.ToUser.Name != "Ganesh" {
		t.Fatalf("expected enriched participant summaries, got %+v / %+v", detail.FromUser, detail.ToUser)
	}
	if detail.ToUser.ChatLink != "https://wa.me/919876543210" {
		t.Fatalf("expected WhatsApp deep-link for the guide, got %q", detail.ToUser.ChatLink)
	}

	// Tourist sees it as outgoing, guide as incoming.
	inbox, err := svc.ListForViewer(ctx, 1)
	if err != nil {
		t.Fatalf("list for tourist: %v", err)
	}
	if len(inbox.OutgoingPending) != 1 || len(inbox.IncomingPending) != 0 {
		t.Fatalf("tourist inbox: %d outgoing, %d incoming", len(inbox.OutgoingPending), len(inbox.IncomingPending))
	}

	inbox, err = svc.ListForViewer(ctx, 2)
	if err != nil {
		t.Fatalf("list for guide: %v", err)
	}
	if len(inbox.IncomingPending) != 1 || len(inbox.OutgoingPending) != 0 {
		t.Fatalf("guide inbox: %d outgoing, %d incoming", len(inbox.OutgoingPending), len(inbox.IncomingPending))
	}
}

func TestRequestValidationFailures(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	tests := []struct {
		name    string
		from    uint
		to      uint
		message string
		want    error
	}{
		{"self connection", 1, 1, "Hi", ErrSelfConnection},
		{"tourist to tourist", 1, 3, "Hi", ErrInvalidRole},
		{"guide to self", 2, 2, "Hi", ErrSelfConnection},
		{"empty message", 1, 2, "  ", ErrEmptyMessage},
		{"unknown target", 1, 99, "Hi", ErrNotFound},
		{"unknown initiator", 98, 2, "Hi", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Request(ctx, tt.from, tt.to, tt.message, "", "")
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if len(store.conns) != 0 {
		t.Fatalf("expected no record persisted after failed requests, got %d", len(store.conns))
	}
}

func TestRespondAcceptThenFinalized(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	detail, err := svc.Request(ctx, 1, 2, "Hi", "", "")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	id := detail.ID.Hex()

	conn, err := svc.Respond(ctx, id, 2, models.StatusAccepted)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if conn.Status != models.StatusAccepted {
		t.Fatalf("expected accepted, got %q", conn.Status)
	}

	// Both viewers now see it under accepted, nowhere pending.
	for _, viewer := range []uint{1, 2} {
		inbox, err := svc.ListForViewer(ctx, viewer)
		if err != nil {
			t.Fatalf("list for %d: %v", viewer, err)
		}
		if len(inbox.Accepted) != 1 || len(inbox.OutgoingPending)+len(inbox.IncomingPending) != 0 {
			t.Fatalf("viewer %d: expected accepted only, got %+v", viewer, inbox)
		}
	}

	// A second transition attempt fails and the status stays accepted.
	if _, err := svc.Respond(ctx, id, 2, models.StatusRejected); !errors.Is(err, ErrAlreadyFinalized) {
		t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
	}
	stored := store.conns[id]
	if stored.Status != models.StatusAccepted {
		t.Fatalf("status changed after failed transition: %q", stored.Status)
	}
}

func TestRespondAuthorization(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	detail, err := svc.Request(ctx, 1, 2, "Hi", "", "")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	id := detail.ID.Hex()

	// The initiating tourist may not accept their own request.
	if _, err := svc.Respond(ctx, id, 1, models.StatusAccepted); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}

	// But they may withdraw it.
	conn, err := svc.Respond(ctx, id, 1, models.StatusWithdrawn)
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if conn.Status != models.StatusWithdrawn {
		t.Fatalf("expected withdrawn, got %q", conn.Status)
	}
}

func TestRespondNotFound(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	if _, err := svc.Respond(ctx, primitive.NewObjectID().Hex(), 2, models.StatusAccepted); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ListForViewer(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown viewer, got %v", err)
	}
}

func TestRespondRaceLoserGetsAlreadyFinalized(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	detail, err := svc.Request(ctx, 1, 2, "Hi", "", "")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	id := detail.ID.Hex()

	// Simulate a concurrent responder finalizing between our read and the
	// conditional write: the store reports the write as not applied.
	store.updateFunc = func(ctx context.Context, id, status string) (bool, error) {
		return false, nil
	}

	if _, err := svc.Respond(ctx, id, 2, models.StatusAccepted); !errors.Is(err, ErrAlreadyFinalized) {
		t.Fatalf("expected ErrAlreadyFinalized for the race loser, got %v", err)
	}
}

func TestRespondInvalidTargetStatus(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	detail, err := svc.Request(ctx, 1, 2, "Hi", "", "")
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	if _, err := svc.Respond(ctx, detail.ID.Hex(), 2, "pending"); !errors.Is(err, ErrInvalidTargetStatus) {
		t.Fatalf("expected ErrInvalidTargetStatus, got %v", err)
	}
}
