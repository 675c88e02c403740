package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/babelchat/babelchat-server/internal/store"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestUserRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, "alice", "hash")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.ID == 0 || created.Username != "alice" || created.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("created_at not populated")
	}

	byID, err := s.GetUserByID(ctx, created.ID)
	if err != nil || byID.Username != "alice" {
		t.Fatalf("GetUserByID = %+v, %v", byID, err)
	}

	byName, err := s.GetUserByUsername(ctx, "alice")
	if err != nil || byName.ID != created.ID {
		t.Fatalf("GetUserByUsername = %+v, %v", byName, err)
	}
}

func TestUserNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.GetUserByID(ctx, 999); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetUserByUsername(ctx, "nobody"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserDuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, "alice", "hash"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := s.CreateUser(ctx, "alice", "hash2"); err == nil {
		t.Fatal("expected unique constraint violation")
	}
}

func TestBlocks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	blocked, err := s.IsBlocked(ctx, 1, "bob")
	if err != nil || blocked {
		t.Fatalf("IsBlocked before block = %v, %v", blocked, err)
	}

	if err := s.AddBlock(ctx, 1, "bob"); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	// Re-blocking is a no-op, not an error.
	if err := s.AddBlock(ctx, 1, "bob"); err != nil {
		t.Fatalf("duplicate AddBlock: %v", err)
	}

	blocked, err = s.IsBlocked(ctx, 1, "bob")
	if err != nil || !blocked {
		t.Fatalf("IsBlocked after block = %v, %v", blocked, err)
	}

	// Blocks are per blocker.
	blocked, err = s.IsBlocked(ctx, 2, "bob")
	if err != nil || blocked {
		t.Fatalf("IsBlocked for other user = %v, %v", blocked, err)
	}

	if err := s.RemoveBlock(ctx, 1, "bob"); err != nil {
		t.Fatalf("RemoveBlock: %v", err)
	}
	if err := s.RemoveBlock(ctx, 1, "bob"); err != nil {
		t.Fatalf("RemoveBlock of absent entry: %v", err)
	}

	blocked, err = s.IsBlocked(ctx, 1, "bob")
	if err != nil || blocked {
		t.Fatalf("IsBlocked after unblock = %v, %v", blocked, err)
	}
}

func TestListBlocked(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	names, err := s.ListBlocked(ctx, 1)
	if err != nil {
		t.Fatalf("ListBlocked: %v", err)
	}
	if names == nil || len(names) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", names)
	}

	for _, name := range []string{"carol", "bob", "dave"} {
		if err := s.AddBlock(ctx, 1, name); err != nil {
			t.Fatalf("AddBlock(%s): %v", name, err)
		}
	}
	s.AddBlock(ctx, 2, "eve")

	names, err = s.ListBlocked(ctx, 1)
	if err != nil {
		t.Fatalf("ListBlocked: %v", err)
	}
	want := []string{"bob", "carol", "dave"}
	if len(names) != len(want) {
		t.Fatalf("ListBlocked = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ListBlocked = %v, want %v", names, want)
		}
	}
}

func TestAddReport(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	report, err := s.AddReport(ctx, 1, "bob", "spamming the room", "msg-123")
	if err != nil {
		t.Fatalf("AddReport: %v", err)
	}
	if report.ID == "" {
		t.Fatal("report id not generated")
	}
	if report.ReporterID != 1 || report.ReportedUsername != "bob" || report.Reason != "spamming the room" {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.MessageID != "msg-123" {
		t.Fatalf("message id = %q", report.MessageID)
	}

	// Without a message id the column is NULL and reads back empty.
	report, err = s.AddReport(ctx, 1, "bob", "still spamming", "")
	if err != nil {
		t.Fatalf("AddReport without message id: %v", err)
	}
	if report.MessageID != "" {
		t.Fatalf("message id = %q, want empty", report.MessageID)
	}
}
