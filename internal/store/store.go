package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a queried record does not exist.
var ErrNotFound = errors.New("not found")

// User represents a registered account.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Report represents a filed moderation report.
type Report struct {
	ID               string
	ReporterID       int64
	ReportedUsername string
	Reason           string
	MessageID        string
	CreatedAt        time.Time
}

// UserStore manages registered accounts.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

// BlockStore manages per-user block lists, keyed by blocked display name.
type BlockStore interface {
	AddBlock(ctx context.Context, userID int64, username string) error
	RemoveBlock(ctx context.Context, userID int64, username string) error
	IsBlocked(ctx context.Context, userID int64, username string) (bool, error)
	ListBlocked(ctx context.Context, userID int64) ([]string, error)
}

// ReportStore persists moderation reports.
type ReportStore interface {
	AddReport(ctx context.Context, reporterID int64, username, reason, messageID string) (*Report, error)
}

// Store is the full persistence interface.
type Store interface {
	UserStore
	BlockStore
	ReportStore
	Close() error
}
