package core

import "context"

// ModerationGate answers block queries against the externally owned
// block-relationship store. Blocks are keyed by the sender's display name.
type ModerationGate interface {
	IsBlocked(ctx context.Context, userID int64, senderName string) (bool, error)
}

// ModerationStore persists block and report mutations. The hub treats these
// as fire-and-forget side effects reported back to the sender only.
type ModerationStore interface {
	Block(ctx context.Context, userID int64, username string) error
	Unblock(ctx context.Context, userID int64, username string) error
	Report(ctx context.Context, userID int64, username, reason, messageID string) (string, error)
}
