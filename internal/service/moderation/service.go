// Package moderation implements block and report operations over the store.
package moderation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/babelchat/babelchat-server/internal/store"
)

var (
	// ErrUserNotFound is returned when the target account does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrSelfTarget is returned when a user blocks or reports themselves.
	ErrSelfTarget = errors.New("cannot target yourself")
)

// Service provides moderation operations. It implements the hub's
// ModerationGate and ModerationStore interfaces.
type Service struct {
	store store.Store
	log   *zerolog.Logger
}

// NewService creates a moderation service over the given store.
func NewService(st store.Store, logger *zerolog.Logger) *Service {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Service{store: st, log: logger}
}

// Block adds username to the caller's block list. The target must be a
// registered account other than the caller's own.
func (s *Service) Block(ctx context.Context, userID int64, username string) error {
	if err := s.checkTarget(ctx, userID, username); err != nil {
		return err
	}
	if err := s.store.AddBlock(ctx, userID, username); err != nil {
		return fmt.Errorf("add block: %w", err)
	}
	s.log.Info().Int64("user_id", userID).Str("target", username).Msg("user blocked")
	return nil
}

// Unblock removes username from the caller's block list. Unblocking a name
// that was never blocked succeeds.
func (s *Service) Unblock(ctx context.Context, userID int64, username string) error {
	if err := s.store.RemoveBlock(ctx, userID, username); err != nil {
		return fmt.Errorf("remove block: %w", err)
	}
	s.log.Info().Int64("user_id", userID).Str("target", username).Msg("user unblocked")
	return nil
}

// IsBlocked reports whether userID has blocked the given display name.
func (s *Service) IsBlocked(ctx context.Context, userID int64, username string) (bool, error) {
	return s.store.IsBlocked(ctx, userID, username)
}

// ListBlocked returns the caller's block list.
func (s *Service) ListBlocked(ctx context.Context, userID int64) ([]string, error) {
	return s.store.ListBlocked(ctx, userID)
}

// Report files a report against username and returns the report id.
func (s *Service) Report(ctx context.Context, userID int64, username, reason, messageID string) (string, error) {
	if err := s.checkTarget(ctx, userID, username); err != nil {
		return "", err
	}
	report, err := s.store.AddReport(ctx, userID, username, reason, messageID)
	if err != nil {
		return "", fmt.Errorf("add report: %w", err)
	}
	s.log.Info().Str("report_id", report.ID).Int64("reporter_id", userID).Str("target", username).Msg("report filed")
	return report.ID, nil
}

// checkTarget verifies the target exists and is not the caller.
func (s *Service) checkTarget(ctx context.Context, userID int64, username string) error {
	target, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("lookup target: %w", err)
	}
	if target.ID == userID {
		return ErrSelfTarget
	}
	return nil
}
