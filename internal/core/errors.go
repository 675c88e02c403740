package core

import "errors"

// Error codes for domain errors surfaced to clients.
const (
	ErrCodeUsage           = "usage"
	ErrCodeUnknownLanguage = "unknown_language"
	ErrCodeLanguageLimit   = "language_limit"
	ErrCodeAuthRequired    = "auth_required"
	ErrCodeMessageTooLong  = "message_too_long"
	ErrCodeInternal        = "internal"
)

var (
	ErrLanguageLimit = errors.New("language limit reached")
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
