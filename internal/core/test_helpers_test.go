package core

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

func drainEvents(ch <-chan *Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

// echoTranslator prefixes every translation with the target code so tests can
// tell the outputs apart.
type echoTranslator struct{}

func (echoTranslator) TranslateAll(_ context.Context, codes []string, text string) map[string]string {
	out := make(map[string]string, len(codes))
	for _, code := range codes {
		out[code] = code + ":" + text
	}
	return out
}

// flakyTranslator degrades the failing codes to a fixed marker, the way a
// real adapter does, and echoes the rest.
type flakyTranslator struct {
	failing map[string]bool
	marker  string
}

func (f flakyTranslator) TranslateAll(_ context.Context, codes []string, text string) map[string]string {
	out := make(map[string]string, len(codes))
	for _, code := range codes {
		if f.failing[code] {
			out[code] = f.marker
			continue
		}
		out[code] = code + ":" + text
	}
	return out
}

// tableResolver resolves from a fixed name/code table, lowercased.
type tableResolver map[string]string

func (r tableResolver) Normalize(_ context.Context, input string) (string, bool) {
	code, ok := r[strings.ToLower(strings.TrimSpace(input))]
	return code, ok
}

func testResolver() tableResolver {
	return tableResolver{
		"en": "en", "english": "en",
		"fr": "fr", "french": "fr",
		"es": "es", "spanish": "es",
		"de": "de", "german": "de",
	}
}

// recordingModeration implements both the gate and the store. Blocked pairs
// are keyed "userID/senderName".
type recordingModeration struct {
	blocked map[string]bool
	reports []string
	err     error
}

func newRecordingModeration() *recordingModeration {
	return &recordingModeration{blocked: make(map[string]bool)}
}

func (m *recordingModeration) key(userID int64, name string) string {
	return fmt.Sprintf("%d/%s", userID, name)
}

func (m *recordingModeration) IsBlocked(_ context.Context, userID int64, senderName string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.blocked[m.key(userID, senderName)], nil
}

func (m *recordingModeration) Block(_ context.Context, userID int64, username string) error {
	if m.err != nil {
		return m.err
	}
	m.blocked[m.key(userID, username)] = true
	return nil
}

func (m *recordingModeration) Unblock(_ context.Context, userID int64, username string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.blocked, m.key(userID, username))
	return nil
}

func (m *recordingModeration) Report(_ context.Context, _ int64, username, reason, _ string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.reports = append(m.reports, username+": "+reason)
	return "report-1", nil
}

func newTestHub(mod *recordingModeration) *Hub {
	return NewHub(echoTranslator{}, testResolver(), mod, mod, nil, Options{})
}
