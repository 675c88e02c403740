package core

import "time"

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventLanguages carries the current global language list.
	EventLanguages EventKind = iota
	// EventUsers carries the current active user list.
	EventUsers
	// EventChat carries a translated chat message.
	EventChat
	// EventInfo is an informational notice for a single client.
	EventInfo
	// EventError is a domain error notice for a single client.
	EventError
)

// UserInfo is one entry of the active user list.
type UserInfo struct {
	Username string
	Color    string
}

// ChatEvent is the payload of a translated chat message. The same value is
// delivered to every non-blocked recipient of one inbound message.
type ChatEvent struct {
	MessageID    string
	Sender       string
	SenderID     int64
	Color        string
	Original     string
	Translations map[string]string
	Timestamp    time.Time
}

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind      EventKind
	Languages []string
	Users     []UserInfo
	Chat      *ChatEvent
	Text      string
	Error     *CoreError
}

func infoEvent(text string) *Event {
	return &Event{Kind: EventInfo, Text: text}
}

func errorEvent(code, msg string) *Event {
	return &Event{Kind: EventError, Error: coreError(code, msg)}
}
