// Package proto defines the wire payloads of the chat protocol. Inbound
// frames are plain UTF-8 text lines; outbound frames are one of the JSON
// shapes below, discriminated by the "type" field or by the bare info/error
// keys for unicast notices.
package proto

// Outbound type discriminants.
const (
	TypeLanguageUpdate = "language_update"
	TypeUsersUpdate    = "users_update"
	TypeChat           = "chat"
)

// LanguageUpdate carries the current global language list. Broadcast after
// any language-set change and once immediately on connect.
type LanguageUpdate struct {
	Type      string   `json:"type"`
	Languages []string `json:"languages"`
}

// UserEntry is one row of the active user list.
type UserEntry struct {
	Username string `json:"username"`
	Color    string `json:"color"`
}

// UsersUpdate carries the current active user list. Broadcast after any
// display-name or presence change and once immediately on connect.
type UsersUpdate struct {
	Type  string      `json:"type"`
	Users []UserEntry `json:"users"`
}

// ChatMessage is one delivered chat event. Translations are keyed by
// upper-cased language code.
type ChatMessage struct {
	Type         string            `json:"type"`
	Sender       string            `json:"sender"`
	SenderID     int64             `json:"sender_id,omitempty"`
	Color        string            `json:"color"`
	Original     string            `json:"original"`
	Translations map[string]string `json:"translations"`
	Timestamp    string            `json:"timestamp"`
	MessageID    string            `json:"message_id"`
}

// Notice is a unicast informational reply to the originating connection.
type Notice struct {
	Info string `json:"info"`
}

// ErrorNotice is a unicast error reply to the originating connection.
type ErrorNotice struct {
	Error string `json:"error"`
}
