package core

import "time"

// eventBuffer is the per-client outbound queue size. A client that falls
// this far behind is treated as failed and evicted during fan-out.
const eventBuffer = 32

// AnonymousName is the display name used until a client sets one.
const AnonymousName = "Anonymous"

// Client is one live connection as seen by the core layer. ID is opaque and
// never reused while the registry holds the entry. UserID and Account are set
// once at connect time for authenticated connections and are immutable.
// Name is mutated only through the registry.
type Client struct {
	ID          string
	Name        string
	UserID      int64
	Account     string
	Color       string
	ConnectedAt time.Time
	Events      chan *Event
}

// Authenticated reports whether the connection presented a valid identity.
func (c *Client) Authenticated() bool {
	return c.UserID != 0
}

// TrySend enqueues an event without blocking. It returns false when the
// client's buffer is full, which the hub treats as a delivery failure.
func (c *Client) TrySend(ev *Event) bool {
	select {
	case c.Events <- ev:
		return true
	default:
		return false
	}
}
