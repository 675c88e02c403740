package core

import (
	"sync"
	"time"

	"github.com/babelchat/babelchat-server/internal/utils"
)

// Registry is the authoritative table of live connections. All access to
// connection state goes through its methods; the mutex makes read-modify-write
// sequences linearizable with respect to broadcast snapshots.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]*Client
	order []string
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]*Client)}
}

// Register creates a connection entry with a fresh id and color. userID and
// account are zero-valued for unauthenticated connections.
func (r *Registry) Register(userID int64, account string) *Client {
	client := &Client{
		ID:          utils.NewID(),
		UserID:      userID,
		Account:     account,
		Color:       randomPastel(),
		ConnectedAt: time.Now(),
		Events:      make(chan *Event, eventBuffer),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[client.ID] = client
	r.order = append(r.order, client.ID)
	return client
}

// Unregister removes a connection from the registry. It is idempotent:
// removing an already-removed connection reports false and does nothing.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conns[id]; !ok {
		return false
	}
	delete(r.conns, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// SetName overwrites the display name of a live connection. Names are not
// unique across connections.
func (r *Registry) SetName(id, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.conns[id]
	if !ok {
		return false
	}
	client.Name = name
	return true
}

// DisplayName returns the connection's current name, or AnonymousName when
// none was set or the connection is gone.
func (r *Registry) DisplayName(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if client, ok := r.conns[id]; ok && client.Name != "" {
		return client.Name
	}
	return AnonymousName
}

// Snapshot returns a point-in-time copy of the active connections in
// registration order, so fan-out iteration is safe against concurrent
// disconnects.
func (r *Registry) Snapshot() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Client, 0, len(r.order))
	for _, id := range r.order {
		if client, ok := r.conns[id]; ok {
			out = append(out, client)
		}
	}
	return out
}

// ActiveUsers lists connections that have set a display name, for presence
// broadcasts.
func (r *Registry) ActiveUsers() []UserInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]UserInfo, 0, len(r.order))
	for _, id := range r.order {
		client, ok := r.conns[id]
		if !ok || client.Name == "" {
			continue
		}
		users = append(users, UserInfo{Username: client.Name, Color: client.Color})
	}
	return users
}

// Len returns the number of live connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
