package core

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultMaxMessageLength bounds inbound lines before dispatch.
const DefaultMaxMessageLength = 5000

const (
	welcomeNotice = "Welcome to Translation Chat!"
	helpNotice    = "Commands: '/name <your-name>' to set display name, " +
		"'/add-lang <code-or-name>' to add a language (e.g., /add-lang fr, /add-lang spanish), " +
		"'/remove-lang <code-or-name>' to remove a language, " +
		"'/block <name>' and '/unblock <name>' to manage blocks, " +
		"'/report <name> <reason>' to report a user."
	noLanguagesNotice = "No languages added yet. Add languages with '/add-lang <code-or-name>' to see translations."
)

// Options tunes hub limits. Zero values fall back to defaults.
type Options struct {
	MaxLanguages     int
	MaxMessageLength int
}

// Hub owns the connection registry, the global language set, and the
// broadcast engine. Every inbound line from every connection goes through
// HandleLine; the per-connection goroutines of the transport layer may call
// into the hub concurrently.
type Hub struct {
	registry   *Registry
	langs      *LanguageSet
	translator Translator
	resolver   LanguageResolver
	gate       ModerationGate
	moderation ModerationStore
	log        *zerolog.Logger

	maxMessageLen int
}

// NewHub wires the broadcast engine. gate and moderation may be nil, in which
// case no recipient is ever skipped and moderation commands report an error.
func NewHub(translator Translator, resolver LanguageResolver, gate ModerationGate, moderation ModerationStore, logger *zerolog.Logger, opts Options) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	maxLen := opts.MaxMessageLength
	if maxLen <= 0 {
		maxLen = DefaultMaxMessageLength
	}
	return &Hub{
		registry:      NewRegistry(),
		langs:         NewLanguageSet(opts.MaxLanguages),
		translator:    translator,
		resolver:      resolver,
		gate:          gate,
		moderation:    moderation,
		log:           logger,
		maxMessageLen: maxLen,
	}
}

// Registry exposes the connection table for presence queries.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// Languages exposes the global language set.
func (h *Hub) Languages() *LanguageSet {
	return h.langs
}

// Connect registers a new connection and sends it the welcome sequence:
// welcome notice, help notice, current languages, current users.
func (h *Hub) Connect(userID int64, account string) *Client {
	client := h.registry.Register(userID, account)

	client.TrySend(infoEvent(welcomeNotice))
	client.TrySend(infoEvent(helpNotice))
	client.TrySend(&Event{Kind: EventLanguages, Languages: h.langs.List()})
	client.TrySend(&Event{Kind: EventUsers, Users: h.registry.ActiveUsers()})

	h.log.Info().Str("client_id", client.ID).Int64("user_id", userID).Msg("client connected")
	return client
}

// Disconnect removes a connection and tells everyone else. Safe to call more
// than once for the same client.
func (h *Hub) Disconnect(client *Client) {
	if !h.registry.Unregister(client.ID) {
		return
	}
	h.log.Info().Str("client_id", client.ID).Msg("client disconnected")
	h.broadcastUsers()
}

// HandleLine processes one inbound frame from a connection: enforces the
// length bound, parses the command grammar, and dispatches.
func (h *Hub) HandleLine(ctx context.Context, client *Client, line string) {
	if utf8.RuneCountInString(line) > h.maxMessageLen {
		client.TrySend(errorEvent(ErrCodeMessageTooLong,
			fmt.Sprintf("Message too long (max %d characters)", h.maxMessageLen)))
		return
	}

	cmd := ParseCommand(line)
	switch cmd.Kind {
	case CommandName:
		h.handleName(client, cmd)
	case CommandAddLang:
		h.handleAddLang(ctx, client, cmd)
	case CommandRemoveLang:
		h.handleRemoveLang(ctx, client, cmd)
	case CommandBlock:
		h.handleBlock(ctx, client, cmd)
	case CommandUnblock:
		h.handleUnblock(ctx, client, cmd)
	case CommandReport:
		h.handleReport(ctx, client, cmd)
	case CommandChat:
		h.handleChat(ctx, client, cmd.Text)
	}
}

func (h *Hub) handleName(client *Client, cmd Command) {
	if cmd.Arg == "" {
		client.TrySend(errorEvent(ErrCodeUsage, usageByKind[CommandName]))
		return
	}

	name := cmd.Arg
	// The registered account name wins over anything the client sends.
	if client.Account != "" {
		name = client.Account
	}
	if !h.registry.SetName(client.ID, name) {
		return
	}

	client.TrySend(infoEvent(fmt.Sprintf("Your name is now '%s'", name)))
	h.broadcastUsers()
}

func (h *Hub) handleAddLang(ctx context.Context, client *Client, cmd Command) {
	if cmd.Arg == "" {
		client.TrySend(errorEvent(ErrCodeUsage, usageByKind[CommandAddLang]))
		return
	}

	code, ok := h.resolver.Normalize(ctx, cmd.Arg)
	if !ok {
		client.TrySend(errorEvent(ErrCodeUnknownLanguage, fmt.Sprintf("Unknown language '%s'", cmd.Arg)))
		return
	}

	if _, err := h.langs.Add(code); err != nil {
		client.TrySend(errorEvent(ErrCodeLanguageLimit,
			fmt.Sprintf("Language limit reached (%d)", h.langs.Max())))
		return
	}
	h.broadcastLanguages()
}

func (h *Hub) handleRemoveLang(ctx context.Context, client *Client, cmd Command) {
	if cmd.Arg == "" {
		client.TrySend(errorEvent(ErrCodeUsage, usageByKind[CommandRemoveLang]))
		return
	}

	code, ok := h.resolver.Normalize(ctx, cmd.Arg)
	if !ok {
		client.TrySend(errorEvent(ErrCodeUnknownLanguage, fmt.Sprintf("Unknown language '%s'", cmd.Arg)))
		return
	}

	// Removing an absent code is a silent no-op.
	h.langs.Remove(code)
	h.broadcastLanguages()
}

func (h *Hub) handleBlock(ctx context.Context, client *Client, cmd Command) {
	if cmd.Arg == "" {
		client.TrySend(errorEvent(ErrCodeUsage, usageByKind[CommandBlock]))
		return
	}
	if !h.requireAuth(client) {
		return
	}

	if err := h.moderation.Block(ctx, client.UserID, cmd.Arg); err != nil {
		h.log.Warn().Err(err).Int64("user_id", client.UserID).Str("target", cmd.Arg).Msg("block failed")
		client.TrySend(errorEvent(ErrCodeInternal, err.Error()))
		return
	}
	client.TrySend(infoEvent(fmt.Sprintf("User '%s' has been blocked", cmd.Arg)))
}

func (h *Hub) handleUnblock(ctx context.Context, client *Client, cmd Command) {
	if cmd.Arg == "" {
		client.TrySend(errorEvent(ErrCodeUsage, usageByKind[CommandUnblock]))
		return
	}
	if !h.requireAuth(client) {
		return
	}

	if err := h.moderation.Unblock(ctx, client.UserID, cmd.Arg); err != nil {
		h.log.Warn().Err(err).Int64("user_id", client.UserID).Str("target", cmd.Arg).Msg("unblock failed")
		client.TrySend(errorEvent(ErrCodeInternal, err.Error()))
		return
	}
	client.TrySend(infoEvent(fmt.Sprintf("User '%s' has been unblocked", cmd.Arg)))
}

func (h *Hub) handleReport(ctx context.Context, client *Client, cmd Command) {
	if cmd.Arg == "" || cmd.Reason == "" {
		client.TrySend(errorEvent(ErrCodeUsage, usageByKind[CommandReport]))
		return
	}
	if !h.requireAuth(client) {
		return
	}

	if _, err := h.moderation.Report(ctx, client.UserID, cmd.Arg, cmd.Reason, ""); err != nil {
		h.log.Warn().Err(err).Int64("user_id", client.UserID).Str("target", cmd.Arg).Msg("report failed")
		client.TrySend(errorEvent(ErrCodeInternal, err.Error()))
		return
	}
	client.TrySend(infoEvent("Report submitted"))
}

func (h *Hub) requireAuth(client *Client) bool {
	if client.Authenticated() && h.moderation != nil {
		return true
	}
	client.TrySend(errorEvent(ErrCodeAuthRequired, "Sign in to use moderation commands"))
	return false
}

// handleChat implements the chat message path: translate into every active
// language, then fan the complete event out to all non-blocked recipients.
func (h *Hub) handleChat(ctx context.Context, client *Client, text string) {
	codes := h.langs.List()
	if len(codes) == 0 {
		client.TrySend(infoEvent(noLanguagesNotice))
		return
	}

	translations := h.translator.TranslateAll(ctx, codes, text)
	rendered := make(map[string]string, len(translations))
	for code, out := range translations {
		rendered[strings.ToUpper(code)] = out
	}

	senderName := h.registry.DisplayName(client.ID)
	ev := &Event{
		Kind: EventChat,
		Chat: &ChatEvent{
			MessageID:    uuid.NewString(),
			Sender:       senderName,
			SenderID:     client.UserID,
			Color:        client.Color,
			Original:     text,
			Translations: rendered,
			Timestamp:    time.Now(),
		},
	}

	h.broadcast(ctx, ev, func(r *Client) bool {
		return h.recipientBlockedSender(ctx, r, senderName)
	})
}

// recipientBlockedSender consults the moderation gate for authenticated
// recipients. Gate failures are logged and treated as "not blocked" so a
// store outage cannot silence the room.
func (h *Hub) recipientBlockedSender(ctx context.Context, r *Client, senderName string) bool {
	if !r.Authenticated() || h.gate == nil {
		return false
	}
	blocked, err := h.gate.IsBlocked(ctx, r.UserID, senderName)
	if err != nil {
		h.log.Warn().Err(err).Int64("user_id", r.UserID).Msg("block query failed")
		return false
	}
	return blocked
}

func (h *Hub) broadcastLanguages() {
	h.broadcast(context.Background(), &Event{Kind: EventLanguages, Languages: h.langs.List()}, nil)
}

func (h *Hub) broadcastUsers() {
	h.broadcast(context.Background(), &Event{Kind: EventUsers, Users: h.registry.ActiveUsers()}, nil)
}

// broadcast delivers one event to every connection in a registry snapshot,
// skipping recipients for which skip returns true. Connections whose delivery
// fails are unregistered after the pass; eviction never skips or duplicates
// delivery to the remaining recipients.
func (h *Hub) broadcast(ctx context.Context, ev *Event, skip func(*Client) bool) {
	var stale []*Client
	for _, r := range h.registry.Snapshot() {
		if skip != nil && skip(r) {
			continue
		}
		if !r.TrySend(ev) {
			stale = append(stale, r)
		}
	}

	for _, r := range stale {
		if h.registry.Unregister(r.ID) {
			h.log.Warn().Str("client_id", r.ID).Msg("evicted unresponsive client")
		}
	}
}
