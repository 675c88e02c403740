// Package lang maps free-form language input to canonical codes.
package lang

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Provider supplies the name-to-code table, e.g. the translation backend's
// supported-languages listing. Keys are lowercase display names ("french"),
// values are canonical codes ("fr").
type Provider interface {
	Languages(ctx context.Context) (map[string]string, error)
}

// fallbackCodes keeps recognized codes working when the provider table
// cannot be loaded.
var fallbackCodes = []string{"en", "fr", "es", "de", "it", "pt", "ar", "hi", "ja", "ko", "ru", "sw"}

// Normalizer resolves a code or display name to a canonical language code.
// The provider table is fetched lazily and cached after the first successful
// load; until then each call retries, degrading to the built-in code set.
type Normalizer struct {
	provider Provider
	log      *zerolog.Logger

	mu     sync.Mutex
	names  map[string]string
	codes  map[string]struct{}
	loaded bool
}

// New builds a normalizer backed by the given provider. The provider may be
// nil, leaving only the built-in fallback codes.
func New(provider Provider, logger *zerolog.Logger) *Normalizer {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Normalizer{provider: provider, log: logger}
}

// Normalize trims and lowercases input, accepts canonical codes as-is, and
// otherwise consults the name table. Returns false for unrecognized input.
func (n *Normalizer) Normalize(ctx context.Context, input string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return "", false
	}

	names, codes := n.tables(ctx)
	if _, ok := codes[text]; ok {
		return text, true
	}
	if code, ok := names[text]; ok {
		return code, true
	}
	return "", false
}

// tables returns the cached provider tables, loading them on first use. A
// load failure falls back to the built-in codes without caching, so a later
// call can try the provider again.
func (n *Normalizer) tables(ctx context.Context) (map[string]string, map[string]struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.loaded {
		return n.names, n.codes
	}

	if n.provider != nil {
		names, err := n.provider.Languages(ctx)
		if err == nil {
			codes := make(map[string]struct{}, len(names))
			for _, code := range names {
				codes[code] = struct{}{}
			}
			n.names = names
			n.codes = codes
			n.loaded = true
			return n.names, n.codes
		}
		n.log.Warn().Err(err).Msg("language table unavailable, using fallback codes")
	}

	codes := make(map[string]struct{}, len(fallbackCodes))
	for _, code := range fallbackCodes {
		codes[code] = struct{}{}
	}
	return nil, codes
}
