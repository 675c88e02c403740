// Package translate wraps an external machine-translation capability.
package translate

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// FailureMarker replaces the translation for a language whose backend call
// failed. The message is still delivered; only that language degrades.
const FailureMarker = "[translation error]"

// Backend is the external translation capability: one call per (target,
// text) pair, plus the supported-languages table consumed by the normalizer.
type Backend interface {
	Translate(ctx context.Context, target, text string) (string, error)
	Languages(ctx context.Context) (map[string]string, error)
}

// Translator is a reusable handle bound to one target language.
type Translator struct {
	target  string
	backend Backend
}

// Translate renders text into the handle's target language.
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	return t.backend.Translate(ctx, t.target, text)
}

// Adapter caches one translator handle per canonical code for the process
// lifetime and fans per-message translation out across languages.
type Adapter struct {
	backend Backend
	log     *zerolog.Logger

	mu      sync.Mutex
	handles map[string]*Translator
}

// NewAdapter builds an adapter over the given backend.
func NewAdapter(backend Backend, logger *zerolog.Logger) *Adapter {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Adapter{
		backend: backend,
		log:     logger,
		handles: make(map[string]*Translator),
	}
}

// Handle returns the cached translator for a code, creating it on first use.
func (a *Adapter) Handle(code string) *Translator {
	key := strings.ToLower(code)

	a.mu.Lock()
	defer a.mu.Unlock()
	tr, ok := a.handles[key]
	if !ok {
		tr = &Translator{target: key, backend: a.backend}
		a.handles[key] = tr
	}
	return tr
}

// Translate renders text into one target language.
func (a *Adapter) Translate(ctx context.Context, code, text string) (string, error) {
	return a.Handle(code).Translate(ctx, text)
}

// TranslateAll translates text into every given code concurrently, one
// goroutine per language, and joins before returning. The result always has
// one entry per input code; failed languages carry FailureMarker.
func (a *Adapter) TranslateAll(ctx context.Context, codes []string, text string) map[string]string {
	results := make(map[string]string, len(codes))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, code := range codes {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()

			out, err := a.Handle(code).Translate(ctx, text)
			if err != nil {
				a.log.Warn().Err(err).Str("lang", code).Msg("translation failed")
				out = FailureMarker
			}
			mu.Lock()
			results[code] = out
			mu.Unlock()
		}(code)
	}
	wg.Wait()

	return results
}

// Languages exposes the backend's name-to-code table.
func (a *Adapter) Languages(ctx context.Context) (map[string]string, error) {
	return a.backend.Languages(ctx)
}
