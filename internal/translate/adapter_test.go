package translate

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type stubBackend struct {
	mu    sync.Mutex
	fail  map[string]bool
	calls int
}

func (b *stubBackend) Translate(_ context.Context, target, text string) (string, error) {
	b.mu.Lock()
	b.calls++
	failing := b.fail[target]
	b.mu.Unlock()

	if failing {
		return "", errors.New("backend error")
	}
	return target + ":" + text, nil
}

func (b *stubBackend) Languages(context.Context) (map[string]string, error) {
	return map[string]string{"french": "fr"}, nil
}

func TestTranslateAllCoversEveryCode(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(&stubBackend{}, nil)

	codes := []string{"fr", "es", "de"}
	got := a.TranslateAll(ctx, codes, "hello")

	if len(got) != len(codes) {
		t.Fatalf("TranslateAll returned %d entries, want %d", len(got), len(codes))
	}
	for _, code := range codes {
		if got[code] != code+":hello" {
			t.Fatalf("entry for %q = %q", code, got[code])
		}
	}
}

func TestTranslateAllFailureDegradesOneLanguage(t *testing.T) {
	ctx := context.Background()
	backend := &stubBackend{fail: map[string]bool{"es": true}}
	a := NewAdapter(backend, nil)

	got := a.TranslateAll(ctx, []string{"fr", "es", "de"}, "hello")

	if got["es"] != FailureMarker {
		t.Fatalf("failed language = %q, want %q", got["es"], FailureMarker)
	}
	if got["fr"] != "fr:hello" || got["de"] != "de:hello" {
		t.Fatalf("healthy languages affected: %+v", got)
	}
}

func TestTranslateAllEmptyCodes(t *testing.T) {
	a := NewAdapter(&stubBackend{}, nil)

	if got := a.TranslateAll(context.Background(), nil, "hello"); len(got) != 0 {
		t.Fatalf("TranslateAll(nil) = %+v", got)
	}
}

func TestHandleCachedPerCode(t *testing.T) {
	a := NewAdapter(&stubBackend{}, nil)

	fr := a.Handle("fr")
	if a.Handle("fr") != fr {
		t.Fatal("second Handle(fr) returned a new translator")
	}
	if a.Handle("FR") != fr {
		t.Fatal("Handle is not case-insensitive")
	}
	if a.Handle("es") == fr {
		t.Fatal("distinct codes share a handle")
	}
}

func TestTranslateSingle(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(&stubBackend{}, nil)

	out, err := a.Translate(ctx, "fr", "bonjour")
	if err != nil || out != "fr:bonjour" {
		t.Fatalf("Translate = %q, %v", out, err)
	}
}
