package lang

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	table map[string]string
	err   error
	calls int
}

func (p *stubProvider) Languages(context.Context) (map[string]string, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.table, nil
}

func TestNormalizeCodeAndName(t *testing.T) {
	ctx := context.Background()
	provider := &stubProvider{table: map[string]string{"french": "fr", "spanish": "es"}}
	n := New(provider, nil)

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"fr", "fr", true},
		{"FR", "fr", true},
		{"french", "fr", true},
		{"  French  ", "fr", true},
		{"spanish", "es", true},
		{"klingon", "", false},
		{"", "", false},
		{"   ", "", false},
	}

	for _, tt := range tests {
		got, ok := n.Normalize(ctx, tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Normalize(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeCachesProviderTable(t *testing.T) {
	ctx := context.Background()
	provider := &stubProvider{table: map[string]string{"french": "fr"}}
	n := New(provider, nil)

	n.Normalize(ctx, "french")
	n.Normalize(ctx, "fr")
	n.Normalize(ctx, "nope")

	if provider.calls != 1 {
		t.Fatalf("provider called %d times, want 1", provider.calls)
	}
}

func TestNormalizeFallbackOnProviderError(t *testing.T) {
	ctx := context.Background()
	provider := &stubProvider{err: errors.New("backend down")}
	n := New(provider, nil)

	// Codes keep working from the built-in set; names need the table.
	if got, ok := n.Normalize(ctx, "fr"); !ok || got != "fr" {
		t.Fatalf("Normalize(fr) = %q, %v during outage", got, ok)
	}
	if _, ok := n.Normalize(ctx, "french"); ok {
		t.Fatal("display name resolved without provider table")
	}

	// A failed load is not cached; recovery picks up the real table.
	provider.err = nil
	provider.table = map[string]string{"french": "fr"}
	if got, ok := n.Normalize(ctx, "french"); !ok || got != "fr" {
		t.Fatalf("Normalize(french) = %q, %v after recovery", got, ok)
	}
}

func TestNormalizeNilProvider(t *testing.T) {
	ctx := context.Background()
	n := New(nil, nil)

	if got, ok := n.Normalize(ctx, "ja"); !ok || got != "ja" {
		t.Fatalf("Normalize(ja) = %q, %v with nil provider", got, ok)
	}
	if _, ok := n.Normalize(ctx, "japanese"); ok {
		t.Fatal("display name resolved with nil provider")
	}
}
