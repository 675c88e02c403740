package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// LibreTranslate talks to a LibreTranslate-compatible HTTP API.
type LibreTranslate struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewLibreTranslate builds a backend for the given base URL. apiKey may be
// empty for self-hosted instances.
func NewLibreTranslate(baseURL, apiKey string) *LibreTranslate {
	return &LibreTranslate{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate posts one translation request with automatic source detection.
func (l *LibreTranslate) Translate(ctx context.Context, target, text string) (string, error) {
	body, err := json.Marshal(translateRequest{
		Q:      text,
		Source: "auto",
		Target: target,
		Format: "text",
		APIKey: l.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("translate %s: status %d: %s", target, resp.StatusCode, snippet)
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return out.TranslatedText, nil
}

type languageEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages fetches the supported-languages listing as a lowercase
// name-to-code table.
func (l *LibreTranslate) Languages(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/languages", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("languages request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("languages: status %d", resp.StatusCode)
	}

	var entries []languageEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	table := make(map[string]string, len(entries))
	for _, e := range entries {
		table[strings.ToLower(e.Name)] = strings.ToLower(e.Code)
	}
	return table, nil
}
