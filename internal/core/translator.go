package core

import "context"

// Translator renders one text into a set of target languages. Languages are
// independent: implementations must substitute a replacement marker for any
// language that fails, so the returned map always has one entry per code.
type Translator interface {
	TranslateAll(ctx context.Context, codes []string, text string) map[string]string
}

// LanguageResolver maps free-form user input (a code or a display name) to a
// canonical language code.
type LanguageResolver interface {
	Normalize(ctx context.Context, input string) (string, bool)
}
