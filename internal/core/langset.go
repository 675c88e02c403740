package core

import "sync"

// DefaultMaxLanguages bounds the global language set.
const DefaultMaxLanguages = 20

// LanguageSet is the process-wide ordered set of active target language
// codes. Codes are unique, insertion order is preserved, and the set never
// grows past its maximum. Callers must pass canonical codes; normalization
// happens before insertion.
type LanguageSet struct {
	mu    sync.RWMutex
	max   int
	codes []string
}

// NewLanguageSet builds an empty set bounded to max codes.
func NewLanguageSet(max int) *LanguageSet {
	if max <= 0 {
		max = DefaultMaxLanguages
	}
	return &LanguageSet{max: max}
}

// Add inserts a canonical code at the end of the set. Adding a code that is
// already present is a no-op. Returns ErrLanguageLimit when the set is full;
// the set is left unchanged in that case.
func (s *LanguageSet) Add(code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.codes {
		if c == code {
			return false, nil
		}
	}
	if len(s.codes) >= s.max {
		return false, ErrLanguageLimit
	}
	s.codes = append(s.codes, code)
	return true, nil
}

// Remove deletes a code, keeping the order of the remaining codes stable.
// Removing an absent code is a no-op.
func (s *LanguageSet) Remove(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.codes {
		if c == code {
			s.codes = append(s.codes[:i], s.codes[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a copy of the current codes in insertion order.
func (s *LanguageSet) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// Len returns the number of active codes.
func (s *LanguageSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.codes)
}

// Max returns the capacity bound of the set.
func (s *LanguageSet) Max() int {
	return s.max
}
