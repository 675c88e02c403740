package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestLanguageSetAddAndOrder(t *testing.T) {
	s := NewLanguageSet(0)

	for _, code := range []string{"fr", "es", "de"} {
		added, err := s.Add(code)
		if err != nil || !added {
			t.Fatalf("Add(%q) = %v, %v", code, added, err)
		}
	}

	got := s.List()
	want := []string{"fr", "es", "de"}
	if len(got) != len(want) {
		t.Fatalf("List() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLanguageSetDuplicateIsNoOp(t *testing.T) {
	s := NewLanguageSet(0)
	s.Add("fr")

	added, err := s.Add("fr")
	if err != nil {
		t.Fatalf("duplicate Add returned error: %v", err)
	}
	if added {
		t.Fatal("duplicate Add reported insertion")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestLanguageSetLimit(t *testing.T) {
	s := NewLanguageSet(0)
	if s.Max() != DefaultMaxLanguages {
		t.Fatalf("Max() = %d, want %d", s.Max(), DefaultMaxLanguages)
	}
	for i := 0; i < DefaultMaxLanguages; i++ {
		if _, err := s.Add(fmt.Sprintf("l%d", i)); err != nil {
			t.Fatalf("Add #%d failed: %v", i, err)
		}
	}

	if _, err := s.Add("overflow"); !errors.Is(err, ErrLanguageLimit) {
		t.Fatalf("expected ErrLanguageLimit, got %v", err)
	}
	if s.Len() != DefaultMaxLanguages {
		t.Fatalf("rejected add changed len to %d", s.Len())
	}

	// A duplicate of an existing code is still a no-op at capacity.
	if _, err := s.Add("l0"); err != nil {
		t.Fatalf("duplicate at capacity returned error: %v", err)
	}
}

func TestLanguageSetRemove(t *testing.T) {
	s := NewLanguageSet(0)
	s.Add("fr")
	s.Add("es")
	s.Add("de")

	if !s.Remove("es") {
		t.Fatal("Remove of present code reported false")
	}
	got := s.List()
	if len(got) != 2 || got[0] != "fr" || got[1] != "de" {
		t.Fatalf("order broken after remove: %+v", got)
	}

	if s.Remove("es") {
		t.Fatal("Remove of absent code reported true")
	}
}

func TestLanguageSetListIsCopy(t *testing.T) {
	s := NewLanguageSet(0)
	s.Add("fr")

	got := s.List()
	got[0] = "mutated"

	if fresh := s.List(); fresh[0] != "fr" {
		t.Fatalf("List() exposed internal slice: %+v", fresh)
	}
}
