package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

type fixedPicker string

func (p fixedPicker) Pick([]string) string { return string(p) }

func TestDefaultListsAreUsable(t *testing.T) {
	list, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	answers, allowed := list.Stats()
	if answers == 0 || allowed <= answers {
		t.Fatalf("unexpected sizes: answers=%d allowed=%d", answers, allowed)
	}
	for _, w := range []string{"crane", "CRANE", "Alloy", "speed", "lolly"} {
		if !list.IsValid(w) {
			t.Fatalf("expected %q to be accepted", w)
		}
	}
	if list.IsValid("qwert") {
		t.Fatalf("expected qwert to be rejected")
	}
	if !list.IsAnswer("crane") || list.IsAnswer("lolly") {
		t.Fatalf("unexpected answer membership")
	}
}

func TestRandomWordIsUppercaseAnswer(t *testing.T) {
	list, err := New([]string{"crane"}, []string{"lolly"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := list.RandomWord(); got != "CRANE" {
		t.Fatalf("expected CRANE, got %q", got)
	}
	list.SetPicker(fixedPicker("slate"))
	if got := list.RandomWord(); got != "SLATE" {
		t.Fatalf("expected SLATE, got %q", got)
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	answersPath := filepath.Join(dir, "answers.txt")
	allowedPath := filepath.Join(dir, "allowed.txt")
	if err := os.WriteFile(answersPath, []byte("# answers\nCrane\nslate\ncranes\n\ncrane\n"), 0o644); err != nil {
		t.Fatalf("write answers: %v", err)
	}
	if err := os.WriteFile(allowedPath, []byte("lolly\nco-op\n"), 0o644); err != nil {
		t.Fatalf("write allowed: %v", err)
	}

	list, err := Load(answersPath, allowedPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	answers, allowed := list.Stats()
	if answers != 2 || allowed != 3 {
		t.Fatalf("expected 2 answers and 3 allowed, got %d and %d", answers, allowed)
	}
	if !list.IsValid("LOLLY") || list.IsValid("cranes") {
		t.Fatalf("unexpected membership")
	}

	onlyAllowed, err := Load("", allowedPath)
	if err != nil {
		t.Fatalf("Load allowed only: %v", err)
	}
	if !onlyAllowed.IsAnswer("lolly") {
		t.Fatalf("expected allowed list to double as answers")
	}
}

func TestLoadEmptyFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("# nothing\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path, ""); err == nil {
		t.Fatalf("expected error for empty list")
	}
}
