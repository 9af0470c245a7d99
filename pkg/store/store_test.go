package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/chipfield/pkg/option"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestRecentsRoundTrip(t *testing.T) {
	r, err := LoadRecents(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load recents: %v", err)
	}

	sel := []option.Option{
		{Label: "Go", Value: "go", Group: "languages"},
		{Label: "Rust", Value: "rust"},
	}
	if err := r.Put("deploy/region", sel); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := r.Get("deploy/region")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !option.SliceEqual(got, sel) {
		t.Fatalf("roundtrip mismatch: got %v want %v", got, sel)
	}
	if got[0].Group != "languages" {
		t.Fatalf("group not preserved: %v", got[0])
	}
}

func TestRecentsMissingPromptIsEmpty(t *testing.T) {
	r, err := LoadRecents(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load recents: %v", err)
	}
	got, err := r.Get("never-seen")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no recents, got %v", got)
	}
}

func TestRecentsForget(t *testing.T) {
	r, err := LoadRecents(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load recents: %v", err)
	}
	if err := r.Put("p", []option.Option{{Label: "a", Value: "a"}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := r.Forget("p"); err != nil {
		t.Fatalf("forget: %v", err)
	}
	if got, _ := r.Get("p"); got != nil {
		t.Fatalf("forget left data behind: %v", got)
	}
	// Forgetting twice is fine.
	if err := r.Forget("p"); err != nil {
		t.Fatalf("second forget: %v", err)
	}
}

func TestRecentsPrompts(t *testing.T) {
	r, err := LoadRecents(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load recents: %v", err)
	}
	if err := r.Put("one", nil); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := r.Put("two", nil); err != nil {
		t.Fatalf("put: %v", err)
	}

	prompts := r.Prompts(context.Background())
	if len(prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %v", prompts)
	}
	seen := map[string]bool{}
	for _, p := range prompts {
		seen[p] = true
	}
	if !seen["one"] || !seen["two"] {
		t.Fatalf("prompt ids not decoded back, got %v", prompts)
	}
}

const sourceYAML = `options:
  - label: Go
    value: go
    group: languages
  - label: Rust
  - label: Zig
selected:
  - label: Go
    value: go
disabled:
  - label: Zig
`

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte(sourceYAML), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	doc, err := ReadSource(path)
	if err != nil {
		t.Fatalf("read source: %v", err)
	}

	if len(doc.Options) != 3 {
		t.Fatalf("expected 3 options, got %v", doc.Options)
	}
	if doc.Options[0].Group != "languages" {
		t.Fatalf("group not parsed: %v", doc.Options[0])
	}
	// Value defaults to label when omitted.
	if doc.Options[1].Value != "Rust" {
		t.Fatalf("value default failed: %v", doc.Options[1])
	}
	if len(doc.Selected) != 1 || doc.Selected[0].Value != "go" {
		t.Fatalf("selected not parsed: %v", doc.Selected)
	}
	if len(doc.Disabled) != 1 || doc.Disabled[0].Label != "Zig" {
		t.Fatalf("disabled not parsed: %v", doc.Disabled)
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	if _, err := ReadSource(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing source file")
	}
}
