package chips

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/chipfield/pkg/option"
	"tableflip.dev/chipfield/pkg/tui/events"
)

func testChips(labels ...string) []option.Option {
	out := make([]option.Option, 0, len(labels))
	for _, l := range labels {
		out = append(out, option.Option{Label: l, Value: l})
	}
	return out
}

func TestViewRendersLabelsAndDismiss(t *testing.T) {
	m := NewModel(Options{ID: "test"})
	m.SetSize(80, 1)
	m.SetChips(testChips("go", "rust"), nil)

	view := m.View()
	for _, want := range []string{"go", "rust", "✕"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q: %q", want, view)
		}
	}
}

func TestBuilderOverridesContent(t *testing.T) {
	m := NewModel(Options{
		ID:      "test",
		Builder: func(o option.Option) string { return "<" + o.Value + ">" },
	})
	m.SetSize(80, 1)
	m.SetChips(testChips("go"), nil)

	if view := m.View(); !strings.Contains(view, "<go>") {
		t.Fatalf("builder output missing from view: %q", view)
	}
}

func TestCursorNavigationAndRemoval(t *testing.T) {
	m := NewModel(Options{ID: "test"})
	m.SetSize(80, 1)
	m.SetChips(testChips("a", "b", "c"), nil)
	m.Focus()

	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	if cmd == nil {
		t.Fatal("expected a removal command")
	}
	msg, ok := cmd().(events.ChipRemovedMsg)
	if !ok {
		t.Fatalf("expected ChipRemovedMsg, got %T", cmd())
	}
	if msg.Option.Value != "b" {
		t.Fatalf("expected removal of chip under cursor, got %q", msg.Option.Value)
	}
}

func TestRemovalAllowedOnDisabledChips(t *testing.T) {
	m := NewModel(Options{ID: "test"})
	m.SetChips(testChips("a"), testChips("a"))
	m.Focus()

	cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	if cmd == nil {
		t.Fatal("disabled chips must still be dismissible")
	}
}

func TestNoInputWhenBlurred(t *testing.T) {
	m := NewModel(Options{ID: "test"})
	m.SetChips(testChips("a"), nil)

	if cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyBackspace}); cmd != nil {
		t.Fatal("blurred chip row must ignore keys")
	}
}

func TestEmptySelectionRendersNothing(t *testing.T) {
	m := NewModel(Options{ID: "test"})
	if m.View() != "" {
		t.Fatalf("empty chip row should render empty, got %q", m.View())
	}
}
