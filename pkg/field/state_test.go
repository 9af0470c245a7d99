package field

import (
	"testing"

	"tableflip.dev/chipfield/pkg/option"
)

func opts(labels ...string) []option.Option {
	out := make([]option.Option, 0, len(labels))
	for _, l := range labels {
		out = append(out, option.Option{Label: l, Value: l})
	}
	return out
}

func countNotifications(t *testing.T, s *State) *int {
	t.Helper()
	n := 0
	s.Subscribe(func(Snapshot) { n++ })
	return &n
}

func TestSettersSkipEqualInput(t *testing.T) {
	s := NewState(option.Multi)
	n := countNotifications(t, s)

	s.SetOptions(opts("a", "b"))
	s.SetSelected(opts("a"))
	s.SetDisabled(opts("b"))
	if *n != 3 {
		t.Fatalf("expected 3 notifications after initial sets, got %d", *n)
	}

	// Fresh slices with equal content must not notify.
	s.SetOptions(opts("a", "b"))
	s.SetSelected(opts("a"))
	s.SetDisabled(opts("b"))
	if *n != 3 {
		t.Fatalf("equal replacement should be a no-op, got %d notifications", *n)
	}

	s.SetOptions(opts("b", "a"))
	if *n != 4 {
		t.Fatalf("reordering is a real change, got %d notifications", *n)
	}
}

func TestNotifyOncePerMutation(t *testing.T) {
	s := NewState(option.Multi)
	s.SetOptions(opts("a", "b", "c"))
	n := countNotifications(t, s)

	s.Toggle(option.Option{Label: "a", Value: "a"})
	if *n != 1 {
		t.Fatalf("toggle should notify exactly once, got %d", *n)
	}
	s.Remove(option.Option{Label: "a", Value: "a"})
	if *n != 2 {
		t.Fatalf("remove should notify exactly once, got %d", *n)
	}
}

func TestNotifyIsSynchronous(t *testing.T) {
	s := NewState(option.Multi)
	seen := false
	s.Subscribe(func(snap Snapshot) {
		seen = len(snap.Selected) == 1
	})
	s.SetSelected(opts("a"))
	if !seen {
		t.Fatal("subscriber must run before SetSelected returns")
	}
}

func TestSingleModeSelection(t *testing.T) {
	s := NewState(option.Single)
	s.SetOptions(opts("a", "b"))

	if close := s.Toggle(option.Option{Label: "a", Value: "a"}); !close {
		t.Fatal("single-mode toggle should request close")
	}
	if close := s.Toggle(option.Option{Label: "b", Value: "b"}); !close {
		t.Fatal("single-mode replacement should request close")
	}
	got := s.Selected()
	if len(got) != 1 || got[0].Value != "b" {
		t.Fatalf("single mode must hold exactly the last toggled option, got %v", got)
	}

	// Re-toggling the current selection still closes, but the selection is
	// unchanged so no notification fires.
	n := countNotifications(t, s)
	if close := s.Toggle(option.Option{Label: "b", Value: "b"}); !close {
		t.Fatal("re-toggle should still request close")
	}
	if *n != 0 {
		t.Fatalf("re-toggle of current selection should not notify, got %d", *n)
	}
}

func TestSingleModeSetSelectedTruncates(t *testing.T) {
	s := NewState(option.Single)
	s.SetSelected(opts("a", "b", "c"))
	got := s.Selected()
	if len(got) != 1 || got[0].Value != "a" {
		t.Fatalf("single mode should keep only the first entry, got %v", got)
	}
}

func TestMultiModeToggleIsInvolutive(t *testing.T) {
	s := NewState(option.Multi)
	s.SetOptions(opts("a", "b"))
	o := option.Option{Label: "a", Value: "a"}

	before := s.Selected()
	if close := s.Toggle(o); close {
		t.Fatal("multi-mode toggle must not request close")
	}
	if !s.IsSelected(o) {
		t.Fatal("first toggle should select")
	}
	s.Toggle(o)
	if !option.SliceEqual(s.Selected(), before) {
		t.Fatalf("toggle twice should restore the selection, got %v", s.Selected())
	}
}

func TestDisabledOptions(t *testing.T) {
	s := NewState(option.Multi)
	s.SetOptions(opts("a", "b"))
	s.SetSelected(opts("a"))
	s.SetDisabled(opts("a", "b"))
	n := countNotifications(t, s)

	// Disabled options cannot be toggled in either direction.
	s.Toggle(option.Option{Label: "b", Value: "b"})
	s.Toggle(option.Option{Label: "a", Value: "a"})
	if *n != 0 {
		t.Fatalf("toggling disabled options must be a no-op, got %d notifications", *n)
	}
	if !s.IsSelected(option.Option{Label: "a", Value: "a"}) {
		t.Fatal("disabling a selected option must keep it selected")
	}

	// Chip removal still works on disabled options.
	s.Remove(option.Option{Label: "a", Value: "a"})
	if *n != 1 || len(s.Selected()) != 0 {
		t.Fatalf("remove must work on disabled options, n=%d selected=%v", *n, s.Selected())
	}
}

func TestToggleIgnoresNoResultsRow(t *testing.T) {
	s := NewState(option.Multi)
	n := countNotifications(t, s)
	if close := s.Toggle(option.NoResults); close {
		t.Fatal("sentinel toggle must not request close")
	}
	if *n != 0 || len(s.Selected()) != 0 {
		t.Fatal("sentinel toggle must not mutate or notify")
	}
}

func TestSelectionOutsideCatalogTolerated(t *testing.T) {
	s := NewState(option.Multi)
	s.SetOptions(opts("a"))
	s.SetSelected(opts("ghost"))
	got := s.Selected()
	if len(got) != 1 || got[0].Value != "ghost" {
		t.Fatalf("selections outside the catalog are kept, got %v", got)
	}
}

func TestSearchDoesNotNotify(t *testing.T) {
	s := NewState(option.Multi)
	n := countNotifications(t, s)
	s.SetSearch("que")
	if *n != 0 {
		t.Fatalf("search updates must not fan out to subscribers, got %d", *n)
	}
	if s.Search() != "que" {
		t.Fatalf("search text not recorded, got %q", s.Search())
	}
}

func TestSetOpenNotifiesOnTransitionsOnly(t *testing.T) {
	s := NewState(option.Multi)
	n := countNotifications(t, s)
	s.SetOpen(true)
	s.SetOpen(true)
	s.SetOpen(false)
	if *n != 2 {
		t.Fatalf("expected 2 notifications for 2 transitions, got %d", *n)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	s := NewState(option.Multi)
	n := 0
	id := s.Subscribe(func(Snapshot) { n++ })
	s.SetOptions(opts("a"))
	s.Unsubscribe(id)
	s.SetOptions(opts("b"))
	if n != 1 {
		t.Fatalf("unsubscribed observer still notified, n=%d", n)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := NewState(option.Multi)
	var snap Snapshot
	s.Subscribe(func(sn Snapshot) { snap = sn })
	s.SetOptions(opts("a"))
	snap.Options[0].Label = "mutated"
	if s.Options()[0].Label != "a" {
		t.Fatal("snapshot must not alias internal state")
	}
}
