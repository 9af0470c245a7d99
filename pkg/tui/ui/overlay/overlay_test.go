package overlay

import (
	"strings"
	"testing"
)

func lines(s string) []string { return strings.Split(s, "\n") }

func TestComposeSplicesAtPosition(t *testing.T) {
	bg := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")

	got := Compose(bg, 10, 3, "AB\nCD", Placement{X: 3, Y: 1, Width: 2, Height: 2})
	want := []string{
		"..........",
		"...AB.....",
		"...CD.....",
	}
	for i, l := range lines(got) {
		if l != want[i] {
			t.Fatalf("line %d = %q, want %q", i, l, want[i])
		}
	}
}

func TestComposeClipsOffscreen(t *testing.T) {
	bg := "....\n...."

	got := Compose(bg, 4, 2, "XYZ", Placement{X: -1, Y: 0, Width: 3, Height: 1})
	if lines(got)[0] != "YZ.." {
		t.Fatalf("left clip failed, got %q", lines(got)[0])
	}

	got = Compose(bg, 4, 2, "XYZ", Placement{X: 3, Y: 0, Width: 3, Height: 1})
	if lines(got)[0] != "...X" {
		t.Fatalf("right clip failed, got %q", lines(got)[0])
	}

	// Entirely above the surface leaves the background intact.
	got = Compose(bg, 4, 2, "XYZ", Placement{X: 0, Y: -5, Width: 3, Height: 1})
	if got != "....\n...." {
		t.Fatalf("offscreen overlay altered background: %q", got)
	}
}

func TestComposeEmptyForegroundIsIdentity(t *testing.T) {
	got := Compose("ab\ncd", 2, 2, "", Placement{X: 0, Y: 0})
	if got != "ab\ncd" {
		t.Fatalf("empty foreground should be identity, got %q", got)
	}
}

func TestSurfaceShowHideBookkeeping(t *testing.T) {
	s := NewSurface(10, 4)
	s.SetBackground("bg")

	s.Show("menu", "mm", Placement{X: 0, Y: 1, Width: 2, Height: 1})
	if !s.Has("menu") || s.Count() != 1 {
		t.Fatal("show should register the layer")
	}

	// Re-show replaces content without duplicating the layer.
	s.Show("menu", "nn", Placement{X: 0, Y: 1, Width: 2, Height: 1})
	if s.Count() != 1 {
		t.Fatalf("repeated show duplicated the layer, count=%d", s.Count())
	}
	if !strings.Contains(s.View(), "nn") {
		t.Fatal("repeated show did not replace the layer content")
	}

	s.Hide("menu")
	s.Hide("menu")
	if s.Has("menu") || s.Count() != 0 {
		t.Fatal("hide should remove the layer and be idempotent")
	}
}

func TestSurfaceStackingOrderIsStable(t *testing.T) {
	s := NewSurface(4, 1)
	s.SetBackground("....")
	s.Show("a", "A", Placement{X: 0, Y: 0, Width: 1, Height: 1})
	s.Show("b", "B", Placement{X: 0, Y: 0, Width: 1, Height: 1})

	// Refreshing "a" must not lift it above "b".
	s.Show("a", "Z", Placement{X: 0, Y: 0, Width: 1, Height: 1})
	if got := lines(s.View())[0]; got != "B..." {
		t.Fatalf("expected later layer on top, got %q", got)
	}
}
