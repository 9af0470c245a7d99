// Package placement computes where a floating menu lands relative to the
// field that opened it. The math is pure; it never inspects widget state.
package placement

const (
	// Gap is the vertical breathing room between the field and a menu that
	// opens downward.
	Gap = 5
	// Margin is the extra upward pull applied when the menu flips above the
	// field, keeping it clear of the anchor's own row.
	Margin = 40
)

// Rect is the anchor field's bounds in the viewport's coordinate space.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Placement describes the menu's offset from the anchor's origin and its
// final size.
type Placement struct {
	DX         int
	DY         int
	Width      int
	Height     int
	OpenUpward bool
}

// Compute positions a menu of menuHeight against anchor within a viewport of
// the given height. The menu opens below when the space under the anchor
// fits it, otherwise it flips above. Menus taller than the viewport are
// clamped first so the offsets are computed from a height that can actually
// be shown. The menu always matches the anchor's width.
func Compute(anchor Rect, viewportHeight, menuHeight int) Placement {
	if menuHeight > viewportHeight {
		menuHeight = viewportHeight
	}
	if menuHeight < 0 {
		menuHeight = 0
	}

	spaceBelow := viewportHeight - (anchor.Y + anchor.Height)

	p := Placement{
		Width:  anchor.Width,
		Height: menuHeight,
	}
	if spaceBelow >= menuHeight {
		p.DY = anchor.Height + Gap
		return p
	}

	p.OpenUpward = true
	p.DY = -(menuHeight - spaceBelow + Margin)
	return p
}
