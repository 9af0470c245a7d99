package overlay

// Host is the capability a field widget needs to float its menu: show a
// rendered view at a placement under a stable id, and hide it again. The
// widget never composes the screen itself; whoever owns the surface does.
type Host interface {
	Show(id string, view string, at Placement)
	Hide(id string)
}

type layer struct {
	id   string
	view string
	at   Placement
}

// Surface is a Host that composes its layers over a background view in the
// order they were first shown. The zero value is unusable; call NewSurface.
type Surface struct {
	width  int
	height int

	background string
	layers     []layer
}

// NewSurface builds a surface sized to width x height.
func NewSurface(width, height int) *Surface {
	s := &Surface{}
	s.SetSize(width, height)
	return s
}

// SetSize updates the surface bounds.
func (s *Surface) SetSize(width, height int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	s.width = width
	s.height = height
}

// Size returns the surface bounds.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// SetBackground records the view the layers are drawn over.
func (s *Surface) SetBackground(view string) {
	s.background = view
}

// Show inserts or refreshes the layer for id. A repeated Show with the same
// id keeps the layer's stacking position and replaces its content, so a
// field re-rendering its open menu does not bounce it to the top.
func (s *Surface) Show(id string, view string, at Placement) {
	for i := range s.layers {
		if s.layers[i].id == id {
			s.layers[i].view = view
			s.layers[i].at = at
			return
		}
	}
	s.layers = append(s.layers, layer{id: id, view: view, at: at})
}

// Hide removes the layer for id. Unknown ids are ignored.
func (s *Surface) Hide(id string) {
	for i := range s.layers {
		if s.layers[i].id == id {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return
		}
	}
}

// Has reports whether a layer with id is currently shown.
func (s *Surface) Has(id string) bool {
	for i := range s.layers {
		if s.layers[i].id == id {
			return true
		}
	}
	return false
}

// Count returns the number of shown layers.
func (s *Surface) Count() int { return len(s.layers) }

// View composes the background and every layer into the final frame.
func (s *Surface) View() string {
	out := Compose(s.background, s.width, s.height, "", Placement{})
	for _, l := range s.layers {
		out = Compose(out, s.width, s.height, l.view, l.at)
	}
	return out
}
