// Package field holds the selection state shared between a chip field and
// its floating menu. The store is the single source of truth for the option
// catalog, the committed selection, and the open/closed state of the menu;
// widgets observe it through subscriptions instead of polling.
package field

import (
	"tableflip.dev/chipfield/pkg/option"
)

// Snapshot is the immutable view handed to subscribers on every change.
type Snapshot struct {
	Options  []option.Option
	Selected []option.Option
	Disabled []option.Option
	Open     bool
}

// State owns the selection data for one field instance. It is not safe for
// concurrent use; all mutations are expected to happen on the UI loop.
type State struct {
	mode option.SelectionMode

	options  []option.Option
	selected []option.Option
	disabled []option.Option
	disKeys  map[string]struct{}

	search string
	open   bool

	subs    map[int]func(Snapshot)
	nextSub int
}

// NewState builds an empty store with the given selection mode. The mode is
// fixed for the lifetime of the store.
func NewState(mode option.SelectionMode) *State {
	if mode == "" {
		mode = option.Single
	}
	return &State{
		mode:    mode,
		disKeys: map[string]struct{}{},
		subs:    map[int]func(Snapshot){},
	}
}

// Mode returns the fixed selection mode.
func (s *State) Mode() option.SelectionMode { return s.mode }

// Options returns a copy of the full option catalog.
func (s *State) Options() []option.Option { return copyOptions(s.options) }

// Selected returns a copy of the committed selection, in selection order.
func (s *State) Selected() []option.Option { return copyOptions(s.selected) }

// Disabled returns a copy of the disabled set.
func (s *State) Disabled() []option.Option { return copyOptions(s.disabled) }

// Search returns the current menu filter text.
func (s *State) Search() string { return s.search }

// IsOpen reports whether the floating menu is marked open.
func (s *State) IsOpen() bool { return s.open }

// IsDisabled reports whether o is in the disabled set. The synthetic
// no-results row is never considered disabled or enabled; it just is.
func (s *State) IsDisabled(o option.Option) bool {
	_, found := s.disKeys[o.Key()]
	return found
}

// IsSelected reports whether o is currently committed.
func (s *State) IsSelected(o option.Option) bool {
	return option.Contains(s.selected, o)
}

// SetOptions replaces the option catalog. Supplying a sequence equal to the
// current one is a no-op and notifies nobody. Selected or disabled entries
// that are absent from the new catalog are left in place; callers that hand
// us inconsistent sets get them displayed as-is rather than an error.
func (s *State) SetOptions(opts []option.Option) {
	if option.SliceEqual(s.options, opts) {
		return
	}
	s.options = copyOptions(opts)
	s.notify()
}

// SetSelected replaces the committed selection wholesale. Equal input is a
// no-op. In single mode only the first entry is kept.
func (s *State) SetSelected(sel []option.Option) {
	if s.mode == option.Single && len(sel) > 1 {
		sel = sel[:1]
	}
	if option.SliceEqual(s.selected, sel) {
		return
	}
	s.selected = copyOptions(sel)
	s.notify()
}

// SetDisabled replaces the disabled set. Equal input is a no-op. Disabling
// an already-selected option keeps it selected; it can still be removed
// from the chips but not toggled in the menu.
func (s *State) SetDisabled(dis []option.Option) {
	if option.SliceEqual(s.disabled, dis) {
		return
	}
	s.disabled = copyOptions(dis)
	s.disKeys = make(map[string]struct{}, len(dis))
	for _, o := range dis {
		s.disKeys[o.Key()] = struct{}{}
	}
	s.notify()
}

// Toggle applies a menu activation of o and reports whether the field should
// close as a result. Disabled options and the no-results row do nothing. In
// multi mode the option is added or removed and the menu stays open. In
// single mode the option replaces the selection and a close is requested.
func (s *State) Toggle(o option.Option) bool {
	if o.IsNoResults() || s.IsDisabled(o) {
		return false
	}

	if s.mode == option.Single {
		s.SetSelected([]option.Option{o})
		return true
	}

	if i := option.IndexOf(s.selected, o); i >= 0 {
		next := copyOptions(s.selected)
		next = append(next[:i], next[i+1:]...)
		s.selected = next
	} else {
		s.selected = append(copyOptions(s.selected), o)
	}
	s.notify()
	return false
}

// Remove drops o from the selection, typically via a chip's dismiss control.
// Unlike Toggle it works on disabled options too; absent options are a no-op.
func (s *State) Remove(o option.Option) {
	i := option.IndexOf(s.selected, o)
	if i < 0 {
		return
	}
	next := copyOptions(s.selected)
	s.selected = append(next[:i], next[i+1:]...)
	s.notify()
}

// SetSearch records the menu filter text. Search changes redraw only the
// floating menu, so no subscriber notification is issued.
func (s *State) SetSearch(text string) {
	s.search = text
}

// SetOpen records the menu open state, notifying on actual transitions only.
func (s *State) SetOpen(open bool) {
	if s.open == open {
		return
	}
	s.open = open
	s.notify()
}

// Subscribe registers fn to run synchronously after every applied mutation.
// The returned id releases the subscription via Unsubscribe.
func (s *State) Subscribe(fn func(Snapshot)) int {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return id
}

// Unsubscribe removes a subscription. Unknown ids are ignored.
func (s *State) Unsubscribe(id int) {
	delete(s.subs, id)
}

func (s *State) notify() {
	if len(s.subs) == 0 {
		return
	}
	snap := Snapshot{
		Options:  copyOptions(s.options),
		Selected: copyOptions(s.selected),
		Disabled: copyOptions(s.disabled),
		Open:     s.open,
	}
	for _, fn := range s.subs {
		fn(snap)
	}
}

func copyOptions(in []option.Option) []option.Option {
	out := make([]option.Option, len(in))
	copy(out, in)
	return out
}
