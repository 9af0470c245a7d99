package dropdown

import (
	"tableflip.dev/chipfield/pkg/field"
	"tableflip.dev/chipfield/pkg/option"
	"tableflip.dev/chipfield/pkg/tui/components/chips"
	"tableflip.dev/chipfield/pkg/tui/theme"
	"tableflip.dev/chipfield/pkg/tui/ui/overlay"
)

// Option configures a dropdown at construction time.
type Option func(*config)

type config struct {
	mode        option.SelectionMode
	state       *field.State
	options     []option.Option
	selected    []option.Option
	disabled    []option.Option
	onSelect    func([]option.Option)
	search      bool
	menuRows    int
	chipSingle  bool
	builder     chips.Builder
	placeholder string
	host        overlay.Host
	theme       *theme.Theme
}

// WithSelectionType fixes the field's selection mode.
func WithSelectionType(mode option.SelectionMode) Option {
	return func(c *config) { c.mode = mode }
}

// WithState supplies an externally owned store, letting several surfaces
// share one selection. Mode and initial data options are ignored when set.
func WithState(st *field.State) Option {
	return func(c *config) { c.state = st }
}

// WithOptions seeds the option catalog.
func WithOptions(opts []option.Option) Option {
	return func(c *config) { c.options = opts }
}

// WithSelected seeds the committed selection. Seeding does not fire the
// selection callback.
func WithSelected(sel []option.Option) Option {
	return func(c *config) { c.selected = sel }
}

// WithDisabled seeds the disabled set.
func WithDisabled(dis []option.Option) Option {
	return func(c *config) { c.disabled = dis }
}

// WithOnSelect registers a callback invoked synchronously after every
// committed selection change.
func WithOnSelect(fn func([]option.Option)) Option {
	return func(c *config) { c.onSelect = fn }
}

// WithSearchBox enables the in-menu filter line.
func WithSearchBox(enabled bool) Option {
	return func(c *config) { c.search = enabled }
}

// WithMenuHeight caps the floating menu at rows visible option rows.
func WithMenuHeight(rows int) Option {
	return func(c *config) { c.menuRows = rows }
}

// WithChipInSingle renders the selection as a chip even in single mode,
// instead of plain text.
func WithChipInSingle(enabled bool) Option {
	return func(c *config) { c.chipSingle = enabled }
}

// WithSelectedItemBuilder overrides how a selected item's content is
// rendered inside its chip.
func WithSelectedItemBuilder(b chips.Builder) Option {
	return func(c *config) { c.builder = b }
}

// WithPlaceholder sets the text shown while nothing is selected.
func WithPlaceholder(text string) Option {
	return func(c *config) { c.placeholder = text }
}

// WithHost injects the overlay surface the menu floats on. A dropdown
// without a host still tracks all state but shows no menu.
func WithHost(h overlay.Host) Option {
	return func(c *config) { c.host = h }
}

// WithTheme overrides the default styles.
func WithTheme(th theme.Theme) Option {
	return func(c *config) { c.theme = &th }
}
