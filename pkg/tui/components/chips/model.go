// Package chips renders a field's committed selection as a row of
// dismissible pills.
package chips

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/chipfield/pkg/option"
	"tableflip.dev/chipfield/pkg/tui/constants"
	"tableflip.dev/chipfield/pkg/tui/events"
	"tableflip.dev/chipfield/pkg/tui/theme"
	"tableflip.dev/chipfield/pkg/tui/ui"
)

var _ ui.Component = (*Model)(nil)

// Builder renders the text of one chip. Overriding it replaces only the
// content; dismiss affordance and styling stay with the component.
type Builder func(o option.Option) string

// Options configures a chip row.
type Options struct {
	ID      events.ComponentID
	Theme   *theme.Theme
	Builder Builder
}

// Model is the chip row. It owns only presentation state; the selection
// itself lives in the field store and arrives via SetChips.
type Model struct {
	id    events.ComponentID
	th    theme.Theme
	build Builder

	width int

	chips    []option.Option
	disabled map[string]struct{}

	cursor  int
	focused bool
}

// NewModel constructs a chip row with the provided options.
func NewModel(opts Options) *Model {
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	build := opts.Builder
	if build == nil {
		build = func(o option.Option) string { return o.Label }
	}
	id := opts.ID
	if id == "" {
		id = "chips"
	}
	return &Model{
		id:       id,
		th:       th,
		build:    build,
		cursor:   -1,
		disabled: map[string]struct{}{},
	}
}

// Init implements the component contract.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize updates the row width.
func (m *Model) SetSize(width, _ int) {
	if width < 1 {
		width = 1
	}
	m.width = width
}

// SetChips replaces the rendered chips and the disabled set.
func (m *Model) SetChips(chips, disabled []option.Option) {
	m.chips = append([]option.Option(nil), chips...)
	m.disabled = make(map[string]struct{}, len(disabled))
	for _, o := range disabled {
		m.disabled[o.Key()] = struct{}{}
	}
	m.clampCursor()
}

// Chips returns the rendered chips.
func (m *Model) Chips() []option.Option {
	return append([]option.Option(nil), m.chips...)
}

// Focus enables cursor navigation, starting at the last chip.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	if len(m.chips) > 0 {
		m.cursor = len(m.chips) - 1
	}
	return nil
}

// Blur disables cursor navigation.
func (m *Model) Blur() tea.Cmd {
	m.focused = false
	m.cursor = -1
	return nil
}

// Focused reports whether the row has the cursor.
func (m *Model) Focused() bool { return m.focused }

// Update handles chip navigation and dismissal. Dismissal is announced via
// ChipRemovedMsg; the owner applies it to the store and calls SetChips.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.focused || len(m.chips) == 0 {
		return nil
	}
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right":
		if m.cursor < len(m.chips)-1 {
			m.cursor++
		}
	case "backspace", "delete", "x":
		if m.cursor >= 0 && m.cursor < len(m.chips) {
			// Disabled chips are still dismissible; only menu toggling is
			// blocked for them.
			return events.ChipRemovedCmd(m.id, m.chips[m.cursor])
		}
	}
	return nil
}

// View renders the chips, truncated to the row width.
func (m *Model) View() string {
	if len(m.chips) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.chips))
	for i, o := range m.chips {
		style := m.th.Chip.Pill
		if _, dis := m.disabled[o.Key()]; dis {
			style = m.th.Chip.Disabled
		}
		if m.focused && i == m.cursor {
			style = m.th.Chip.Cursor
		}
		label := m.build(o) + " " + m.th.Chip.Dismiss.Render(constants.ChipDismiss)
		parts = append(parts, style.Render(label))
	}
	row := strings.Join(parts, " ")
	if m.width > 0 && ansi.PrintableRuneWidth(row) > m.width {
		row = truncate.String(row, uint(m.width))
	}
	return row
}

func (m *Model) clampCursor() {
	if len(m.chips) == 0 {
		m.cursor = -1
		return
	}
	if m.cursor >= len(m.chips) {
		m.cursor = len(m.chips) - 1
	}
	if m.focused && m.cursor < 0 {
		m.cursor = 0
	}
}
