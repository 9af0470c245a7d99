// Package optionlist renders the scrolling row list inside a floating menu.
package optionlist

import (
	"strings"

	"tableflip.dev/chipfield/pkg/option"
	"tableflip.dev/chipfield/pkg/tui/constants"
	"tableflip.dev/chipfield/pkg/tui/theme"
)

// Options configures an option list.
type Options struct {
	Theme  *theme.Theme
	Multi  bool
	Height int
}

// Model is the menu's row list. Rows arrive pre-filtered; the list only
// tracks the highlight cursor and the visible window.
type Model struct {
	th     theme.Theme
	multi  bool
	height int
	width  int

	rows   []option.Option
	cursor int
	offset int

	isSelected func(option.Option) bool
	isDisabled func(option.Option) bool
}

// NewModel constructs a list with the provided options.
func NewModel(opts Options) *Model {
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	height := opts.Height
	if height <= 0 {
		height = constants.DefaultMenuHeight
	}
	return &Model{
		th:         th,
		multi:      opts.Multi,
		height:     height,
		isSelected: func(option.Option) bool { return false },
		isDisabled: func(option.Option) bool { return false },
	}
}

// SetMembership wires the selected and disabled predicates, normally bound
// to the field store.
func (m *Model) SetMembership(selected, disabled func(option.Option) bool) {
	if selected != nil {
		m.isSelected = selected
	}
	if disabled != nil {
		m.isDisabled = disabled
	}
}

// SetSize updates the list bounds. Height is in visible rows.
func (m *Model) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	m.width = width
	if height > 0 {
		m.height = height
	}
}

// Height returns the number of visible rows.
func (m *Model) Height() int { return m.height }

// SetRows replaces the displayed rows, resetting cursor and scroll.
func (m *Model) SetRows(rows []option.Option) {
	m.rows = append([]option.Option(nil), rows...)
	m.cursor = 0
	m.offset = 0
}

// Rows returns the displayed rows.
func (m *Model) Rows() []option.Option {
	return append([]option.Option(nil), m.rows...)
}

// Current returns the highlighted row, when there is one.
func (m *Model) Current() (option.Option, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return option.Option{}, false
	}
	return m.rows[m.cursor], true
}

// MoveUp shifts the highlight up one row.
func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
	m.scrollToCursor()
}

// MoveDown shifts the highlight down one row.
func (m *Model) MoveDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// View renders the visible window of rows.
func (m *Model) View() string {
	if len(m.rows) == 0 {
		return m.th.Menu.NoResults.Render(option.NoResults.Label)
	}

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(i))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(i int) string {
	o := m.rows[i]
	cursor := "  "
	if i == m.cursor {
		cursor = constants.MenuCursor + " "
	}

	if o.IsNoResults() {
		return cursor + m.th.Menu.NoResults.Render(o.Label)
	}

	var b strings.Builder
	b.WriteString(cursor)
	if m.multi {
		if m.isSelected(o) {
			b.WriteString(constants.CheckboxChecked)
		} else {
			b.WriteString(constants.CheckboxUnchecked)
		}
		b.WriteString(" ")
	}

	style := m.th.Menu.Row
	switch {
	case m.isDisabled(o):
		style = m.th.Menu.Disabled
	case m.isSelected(o):
		style = m.th.Menu.Selected
	case i == m.cursor:
		style = m.th.Menu.RowCursor
	}
	b.WriteString(style.Render(o.Label))

	if o.Group != "" {
		b.WriteString(" ")
		b.WriteString(m.th.Menu.Group.Render("(" + o.Group + ")"))
	}
	return b.String()
}
