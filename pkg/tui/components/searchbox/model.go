// Package searchbox wraps a text input as the floating menu's filter line.
package searchbox

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/chipfield/pkg/tui/constants"
	"tableflip.dev/chipfield/pkg/tui/events"
	"tableflip.dev/chipfield/pkg/tui/theme"
	"tableflip.dev/chipfield/pkg/tui/ui"
)

var _ ui.Component = (*Model)(nil)

// Options configures a search box.
type Options struct {
	ID          events.ComponentID
	Theme       *theme.Theme
	Placeholder string
}

// Model is the in-menu search line. Every value change is announced with a
// SearchChangedMsg so the menu can refilter.
type Model struct {
	id events.ComponentID
	th theme.Theme

	input     textinput.Model
	lastValue string
}

// NewModel constructs a search box with the provided options.
func NewModel(opts Options) *Model {
	input := textinput.New()
	input.Placeholder = opts.Placeholder
	input.Prompt = constants.SearchPrompt

	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	id := opts.ID
	if id == "" {
		id = "searchbox"
	}
	return &Model{id: id, th: th, input: input}
}

// Init implements the component contract.
func (m *Model) Init() tea.Cmd { return textinput.Blink }

// SetSize updates the input width.
func (m *Model) SetSize(width, _ int) {
	if width < 1 {
		width = 1
	}
	m.input.SetWidth(width)
}

// Focus directs keystrokes into the input.
func (m *Model) Focus() tea.Cmd { return m.input.Focus() }

// Blur releases the input.
func (m *Model) Blur() tea.Cmd {
	m.input.Blur()
	return nil
}

// Reset clears the input without emitting a change event; opening a menu
// always starts from an unfiltered list.
func (m *Model) Reset() {
	m.input.Reset()
	m.lastValue = ""
}

// Value returns the current query.
func (m *Model) Value() string { return m.input.Value() }

// Update forwards messages to the input and reports query changes.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if v := m.input.Value(); v != m.lastValue {
		m.lastValue = v
		return tea.Batch(cmd, events.SearchChangedCmd(m.id, v))
	}
	return cmd
}

// View renders the search line.
func (m *Model) View() string {
	return m.input.View()
}
