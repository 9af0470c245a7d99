package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component defines the contract for reusable Bubble Tea widgets. Widgets
// mutate in place, so Update returns only the resulting command.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
}

// Focusable is implemented by components that accept keyboard focus.
type Focusable interface {
	Focus() tea.Cmd
}

// Blurrable is implemented by components that release keyboard focus.
type Blurrable interface {
	Blur() tea.Cmd
}
