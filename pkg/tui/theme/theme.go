package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the chip field widgets.
type Theme struct {
	Field  FieldTheme
	Chip   ChipTheme
	Menu   MenuTheme
	Search SearchTheme
}

// FieldTheme styles the closed field row.
type FieldTheme struct {
	Frame        lipgloss.Style
	FrameFocused lipgloss.Style
	Placeholder  lipgloss.Style
	Value        lipgloss.Style
	Indicator    lipgloss.Style
}

// ChipTheme styles the selected-item pills.
type ChipTheme struct {
	Pill     lipgloss.Style
	Cursor   lipgloss.Style
	Disabled lipgloss.Style
	Dismiss  lipgloss.Style
}

// MenuTheme styles the floating option menu.
type MenuTheme struct {
	Frame     lipgloss.Style
	Row       lipgloss.Style
	RowCursor lipgloss.Style
	Selected  lipgloss.Style
	Disabled  lipgloss.Style
	NoResults lipgloss.Style
	Group     lipgloss.Style
}

// SearchTheme styles the in-menu search box.
type SearchTheme struct {
	Prompt lipgloss.Style
	Text   lipgloss.Style
}

// Default returns the built-in theme used across the widgets.
func Default() Theme {
	row := lipgloss.NewStyle()
	cursorRow := row.Reverse(true)

	return Theme{
		Field: FieldTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			FrameFocused: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(0, 1),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
			Value:       lipgloss.NewStyle(),
			Indicator:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Chip: ChipTheme{
			Pill: lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Padding(0, 1),
			Cursor: lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Reverse(true).
				Padding(0, 1),
			Disabled: lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				Padding(0, 1),
			Dismiss: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Menu: MenuTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Row:       row,
			RowCursor: cursorRow,
			Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Disabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true),
			NoResults: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
			Group:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true),
		},
		Search: SearchTheme{
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Text:   lipgloss.NewStyle(),
		},
	}
}
