// Package demo runs a small showcase form with two chip fields sharing one
// overlay surface.
package demo

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/chipfield/pkg/option"
	"tableflip.dev/chipfield/pkg/tui/components/dropdown"
	"tableflip.dev/chipfield/pkg/tui/theme"
	"tableflip.dev/chipfield/pkg/tui/ui/overlay"
)

// Demo runs the showcase program.
type Demo struct{}

// Do starts the full-screen demo until the user quits.
func (d *Demo) Do(ctx context.Context) error {
	prog := tea.NewProgram(newModel(), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("demo: run program: %w", err)
	}
	return nil
}

// Surface rows the two field frames start on, matching the background
// layout View builds: a blank row, the header, a blank row, then each
// three-row field followed by a blank row.
const (
	demoFieldWidth = 44
	languageRow    = 3
	tagsRow        = 7
)

type describable interface {
	Describe() string
}

type model struct {
	surface *overlay.Surface
	fields  []*dropdown.Model
	focus   int

	width   int
	height  int
	started bool

	status string
}

func newModel() *model {
	surface := overlay.NewSurface(80, 24)
	th := theme.Default()

	languages := []option.Option{
		{Label: "Go", Value: "go", Group: "compiled"},
		{Label: "Rust", Value: "rust", Group: "compiled"},
		{Label: "Python", Value: "python", Group: "interpreted"},
		{Label: "Ruby", Value: "ruby", Group: "interpreted"},
		{Label: "COBOL", Value: "cobol", Group: "legacy"},
	}
	tags := []option.Option{
		{Label: "backend", Value: "backend"},
		{Label: "frontend", Value: "frontend"},
		{Label: "cli", Value: "cli"},
		{Label: "infra", Value: "infra"},
		{Label: "docs", Value: "docs"},
	}

	language := dropdown.NewSearchable("language",
		dropdown.WithOptions(languages),
		dropdown.WithDisabled([]option.Option{{Label: "COBOL", Value: "cobol", Group: "legacy"}}),
		dropdown.WithPlaceholder("Pick a language"),
		dropdown.WithHost(surface),
		dropdown.WithTheme(th),
	)
	tagField := dropdown.New("tags",
		dropdown.WithSelectionType(option.Multi),
		dropdown.WithOptions(tags),
		dropdown.WithSelected([]option.Option{{Label: "cli", Value: "cli"}}),
		dropdown.WithPlaceholder("Pick tags"),
		dropdown.WithHost(surface),
		dropdown.WithTheme(th),
	)

	return &model{
		surface: surface,
		fields:  []*dropdown.Model{language, tagField},
	}
}

func (m *model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, f := range m.fields {
		cmds = append(cmds, f.Init())
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if d, ok := msg.(describable); ok {
		m.status = d.Describe()
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surface.SetSize(msg.Width, msg.Height)

		w := demoFieldWidth
		if w > msg.Width-4 {
			w = msg.Width - 4
		}
		rows := []int{languageRow, tagsRow}
		for i, f := range m.fields {
			f.SetSize(w, 1)
			f.SetAnchor(2, rows[i])
			f.SetViewportHeight(msg.Height)
			f.Update(msg)
		}

		if !m.started {
			m.started = true
			return m, m.fields[m.focus].Focus()
		}
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m, m.cycleFocus()
		}
		return m, m.fields[m.focus].Update(msg)
	}

	var cmds []tea.Cmd
	for _, f := range m.fields {
		cmds = append(cmds, f.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

// cycleFocus blurs the active field and focuses the next; the blur tears
// down any open menu before the next field mounts its own.
func (m *model) cycleFocus() tea.Cmd {
	blur := m.fields[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.fields)
	return tea.Batch(blur, m.fields[m.focus].Focus())
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString("\n  chipfield demo · tab switches fields · ctrl+c quits\n\n")
	for _, f := range m.fields {
		b.WriteString(indent(f.View(), 2))
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString("  " + m.status + "\n")
	}

	m.surface.SetBackground(b.String())
	return m.surface.View()
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
