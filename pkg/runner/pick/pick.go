// Package pick runs a single chip field as a standalone picker program.
package pick

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/chipfield/pkg/option"
	"tableflip.dev/chipfield/pkg/store"
	"tableflip.dev/chipfield/pkg/tui/components/dropdown"
	"tableflip.dev/chipfield/pkg/tui/events"
	"tableflip.dev/chipfield/pkg/tui/ui/overlay"
)

// ErrAborted is returned when the user cancels without committing.
var ErrAborted = errors.New("pick: aborted")

// Pick configures and runs one picker session.
type Pick struct {
	Prompt     string
	Mode       option.SelectionMode
	Search     bool
	MenuHeight int

	Options  []option.Option
	Selected []option.Option
	Disabled []option.Option

	// SourcePath is re-read on change events when Watch is set.
	SourcePath string
	Watch      bool

	// Recents pre-seeds and records the selection under PromptID when set.
	Recents  store.Recents
	PromptID string
}

// Do runs the picker and returns the committed selection.
func (p *Pick) Do(ctx context.Context) ([]option.Option, error) {
	selected := p.Selected
	if p.Recents != nil && p.PromptID != "" && len(selected) == 0 {
		remembered, err := p.Recents.Get(p.PromptID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pick: load recents: %v\n", err)
		} else {
			selected = remembered
		}
	}

	m := newModel(p, selected)
	prog := tea.NewProgram(m, tea.WithContext(ctx))

	if p.Watch && p.SourcePath != "" {
		ch, err := store.WatchSource(ctx, p.SourcePath)
		if err != nil {
			return nil, err
		}
		go func() {
			for range ch {
				doc, err := store.ReadSource(p.SourcePath)
				if err != nil {
					fmt.Fprintf(os.Stderr, "pick: reload source: %v\n", err)
					continue
				}
				prog.Send(sourceChangedMsg{doc: doc})
			}
		}()
	}

	out, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("pick: run program: %w", err)
	}

	final, ok := out.(*model)
	if !ok {
		return nil, fmt.Errorf("pick: unexpected final model %T", out)
	}
	if final.aborted {
		return nil, ErrAborted
	}

	if p.Recents != nil && p.PromptID != "" {
		if err := p.Recents.Put(p.PromptID, final.selection); err != nil {
			fmt.Fprintf(os.Stderr, "pick: save recents: %v\n", err)
		}
	}
	return final.selection, nil
}

type sourceChangedMsg struct {
	doc store.Document
}

const (
	fieldWidth = 48
	// fieldRow is the surface row the field's frame starts on: a blank
	// row, the prompt, and another blank row sit above it.
	fieldRow = 3
)

type model struct {
	prompt  string
	surface *overlay.Surface
	field   *dropdown.Model

	width   int
	height  int
	started bool

	selection []option.Option
	aborted   bool
}

func newModel(p *Pick, selected []option.Option) *model {
	opts := []dropdown.Option{
		dropdown.WithSelectionType(p.Mode),
		dropdown.WithOptions(p.Options),
		dropdown.WithSelected(selected),
		dropdown.WithDisabled(p.Disabled),
		dropdown.WithSearchBox(p.Search),
		dropdown.WithPlaceholder("Select..."),
	}
	if p.MenuHeight > 0 {
		opts = append(opts, dropdown.WithMenuHeight(p.MenuHeight))
	}

	surface := overlay.NewSurface(80, 24)
	opts = append(opts, dropdown.WithHost(surface))

	field := dropdown.New("picker", opts...)
	return &model{
		prompt:    p.Prompt,
		surface:   surface,
		field:     field,
		selection: field.Selected(),
	}
}

func (m *model) Init() tea.Cmd {
	return m.field.Init()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surface.SetSize(msg.Width, msg.Height)

		w := fieldWidth
		if w > msg.Width-4 {
			w = msg.Width - 4
		}
		m.field.SetSize(w, 1)
		m.field.SetAnchor(2, fieldRow)
		m.field.SetViewportHeight(msg.Height)
		m.field.Update(msg)

		if !m.started {
			m.started = true
			return m, m.field.Focus()
		}
		return m, nil

	case sourceChangedMsg:
		// Replacement goes through the store, so equal reloads are no-ops
		// and the open menu refilters in place.
		m.field.State().SetOptions(msg.doc.Options)
		m.field.State().SetDisabled(msg.doc.Disabled)
		return m, nil

	case events.SelectionChangedMsg:
		m.selection = msg.Selected
		return m, nil

	case events.BlurMsg:
		if msg.Component == m.field.ID() {
			// The field closed its menu; the session is complete.
			m.selection = m.field.Selected()
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.aborted = true
			return m, tea.Quit
		}
		return m, m.field.Update(msg)
	}

	return m, m.field.Update(msg)
}

func (m *model) View() string {
	bg := "\n  " + m.prompt + "\n\n" + indent(m.field.View(), 2)
	m.surface.SetBackground(bg)
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
