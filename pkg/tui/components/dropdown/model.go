// Package dropdown implements the chip field widget: a form field whose
// options open in a floating menu anchored to the field, with committed
// selections rendered as chips. The field owns the menu lifecycle; the menu
// itself is drawn on an injected overlay host.
package dropdown

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/chipfield/pkg/field"
	"tableflip.dev/chipfield/pkg/option"
	"tableflip.dev/chipfield/pkg/placement"
	"tableflip.dev/chipfield/pkg/tui/components/chips"
	"tableflip.dev/chipfield/pkg/tui/components/optionlist"
	"tableflip.dev/chipfield/pkg/tui/components/searchbox"
	"tableflip.dev/chipfield/pkg/tui/constants"
	"tableflip.dev/chipfield/pkg/tui/events"
	"tableflip.dev/chipfield/pkg/tui/theme"
	"tableflip.dev/chipfield/pkg/tui/ui"
	"tableflip.dev/chipfield/pkg/tui/ui/overlay"
)

var (
	_ ui.Component = (*Model)(nil)
	_ ui.Focusable = (*Model)(nil)
	_ ui.Blurrable = (*Model)(nil)
)

const (
	indicatorClosed = "▾"
	indicatorOpen   = "▴"

	// fieldFrameHeight is the rendered height of the closed field row,
	// content plus border.
	fieldFrameHeight = 3
)

// Model is the chip field. All menu open and close traffic funnels through
// blur; escape and outside activity request a blur rather than tearing the
// menu down themselves.
type Model struct {
	id events.ComponentID
	st *field.State
	th theme.Theme

	host overlay.Host

	chipRow *chips.Model
	list    *optionlist.Model
	search  *searchbox.Model

	searchEnabled bool
	menuRows      int
	chipSingle    bool
	placeholder   string
	build         chips.Builder
	onSelect      func([]option.Option)

	anchorX, anchorY int
	viewportHeight   int

	width   int
	focused bool
	open    bool
	upward  bool

	// mirror is the menu's working copy of the selection. It exists only
	// while the menu is open and is committed back to the store on every
	// row activation.
	mirror []option.Option

	lastSelected []option.Option
}

// New constructs a plain chip field.
func New(id events.ComponentID, opts ...Option) *Model {
	cfg := config{
		mode:        option.Single,
		menuRows:    constants.DefaultMenuHeight,
		placeholder: "Select...",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	th := theme.Default()
	if cfg.theme != nil {
		th = *cfg.theme
	}
	build := cfg.builder
	if build == nil {
		build = func(o option.Option) string { return o.Label }
	}

	st := cfg.state
	if st == nil {
		st = field.NewState(cfg.mode)
		st.SetOptions(cfg.options)
		st.SetSelected(cfg.selected)
		st.SetDisabled(cfg.disabled)
	}

	m := &Model{
		id:            id,
		st:            st,
		th:            th,
		host:          cfg.host,
		searchEnabled: cfg.search,
		menuRows:      cfg.menuRows,
		chipSingle:    cfg.chipSingle,
		placeholder:   cfg.placeholder,
		build:         build,
		onSelect:      cfg.onSelect,
		lastSelected:  st.Selected(),
	}

	m.chipRow = chips.NewModel(chips.Options{
		ID:      m.chipsID(),
		Theme:   &th,
		Builder: build,
	})
	m.chipRow.SetChips(st.Selected(), st.Disabled())

	m.list = optionlist.NewModel(optionlist.Options{
		Theme:  &th,
		Multi:  st.Mode() == option.Multi,
		Height: cfg.menuRows,
	})
	m.list.SetMembership(m.mirrorHas, st.IsDisabled)

	if cfg.search {
		m.search = searchbox.NewModel(searchbox.Options{
			ID:          m.searchID(),
			Theme:       &th,
			Placeholder: "type to filter",
		})
	}

	// Subscribing after the seed keeps construction silent; only real
	// changes reach the callback.
	st.Subscribe(m.onStoreChange)

	return m
}

// NewSearchable constructs a chip field with the in-menu filter enabled.
func NewSearchable(id events.ComponentID, opts ...Option) *Model {
	return New(id, append(opts, WithSearchBox(true))...)
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// State exposes the backing store for external replacement of options,
// selection, or disabled sets.
func (m *Model) State() *field.State { return m.st }

// Selected returns the committed selection.
func (m *Model) Selected() []option.Option { return m.st.Selected() }

// Open reports whether the floating menu is mounted.
func (m *Model) Open() bool { return m.open }

// OpenUpward reports the direction of the last menu placement.
func (m *Model) OpenUpward() bool { return m.upward }

// Focused reports keyboard focus.
func (m *Model) Focused() bool { return m.focused }

// Init implements the component contract.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize sets the field width. Field height is fixed at one framed row.
func (m *Model) SetSize(width, _ int) {
	if width < 1 {
		width = 1
	}
	m.width = width
	m.chipRow.SetSize(width-4, 1)
	if m.search != nil {
		m.search.SetSize(width-6, 1)
	}
	if m.open {
		m.refreshMenu()
	}
}

// SetAnchor records the field's origin on the overlay surface.
func (m *Model) SetAnchor(x, y int) {
	m.anchorX = x
	m.anchorY = y
	if m.open {
		m.refreshMenu()
	}
}

// SetViewportHeight records the surface height used for flip placement.
func (m *Model) SetViewportHeight(h int) {
	m.viewportHeight = h
	if m.open {
		m.refreshMenu()
	}
}

// Focus acquires keyboard focus and mounts the menu. Focusing an already
// focused field is a no-op.
func (m *Model) Focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	m.chipRow.Focus()
	openCmd := m.openMenu()
	return tea.Batch(events.FocusCmd(m.id), openCmd)
}

// Blur releases focus and unmounts the menu. This is the only path that
// closes the menu, so teardown and outside-activity handling reduce to a
// blur. Blurring an unfocused field is a no-op.
func (m *Model) Blur() tea.Cmd {
	if !m.focused && !m.open {
		return nil
	}
	closeCmd := m.closeMenu()
	m.focused = false
	m.chipRow.Blur()
	return tea.Batch(events.BlurCmd(m.id), closeCmd)
}

// Update handles keys and component events.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportHeight = msg.Height
		if m.open {
			m.refreshMenu()
		}
		return nil

	case events.SearchChangedMsg:
		if msg.Component != m.searchID() {
			return nil
		}
		// Search redraws the menu only; the closed-field view and the
		// store's subscribers are untouched.
		m.st.SetSearch(msg.Query)
		if m.open {
			m.list.SetRows(option.Filter(m.st.Options(), msg.Query))
			m.refreshMenu()
		}
		return nil

	case events.ChipRemovedMsg:
		if msg.Component != m.chipsID() {
			return nil
		}
		m.st.Remove(msg.Option)
		return events.SelectionChangedCmd(m.id, m.st.Selected())

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if !m.focused {
		return nil
	}

	if m.open {
		switch msg.String() {
		case "esc":
			return m.Blur()
		case "up":
			m.list.MoveUp()
			m.refreshMenu()
			return nil
		case "down":
			m.list.MoveDown()
			m.refreshMenu()
			return nil
		case "enter":
			return m.toggleCurrent()
		case "space":
			if !m.searchEnabled {
				return m.toggleCurrent()
			}
		case "left", "right", "backspace", "delete":
			// Chip dismissal stays reachable while the menu is open; an
			// in-progress query keeps these keys for text editing.
			if m.search == nil || m.search.Value() == "" {
				return m.chipRow.Update(msg)
			}
		case "x":
			if m.search == nil {
				return m.chipRow.Update(msg)
			}
		}
		if m.search != nil {
			return m.search.Update(msg)
		}
		return nil
	}

	switch msg.String() {
	case "esc":
		return m.Blur()
	case "enter", "space", "down":
		return m.openMenu()
	}
	return m.chipRow.Update(msg)
}

// View renders the closed field row; the menu renders through the host.
func (m *Model) View() string {
	frame := m.th.Field.Frame
	if m.focused {
		frame = m.th.Field.FrameFocused
	}

	content := m.contentView()
	indicator := indicatorClosed
	if m.open {
		indicator = indicatorOpen
	}

	inner := m.width - 2
	if inner < 1 {
		inner = 1
	}
	line := content
	pad := inner - ansi.PrintableRuneWidth(content) - ansi.PrintableRuneWidth(indicator) - 2
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	} else {
		line += " "
	}
	line += m.th.Field.Indicator.Render(indicator)

	return frame.Width(inner).Render(line)
}

func (m *Model) contentView() string {
	selected := m.st.Selected()
	if len(selected) == 0 {
		return m.th.Field.Placeholder.Render(m.placeholder)
	}
	if m.st.Mode() == option.Multi || m.chipSingle {
		return m.chipRow.View()
	}
	return m.th.Field.Value.Render(m.build(selected[0]))
}

func (m *Model) openMenu() tea.Cmd {
	if m.open {
		return nil
	}
	m.open = true
	m.mirror = m.st.Selected()
	m.st.SetSearch("")
	m.st.SetOpen(true)

	var searchCmd tea.Cmd
	if m.search != nil {
		m.search.Reset()
		searchCmd = tea.Batch(m.search.Init(), m.search.Focus())
	}

	m.list.SetRows(option.Filter(m.st.Options(), ""))
	m.refreshMenu()

	return tea.Batch(events.MenuOpenedCmd(m.id, m.upward), searchCmd)
}

func (m *Model) closeMenu() tea.Cmd {
	if !m.open {
		return nil
	}
	if m.host != nil {
		m.host.Hide(string(m.id))
	}
	m.open = false
	m.mirror = nil
	m.st.SetSearch("")
	m.st.SetOpen(false)
	if m.search != nil {
		m.search.Reset()
		m.search.Blur()
	}
	return events.MenuClosedCmd(m.id)
}

func (m *Model) toggleCurrent() tea.Cmd {
	o, ok := m.list.Current()
	if !ok || o.IsNoResults() || m.st.IsDisabled(o) {
		return nil
	}

	if m.st.Mode() == option.Single {
		m.mirror = []option.Option{o}
		m.st.SetSelected(m.mirror)
		// Committing in single mode also closes, through the blur path.
		return tea.Batch(
			events.SelectionChangedCmd(m.id, m.st.Selected()),
			m.Blur(),
		)
	}

	if i := option.IndexOf(m.mirror, o); i >= 0 {
		m.mirror = append(append([]option.Option(nil), m.mirror[:i]...), m.mirror[i+1:]...)
	} else {
		m.mirror = append(append([]option.Option(nil), m.mirror...), o)
	}
	m.st.SetSelected(m.mirror)
	m.refreshMenu()
	return events.SelectionChangedCmd(m.id, m.st.Selected())
}

// mirrorHas backs the menu's checkbox column. While the menu is open the
// working copy decides, so a row flips the moment it is activated.
func (m *Model) mirrorHas(o option.Option) bool {
	if m.open {
		return option.Contains(m.mirror, o)
	}
	return m.st.IsSelected(o)
}

func (m *Model) refreshMenu() {
	if m.host == nil || !m.open {
		return
	}

	rows := len(m.list.Rows())
	if rows < 1 {
		rows = 1
	}
	if rows > m.menuRows {
		rows = m.menuRows
	}
	innerHeight := rows
	if m.search != nil {
		innerHeight++
	}
	menuHeight := innerHeight + 2

	anchor := placement.Rect{
		X:      m.anchorX,
		Y:      m.anchorY,
		Width:  m.width,
		Height: fieldFrameHeight,
	}
	pl := placement.Compute(anchor, m.viewportHeight, menuHeight)
	m.upward = pl.OpenUpward

	m.list.SetSize(pl.Width-4, rows)
	m.host.Show(string(m.id), m.renderMenu(pl.Width), overlay.Placement{
		X:      m.anchorX + pl.DX,
		Y:      m.anchorY + pl.DY,
		Width:  pl.Width,
		Height: pl.Height,
	})
}

func (m *Model) renderMenu(width int) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	var parts []string
	if m.search != nil {
		parts = append(parts, m.search.View())
	}
	parts = append(parts, m.list.View())
	return m.th.Menu.Frame.Width(inner).Render(strings.Join(parts, "\n"))
}

func (m *Model) onStoreChange(snap field.Snapshot) {
	m.chipRow.SetChips(snap.Selected, snap.Disabled)

	if m.open {
		// A toggle commit re-derives the same rows; resetting the cursor
		// then would bounce the highlight back to the top after every
		// selection.
		rows := option.Filter(snap.Options, m.st.Search())
		if !option.SliceEqual(rows, m.list.Rows()) {
			m.list.SetRows(rows)
		}
		m.refreshMenu()
	}

	if !option.SliceEqual(snap.Selected, m.lastSelected) {
		m.lastSelected = append([]option.Option(nil), snap.Selected...)
		if m.onSelect != nil {
			m.onSelect(append([]option.Option(nil), snap.Selected...))
		}
	}
}

func (m *Model) chipsID() events.ComponentID {
	return m.id + "/chips"
}

func (m *Model) searchID() events.ComponentID {
	return m.id + "/search"
}
