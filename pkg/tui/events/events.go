// Package events defines the cross-component messages exchanged between
// chip fields, their floating menus, and the root model that hosts them.
package events

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/chipfield/pkg/option"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// SelectionChangedMsg announces that a field's committed selection changed,
// whatever the origin (menu toggle, chip removal, external replacement).
type SelectionChangedMsg struct {
	Component ComponentID
	Selected  []option.Option
}

// Describe renders the selection in a human-friendly format for logs.
func (m SelectionChangedMsg) Describe() string {
	labels := make([]string, 0, len(m.Selected))
	for _, o := range m.Selected {
		labels = append(labels, o.Label)
	}
	return fmt.Sprintf(`component:%q selected:%q`, m.Component, strings.Join(labels, ","))
}

// SelectionChangedCmd wraps SelectionChangedMsg in a tea.Cmd for callers
// that want to emit the event as part of an Update result.
func SelectionChangedCmd(component ComponentID, selected []option.Option) tea.Cmd {
	return func() tea.Msg {
		return SelectionChangedMsg{Component: component, Selected: selected}
	}
}

// MenuOpenedMsg fires when a field mounts its floating menu.
type MenuOpenedMsg struct {
	Component  ComponentID
	OpenUpward bool
}

// Describe implements the logging helper.
func (m MenuOpenedMsg) Describe() string {
	dir := "below"
	if m.OpenUpward {
		dir = "above"
	}
	return fmt.Sprintf(`component:%q direction:%q`, m.Component, dir)
}

// MenuClosedMsg fires when a field removes its floating menu.
type MenuClosedMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m MenuClosedMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// MenuOpenedCmd wraps MenuOpenedMsg.
func MenuOpenedCmd(component ComponentID, openUpward bool) tea.Cmd {
	return func() tea.Msg {
		return MenuOpenedMsg{Component: component, OpenUpward: openUpward}
	}
}

// MenuClosedCmd wraps MenuClosedMsg.
func MenuClosedCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return MenuClosedMsg{Component: component}
	}
}

// SearchChangedMsg is emitted when the menu's filter text changes.
type SearchChangedMsg struct {
	Component ComponentID
	Query     string
}

// Describe implements the logging helper.
func (m SearchChangedMsg) Describe() string {
	return fmt.Sprintf(`component:%q query:%q`, m.Component, m.Query)
}

// SearchChangedCmd wraps SearchChangedMsg.
func SearchChangedCmd(component ComponentID, query string) tea.Cmd {
	return func() tea.Msg {
		return SearchChangedMsg{Component: component, Query: query}
	}
}

// ChipRemovedMsg is emitted when the user dismisses a chip.
type ChipRemovedMsg struct {
	Component ComponentID
	Option    option.Option
}

// Describe implements the logging helper.
func (m ChipRemovedMsg) Describe() string {
	return fmt.Sprintf(`component:%q option:%q`, m.Component, m.Option.Label)
}

// ChipRemovedCmd wraps ChipRemovedMsg.
func ChipRemovedCmd(component ComponentID, o option.Option) tea.Cmd {
	return func() tea.Msg {
		return ChipRemovedMsg{Component: component, Option: o}
	}
}

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus. For a chip field, blur is
// the one path that closes the menu; escape and outside activity request a
// blur rather than closing directly.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}
