package constants

const (
	// DefaultMenuHeight is the row count a floating menu uses when the
	// caller does not configure one.
	DefaultMenuHeight = 8

	// CheckboxChecked and CheckboxUnchecked mark rows in multi-select menus.
	CheckboxChecked   = "[x]"
	CheckboxUnchecked = "[ ]"

	// ChipDismiss is the dismiss control rendered on removable chips.
	ChipDismiss = "✕"

	// MenuCursor marks the highlighted row in the floating menu.
	MenuCursor = "❯"

	// SearchPrompt prefixes the in-menu search box.
	SearchPrompt = "/ "
)
