// Package option defines the selectable option model shared by the chip
// field widgets and the stores that feed them.
package option

// SelectionMode controls how many options a field may hold at once.
type SelectionMode string

const (
	// Single allows at most one selected option; choosing a new option
	// replaces the previous one.
	Single SelectionMode = "single"
	// Multi allows any number of selected options.
	Multi SelectionMode = "multi"
)

// Option is one selectable item. Two options are the same item when both
// Label and Value match; Group is display metadata only.
type Option struct {
	Label string
	Value string
	Group string
}

// Key returns the identity key used for equality and set membership.
func (o Option) Key() string {
	return o.Label + "\x00" + o.Value
}

// Same reports whether o and other identify the same item.
func (o Option) Same(other Option) bool {
	return o.Label == other.Label && o.Value == other.Value
}

// NoResultsValue marks the synthetic row shown when a search matches nothing.
const NoResultsValue = "__chipfield:no-results__"

// NoResults is the synthetic placeholder option. It is rendered like a row
// but is never selectable and never participates in selected or disabled
// membership checks.
var NoResults = Option{Label: "No results found", Value: NoResultsValue}

// IsNoResults reports whether o is the synthetic placeholder row.
func (o Option) IsNoResults() bool {
	return o.Value == NoResultsValue
}

// SliceEqual reports whether two option sequences hold the same items in the
// same order. Used by the state store to skip redundant replacements.
func SliceEqual(a, b []Option) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Same(b[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether opts holds an option with o's identity.
func Contains(opts []Option, o Option) bool {
	return IndexOf(opts, o) >= 0
}

// IndexOf returns the position of o within opts, or -1.
func IndexOf(opts []Option, o Option) int {
	for i := range opts {
		if opts[i].Same(o) {
			return i
		}
	}
	return -1
}
