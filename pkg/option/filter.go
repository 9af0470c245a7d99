package option

import "strings"

// Filter returns the options whose label contains query, case-insensitively.
// An empty query returns every option. When nothing matches, the result is a
// single NoResults row so the menu always has something to show. Input order
// is preserved; the result is always a fresh slice.
func Filter(all []Option, query string) []Option {
	if query == "" {
		out := make([]Option, len(all))
		copy(out, all)
		return out
	}

	q := strings.ToLower(query)
	out := make([]Option, 0, len(all))
	for _, o := range all {
		if strings.Contains(strings.ToLower(o.Label), q) {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []Option{NoResults}
	}
	return out
}
