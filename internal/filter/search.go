package filter

import (
	"strings"
)

// Searchable exposes the textual rendering of every record field so the
// global search term can match regardless of which field contains it.
type Searchable interface {
	SearchValues() []string
}

// Search keeps records where any field contains term, case-insensitively.
// An empty term is the identity.
func Search[T Searchable](items []T, term string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, v := range item.SearchValues() {
			if strings.Contains(strings.ToLower(v), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
