package shortcuts

import (
	"strings"

	domain "github.com/inference-gateway/cheat/internal/domain"
)

// Filter returns the entries whose key or description contains query,
// ignoring case, in list order. An empty query returns a copy of list.
func Filter(list domain.ShortcutList, query string) domain.ShortcutList {
	if query == "" {
		visible := make(domain.ShortcutList, len(list))
		copy(visible, list)
		return visible
	}

	q := strings.ToLower(query)
	visible := make(domain.ShortcutList, 0, len(list))
	for _, entry := range list {
		if matches(entry, q) {
			visible = append(visible, entry)
		}
	}
	return visible
}

// Matches reports whether entry contains query in its key or description, ignoring case
func Matches(entry domain.ShortcutEntry, query string) bool {
	return matches(entry, strings.ToLower(query))
}

func matches(entry domain.ShortcutEntry, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(entry.Key), lowerQuery) ||
		strings.Contains(strings.ToLower(entry.Description), lowerQuery)
}
