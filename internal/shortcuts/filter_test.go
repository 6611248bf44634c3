package shortcuts

import (
	"strings"
	"testing"

	domain "github.com/inference-gateway/cheat/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleList() domain.ShortcutList {
	return domain.ShortcutList{
		{Key: "Ctrl+C", Description: "Copy"},
		{Key: "Ctrl+V", Description: "Paste"},
		{Key: "Ctrl+Shift+P", Description: "Command palette"},
		{Key: "Esc", Description: "Close"},
		{Key: "/", Description: "Search"},
		{Key: "Alt+Tab", Description: "Switch windows"},
	}
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	list := sampleList()

	visible := Filter(list, "")

	assert.Equal(t, list, visible)
	visible[0].Key = "changed"
	assert.Equal(t, "Ctrl+C", list[0].Key, "filter must not alias the source list")
}

func TestFilter_Scenario(t *testing.T) {
	list := domain.ShortcutList{
		{Key: "Esc", Description: "Close"},
		{Key: "/", Description: "Search"},
	}

	assert.Equal(t, domain.ShortcutList{{Key: "Esc", Description: "Close"}}, Filter(list, "close"))
	assert.Equal(t, domain.ShortcutList{{Key: "/", Description: "Search"}}, Filter(list, "sea"))

	// "Esc" contains an "s" in its key, so a bare "s" keeps both rows
	assert.Equal(t, list, Filter(list, "s"))
}

func TestFilter_Cases(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"matches key", "ctrl+", []string{"Ctrl+C", "Ctrl+V", "Ctrl+Shift+P"}},
		{"matches description", "PALETTE", []string{"Ctrl+Shift+P"}},
		{"matches either field", "c", []string{"Ctrl+C", "Ctrl+V", "Ctrl+Shift+P", "Esc", "/", "Alt+Tab"}},
		{"no match", "zzz", []string{}},
		{"whitespace is literal", " ", []string{"Ctrl+Shift+P", "Alt+Tab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible := Filter(sampleList(), tt.query)

			keys := make([]string, 0, len(visible))
			for _, e := range visible {
				keys = append(keys, e.Key)
			}
			assert.Equal(t, tt.expected, keys)
		})
	}
}

func TestFilter_Properties(t *testing.T) {
	list := sampleList()
	queries := []string{"", "c", "C", "ctrl", "a", "se", "/", "+", "tab", "missing", "E"}

	for _, q := range queries {
		visible := Filter(list, q)

		// order-preserving subset
		j := 0
		for _, e := range visible {
			for j < len(list) && list[j] != e {
				j++
			}
			assert.Less(t, j, len(list), "query %q produced entry %v not in order", q, e)
			j++
		}

		// every visible entry matches
		lq := strings.ToLower(q)
		for _, e := range visible {
			assert.True(t,
				strings.Contains(strings.ToLower(e.Key), lq) || strings.Contains(strings.ToLower(e.Description), lq),
				"query %q produced non-matching entry %v", q, e)
		}

		// every matching entry is visible
		expected := 0
		for _, e := range list {
			if Matches(e, q) {
				expected++
			}
		}
		assert.Len(t, visible, expected)

		// idempotent
		assert.Equal(t, visible, Filter(list, q))
	}
}

func TestFilter_NilList(t *testing.T) {
	assert.Empty(t, Filter(nil, ""))
	assert.Empty(t, Filter(nil, "x"))
}

func TestMatches(t *testing.T) {
	entry := domain.ShortcutEntry{Key: "Ctrl+S", Description: "Save File"}

	assert.True(t, Matches(entry, "save"))
	assert.True(t, Matches(entry, "CTRL"))
	assert.True(t, Matches(entry, ""))
	assert.False(t, Matches(entry, "open"))
}
