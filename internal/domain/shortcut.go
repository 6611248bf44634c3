package domain

// ShortcutEntry is a single keyboard shortcut hint
type ShortcutEntry struct {
	Key         string `json:"key" yaml:"key"`
	Description string `json:"description" yaml:"description"`
}

// ShortcutList is the ordered list of entries as they appear in the shortcut file
type ShortcutList []ShortcutEntry

// Len returns the number of entries
func (l ShortcutList) Len() int {
	return len(l)
}

// RowStyle identifies how a rendered shortcut row is styled
type RowStyle int

const (
	RowEven RowStyle = iota
	RowOdd
	RowUniform
)

// String returns the string representation of a row style
func (s RowStyle) String() string {
	switch s {
	case RowEven:
		return "even"
	case RowOdd:
		return "odd"
	case RowUniform:
		return "uniform"
	default:
		return "unknown"
	}
}
