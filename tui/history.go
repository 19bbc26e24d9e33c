// Package tui provides a Bubble Tea terminal UI for the seedcraft
// distribution explorer.
package tui

// History is a bounded command-history buffer with cursor navigation.
// The cursor walks backward from the newest entry; stepping past the
// newest entry returns to fresh input.
type History struct {
	entries []string
	limit   int
	cursor  int // -1 = not navigating
}

// NewHistory creates a history buffer holding at most limit entries.
func NewHistory(limit int) *History {
	return &History{limit: limit, cursor: -1}
}

// Push records a command. Consecutive duplicates are collapsed, and the
// oldest entry is dropped once the limit is reached.
func (h *History) Push(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
	}
}

// Prev moves the cursor to the previous (older) entry.
// Returns ("", false) if there is no history.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next moves the cursor to the next (newer) entry.
// Returns ("", false) once it walks past the newest entry.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

// ResetCursor leaves navigation mode.
func (h *History) ResetCursor() {
	h.cursor = -1
}
