package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar renders the one-line status bar: program name on the
// left, seed and stream position on the right, padded to full width.
func (m Model) renderStatusBar() string {
	left := " seedcraft"
	right := fmt.Sprintf("seed %d · pos %d ", m.engine.Seed(), m.engine.Position())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return styleStatusBar.Render(left + strings.Repeat(" ", gap) + right)
}
