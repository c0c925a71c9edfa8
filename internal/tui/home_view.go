package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderHomeScreen(st *styles, schoolName string, width, height int) string {
	var lines []string
	lines = append(lines, st.accent.Render(strings.ToUpper(schoolName)))
	lines = append(lines, st.muted.Render("News & Events"))
	lines = append(lines, "", "")

	item := func(key, label string) string {
		return "  " + st.accent.Render("["+key+"]") + "  " + st.body.Render(label)
	}
	lines = append(lines, item("n", "Latest news"))
	lines = append(lines, item("e", "Upcoming events"))
	lines = append(lines, item("s", "Display settings"))
	lines = append(lines, "")
	lines = append(lines, item("q", "Quit"))

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
