package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/campusnews/internal/content"
	"github.com/muesli/reflow/wordwrap"
)

// displayDate renders an item date, or the raw value when it does not parse.
func displayDate(it content.Item) string {
	t := it.Published()
	if t.IsZero() {
		return it.Date
	}
	return t.Format("Jan 2, 2006")
}

// relativeDay describes how far a date is from now, in days.
func relativeDay(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	days := int(time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC).Sub(time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 1:
		return fmt.Sprintf("in %dd", days)
	default:
		return fmt.Sprintf("%dd ago", -days)
	}
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// excerpt wraps s to width and keeps at most lines lines, marking the cut.
func excerpt(s string, width, lines int) string {
	if width <= 0 || lines <= 0 {
		return ""
	}
	wrapped := strings.Split(wordwrap.String(strings.Join(strings.Fields(s), " "), width), "\n")
	if len(wrapped) <= lines {
		return strings.Join(wrapped, "\n")
	}
	wrapped = wrapped[:lines]
	last := []rune(strings.TrimRight(wrapped[lines-1], " "))
	if len(last)+3 > width {
		last = last[:max(0, width-3)]
	}
	wrapped[lines-1] = string(last) + "..."
	return strings.Join(wrapped, "\n")
}

func renderCard(st *styles, it content.Item, kind content.Kind, selected bool, width, scale int, now time.Time) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	meta := content.Icon(it.Category) + " " + it.Category + " · " + displayDate(it)
	if kind == content.Events && it.Time != "" {
		meta += " · " + it.Time
	}
	if rel := relativeDay(it.Published(), now); rel != "" {
		meta += " (" + rel + ")"
	}

	var right []string
	if it.Featured {
		right = append(right, st.badge.Render("Featured"))
	}
	if it.Views > 0 {
		right = append(right, st.views.Render(fmt.Sprintf("%d views", it.Views)))
	}
	rightStr := strings.Join(right, " ")
	metaWidth := inner - lipgloss.Width(rightStr) - 1
	metaLine := st.itemMeta.Render(truncateStr(meta, metaWidth))
	if rightStr != "" {
		gap := inner - lipgloss.Width(metaLine) - lipgloss.Width(rightStr)
		if gap < 1 {
			gap = 1
		}
		metaLine += strings.Repeat(" ", gap) + rightStr
	}

	title := st.itemTitle.Render(truncateStr(it.Title, inner))
	body := st.itemExcerpt.Render(excerpt(it.Description, inner, excerptLines(scale)))

	box := st.card
	if selected {
		box = st.cardSelected
	}
	return box.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, metaLine, title, body))
}

// cardHeight is the rendered height of one card at scale, borders included.
func cardHeight(scale int) int {
	pad := 0
	if scale >= 3 {
		pad = 2
	}
	return 2 + excerptLines(scale) + pad + 2
}

// visibleCards is how many cards fit into height.
func visibleCards(height, scale int) int {
	n := height / cardHeight(scale)
	if n < 1 {
		n = 1
	}
	return n
}

// clampOffset keeps cursor inside the window [offset, offset+visible).
func clampOffset(offset, cursor, visible, total int) int {
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+visible {
		offset = cursor - visible + 1
	}
	if maxOff := total - visible; offset > maxOff {
		offset = maxOff
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func renderList(st *styles, items []content.Item, kind content.Kind, cursor, offset, width, height, scale int, now time.Time) string {
	if len(items) == 0 {
		return renderEmpty(st, width, height)
	}
	visible := visibleCards(height, scale)
	end := offset + visible
	if end > len(items) {
		end = len(items)
	}
	cards := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		cards = append(cards, renderCard(st, items[i], kind, i == cursor, width, scale, now))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderEmpty(st *styles, width, height int) string {
	msg := st.emptyTitle.Render("No items match") + "\n\n" +
		st.emptyHint.Render("/ edit search · f change filter · esc clears search")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
