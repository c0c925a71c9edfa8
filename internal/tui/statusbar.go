package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/campusnews/internal/query"
)

func newPager() paginator.Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.SetTotalPages(1)
	return p
}

// syncPager mirrors the query result onto the paginator. Zero pages still
// shows one empty page.
func syncPager(p *paginator.Model, st *styles, res query.Result) {
	total := res.TotalPages
	if total < 1 {
		total = 1
	}
	p.TotalPages = total
	p.Page = res.Page - 1
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Page >= total {
		p.Page = total - 1
	}
	if total > 10 {
		p.Type = paginator.Arabic
	} else {
		p.Type = paginator.Dots
	}
	p.ActiveDot = st.pagerEnabled.Render("●")
	p.InactiveDot = st.pagerDisabled.Render("○")
}

// renderPagerRow draws prev/next controls around the paginator. A control
// at the boundary is drawn disabled.
func renderPagerRow(st *styles, p paginator.Model, hasPrev, hasNext bool, width int) string {
	prev := st.pagerDisabled.Render("‹ prev")
	if hasPrev {
		prev = st.pagerEnabled.Render("‹ prev")
	}
	next := st.pagerDisabled.Render("next ›")
	if hasNext {
		next = st.pagerEnabled.Render("next ›")
	}
	row := prev + "  " + p.View() + "  " + next
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

func renderStatusBar(st *styles, left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		gap = 0
	}
	bar := left + fmt.Sprintf("%*s", gap, "") + right
	return st.statusBar.Width(width).Render(bar)
}

func statusSummary(res query.Result, filterLabel string, sort query.SortKey, search string) string {
	parts := []string{fmt.Sprintf("%d items", res.TotalMatching)}
	if filterLabel != "All" {
		parts = append(parts, filterLabel)
	}
	parts = append(parts, sort.Label())
	if search != "" {
		parts = append(parts, fmt.Sprintf("%q", search))
	}
	return strings.Join(parts, " · ")
}
