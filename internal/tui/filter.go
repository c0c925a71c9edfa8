package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/campusnews/internal/content"
)

type filterBar struct {
	filters    []content.Filter
	active     string
	filterMode bool
	cursor     int
}

func newFilterBar(kind content.Kind) filterBar {
	return filterBar{
		filters: content.Filters(kind),
		active:  content.All,
	}
}

func (f *filterBar) left() {
	if f.cursor > 0 {
		f.cursor--
	}
}

func (f *filterBar) right() {
	if f.cursor < len(f.filters)-1 {
		f.cursor++
	}
}

// selectCurrent marks the filter under the cursor active and returns its key.
func (f *filterBar) selectCurrent() string {
	if f.cursor < len(f.filters) {
		f.active = f.filters[f.cursor].Key
	}
	return f.active
}

// selectIndex activates the idx'th filter, reporting whether it exists.
func (f *filterBar) selectIndex(idx int) (string, bool) {
	if idx < 0 || idx >= len(f.filters) {
		return "", false
	}
	f.cursor = idx
	return f.selectCurrent(), true
}

// sync points the cursor at key, used when the query state changes elsewhere.
func (f *filterBar) sync(key string) {
	f.active = key
	for i, flt := range f.filters {
		if flt.Key == key {
			f.cursor = i
			return
		}
	}
}

func (f *filterBar) render(st *styles, bg lipgloss.Color, width int) string {
	sep := st.tabSeparator.Render(" · ")
	var row string
	for i, flt := range f.filters {
		style := st.tabInactive
		if flt.Key == f.active {
			style = st.tabActive
		}
		label := flt.Label
		if f.filterMode {
			label = strconv.Itoa(i+1) + " " + label
			if i == f.cursor {
				label = "[" + label + "]"
			}
		}
		part := style.Render(label)

		// stop before overflowing the row
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	return lipgloss.NewStyle().
		Background(bg).
		Width(width).
		PaddingLeft(1).
		Render(row)
}

func (f *filterBar) label() string {
	for _, flt := range f.filters {
		if flt.Key == f.active {
			return flt.Label
		}
	}
	return "All"
}
