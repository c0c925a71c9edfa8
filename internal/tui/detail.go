package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/campusnews/internal/content"
)

// detailModel is the modal reading view for one item.
type detailModel struct {
	item content.Item
	kind content.Kind
	vp   viewport.Model

	spring    harmonica.Spring
	pos, vel  float64
	animating bool
}

func newDetailModel() detailModel {
	return detailModel{
		vp:     viewport.New(0, 0),
		spring: harmonica.NewSpring(harmonica.FPS(60), 8.0, 1.0),
	}
}

// modalSize returns the modal's outer width and height for a terminal size.
func modalSize(width, height int) (int, int) {
	w := width * 4 / 5
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = width
	}
	h := height - 4
	if h < 5 {
		h = height
	}
	return w, h
}

func (d *detailModel) open(st *styles, r *StyleRoot, it content.Item, kind content.Kind, width, height int) {
	d.item = it
	d.kind = kind
	d.animating = false
	d.resize(st, r, width, height)
	d.vp.GotoTop()
}

func (d *detailModel) resize(st *styles, r *StyleRoot, width, height int) {
	w, h := modalSize(width, height)
	// border and padding
	d.vp.Width = w - 6
	d.vp.Height = h - 5
	if d.vp.Height < 1 {
		d.vp.Height = 1
	}
	d.vp.SetContent(renderDetailBody(st, d.item, d.kind, markdownStyle(r.isDark()), d.vp.Width))
}

func renderDetailBody(st *styles, it content.Item, kind content.Kind, mdStyle string, width int) string {
	var b strings.Builder
	b.WriteString(st.modalTitle.Width(width).Render(it.Title))
	b.WriteString("\n")

	meta := []string{content.Icon(it.Category) + " " + it.Category, displayDate(it)}
	if kind == content.Events {
		if it.Time != "" {
			meta = append(meta, it.Time)
		}
		if it.Location != "" {
			meta = append(meta, it.Location)
		}
	} else if it.Author != "" {
		meta = append(meta, "by "+it.Author)
	}
	if it.Views > 0 {
		meta = append(meta, fmt.Sprintf("%d views", it.Views))
	}
	b.WriteString(st.modalMeta.Width(width).Render(strings.Join(meta, " · ")))
	b.WriteString("\n")

	if len(it.Tags) > 0 {
		tags := make([]string, len(it.Tags))
		for i, t := range it.Tags {
			tags[i] = "#" + t
		}
		b.WriteString(st.tag.Width(width).Render(strings.Join(tags, " ")))
		b.WriteString("\n")
	}
	if it.Featured {
		b.WriteString(st.badge.Render("Featured"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(st.body.Width(width).Render(it.Description))

	if body := renderMarkdown(it.Body, mdStyle, width); body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	return b.String()
}

func springTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return springFrameMsg{}
	})
}

// top scrolls back to the start. Without reduced motion the jump is animated
// by a spring over several frames.
func (d *detailModel) top(reducedMotion bool) tea.Cmd {
	if reducedMotion || d.vp.YOffset == 0 {
		d.animating = false
		d.vp.GotoTop()
		return nil
	}
	d.pos = float64(d.vp.YOffset)
	d.vel = 0
	if d.animating {
		return nil
	}
	d.animating = true
	return springTick()
}

func (d *detailModel) step() tea.Cmd {
	if !d.animating {
		return nil
	}
	d.pos, d.vel = d.spring.Update(d.pos, d.vel, 0)
	if d.pos < 0.5 && math.Abs(d.vel) < 0.5 {
		d.animating = false
		d.vp.GotoTop()
		return nil
	}
	d.vp.SetYOffset(int(math.Round(d.pos)))
	return springTick()
}

func (d *detailModel) update(msg tea.Msg) tea.Cmd {
	d.animating = false
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	return cmd
}

func (d *detailModel) view(st *styles, width, height int) string {
	w, _ := modalSize(width, height)
	footer := st.muted.Render(fmt.Sprintf("%3.0f%%  j/k scroll · g top · esc close", d.vp.ScrollPercent()*100))
	box := st.modal.Width(w - 2).Render(lipgloss.JoinVertical(lipgloss.Left, d.vp.View(), footer))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
