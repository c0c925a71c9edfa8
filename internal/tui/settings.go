package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/campusnews/internal/prefs"
	"github.com/matheuskafuri/campusnews/internal/theme"
)

const (
	settingTheme = iota
	settingFontSize
	settingHighContrast
	settingReducedMotion
	settingCount
)

var settingLabels = [settingCount]string{"Theme", "Font size", "High contrast", "Reduced motion"}

// activateSetting applies the row's toggle or cycle through the manager.
func activateSetting(m *prefs.Manager, row int) {
	switch row {
	case settingTheme:
		m.ToggleTheme()
	case settingFontSize:
		m.CycleFontSize()
	case settingHighContrast:
		m.ToggleHighContrast()
	case settingReducedMotion:
		m.ToggleReducedMotion()
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func settingValue(rec prefs.Record, row int) string {
	switch row {
	case settingTheme:
		return string(rec.Theme)
	case settingFontSize:
		return fmt.Sprintf("%s (%s)", rec.FontSize, rec.FontSize.Spec().Value)
	case settingHighContrast:
		return onOff(rec.HighContrast)
	case settingReducedMotion:
		return onOff(rec.ReducedMotion)
	}
	return ""
}

func newScoreBar(r *StyleRoot) progress.Model {
	return progress.New(
		progress.WithSolidFill(r.Var(theme.VarSuccess)),
		progress.WithoutPercentage(),
		progress.WithWidth(30),
	)
}

func renderSettings(st *styles, r *StyleRoot, rec prefs.Record, score int, offline bool, cursor, width, height int) string {
	var b strings.Builder
	b.WriteString(st.modalTitle.Render("Display settings"))
	b.WriteString("\n\n")
	for i := 0; i < settingCount; i++ {
		row := fmt.Sprintf("%-16s %s", settingLabels[i], settingValue(rec, i))
		if i == cursor {
			b.WriteString(st.settingFocus.Render("> " + row))
		} else {
			b.WriteString(st.settingRow.Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	bar := newScoreBar(r)
	b.WriteString(st.body.Render(fmt.Sprintf("Accessibility score %d/100", score)))
	b.WriteString("\n")
	b.WriteString(bar.ViewAs(float64(score) / 100))
	b.WriteString("\n")
	if offline {
		b.WriteString("\n")
		b.WriteString(st.errorText.Render("Preferences could not be read; changes will not be saved this session."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(st.muted.Render("j/k move · enter toggle · R reset · esc close"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, st.modal.Render(b.String()))
}
