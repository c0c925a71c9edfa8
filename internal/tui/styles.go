package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/campusnews/internal/theme"
)

// StyleRoot is the TUI's rendering context. Preferences write named style
// variables and classes into it; lipgloss styles are rebuilt from them lazily.
//
// With the high-contrast class on, the high-contrast table overlays whatever
// light or dark variables were applied.
type StyleRoot struct {
	vars    map[string]string
	classes map[string]bool
	dirty   bool
	st      styles
}

func NewStyleRoot() *StyleRoot {
	r := &StyleRoot{vars: make(map[string]string), classes: make(map[string]bool)}
	theme.Apply(r, theme.Resolve(theme.Light, theme.FontNormal, false, false))
	return r
}

func (r *StyleRoot) SetVar(name, value string) {
	if r.vars[name] != value {
		r.vars[name] = value
		r.dirty = true
	}
}

func (r *StyleRoot) SetClass(name string, on bool) {
	if r.classes[name] != on {
		r.classes[name] = on
		r.dirty = true
	}
}

func (r *StyleRoot) HasClass(name string) bool { return r.classes[name] }

// Var returns the effective value of a style variable.
func (r *StyleRoot) Var(name string) string {
	if r.classes[theme.ClassHighContrast] {
		if v, ok := theme.Table(theme.HighContrast)[name]; ok {
			return v
		}
	}
	return r.vars[name]
}

func (r *StyleRoot) color(name string) lipgloss.Color {
	return lipgloss.Color(r.Var(name))
}

func (r *StyleRoot) reducedMotion() bool { return r.classes[theme.ClassReducedMotion] }

// scale maps the font-size variable back to its density scale.
func (r *StyleRoot) scale() int {
	v := r.vars[theme.VarFontSize]
	for _, size := range theme.FontSizes() {
		if size.Spec().Value == v {
			return size.Spec().Scale
		}
	}
	return theme.FontNormal.Spec().Scale
}

// isDark reports whether the effective background is dark.
func (r *StyleRoot) isDark() bool {
	return luminance(r.Var(theme.VarBackground)) < 0.5
}

func luminance(hex string) float64 {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 1
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 1
	}
	rr := float64((v>>16)&0xff) / 255
	gg := float64((v>>8)&0xff) / 255
	bb := float64(v&0xff) / 255
	return 0.2126*rr + 0.7152*gg + 0.0722*bb
}

func (r *StyleRoot) styles() *styles {
	if r.dirty || !r.st.built {
		r.st = buildStyles(r)
		r.dirty = false
	}
	return &r.st
}

type styles struct {
	built bool

	header       lipgloss.Style
	headerDim    lipgloss.Style
	tabActive    lipgloss.Style
	tabInactive  lipgloss.Style
	tabSeparator lipgloss.Style

	card          lipgloss.Style
	cardSelected  lipgloss.Style
	itemTitle     lipgloss.Style
	itemMeta      lipgloss.Style
	itemExcerpt   lipgloss.Style
	badge         lipgloss.Style
	views         lipgloss.Style
	emptyTitle    lipgloss.Style
	emptyHint     lipgloss.Style
	pagerEnabled  lipgloss.Style
	pagerDisabled lipgloss.Style

	modal      lipgloss.Style
	modalTitle lipgloss.Style
	modalMeta  lipgloss.Style
	tag        lipgloss.Style
	body       lipgloss.Style

	statusBar    lipgloss.Style
	accent       lipgloss.Style
	muted        lipgloss.Style
	errorText    lipgloss.Style
	searchPrompt lipgloss.Style
	spinner      lipgloss.Style
	settingRow   lipgloss.Style
	settingFocus lipgloss.Style
}

func buildStyles(r *StyleRoot) styles {
	primary := r.color(theme.VarPrimary)
	accent := r.color(theme.VarAccent)
	text := r.color(theme.VarText)
	muted := r.color(theme.VarTextMuted)
	border := r.color(theme.VarCardBorder)
	focus := r.color(theme.VarFocusRing)

	scale := r.scale()
	pad := 0
	if scale >= 3 {
		pad = 1
	}

	title := lipgloss.NewStyle().Foreground(primary).Bold(true)
	if scale >= 4 {
		title = title.Underline(true)
	}

	return styles{
		built: true,

		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(r.color(theme.VarHeaderText)).
			Background(r.color(theme.VarHeaderBg)).
			Padding(0, 1),
		headerDim: lipgloss.NewStyle().
			Foreground(muted),
		tabActive: lipgloss.NewStyle().
			Foreground(r.color(theme.VarTextInverse)).
			Background(primary).
			Padding(0, 1).
			Bold(true),
		tabInactive: lipgloss.NewStyle().
			Foreground(text).
			Background(r.color(theme.VarSurfaceAlt)).
			Padding(0, 1),
		tabSeparator: lipgloss.NewStyle().
			Foreground(muted),

		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(pad, 1),
		cardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(focus).
			Padding(pad, 1),
		itemTitle:   title,
		itemMeta:    lipgloss.NewStyle().Foreground(r.color(theme.VarSecondary)),
		itemExcerpt: lipgloss.NewStyle().Foreground(text),
		badge: lipgloss.NewStyle().
			Foreground(r.color(theme.VarBadgeText)).
			Background(r.color(theme.VarBadgeBg)).
			Padding(0, 1),
		views:      lipgloss.NewStyle().Foreground(muted),
		emptyTitle: lipgloss.NewStyle().Foreground(primary).Bold(true),
		emptyHint:  lipgloss.NewStyle().Foreground(muted),
		pagerEnabled: lipgloss.NewStyle().
			Foreground(r.color(theme.VarLink)).
			Bold(true),
		pagerDisabled: lipgloss.NewStyle().
			Foreground(r.color(theme.VarBorderStrong)),

		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(focus).
			Padding(1, 2),
		modalTitle: lipgloss.NewStyle().Foreground(primary).Bold(true),
		modalMeta:  lipgloss.NewStyle().Foreground(r.color(theme.VarSecondary)),
		tag:        lipgloss.NewStyle().Foreground(r.color(theme.VarInfo)),
		body:       lipgloss.NewStyle().Foreground(text),

		statusBar: lipgloss.NewStyle().
			Foreground(text).
			Background(r.color(theme.VarSurfaceAlt)).
			PaddingLeft(1).
			PaddingRight(1),
		accent:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(muted),
		errorText: lipgloss.NewStyle().Foreground(r.color(theme.VarError)).Bold(true),
		searchPrompt: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		spinner:    lipgloss.NewStyle().Foreground(accent),
		settingRow: lipgloss.NewStyle().Foreground(text).PaddingLeft(2),
		settingFocus: lipgloss.NewStyle().
			Foreground(r.color(theme.VarTextInverse)).
			Background(primary).
			PaddingLeft(2),
	}
}

// excerptLines is how many description lines a card shows at each scale.
func excerptLines(scale int) int {
	switch {
	case scale <= 1:
		return 1
	case scale >= 4:
		return 3
	default:
		return 2
	}
}
