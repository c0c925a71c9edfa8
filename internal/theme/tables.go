package theme

import "sort"

// Mode names one of the style-variable tables.
type Mode string

const (
	Light        Mode = "light"
	Dark         Mode = "dark"
	HighContrast Mode = "high-contrast"
)

// ParseMode returns Light for anything it does not recognise.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case Dark:
		return Dark
	case HighContrast:
		return HighContrast
	default:
		return Light
	}
}

// Style variable names shared by every table.
const (
	VarPrimary      = "primary"
	VarPrimaryLight = "primary-light"
	VarPrimaryDark  = "primary-dark"
	VarSecondary    = "secondary"
	VarAccent       = "accent"
	VarBackground   = "background"
	VarSurface      = "surface"
	VarSurfaceAlt   = "surface-alt"
	VarText         = "text"
	VarTextMuted    = "text-muted"
	VarTextInverse  = "text-inverse"
	VarBorder       = "border"
	VarBorderStrong = "border-strong"
	VarSuccess      = "success"
	VarWarning      = "warning"
	VarError        = "error"
	VarInfo         = "info"
	VarLink         = "link"
	VarFocusRing    = "focus-ring"
	VarCardBg       = "card-bg"
	VarCardBorder   = "card-border"
	VarHeaderBg     = "header-bg"
	VarHeaderText   = "header-text"
	VarBadgeBg      = "badge-bg"
	VarBadgeText    = "badge-text"
)

var tables = map[Mode]map[string]string{
	Light: {
		VarPrimary:      "#1E3A8A",
		VarPrimaryLight: "#3B82F6",
		VarPrimaryDark:  "#1E40AF",
		VarSecondary:    "#0F766E",
		VarAccent:       "#D97706",
		VarBackground:   "#FFFFFF",
		VarSurface:      "#F8FAFC",
		VarSurfaceAlt:   "#F1F5F9",
		VarText:         "#0F172A",
		VarTextMuted:    "#64748B",
		VarTextInverse:  "#FFFFFF",
		VarBorder:       "#E2E8F0",
		VarBorderStrong: "#94A3B8",
		VarSuccess:      "#15803D",
		VarWarning:      "#B45309",
		VarError:        "#B91C1C",
		VarInfo:         "#0369A1",
		VarLink:         "#2563EB",
		VarFocusRing:    "#F59E0B",
		VarCardBg:       "#FFFFFF",
		VarCardBorder:   "#CBD5E1",
		VarHeaderBg:     "#1E3A8A",
		VarHeaderText:   "#FFFFFF",
		VarBadgeBg:      "#FEF3C7",
		VarBadgeText:    "#92400E",
	},
	Dark: {
		VarPrimary:      "#93C5FD",
		VarPrimaryLight: "#BFDBFE",
		VarPrimaryDark:  "#60A5FA",
		VarSecondary:    "#5EEAD4",
		VarAccent:       "#FBBF24",
		VarBackground:   "#0B1120",
		VarSurface:      "#111827",
		VarSurfaceAlt:   "#1F2937",
		VarText:         "#E5E7EB",
		VarTextMuted:    "#9CA3AF",
		VarTextInverse:  "#0B1120",
		VarBorder:       "#1F2937",
		VarBorderStrong: "#4B5563",
		VarSuccess:      "#4ADE80",
		VarWarning:      "#FBBF24",
		VarError:        "#F87171",
		VarInfo:         "#38BDF8",
		VarLink:         "#60A5FA",
		VarFocusRing:    "#FBBF24",
		VarCardBg:       "#111827",
		VarCardBorder:   "#374151",
		VarHeaderBg:     "#1E293B",
		VarHeaderText:   "#F9FAFB",
		VarBadgeBg:      "#78350F",
		VarBadgeText:    "#FDE68A",
	},
	HighContrast: {
		VarPrimary:      "#FFFF00",
		VarPrimaryLight: "#FFFF66",
		VarPrimaryDark:  "#FFD700",
		VarSecondary:    "#00FFFF",
		VarAccent:       "#FF00FF",
		VarBackground:   "#000000",
		VarSurface:      "#000000",
		VarSurfaceAlt:   "#1A1A1A",
		VarText:         "#FFFFFF",
		VarTextMuted:    "#FFFFFF",
		VarTextInverse:  "#000000",
		VarBorder:       "#FFFFFF",
		VarBorderStrong: "#FFFFFF",
		VarSuccess:      "#00FF00",
		VarWarning:      "#FFFF00",
		VarError:        "#FF3333",
		VarInfo:         "#00FFFF",
		VarLink:         "#00FFFF",
		VarFocusRing:    "#FF00FF",
		VarCardBg:       "#000000",
		VarCardBorder:   "#FFFFFF",
		VarHeaderBg:     "#000000",
		VarHeaderText:   "#FFFF00",
		VarBadgeBg:      "#FFFF00",
		VarBadgeText:    "#000000",
	},
}

// Modes lists the three named tables.
func Modes() []Mode {
	return []Mode{Light, Dark, HighContrast}
}

// Table returns a copy of the variable table for mode. Unknown modes get Light.
func Table(mode Mode) map[string]string {
	src, ok := tables[mode]
	if !ok {
		src = tables[Light]
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Tables returns copies of all three tables keyed by mode.
func Tables() map[Mode]map[string]string {
	out := make(map[Mode]map[string]string, len(tables))
	for _, m := range Modes() {
		out[m] = Table(m)
	}
	return out
}

// Names returns the sorted variable names every table defines.
func Names() []string {
	names := make([]string, 0, len(tables[Light]))
	for k := range tables[Light] {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
