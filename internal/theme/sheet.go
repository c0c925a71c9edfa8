// Package theme maps display preferences onto named style variables and
// presentation classes.
//
// Resolve is a pure mapping from preferences to a Sheet; Apply is the only
// place a rendering context is mutated.
package theme

const (
	// VarFontSize carries the base font size, set separately from the theme table.
	VarFontSize = "font-size-base"

	ClassHighContrast  = "high-contrast"
	ClassReducedMotion = "reduced-motion"
)

type Var struct {
	Name  string
	Value string
}

// Sheet is everything a rendering context needs to realise a preference record.
type Sheet struct {
	Mode          Mode
	Vars          []Var
	FontSize      FontSize
	Font          FontSpec
	HighContrast  bool
	ReducedMotion bool
}

// Root is a rendering context that accepts named style variables and classes.
type Root interface {
	SetVar(name, value string)
	SetClass(name string, on bool)
}

// Resolve builds the sheet for a preference record. Vars are ordered by name.
func Resolve(mode Mode, size FontSize, highContrast, reducedMotion bool) Sheet {
	if _, ok := tables[mode]; !ok {
		mode = Light
	}
	table := tables[mode]
	vars := make([]Var, 0, len(table))
	for _, name := range Names() {
		vars = append(vars, Var{Name: name, Value: table[name]})
	}
	size = ParseFontSize(string(size))
	return Sheet{
		Mode:          mode,
		Vars:          vars,
		FontSize:      size,
		Font:          size.Spec(),
		HighContrast:  highContrast,
		ReducedMotion: reducedMotion,
	}
}

// Apply writes every variable of s onto root, then the font size, then both classes.
func Apply(root Root, s Sheet) {
	if root == nil {
		return
	}
	for _, v := range s.Vars {
		root.SetVar(v.Name, v.Value)
	}
	root.SetVar(VarFontSize, s.Font.Value)
	root.SetClass(ClassHighContrast, s.HighContrast)
	root.SetClass(ClassReducedMotion, s.ReducedMotion)
}

// Discard is a Root that ignores everything, for callers with nothing to render.
var Discard Root = discard{}

type discard struct{}

func (discard) SetVar(string, string)  {}
func (discard) SetClass(string, bool) {}
