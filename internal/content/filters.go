package content

// All is the filter key that disables category filtering.
const All = "all"

// Filter maps a selectable key to one or more category names.
type Filter struct {
	Key        string
	Label      string
	Categories []string
}

var newsFilters = []Filter{
	{Key: All, Label: "All"},
	{Key: "academics", Label: "Academics", Categories: []string{"Academics"}},
	{Key: "sports", Label: "Sports", Categories: []string{"Sports"}},
	{Key: "arts", Label: "Arts", Categories: []string{"Arts"}},
	{Key: "admissions", Label: "Admissions", Categories: []string{"Admissions"}},
	{Key: "community", Label: "Community", Categories: []string{"Community", "Achievement"}},
}

var eventFilters = []Filter{
	{Key: All, Label: "All"},
	{Key: "academic", Label: "Academic", Categories: []string{"Academics", "Admissions", "Career"}},
	{Key: "sports", Label: "Sports", Categories: []string{"Sports"}},
	{Key: "arts", Label: "Arts & Culture", Categories: []string{"Arts", "Cultural"}},
	{Key: "community", Label: "Community", Categories: []string{"Community"}},
}

// Filters returns the filter table for kind. The first entry is always All.
func Filters(kind Kind) []Filter {
	src := newsFilters
	if kind == Events {
		src = eventFilters
	}
	out := make([]Filter, len(src))
	copy(out, src)
	return out
}

// Resolve maps a filter key to its category set. All resolves to nil, true;
// an unknown key resolves to nil, false and callers treat it as All.
func Resolve(kind Kind, key string) ([]string, bool) {
	for _, f := range Filters(kind) {
		if f.Key == key {
			return f.Categories, true
		}
	}
	return nil, false
}

// FilterLabel returns the display label for key, or "All" when unknown.
func FilterLabel(kind Kind, key string) string {
	for _, f := range Filters(kind) {
		if f.Key == key {
			return f.Label
		}
	}
	return "All"
}

var categoryIcons = map[string]string{
	"Academics":   "✎",
	"Admissions":  "✉",
	"Achievement": "★",
	"Arts":        "♪",
	"Career":      "➤",
	"Community":   "♥",
	"Cultural":    "✿",
	"Sports":      "⚑",
}

const defaultIcon = "•"

// Icon returns the glyph for a category, falling back to a bullet.
func Icon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return defaultIcon
}
