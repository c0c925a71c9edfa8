// Package prefs holds the user's display preferences, mirrors every change
// into durable storage and re-applies the derived style sheet.
package prefs

import (
	"sync"

	"github.com/matheuskafuri/campusnews/internal/logging"
	"github.com/matheuskafuri/campusnews/internal/theme"
)

// Storage keys. Values are always strings.
const (
	KeyTheme         = "theme"
	KeyFontSize      = "fontSize"
	KeyHighContrast  = "highContrast"
	KeyReducedMotion = "reducedMotion"
)

// Storage is a durable string key/value store.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

type Record struct {
	Theme         theme.Mode
	FontSize      theme.FontSize
	HighContrast  bool
	ReducedMotion bool
}

func Defaults() Record {
	return Record{Theme: theme.Light, FontSize: theme.FontNormal}
}

// Sheet resolves r into the style sheet a rendering context applies.
func (r Record) Sheet() theme.Sheet {
	return theme.Resolve(r.Theme, r.FontSize, r.HighContrast, r.ReducedMotion)
}

// AccessibilityScore adds 25 points for each of: dark theme, large-or-larger
// font, high contrast and reduced motion.
func (r Record) AccessibilityScore() int {
	score := 0
	if r.Theme == theme.Dark {
		score += 25
	}
	if r.FontSize.AtLeastLarge() {
		score += 25
	}
	if r.HighContrast {
		score += 25
	}
	if r.ReducedMotion {
		score += 25
	}
	return score
}

// Manager owns the preference record. Every mutation applies the new sheet to
// the root and then persists all four fields.
type Manager struct {
	mu      sync.Mutex
	storage Storage
	root    theme.Root
	rec     Record
	// offline is set after a storage failure during Load; the session then
	// runs on in-memory state only.
	offline bool
}

// New returns a manager holding Defaults. Call Load to read stored values.
// A nil root discards style updates.
func New(storage Storage, root theme.Root) *Manager {
	if root == nil {
		root = theme.Discard
	}
	return &Manager{storage: storage, root: root, rec: Defaults()}
}

// Load reads the stored record, falling back to defaults per key, and applies it.
func (m *Manager) Load() Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.read()
	if err != nil {
		logging.Warn("preference storage unavailable, using defaults", "err", err)
		m.offline = true
		rec = Defaults()
	}
	m.rec = rec
	theme.Apply(m.root, m.rec.Sheet())
	return m.rec
}

func (m *Manager) read() (Record, error) {
	rec := Defaults()
	if m.storage == nil {
		return rec, nil
	}

	v, ok, err := m.storage.Get(KeyTheme)
	if err != nil {
		return rec, err
	}
	if ok && (v == string(theme.Light) || v == string(theme.Dark)) {
		rec.Theme = theme.Mode(v)
	}

	v, ok, err = m.storage.Get(KeyFontSize)
	if err != nil {
		return rec, err
	}
	if ok {
		rec.FontSize = theme.ParseFontSize(v)
	}

	v, ok, err = m.storage.Get(KeyHighContrast)
	if err != nil {
		return rec, err
	}
	rec.HighContrast = ok && v == "true"

	v, ok, err = m.storage.Get(KeyReducedMotion)
	if err != nil {
		return rec, err
	}
	rec.ReducedMotion = ok && v == "true"

	return rec, nil
}

func (m *Manager) Record() Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rec
}

func (m *Manager) AccessibilityScore() int {
	return m.Record().AccessibilityScore()
}

// Offline reports whether storage failed during Load.
func (m *Manager) Offline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.offline
}

func (m *Manager) update(fn func(*Record)) Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.rec)
	m.apply()
	return m.rec
}

func (m *Manager) apply() {
	theme.Apply(m.root, m.rec.Sheet())
	m.persist()
}

func (m *Manager) persist() {
	if m.storage == nil || m.offline {
		return
	}
	values := [][2]string{
		{KeyTheme, string(m.rec.Theme)},
		{KeyFontSize, string(m.rec.FontSize)},
		{KeyHighContrast, boolString(m.rec.HighContrast)},
		{KeyReducedMotion, boolString(m.rec.ReducedMotion)},
	}
	for _, kv := range values {
		if err := m.storage.Set(kv[0], kv[1]); err != nil {
			logging.Warn("persisting preference", "key", kv[0], "err", err)
		}
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// SetTheme accepts only light and dark; the high-contrast table is driven by
// the HighContrast flag instead.
func (m *Manager) SetTheme(mode theme.Mode) Record {
	if mode != theme.Light && mode != theme.Dark {
		return m.Record()
	}
	return m.update(func(r *Record) { r.Theme = mode })
}

func (m *Manager) ToggleTheme() Record {
	return m.update(func(r *Record) {
		if r.Theme == theme.Dark {
			r.Theme = theme.Light
		} else {
			r.Theme = theme.Dark
		}
	})
}

func (m *Manager) SetFontSize(size theme.FontSize) Record {
	size = theme.ParseFontSize(string(size))
	return m.update(func(r *Record) { r.FontSize = size })
}

func (m *Manager) CycleFontSize() Record {
	return m.update(func(r *Record) { r.FontSize = r.FontSize.Next() })
}

func (m *Manager) SetHighContrast(on bool) Record {
	return m.update(func(r *Record) { r.HighContrast = on })
}

func (m *Manager) ToggleHighContrast() Record {
	return m.update(func(r *Record) { r.HighContrast = !r.HighContrast })
}

func (m *Manager) SetReducedMotion(on bool) Record {
	return m.update(func(r *Record) { r.ReducedMotion = on })
}

func (m *Manager) ToggleReducedMotion() Record {
	return m.update(func(r *Record) { r.ReducedMotion = !r.ReducedMotion })
}

// Reset restores Defaults, applies and persists them.
func (m *Manager) Reset() Record {
	return m.update(func(r *Record) { *r = Defaults() })
}
