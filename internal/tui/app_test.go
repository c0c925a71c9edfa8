package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matheuskafuri/campusnews/internal/config"
	"github.com/matheuskafuri/campusnews/internal/content"
	"github.com/matheuskafuri/campusnews/internal/prefs"
	"github.com/matheuskafuri/campusnews/internal/query"
	"github.com/matheuskafuri/campusnews/internal/theme"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestApp(t *testing.T, section string) *App {
	t.Helper()
	lib, err := content.LoadLibrary("")
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	root := NewStyleRoot()
	mgr := prefs.New(prefs.NewMemoryStorage(), root)
	mgr.Load()
	a := NewApp(RunOpts{
		Cfg:     &config.Config{SchoolName: "Northfield High School", PageSizeValue: 6},
		Library: lib,
		Prefs:   mgr,
		Root:    root,
		Section: section,
	})
	a.now = func() time.Time { return time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC) }
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return a
}

func press(a *App, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = a.Update(m)
	}
	return cmd
}

func TestAppStartsOnConfiguredSection(t *testing.T) {
	a := newTestApp(t, config.SectionNews)
	if a.mode != modeList || a.section != content.News {
		t.Fatalf("mode=%v section=%v, want list/news", a.mode, a.section)
	}
	if a.result.TotalMatching != 9 || a.result.TotalPages != 2 || len(a.result.Items) != 6 {
		t.Errorf("result = %d matching, %d pages, %d on page", a.result.TotalMatching, a.result.TotalPages, len(a.result.Items))
	}

	home := newTestApp(t, config.SectionHome)
	if home.mode != modeHome || home.Section() != config.SectionHome {
		t.Errorf("home app mode=%v section=%q", home.mode, home.Section())
	}
}

func TestAppHomeMenu(t *testing.T) {
	a := newTestApp(t, config.SectionHome)
	press(a, runes("e"))
	if a.mode != modeList || a.section != content.Events {
		t.Fatalf("e should open events, got mode=%v section=%v", a.mode, a.section)
	}
	press(a, runes("h"), runes("n"))
	if a.section != content.News {
		t.Errorf("n should open news, got %v", a.section)
	}
}

func TestAppPagingStopsAtBoundaries(t *testing.T) {
	a := newTestApp(t, config.SectionNews)

	press(a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.state().Page() != 1 {
		t.Errorf("prev on first page moved to %d", a.state().Page())
	}

	press(a, tea.KeyMsg{Type: tea.KeyRight})
	if a.state().Page() != 2 || len(a.result.Items) != 3 {
		t.Fatalf("page=%d items=%d, want 2/3", a.state().Page(), len(a.result.Items))
	}
	if a.pager.Page != 1 {
		t.Errorf("paginator page = %d, want 1", a.pager.Page)
	}

	press(a, runes("]"))
	if a.state().Page() != 2 {
		t.Errorf("next on last page moved to %d", a.state().Page())
	}

	press(a, runes("["))
	if a.state().Page() != 1 {
		t.Errorf("[ should go back to page 1, got %d", a.state().Page())
	}
}

func TestAppSortResetsPage(t *testing.T) {
	a := newTestApp(t, config.SectionNews)
	press(a, tea.KeyMsg{Type: tea.KeyRight}, runes("s"))
	if a.state().Sort() != query.SortTitle || a.state().Page() != 1 {
		t.Errorf("sort=%v page=%d, want title/1", a.state().Sort(), a.state().Page())
	}
	press(a, runes("s"))
	if a.state().Sort() != query.SortPopular {
		t.Fatalf("sort=%v, want popular", a.state().Sort())
	}
	if a.result.Items[0].Views < a.result.Items[1].Views {
		t.Error("popular sort should put the most viewed first")
	}
}

func TestAppLiveSearch(t *testing.T) {
	a := newTestApp(t, config.SectionNews)
	press(a, runes("/"))
	if a.mode != modeSearch {
		t.Fatalf("mode = %v, want search", a.mode)
	}
	for _, r := range "soccer" {
		press(a, runes(string(r)))
	}
	if a.state().Search() != "soccer" || a.result.TotalMatching != 1 {
		t.Errorf("search=%q matching=%d", a.state().Search(), a.result.TotalMatching)
	}

	press(a, runes("x"))
	if a.result.TotalMatching != 0 || a.result.Page != 1 {
		t.Errorf("no match: matching=%d page=%d", a.result.TotalMatching, a.result.Page)
	}
	if !strings.Contains(a.View(), "No items match") {
		t.Error("view should show the empty state")
	}

	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.mode != modeList || a.state().Search() != "" || a.result.TotalMatching != 9 {
		t.Errorf("esc: mode=%v search=%q matching=%d", a.mode, a.state().Search(), a.result.TotalMatching)
	}
}

func TestAppFilterByNumber(t *testing.T) {
	a := newTestApp(t, config.SectionNews)
	press(a, runes("f"), runes("3"))
	if a.state().Category() != "sports" {
		t.Fatalf("category = %q, want sports", a.state().Category())
	}
	if a.result.TotalMatching != 2 {
		t.Errorf("sports news = %d, want 2", a.result.TotalMatching)
	}
	for _, it := range a.result.Items {
		if it.Category != "Sports" {
			t.Errorf("item %q has category %q", it.Title, it.Category)
		}
	}

	press(a, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc})
	if a.state().Category() != content.All || a.mode != modeList {
		t.Errorf("category=%q mode=%v, want all/list", a.state().Category(), a.mode)
	}
}

func TestAppSectionsKeepTheirOwnState(t *testing.T) {
	a := newTestApp(t, config.SectionNews)
	press(a, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyTab})
	if a.section != content.Events || a.result.TotalMatching != 8 {
		t.Fatalf("section=%v matching=%d", a.section, a.result.TotalMatching)
	}
	if a.state().Page() != 1 {
		t.Errorf("events page = %d, want 1", a.state().Page())
	}
	press(a, tea.KeyMsg{Type: tea.KeyTab})
	if a.state().Page() != 2 {
		t.Errorf("news page after round trip = %d, want 2", a.state().Page())
	}
}

func TestAppSettingsDriveStyleRoot(t *testing.T) {
	a := newTestApp(t, config.SectionNews)
	press(a, runes(","))
	if a.mode != modeSettings {
		t.Fatalf("mode = %v, want settings", a.mode)
	}

	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.prefs.Record().Theme != theme.Dark {
		t.Errorf("theme = %v, want dark", a.prefs.Record().Theme)
	}
	if got := a.root.Var(theme.VarBackground); got != theme.Table(theme.Dark)[theme.VarBackground] {
		t.Errorf("root background = %q", got)
	}

	press(a, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	if !a.root.HasClass(theme.ClassHighContrast) {
		t.Error("high contrast class not set")
	}
	if got := a.root.Var(theme.VarText); got != theme.Table(theme.HighContrast)[theme.VarText] {
		t.Errorf("high contrast overlay not applied, text = %q", got)
	}
	if !strings.Contains(a.View(), "50/100") {
		t.Error("settings view should show the score")
	}

	press(a, runes("R"))
	if a.prefs.Record() != prefs.Defaults() {
		t.Errorf("R should reset, got %+v", a.prefs.Record())
	}
	if a.root.HasClass(theme.ClassHighContrast) {
		t.Error("reset should clear high contrast")
	}

	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.mode != modeList {
		t.Errorf("esc should return to the list, got %v", a.mode)
	}
}

func TestAppThemeToggleKey(t *testing.T) {
	a := newTestApp(t, config.SectionNews)
	press(a, runes("T"))
	if a.prefs.Record().Theme != theme.Dark || !a.root.isDark() {
		t.Error("T should switch to dark")
	}
	press(a, runes("T"))
	if a.prefs.Record().Theme != theme.Light || a.root.isDark() {
		t.Error("T again should switch back to light")
	}
}

func TestAppDetailModal(t *testing.T) {
	a := newTestApp(t, config.SectionNews)
	press(a, runes("j"))
	want := a.result.Items[1]
	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.mode != modeDetail || a.detail.item.ID != want.ID {
		t.Fatalf("mode=%v item=%d, want detail of %d", a.mode, a.detail.item.ID, want.ID)
	}
	if !strings.Contains(a.View(), want.Title) {
		t.Error("detail view should include the title")
	}
	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.mode != modeList {
		t.Errorf("esc should close the modal, got %v", a.mode)
	}
}

func TestAppReloadWithReducedMotion(t *testing.T) {
	a := newTestApp(t, config.SectionNews)
	a.prefs.SetReducedMotion(true)

	cmd := press(a, runes("r"))
	if !a.reloading || cmd == nil {
		t.Fatal("r should start a reload")
	}
	if !strings.Contains(a.View(), "… reloading") {
		t.Error("reduced motion should show a static indicator")
	}

	msg := cmd()
	if _, ok := msg.(libraryLoadedMsg); !ok {
		t.Fatalf("reload cmd returned %T", msg)
	}
	press(a, msg)
	if a.reloading || a.err != nil {
		t.Errorf("reloading=%v err=%v", a.reloading, a.err)
	}
	if a.result.TotalMatching != 9 {
		t.Errorf("matching after reload = %d", a.result.TotalMatching)
	}
}

func TestAppReloadErrorIsShown(t *testing.T) {
	a := newTestApp(t, config.SectionNews)
	a.contentPath = "/nonexistent/content.yaml"
	a.prefs.SetReducedMotion(true)
	cmd := press(a, runes("r"))
	press(a, cmd())
	if a.err == nil {
		t.Fatal("missing content file should surface an error")
	}
	if a.result.TotalMatching != 9 {
		t.Error("failed reload should keep the current library")
	}
}

func TestAppWheelScrollCompactsHeader(t *testing.T) {
	a := newTestApp(t, config.SectionNews)
	press(a, tea.WindowSizeMsg{Width: 80, Height: 20})

	cmd := press(a, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if cmd == nil || a.offset != 1 {
		t.Fatalf("wheel: cmd=%v offset=%d", cmd != nil, a.offset)
	}
	if again := press(a, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}); again != nil {
		t.Error("second wheel event in the same frame should not schedule another")
	}

	press(a, scrollFrameMsg{})
	if !a.scroll.scrolled || a.headerHeight() != 1 {
		t.Errorf("scrolled=%v header=%d", a.scroll.scrolled, a.headerHeight())
	}
	if !strings.Contains(a.View(), "g top") {
		t.Error("scrolled header should offer g top")
	}
	if a.cursor < a.offset {
		t.Errorf("cursor %d left above window %d", a.cursor, a.offset)
	}

	press(a, runes("g"), scrollFrameMsg{})
	if a.scroll.scrolled || a.offset != 0 || a.cursor != 0 {
		t.Errorf("g: scrolled=%v offset=%d cursor=%d", a.scroll.scrolled, a.offset, a.cursor)
	}
}

type unreadableStorage struct{}

func (unreadableStorage) Get(string) (string, bool, error) { return "", false, errors.New("locked") }
func (unreadableStorage) Set(string, string) error         { return errors.New("locked") }

func TestAppSettingsOfflineNotice(t *testing.T) {
	a := newTestApp(t, config.SectionNews)
	a.prefs = prefs.New(unreadableStorage{}, a.root)
	a.prefs.Load()

	press(a, runes(","))
	if !strings.Contains(a.View(), "changes will not be saved this session") {
		t.Error("offline settings view should say changes are not saved")
	}
}

func TestAppReloadRecoversLoaderPanic(t *testing.T) {
	a := newTestApp(t, config.SectionNews)
	a.load = func(string) (*content.Library, error) { panic("corrupt library") }

	msg := a.reloadCmd()()
	loaded, ok := msg.(libraryLoadedMsg)
	if !ok {
		t.Fatalf("reload returned %T, want libraryLoadedMsg", msg)
	}
	if loaded.err == nil || !strings.Contains(loaded.err.Error(), "corrupt library") {
		t.Fatalf("err = %v, want the panic value", loaded.err)
	}

	lib := a.lib
	a.reloading = true
	press(a, loaded)
	if a.err == nil || a.reloading {
		t.Errorf("err = %v, reloading = %v after failed reload", a.err, a.reloading)
	}
	if a.lib != lib {
		t.Error("failed reload should keep the current library")
	}
}
