package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/campusnews/internal/config"
	"github.com/matheuskafuri/campusnews/internal/content"
	"github.com/matheuskafuri/campusnews/internal/logging"
	"github.com/matheuskafuri/campusnews/internal/prefs"
	"github.com/matheuskafuri/campusnews/internal/query"
	"github.com/matheuskafuri/campusnews/internal/theme"
)

type mode int

const (
	modeHome mode = iota
	modeList
	modeSearch
	modeFilter
	modeDetail
	modeSettings
	modeHelp
)

type App struct {
	cfg         *config.Config
	lib         *content.Library
	prefs       *prefs.Manager
	root        *StyleRoot
	contentPath string
	load        func(path string) (*content.Library, error)

	section content.Kind
	states  map[content.Kind]*query.State
	result  query.Result
	cursor  int
	offset  int
	mode    mode
	// back is the mode settings and help return to.
	back mode

	width  int
	height int

	// Sub-components
	keys           listKeyMap
	help           help.Model
	searchInput    textinput.Model
	spinner        spinner.Model
	pager          paginator.Model
	filterBar      filterBar
	detail         detailModel
	settingsCursor int
	scroll         scrollTracker

	reloading bool
	err       error
	now       func() time.Time
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg         *config.Config
	Library     *content.Library
	Prefs       *prefs.Manager
	Root        *StyleRoot
	ContentPath string
	// Section is home, news or events.
	Section string
}

// withDefaults fills in whatever the caller left nil so that every App
// built from the result shares one style root and preference manager.
func (o RunOpts) withDefaults() RunOpts {
	if o.Cfg == nil {
		o.Cfg = &config.Config{SchoolName: "campusnews"}
	}
	if o.Library == nil {
		o.Library = &content.Library{}
	}
	if o.Root == nil {
		o.Root = NewStyleRoot()
	}
	if o.Prefs == nil {
		o.Prefs = prefs.New(prefs.NewMemoryStorage(), o.Root)
		o.Prefs.Load()
	}
	if o.Section == "" {
		o.Section = o.Cfg.Section()
	}
	return o
}

func newState(pageSize int) *query.State {
	s := query.NewState(pageSize)
	return &s
}

func NewApp(opts RunOpts) *App {
	opts = opts.withDefaults()
	st := opts.Root.styles()

	ti := textinput.New()
	ti.Placeholder = "Search titles, descriptions, tags..."
	ti.Prompt = st.searchPrompt.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = st.spinner

	a := &App{
		cfg:         opts.Cfg,
		lib:         opts.Library,
		prefs:       opts.Prefs,
		root:        opts.Root,
		contentPath: opts.ContentPath,
		load:        content.LoadLibrary,
		section:     content.News,
		states: map[content.Kind]*query.State{
			content.News:   newState(opts.Cfg.PageSize()),
			content.Events: newState(opts.Cfg.PageSize()),
		},
		keys:        newListKeyMap(),
		help:        help.New(),
		searchInput: ti,
		spinner:     sp,
		pager:       newPager(),
		filterBar:   newFilterBar(content.News),
		detail:      newDetailModel(),
		mode:        modeHome,
		now:         time.Now,
	}

	switch opts.Section {
	case config.SectionNews:
		a.openSection(content.News)
	case config.SectionEvents:
		a.openSection(content.Events)
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// Section names the view the app is showing, for restarts after a fault.
func (a *App) Section() string {
	if a.mode == modeHome {
		return config.SectionHome
	}
	return string(a.section)
}

func (a *App) state() *query.State {
	return a.states[a.section]
}

func (a *App) openSection(kind content.Kind) {
	a.section = kind
	a.filterBar = newFilterBar(kind)
	a.filterBar.sync(a.state().Category())
	a.searchInput.SetValue(a.state().Search())
	a.mode = modeList
	a.cursor = 0
	a.offset = 0
	a.scroll.Reset()
	a.refresh()
}

// refresh reruns the pipeline for the active section.
func (a *App) refresh() {
	s := a.state()
	a.result = query.Run(a.section, a.lib.Items(a.section), s.Params())
	if a.result.TotalPages > 0 && s.Page() > a.result.TotalPages {
		s.SetPage(a.result.TotalPages, a.result.TotalPages)
		a.result = query.Run(a.section, a.lib.Items(a.section), s.Params())
	}
	if a.cursor >= len(a.result.Items) {
		a.cursor = max(0, len(a.result.Items)-1)
	}
	syncPager(&a.pager, a.root.styles(), a.result)
}

// resetPosition moves to the first card after the result set changed.
func (a *App) resetPosition() tea.Cmd {
	a.cursor = 0
	a.offset = 0
	a.refresh()
	return a.scroll.Notify(0)
}

func (a *App) listHeight() int {
	h := a.height - a.headerHeight() - 3
	if h < 3 {
		h = 3
	}
	return h
}

func (a *App) headerHeight() int {
	if a.scroll.scrolled {
		return 1
	}
	return 2
}

// moveCursor shifts the cursor by delta and scrolls the window to follow it.
func (a *App) moveCursor(delta int) tea.Cmd {
	n := len(a.result.Items)
	if n == 0 {
		return nil
	}
	a.cursor = min(max(a.cursor+delta, 0), n-1)
	return a.setOffset(clampOffset(a.offset, a.cursor, visibleCards(a.listHeight(), a.root.scale()), n))
}

func (a *App) setOffset(offset int) tea.Cmd {
	if offset == a.offset {
		return nil
	}
	a.offset = offset
	return a.scroll.Notify(offset)
}

// wheel scrolls the list window and drags the cursor along with it.
func (a *App) wheel(delta int) tea.Cmd {
	n := len(a.result.Items)
	visible := visibleCards(a.listHeight(), a.root.scale())
	offset := min(max(a.offset+delta, 0), max(n-visible, 0))
	if a.cursor < offset {
		a.cursor = offset
	}
	if a.cursor >= offset+visible {
		a.cursor = offset + visible - 1
	}
	return a.setOffset(offset)
}

func (a *App) reloadCmd() tea.Cmd {
	path, load := a.contentPath, a.load
	return func() (msg tea.Msg) {
		// commands run outside Update, where Boundary cannot see a panic
		defer func() {
			if r := recover(); r != nil {
				logging.Error("panic loading content", "path", path, "panic", r)
				msg = libraryLoadedMsg{err: fmt.Errorf("loading content: %v", r)}
			}
		}()
		lib, err := load(path)
		return libraryLoadedMsg{lib: lib, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width / 2
		if a.mode == modeDetail {
			a.detail.resize(a.root.styles(), a.root, a.width, a.height-1)
		}
		a.offset = clampOffset(a.offset, a.cursor, visibleCards(a.listHeight(), a.root.scale()), len(a.result.Items))
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case scrollFrameMsg:
		a.scroll.Frame()
		return a, nil

	case springFrameMsg:
		return a, a.detail.step()

	case libraryLoadedMsg:
		a.reloading = false
		if msg.err != nil {
			logging.Warn("reloading content", "path", a.contentPath, "err", msg.err)
			a.err = msg.err
			return a, nil
		}
		a.lib = msg.lib
		logging.Info("content reloaded", "news", len(a.lib.News), "events", len(a.lib.Events))
		a.refresh()
		return a, nil

	case spinner.TickMsg:
		if a.reloading && !a.root.reducedMotion() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.mode == modeDetail {
		return a, a.detail.update(msg)
	}
	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return a, nil
	}
	switch a.mode {
	case modeDetail:
		return a, a.detail.update(msg)
	case modeList:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			return a, a.wheel(1)
		case tea.MouseButtonWheelUp:
			return a, a.wheel(-1)
		}
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Mode-specific handling
	switch a.mode {
	case modeHome:
		return a.handleHomeKey(msg)
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeDetail:
		return a.handleDetailKey(msg)
	case modeSettings:
		return a.handleSettingsKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = a.back
		}
		return a, nil
	}

	return a.handleListKey(msg)
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := a.state()
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Down):
		return a, a.moveCursor(1)
	case key.Matches(msg, a.keys.Up):
		return a, a.moveCursor(-1)
	case key.Matches(msg, a.keys.NextPage):
		if !s.HasNext(a.result.TotalPages) {
			return a, nil
		}
		s.NextPage(a.result.TotalPages)
		return a, a.resetPosition()
	case key.Matches(msg, a.keys.PrevPage):
		if !s.HasPrev() {
			return a, nil
		}
		s.PrevPage()
		return a, a.resetPosition()
	case key.Matches(msg, a.keys.Top):
		a.cursor = 0
		return a, a.setOffset(0)
	case key.Matches(msg, a.keys.Open):
		if a.cursor < len(a.result.Items) {
			a.mode = modeDetail
			a.detail.open(a.root.styles(), a.root, a.result.Items[a.cursor], a.section, a.width, a.height-1)
		}
		return a, nil
	case key.Matches(msg, a.keys.Search):
		a.mode = modeSearch
		return a, a.searchInput.Focus()
	case key.Matches(msg, a.keys.Filter):
		a.mode = modeFilter
		a.filterBar.filterMode = true
		return a, nil
	case key.Matches(msg, a.keys.Sort):
		s.CycleSort()
		return a, a.resetPosition()
	case key.Matches(msg, a.keys.Section):
		if a.section == content.News {
			a.openSection(content.Events)
		} else {
			a.openSection(content.News)
		}
		return a, nil
	case key.Matches(msg, a.keys.Settings):
		a.back = modeList
		a.mode = modeSettings
		return a, nil
	case key.Matches(msg, a.keys.Theme):
		a.prefs.ToggleTheme()
		a.refresh()
		return a, nil
	case key.Matches(msg, a.keys.Reload):
		if a.reloading {
			return a, nil
		}
		a.reloading = true
		if a.root.reducedMotion() {
			return a, a.reloadCmd()
		}
		return a, tea.Batch(a.reloadCmd(), a.spinner.Tick)
	case key.Matches(msg, a.keys.Home):
		a.mode = modeHome
		return a, nil
	case key.Matches(msg, a.keys.Help):
		a.back = modeList
		a.mode = modeHelp
		return a, nil
	}
	return a, nil
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "1":
		a.openSection(content.News)
	case "e", "2":
		a.openSection(content.Events)
	case "s", ",":
		a.back = modeHome
		a.mode = modeSettings
	case "T":
		a.prefs.ToggleTheme()
	case "?":
		a.back = modeHome
		a.mode = modeHelp
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeList
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		if a.state().Search() == "" {
			return a, nil
		}
		a.state().SetSearch("")
		return a, a.resetPosition()
	case "enter":
		a.mode = modeList
		a.searchInput.Blur()
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// Only re-query on actual value changes, not cursor moves etc.
	if v := a.searchInput.Value(); v != before {
		a.state().SetSearch(v)
		return a, tea.Batch(cmd, a.resetPosition())
	}
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.mode = modeList
		a.filterBar.filterMode = false
		return a, nil
	case "left", "h":
		a.filterBar.left()
		return a, nil
	case "right", "l":
		a.filterBar.right()
		return a, nil
	case " ", "enter":
		a.state().SetCategory(a.filterBar.selectCurrent())
		return a, a.resetPosition()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if k, ok := a.filterBar.selectIndex(idx); ok {
			a.state().SetCategory(k)
			return a, a.resetPosition()
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "backspace":
		a.mode = modeList
		a.detail.animating = false
		return a, nil
	case "g", "home":
		return a, a.detail.top(a.root.reducedMotion())
	case "T":
		a.prefs.ToggleTheme()
		a.detail.resize(a.root.styles(), a.root, a.width, a.height-1)
		return a, nil
	}
	return a, a.detail.update(msg)
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", ",", "q":
		a.mode = a.back
	case "j", "down":
		if a.settingsCursor < settingCount-1 {
			a.settingsCursor++
		}
	case "k", "up":
		if a.settingsCursor > 0 {
			a.settingsCursor--
		}
	case "enter", " ", "l", "right":
		activateSetting(a.prefs, a.settingsCursor)
	case "T":
		a.prefs.ToggleTheme()
	case "R":
		a.prefs.Reset()
	default:
		return a, nil
	}
	// font size changes how many cards fit
	a.refresh()
	a.offset = clampOffset(a.offset, a.cursor, visibleCards(a.listHeight(), a.root.scale()), len(a.result.Items))
	return a, nil
}

func (a *App) withBottomBar(content string, hints string) string {
	st := a.root.styles()
	bar := renderStatusBar(st, "", hints, a.width)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) View() string {
	st := a.root.styles()
	if a.width == 0 {
		return st.accent.Render("  campusnews")
	}

	switch a.mode {
	case modeHome:
		return a.withBottomBar(renderHomeScreen(st, a.cfg.SchoolName, a.width, a.height-1), "n news  e events  s settings  ? help  q quit")
	case modeSettings:
		rec := a.prefs.Record()
		return a.withBottomBar(
			renderSettings(st, a.root, rec, rec.AccessibilityScore(), a.prefs.Offline(), a.settingsCursor, a.width, a.height-1),
			"enter toggle  R reset  esc close",
		)
	case modeHelp:
		return a.withBottomBar(a.renderHelp(st), "? close  q quit")
	case modeDetail:
		return a.withBottomBar(a.detail.view(st, a.width, a.height-1), "esc close  g top  T theme")
	}

	header := a.renderHeader(st)

	// Search bar replaces the filter row when searching
	filter := a.filterBar.render(st, a.root.color(theme.VarSurface), a.width)
	if a.mode == modeSearch {
		a.searchInput.Prompt = st.searchPrompt.Render("/ ")
		filter = a.searchInput.View()
	}

	list := renderList(st, a.result.Items, a.section, a.cursor, a.offset, a.width, a.listHeight(), a.root.scale(), a.now())
	list = lipgloss.NewStyle().Height(a.listHeight()).MaxHeight(a.listHeight()).Render(list)

	s := a.state()
	pager := a.pager
	syncPager(&pager, st, a.result)
	pagerRow := renderPagerRow(st, pager, s.HasPrev(), s.HasNext(a.result.TotalPages), a.width)

	left := statusSummary(a.result, a.filterBar.label(), s.Sort(), s.Search())
	if a.reloading {
		indicator := "…"
		if !a.root.reducedMotion() {
			indicator = a.spinner.View()
		}
		left = indicator + " reloading · " + left
	}
	a.applyHelpStyles(st)
	right := a.help.View(a.keys)
	if a.mode == modeSearch {
		right = "esc clear  enter done"
	} else if a.mode == modeFilter {
		right = "←/→ move  enter select  1-9 pick  esc done"
	}
	status := renderStatusBar(st, left, right, a.width)
	if a.err != nil {
		status = st.errorText.Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, filter, list, pagerRow, status)
}

func (a *App) renderHeader(st *styles) string {
	tab := func(kind content.Kind, label string) string {
		if a.section == kind {
			return st.tabActive.Render(label)
		}
		return st.tabInactive.Render(label)
	}
	tabs := tab(content.News, "News") + " " + tab(content.Events, "Events")

	if a.scroll.scrolled {
		left := st.header.Render(a.cfg.SchoolName) + " " + tabs
		arrow := ""
		switch a.scroll.direction {
		case 1:
			arrow = "↓ "
		case -1:
			arrow = "↑ "
		}
		right := st.muted.Render(arrow + "g top ")
		gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
		return left + fmt.Sprintf("%*s", gap, "") + right
	}

	title := st.header.Width(a.width).Render(a.cfg.SchoolName)
	date := st.headerDim.Render(a.now().Format("Monday, Jan 2"))
	gap := max(a.width-lipgloss.Width(tabs)-lipgloss.Width(date), 0)
	return title + "\n" + tabs + fmt.Sprintf("%*s", gap, "") + date
}

func (a *App) applyHelpStyles(st *styles) {
	a.help.Styles.ShortKey = st.accent
	a.help.Styles.ShortDesc = st.muted
	a.help.Styles.ShortSeparator = st.muted
	a.help.Styles.FullKey = st.accent
	a.help.Styles.FullDesc = st.body
	a.help.Styles.FullSeparator = st.muted
}

func (a *App) renderHelp(st *styles) string {
	a.applyHelpStyles(st)
	full := a.help
	full.ShowAll = true
	full.Width = 0

	text := st.modalTitle.Render(a.cfg.SchoolName) + st.muted.Render(" · keyboard shortcuts") + "\n\n" +
		st.muted.Render("List") + "\n" + full.View(a.keys) + "\n\n" +
		st.muted.Render("Search") + "\n" +
		"  type to filter as you go · enter keep · esc clear\n\n" +
		st.muted.Render("Filter") + "\n" +
		"  ←/→ move · enter select · 1-9 pick directly · esc done\n\n" +
		st.muted.Render("Detail") + "\n" +
		"  j/k scroll · g top · esc close\n\n" +
		st.muted.Render("Settings") + "\n" +
		"  j/k move · enter toggle · R reset all · esc close"

	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, st.modal.Render(text))
}

// Run starts the TUI inside an error boundary.
func Run(opts RunOpts) error {
	opts = opts.withDefaults()
	newApp := func(section string) tea.Model {
		o := opts
		o.Section = section
		return NewApp(o)
	}
	b := NewBoundary(newApp, opts.Section, opts.Cfg.ReportURL, opts.Root)
	p := tea.NewProgram(b, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
