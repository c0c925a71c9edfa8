package tui

import (
	"fmt"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/campusnews/internal/browser"
	"github.com/matheuskafuri/campusnews/internal/config"
	"github.com/matheuskafuri/campusnews/internal/logging"
)

// Boundary wraps the app model and turns a panic in Init, Update or View
// into a recovery screen offering reload, home, report and quit.
// Commands returned by the app run on bubbletea's own goroutines, out of
// Boundary's reach, so they must recover their own panics (see reloadCmd).
type Boundary struct {
	newApp    func(section string) tea.Model
	inner     tea.Model
	section   string
	reportURL string
	root      *StyleRoot

	fault     any
	reportMsg string

	width  int
	height int

	openURL func(string) error
}

func NewBoundary(newApp func(section string) tea.Model, section, reportURL string, root *StyleRoot) *Boundary {
	if root == nil {
		root = NewStyleRoot()
	}
	return &Boundary{
		newApp:    newApp,
		inner:     newApp(section),
		section:   section,
		reportURL: reportURL,
		root:      root,
		openURL:   browser.Open,
	}
}

// Faulted reports whether the boundary is showing the recovery screen.
func (b *Boundary) Faulted() bool { return b.fault != nil }

func (b *Boundary) trip(r any) {
	if s, ok := b.inner.(interface{ Section() string }); ok {
		b.section = s.Section()
	}
	b.fault = r
	b.reportMsg = ""
	logging.Error("render fault", "section", b.section, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
}

func (b *Boundary) Init() (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			b.trip(r)
			cmd = nil
		}
	}()
	return b.inner.Init()
}

func (b *Boundary) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		b.width, b.height = ws.Width, ws.Height
	}
	if b.fault != nil {
		return b.updateRecovery(msg)
	}

	defer func() {
		if r := recover(); r != nil {
			b.trip(r)
			model, cmd = b, nil
		}
	}()
	var next tea.Model
	next, cmd = b.inner.Update(msg)
	b.inner = next
	return b, cmd
}

func (b *Boundary) View() (out string) {
	if b.fault != nil {
		return b.recoveryView()
	}
	defer func() {
		if r := recover(); r != nil {
			b.trip(r)
			out = b.recoveryView()
		}
	}()
	return b.inner.View()
}

func (b *Boundary) updateRecovery(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportOpenedMsg:
		if msg.err != nil {
			logging.Warn("opening report page", "err", msg.err)
			b.reportMsg = "Could not open " + b.reportURL
		} else {
			b.reportMsg = "Report page opened in your browser."
		}
		return b, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return b, b.restart(b.section)
		case "h":
			return b, b.restart(config.SectionHome)
		case "o":
			url := b.reportURL
			open := b.openURL
			return b, func() tea.Msg {
				return reportOpenedMsg{err: open(url)}
			}
		case "q", "ctrl+c":
			return b, tea.Quit
		}
	}
	return b, nil
}

// restart replaces the faulted app with a fresh one on section.
func (b *Boundary) restart(section string) (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			b.trip(r)
			cmd = nil
		}
	}()
	logging.Info("restarting after fault", "section", section)
	b.fault = nil
	b.section = section
	b.inner = b.newApp(section)

	cmds := []tea.Cmd{b.inner.Init()}
	if b.width > 0 {
		size := tea.WindowSizeMsg{Width: b.width, Height: b.height}
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return tea.Batch(cmds...)
}

func (b *Boundary) recoveryView() string {
	st := b.root.styles()
	var lines []string
	lines = append(lines, st.errorText.Render("Something went wrong"))
	lines = append(lines, "")
	lines = append(lines, st.body.Render("This page hit an unexpected error. Your preferences are safe."))
	lines = append(lines, "")
	item := func(key, label string) string {
		return "  " + st.accent.Render("["+key+"]") + "  " + st.body.Render(label)
	}
	lines = append(lines, item("r", "Reload this page"))
	lines = append(lines, item("h", "Go to home"))
	lines = append(lines, item("o", "Report the problem"))
	lines = append(lines, item("q", "Quit"))
	if b.reportMsg != "" {
		lines = append(lines, "", st.muted.Render(b.reportMsg))
	}

	box := st.modal.Render(strings.Join(lines, "\n"))
	if b.width == 0 {
		return box
	}
	return lipgloss.Place(b.width, b.height, lipgloss.Center, lipgloss.Center, box)
}
