// Package tui provides the Bubble Tea integration for the sokoban player:
// the play model, the pack menu, the records view and the SSH server.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	flashStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// Options configures the play model.
type Options struct {
	Theme    sokoban.Theme
	ShowHelp bool
	Title    string // shown above the board, usually the pack title

	// Embedded models do not stop the program on quit; the parent checks Done.
	Embedded bool
}

// Model is the Bubble Tea model for playing a sokoban session.
// Every key press is applied to the session before the next view is drawn.
type Model struct {
	session  *sokoban.Session
	screen   *core.Screen
	opts     Options
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	flash    string // one-shot message shown under the board
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *sokoban.Session, opts Options) Model {
	cfg := core.DefaultConfig()
	h := help.New()
	h.ShowAll = false

	if opts.Theme == (sokoban.Theme{}) {
		opts.Theme = sokoban.DefaultTheme()
	}

	m := Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    h,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.resizeScreen()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey applies one key press to the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	m.flash = ""
	turn := m.session.Apply(sokoban.InputFor(action))

	if turn.Quit {
		m.quitting = true
		if m.opts.Embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	if turn.Solved {
		m.flash = fmt.Sprintf("Level %d solved in %d moves, %d pushes",
			turn.Solve.Level+1, turn.Solve.Moves, turn.Solve.Pushes)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.resizeScreen()
	return m, nil
}

// resizeScreen fits the board buffer into the window below the title and
// above the help footer.
func (m *Model) resizeScreen() {
	m.screen.Resize(m.width, m.height-m.chromeHeight())
}

// chromeHeight is the number of lines used outside the board buffer.
func (m Model) chromeHeight() int {
	h := 2 // title and flash line
	if m.opts.ShowHelp {
		h++ // blank line before help
		if m.help.ShowAll {
			h += len(m.keys.FullHelp()[0])
		} else {
			h++
		}
	}
	return h
}

// tooSmall reports whether the board and status line cannot be shown.
func (m Model) tooSmall(snap sokoban.Snapshot) bool {
	return m.screen.Width() < snap.Width || m.screen.Height() < snap.Height+2
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	if m.tooSmall(snap) {
		return warnStyle.Render(fmt.Sprintf("Window too small for this level (needs %dx%d)",
			snap.Width, snap.Height+m.chromeHeight()+2))
	}

	sokoban.Draw(m.screen, snap, m.opts.Theme, false)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.opts.Title))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(flashStyle.Render(m.flash))

	if m.opts.ShowHelp {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}

	return b.String()
}

// Done reports whether the player asked to quit.
func (m Model) Done() bool {
	return m.quitting
}

// Session returns the session driven by the model.
func (m Model) Session() *sokoban.Session {
	return m.session
}

// Run starts a Bubble Tea program for the session and blocks until the
// player quits. The alternate screen is restored on every exit path.
func Run(session *sokoban.Session, opts Options) error {
	opts.Embedded = false
	p := tea.NewProgram(
		NewModel(session, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
