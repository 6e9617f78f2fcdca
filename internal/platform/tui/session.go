package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

type view int

const (
	viewMenu view = iota
	viewGame
	viewRecords
)

// SessionModel manages the full player flow: menu -> game -> menu, with the
// records view reachable from the menu. SSH sessions and the local menu
// command both use it.
type SessionModel struct {
	packs    []Pack
	store    *storage.Store
	opts     Options
	logger   *log.Logger
	user     string
	width    int
	height   int
	view     view
	menu     MenuModel
	game     Model
	records  RecordsModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(packs []Pack, store *storage.Store, opts Options, user string, logger *log.Logger, width, height int) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		packs:  packs,
		store:  store,
		opts:   opts,
		logger: logger,
		user:   user,
		width:  width,
		height: height,
		menu:   NewMenuModel(packs, store, width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewRecords:
		return m.updateRecords(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
// The menu answers selections with tea.Quit for standalone use; that command
// is dropped here.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsRecords():
		m.records = NewRecordsModel(m.packs, m.store, "", m.width, m.height)
		m.view = viewRecords
		return m, m.records.Init()

	case m.menu.Selected() != nil:
		return m.startGame(*m.menu.Selected())
	}

	return m, cmd
}

// startGame builds a fresh session on private copies of the pack's levels.
func (m SessionModel) startGame(p Pack) (tea.Model, tea.Cmd) {
	var run *storage.Run
	if m.store != nil {
		run = m.store.NewRun(p.ID)
	}
	logger := m.logger.With("user", m.user, "pack", p.ID)

	session, err := sokoban.NewSession(sokoban.CloneLevels(p.Levels),
		sokoban.WithLogger(logger),
		sokoban.WithSolveHook(run.SolveHook(logger)),
	)
	if err != nil {
		logger.Error("cannot start pack", "error", err)
		m.menu = NewMenuModel(m.packs, m.store, m.width, m.height)
		return m, nil
	}
	logger.Info("game started", "run", run.ID(), "levels", session.LevelCount())

	opts := m.opts
	opts.Title = p.Title
	opts.Embedded = true

	game := NewModel(session, opts)
	updated, _ := game.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.game = updated.(Model)
	m.view = viewGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.Done() {
		m.logger.Info("game ended", "user", m.user, "level", m.game.Session().Current()+1)
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateRecords handles updates when the records view is open.
func (m SessionModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.records.Update(msg)
	if recordsModel, ok := newModel.(RecordsModel); ok {
		m.records = recordsModel
	}

	switch {
	case m.records.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.records.IsGoingBack():
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// backToMenu rebuilds the menu so solved counts are current.
func (m *SessionModel) backToMenu() {
	m.menu = NewMenuModel(m.packs, m.store, m.width, m.height)
	m.view = viewMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewRecords:
		return m.records.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven flow in the local terminal.
func RunSession(packs []Pack, store *storage.Store, opts Options, logger *log.Logger, width, height int) error {
	p := tea.NewProgram(
		NewSessionModel(packs, store, opts, "local", logger, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
