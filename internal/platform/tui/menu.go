package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// Pack is a loaded level pack offered to players.
type Pack struct {
	ID     string
	Title  string
	Levels []*sokoban.Grid
}

// MenuModel is the Bubble Tea model for the pack picker menu.
type MenuModel struct {
	packs       []Pack
	solved      map[string]int // levels with at least one recorded solve, per pack
	cursor      int
	width       int
	height      int
	keys        MenuKeyMap
	help        help.Model
	quitting    bool
	selected    *Pack // Set when user selects a pack
	openRecords bool  // True if user pressed Tab for records
}

// NewMenuModel creates a new menu model.
func NewMenuModel(packs []Pack, store *storage.Store, width, height int) MenuModel {
	solved := make(map[string]int, len(packs))
	if store != nil {
		for _, p := range packs {
			if best, err := store.BestByLevel(p.ID); err == nil {
				solved[p.ID] = len(best)
			}
		}
	}

	return MenuModel{
		packs:  packs,
		solved: solved,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.packs)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.packs) > 0 {
			selected := m.packs[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start playing
		}

	case MenuActionRecords:
		m.openRecords = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  S O K O B A N  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level pack", m.width))
	b.WriteString("\n\n")

	if len(m.packs) == 0 {
		b.WriteString(warnStyle.Render(centerText("No level packs available.", m.width)))
		b.WriteString("\n")
	}

	for i, p := range m.packs {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := centerText(fmt.Sprintf("%s%-12s %2d levels  %2d solved",
			cursor, p.Title, len(p.Levels), m.solved[p.ID]), m.width)
		if i == m.cursor {
			line = titleStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected pack, or nil if none selected.
func (m MenuModel) Selected() *Pack {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRecords returns true if user requested the records view.
func (m MenuModel) WantsRecords() bool {
	return m.openRecords
}

// centerText centers plain text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
