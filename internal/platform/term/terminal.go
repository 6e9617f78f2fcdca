// Package term drives a sokoban session directly on a tcell screen, without
// the Bubble Tea runtime.
package term

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

// ErrClosed is returned by Poll once the screen has been finalized.
var ErrClosed = errors.New("term: screen closed")

// Terminal renders snapshots to a tcell screen and reads key events from it.
// It implements sokoban.Renderer and sokoban.InputSource.
type Terminal struct {
	screen   tcell.Screen
	buf      *core.Screen
	theme    sokoban.Theme
	showHelp bool
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithTheme sets the glyph theme.
func WithTheme(theme sokoban.Theme) Option {
	return func(t *Terminal) {
		t.theme = theme
	}
}

// WithHelp shows the key help line under the status row.
func WithHelp(show bool) Option {
	return func(t *Terminal) {
		t.showHelp = show
	}
}

// New creates a Terminal on the process terminal.
func New(opts ...Option) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	return NewWithScreen(screen, opts...), nil
}

// NewWithScreen creates a Terminal on an existing screen. The screen is
// initialized by Setup.
func NewWithScreen(screen tcell.Screen, opts ...Option) *Terminal {
	cfg := core.DefaultConfig()
	t := &Terminal{
		screen:   screen,
		buf:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		theme:    sokoban.DefaultTheme(),
		showHelp: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Setup initializes the screen and hides the cursor.
func (t *Terminal) Setup() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

// Teardown restores the terminal.
func (t *Terminal) Teardown() error {
	t.screen.Fini()
	return nil
}

// Render draws the snapshot, resizing the buffer to the current screen size.
func (t *Terminal) Render(snap sokoban.Snapshot) error {
	w, h := t.screen.Size()
	t.buf.Resize(w, h)
	sokoban.Draw(t.buf, snap, t.theme, t.showHelp)

	t.screen.Clear()
	for y := 0; y < t.buf.Height(); y++ {
		for x := 0; x < t.buf.Width(); x++ {
			cell := t.buf.GetCell(x, y)
			t.screen.SetContent(x, y, cell.Rune, nil, StyleFor(cell.Color))
		}
	}
	t.screen.Show()
	return nil
}

// Poll blocks until a key or resize event arrives. Resizes return an empty
// action so the caller redraws; other events are skipped.
func (t *Terminal) Poll() (sokoban.InputAction, error) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return sokoban.InputAction{}, ErrClosed
		case *tcell.EventResize:
			t.screen.Sync()
			return sokoban.InputAction{}, nil
		case *tcell.EventKey:
			return sokoban.InputFor(KeyAction(ev)), nil
		}
	}
}
