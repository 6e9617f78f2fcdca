package sokoban

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Command is a discrete, non-movement request.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandReset
	CommandNextLevel
	CommandPreviousLevel
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandQuit:
		return "Quit"
	case CommandReset:
		return "Reset"
	case CommandNextLevel:
		return "NextLevel"
	case CommandPreviousLevel:
		return "PreviousLevel"
	default:
		return "Unknown"
	}
}

// InputAction is what one input poll produced: at most one movement and at
// most one command.
type InputAction struct {
	Move    Direction
	Command Command
}

// Empty reports whether the action requests nothing.
func (a InputAction) Empty() bool {
	return a.Move == DirNone && a.Command == CommandNone
}

// InputFor folds semantic key actions into an InputAction. Later actions of the
// same kind override earlier ones.
func InputFor(actions ...core.Action) InputAction {
	var in InputAction
	for _, a := range actions {
		switch a {
		case core.ActionUp:
			in.Move = DirUp
		case core.ActionDown:
			in.Move = DirDown
		case core.ActionLeft:
			in.Move = DirLeft
		case core.ActionRight:
			in.Move = DirRight
		case core.ActionReset:
			in.Command = CommandReset
		case core.ActionNextLevel:
			in.Command = CommandNextLevel
		case core.ActionPrevLevel:
			in.Command = CommandPreviousLevel
		case core.ActionQuit:
			in.Command = CommandQuit
		}
	}
	return in
}

// Solve describes a level that was just completed.
type Solve struct {
	Level  int
	Moves  int
	Pushes int
}

// Turn is the outcome of one applied input.
type Turn struct {
	Move     MoveResult
	Solved   bool  // the move solved the level
	Solve    Solve // valid when Solved
	Advanced bool  // the active level changed
	Quit     bool
}

// Session plays an ordered set of levels. It owns a pristine copy of every
// level and one working grid for the active level.
//
// A Session is not safe for concurrent use; it has exactly one mutator.
type Session struct {
	levels  []*Grid
	current int
	grid    *Grid

	moves    int
	pushes   int
	complete bool

	logger  *log.Logger
	onSolve func(Solve)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStartLevel selects the first active level. Out-of-range values are clamped.
func WithStartLevel(level int) Option {
	return func(s *Session) {
		s.current = level
	}
}

// WithSolveHook registers a callback invoked once for every solved level,
// before the session advances.
func WithSolveHook(fn func(Solve)) Option {
	return func(s *Session) {
		s.onSolve = fn
	}
}

// NewSession creates a session over the given levels. The grids are treated
// as read-only definitions; play happens on clones.
func NewSession(levels []*Grid, opts ...Option) (*Session, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	s := &Session{
		levels: levels,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, g := range levels {
		if g.BlockCount() == 0 {
			s.logger.Warn("level has no blocks and cannot be solved", "level", g.ID())
		}
	}

	s.current = core.Clamp(s.current, 0, len(levels)-1)
	s.load()
	return s, nil
}

// load replaces the working grid with a fresh copy of the current level.
func (s *Session) load() {
	s.grid = s.levels[s.current].Clone()
	s.moves = 0
	s.pushes = 0
	s.complete = false
}

// Current returns the active level index.
func (s *Session) Current() int {
	return s.current
}

// LevelCount returns the number of levels in the session.
func (s *Session) LevelCount() int {
	return len(s.levels)
}

// Grid returns the working grid of the active level. Callers must not mutate it.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Moves returns the number of successful moves on the current attempt.
func (s *Session) Moves() int {
	return s.moves
}

// Pushes returns the number of pushes on the current attempt.
func (s *Session) Pushes() int {
	return s.pushes
}

// Complete reports whether the last level was solved. The board is frozen
// while complete; loading any level clears it.
func (s *Session) Complete() bool {
	return s.complete
}

// Advance moves to the next level. At the last level it does nothing.
func (s *Session) Advance() bool {
	if s.current+1 >= len(s.levels) {
		return false
	}
	s.current++
	s.load()
	s.logger.Debug("advanced", "level", s.current)
	return true
}

// Retreat moves to the previous level. At the first level it does nothing.
func (s *Session) Retreat() bool {
	if s.current <= 0 {
		return false
	}
	s.current--
	s.load()
	s.logger.Debug("retreated", "level", s.current)
	return true
}

// Reset restarts the current level from its original definition.
func (s *Session) Reset() {
	s.load()
	s.logger.Debug("reset", "level", s.current)
}

// Move resolves one movement. Only a push can change the target count, so the
// win check runs after pushes only. A win advances as if NextLevel had been
// requested; on the last level the session is marked complete instead.
// Moves are rejected while the session is complete.
func (s *Session) Move(d Direction) Turn {
	var t Turn
	if s.complete {
		p := s.grid.Player()
		t.Move = MoveResult{Kind: MoveRejected, Dir: d, From: p, To: p, Block: -1}
		return t
	}
	t.Move = Move(s.grid, d)
	if !t.Move.Moved() {
		return t
	}

	s.moves++
	if !t.Move.Pushed() {
		return t
	}
	s.pushes++

	if !s.grid.Solved() {
		return t
	}

	t.Solved = true
	t.Solve = Solve{Level: s.current, Moves: s.moves, Pushes: s.pushes}
	s.logger.Debug("level solved", "level", t.Solve.Level, "moves", t.Solve.Moves, "pushes", t.Solve.Pushes)
	if s.onSolve != nil {
		s.onSolve(t.Solve)
	}

	if s.Advance() {
		t.Advanced = true
	} else {
		s.complete = true
		s.logger.Debug("all levels solved")
	}
	return t
}

// Apply handles one polled action: the movement first, then the command.
// A solving move already changed level, so only Quit is still honoured.
func (s *Session) Apply(a InputAction) Turn {
	var t Turn
	if a.Move != DirNone {
		t = s.Move(a.Move)
	}
	if t.Solved {
		t.Quit = a.Command == CommandQuit
		return t
	}

	switch a.Command {
	case CommandQuit:
		t.Quit = true
	case CommandReset:
		s.Reset()
	case CommandNextLevel:
		if s.Advance() {
			t.Advanced = true
		}
	case CommandPreviousLevel:
		if s.Retreat() {
			t.Advanced = true
		}
	}
	return t
}

// Renderer displays snapshots. Setup acquires the display and Teardown
// releases it.
type Renderer interface {
	Setup() error
	Teardown() error
	Render(snap Snapshot) error
}

// InputSource produces one action per call, blocking until input is available.
type InputSource interface {
	Poll() (InputAction, error)
}

// Run plays the session until a quit command or an input error. Each input is
// fully applied and drawn before the next one is read. Teardown runs on every
// exit path once Setup has succeeded.
func (s *Session) Run(r Renderer, in InputSource) (err error) {
	if err := r.Setup(); err != nil {
		return fmt.Errorf("sokoban: renderer setup: %w", err)
	}
	defer func() {
		if tdErr := r.Teardown(); tdErr != nil && err == nil {
			err = fmt.Errorf("sokoban: renderer teardown: %w", tdErr)
		}
	}()

	for {
		if err := r.Render(s.Snapshot()); err != nil {
			return fmt.Errorf("sokoban: render: %w", err)
		}

		action, err := in.Poll()
		if err != nil {
			return fmt.Errorf("sokoban: reading input: %w", err)
		}

		if t := s.Apply(action); t.Quit {
			return nil
		}
	}
}
