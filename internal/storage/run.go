package storage

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

// ErrNoStore is returned by a Run that has no backing store.
var ErrNoStore = errors.New("storage: no store")

// Run records the solves of one play session under a shared run id.
// A nil *Run is valid and records nothing.
type Run struct {
	store *Store
	id    string
	pack  string
}

// NewRun starts a run for the given pack.
func (s *Store) NewRun(pack string) *Run {
	return &Run{store: s, id: uuid.NewString(), pack: pack}
}

// ID returns the run id.
func (r *Run) ID() string {
	if r == nil {
		return ""
	}
	return r.id
}

// Pack returns the pack the run plays.
func (r *Run) Pack() string {
	if r == nil {
		return ""
	}
	return r.pack
}

// Record saves one solved level.
func (r *Run) Record(level, moves, pushes int) error {
	if r == nil || r.store == nil {
		return ErrNoStore
	}
	_, err := r.store.SaveSolve(SolveRecord{
		RunID:  r.id,
		Pack:   r.pack,
		Level:  level,
		Moves:  moves,
		Pushes: pushes,
	})
	return err
}

// Solves returns what this run has recorded so far.
func (r *Run) Solves() ([]SolveRecord, error) {
	if r == nil || r.store == nil {
		return nil, ErrNoStore
	}
	return r.store.RunSolves(r.id)
}

// SolveHook returns a session hook that records every solve of the run.
// Recording is best-effort: failures are logged and play continues.
// A nil run returns a nil hook.
func (r *Run) SolveHook(logger *log.Logger) func(sokoban.Solve) {
	if r == nil || r.store == nil {
		return nil
	}
	return func(sv sokoban.Solve) {
		if err := r.Record(sv.Level, sv.Moves, sv.Pushes); err != nil {
			if logger != nil {
				logger.Warn("could not record solve", "pack", r.pack, "level", sv.Level+1, "error", err)
			}
			return
		}
		if logger != nil {
			logger.Info("solve recorded", "pack", r.pack, "level", sv.Level+1, "moves", sv.Moves, "pushes", sv.Pushes)
		}
	}
}
