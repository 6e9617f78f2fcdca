// Package storage provides SQLite-based persistence for solved levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// SolveRecord is one solved level.
type SolveRecord struct {
	ID        int64
	RunID     string // groups the solves of one play session
	Pack      string // pack id, or "file:" and the absolute level file path
	Level     int    // 0-based
	Moves     int
	Pushes    int
	CreatedAt time.Time
}

// PackStats contains aggregated statistics for a level pack.
type PackStats struct {
	Pack         string
	Solves       int
	LevelsSolved int
	Runs         int
	TotalMoves   int64
	TotalPushes  int64
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			pack TEXT NOT NULL,
			level INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			pushes INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_pack_level ON solves(pack, level, moves, pushes);
		CREATE INDEX IF NOT EXISTS idx_solves_run ON solves(run_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSolve records a solved level. A random run id is assigned when the
// record has none. Returns the ID of the inserted record.
func (s *Store) SaveSolve(rec SolveRecord) (int64, error) {
	if rec.RunID == "" {
		rec.RunID = uuid.NewString()
	}

	result, err := s.db.Exec(
		"INSERT INTO solves (run_id, pack, level, moves, pushes) VALUES (?, ?, ?, ?, ?)",
		rec.RunID, rec.Pack, rec.Level, rec.Moves, rec.Pushes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves retrieves the top N solves of one level.
// Results are ordered by moves, then pushes, then age.
func (s *Store) BestSolves(pack string, level, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, pack, level, moves, pushes, created_at
		 FROM solves
		 WHERE pack = ? AND level = ?
		 ORDER BY moves ASC, pushes ASC, id ASC
		 LIMIT ?`,
		pack, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// BestByLevel retrieves the best solve of every solved level in a pack,
// ordered by level.
func (s *Store) BestByLevel(pack string) ([]SolveRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, pack, level, moves, pushes, created_at
		 FROM (
			SELECT *, ROW_NUMBER() OVER (
				PARTITION BY level ORDER BY moves ASC, pushes ASC, id ASC
			) AS rn
			FROM solves
			WHERE pack = ?
		 )
		 WHERE rn = 1
		 ORDER BY level ASC`,
		pack,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// RunSolves retrieves the solves of one run in the order they happened.
func (s *Store) RunSolves(runID string) ([]SolveRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, pack, level, moves, pushes, created_at
		 FROM solves
		 WHERE run_id = ?
		 ORDER BY id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// PackStats retrieves aggregated statistics for a pack.
func (s *Store) PackStats(pack string) (*PackStats, error) {
	stats := &PackStats{Pack: pack}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT level), COUNT(DISTINCT run_id),
		        COALESCE(SUM(moves), 0), COALESCE(SUM(pushes), 0), MAX(created_at)
		 FROM solves WHERE pack = ?`,
		pack,
	).Scan(&stats.Solves, &stats.LevelsSolved, &stats.Runs,
		&stats.TotalMoves, &stats.TotalPushes, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}
	stats.LastPlayed = scanTime(lastPlayed)

	return stats, nil
}

// ClearSolves deletes all solves of the given pack.
func (s *Store) ClearSolves(pack string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE pack = ?", pack)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

func scanSolves(rows *sql.Rows) ([]SolveRecord, error) {
	var records []SolveRecord
	for rows.Next() {
		var r SolveRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Pack, &r.Level, &r.Moves, &r.Pushes, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = scanTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// scanTime parses a SQLite datetime, which arrives as time.Time for typed
// columns and as text from aggregates. Unparseable values yield the zero time.
func scanTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		return parseTime(v)
	case []byte:
		return parseTime(string(v))
	default:
		return time.Time{}
	}
}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
