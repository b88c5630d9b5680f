package trainer

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"tenpai-trainer/mahjong"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	mode         TEXT NOT NULL,
	pattern      TEXT NOT NULL,
	display_size INTEGER NOT NULL,
	exercise_id  TEXT NOT NULL,
	correct      INTEGER NOT NULL,
	created_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_results_mode ON results(mode);
`

// Store persists opaque score records keyed by training-mode name. It never
// stores tile-structured data; exercises are referenced by their ID only.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the sqlite database at path.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveResult records one graded exercise.
func (s *Store) SaveResult(mode string, pattern mahjong.WaitPattern, displaySize int, exerciseID string, correct bool) error {
	_, err := s.db.Exec(
		`INSERT INTO results (mode, pattern, display_size, exercise_id, correct, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		mode, pattern.String(), displaySize, exerciseID, correct, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// ModeStats aggregates played/correct counts for one training mode.
type ModeStats struct {
	Mode     string
	Played   int
	Correct  int
	Accuracy float64
}

// Stats returns the tally for a single mode. An unknown mode yields zeros.
func (s *Store) Stats(mode string) (ModeStats, error) {
	row := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM results WHERE mode = ?`, mode)
	stats := ModeStats{Mode: mode}
	if err := row.Scan(&stats.Played, &stats.Correct); err != nil {
		return ModeStats{}, fmt.Errorf("mode stats: %w", err)
	}
	if stats.Played > 0 {
		stats.Accuracy = float64(stats.Correct) / float64(stats.Played)
	}
	return stats, nil
}

// AllStats returns per-mode tallies for every mode seen so far.
func (s *Store) AllStats() ([]ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), COALESCE(SUM(correct), 0) FROM results GROUP BY mode ORDER BY mode`)
	if err != nil {
		return nil, fmt.Errorf("all stats: %w", err)
	}
	defer rows.Close()

	var all []ModeStats
	for rows.Next() {
		var stats ModeStats
		if err := rows.Scan(&stats.Mode, &stats.Played, &stats.Correct); err != nil {
			return nil, fmt.Errorf("all stats: %w", err)
		}
		if stats.Played > 0 {
			stats.Accuracy = float64(stats.Correct) / float64(stats.Played)
		}
		all = append(all, stats)
	}
	return all, rows.Err()
}
