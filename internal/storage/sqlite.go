// Package storage provides SQLite-based persistence for level clear times.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for time persistence.
type Store struct {
	db *sql.DB
}

// TimeEntry is one recorded level clear. Level is the 1-based level number.
type TimeEntry struct {
	ID        int64
	Level     int
	Player    string
	Time      time.Duration
	CreatedAt time.Time
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS level_times (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			player TEXT NOT NULL,
			millis INTEGER NOT NULL CHECK (millis >= 0),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_times_best ON level_times(level, millis ASC);
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

// SaveTime records a level clear time.
// Returns the ID of the inserted record.
func (s *Store) SaveTime(level int, player string, d time.Duration) (int64, error) {
	return insertTime(s.db, level, player, d)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertTime(ex execer, level int, player string, d time.Duration) (int64, error) {
	if player == "" {
		player = "anonymous"
	}
	result, err := ex.Exec(
		"INSERT INTO level_times (level, player, millis) VALUES (?, ?, ?)",
		level, player, d.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save time: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopTimes retrieves the fastest N clears of a level, fastest first.
func (s *Store) TopTimes(level, limit int) ([]TimeEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryTimes(
		`SELECT id, level, player, millis, created_at
		 FROM level_times
		 WHERE level = ?
		 ORDER BY millis ASC, id ASC
		 LIMIT ?`,
		level, limit,
	)
}

// AllTimes retrieves every clear of a level, fastest first.
func (s *Store) AllTimes(level int) ([]TimeEntry, error) {
	return s.queryTimes(
		`SELECT id, level, player, millis, created_at
		 FROM level_times
		 WHERE level = ?
		 ORDER BY millis ASC, id ASC`,
		level,
	)
}

func (s *Store) queryTimes(query string, args ...any) ([]TimeEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query times: %w", err)
	}
	defer rows.Close()

	var entries []TimeEntry
	for rows.Next() {
		var e TimeEntry
		var millis int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.Player, &millis, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Time = time.Duration(millis) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestTime returns the fastest clear of a level.
// ok is false if the level has no records.
func (s *Store) BestTime(level int) (best time.Duration, ok bool, err error) {
	var millis sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(millis) FROM level_times WHERE level = ?",
		level,
	).Scan(&millis)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !millis.Valid {
		return 0, false, nil
	}
	return time.Duration(millis.Int64) * time.Millisecond, true, nil
}

// ClearTimes deletes all records of a level.
func (s *Store) ClearTimes(level int) error {
	_, err := s.db.Exec("DELETE FROM level_times WHERE level = ?", level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear times: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for one level.
type LevelStats struct {
	Level      int
	Clears     int
	Best       time.Duration
	Average    time.Duration
	LastPlayed time.Time
}

// GetLevelStats retrieves aggregated statistics for a level.
func (s *Store) GetLevelStats(level int) (*LevelStats, error) {
	stats := &LevelStats{Level: level}

	var best int64
	var avg float64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(millis), 0), COALESCE(AVG(millis), 0)
		 FROM level_times WHERE level = ?`,
		level,
	).Scan(&stats.Clears, &best, &avg)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.Best = time.Duration(best) * time.Millisecond
	stats.Average = time.Duration(avg * float64(time.Millisecond))

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM level_times WHERE level = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		level,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllLevelStats retrieves statistics for every level with records,
// ordered by level.
func (s *Store) GetAllLevelStats() ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*), MIN(millis), AVG(millis), MAX(created_at)
		 FROM level_times
		 GROUP BY level
		 ORDER BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	var out []LevelStats
	for rows.Next() {
		var ls LevelStats
		var best int64
		var avg float64
		var lastPlayed any
		if err := rows.Scan(&ls.Level, &ls.Clears, &best, &avg, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.Best = time.Duration(best) * time.Millisecond
		ls.Average = time.Duration(avg * float64(time.Millisecond))
		ls.LastPlayed = parseTime(lastPlayed)
		out = append(out, ls)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}
