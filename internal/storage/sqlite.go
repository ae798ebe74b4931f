// Package storage keeps the leaderboard in SQLite through the pure-Go
// modernc.org/sqlite driver, so the binary needs no CGO. Only finished runs
// are stored; boards are never persisted.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the leaderboard database. It is safe for concurrent use; SSH
// sessions share one Store.
type Store struct {
	db *sql.DB
}

// Run is one finished game: the final score and its counters.
type Run struct {
	GameID    string
	Player    string // SSH user name; empty for local play
	Score     int
	Swaps     int
	Crushes   int
	Bombs     int
	BestChain int
	Duration  time.Duration
}

// ScoreEntry is a stored run as returned by the leaderboard queries.
type ScoreEntry struct {
	ID        int64
	CreatedAt time.Time
	Run
}

// migrations are applied in order; PRAGMA user_version records how many ran.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id       TEXT    NOT NULL,
		player        TEXT    NOT NULL DEFAULT '',
		score         INTEGER NOT NULL,
		swaps         INTEGER NOT NULL DEFAULT 0,
		crushes       INTEGER NOT NULL DEFAULT 0,
		bombs         INTEGER NOT NULL DEFAULT 0,
		best_chain    INTEGER NOT NULL DEFAULT 0,
		duration_secs INTEGER NOT NULL DEFAULT 0,
		created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC, id)`,
}

// Open opens or creates the database at path. A leading ~ is expanded and
// missing directories are created.
func Open(path string) (*Store, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, wrap("expand home directory", err)
		}
		path = filepath.Join(home, rest)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, wrap("create directory", err)
	}

	// Writers from concurrent sessions wait on the lock instead of failing
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, wrap("open", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return wrap("read schema version", err)
	}
	for i := version; i < len(migrations); i++ {
		if _, err := s.db.Exec(migrations[i]); err != nil {
			return wrap(fmt.Sprintf("migration %d", i+1), err)
		}
		if _, err := s.db.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, i+1)); err != nil {
			return wrap("write schema version", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (game_id, player, score, swaps, crushes, bombs, best_chain, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Score, r.Swaps, r.Crushes, r.Bombs, r.BestChain, int64(r.Duration/time.Second),
	)
	if err != nil {
		return 0, wrap("save run", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrap("save run", err)
	}
	return id, nil
}

// SaveScore records a bare score with no counters.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	return s.SaveRun(Run{GameID: gameID, Score: score})
}

const selectEntries = `SELECT id, game_id, player, score, swaps, crushes, bombs, best_chain, duration_secs, created_at
	FROM runs WHERE game_id = ? ORDER BY score DESC, id ASC`

// TopScores returns the best limit runs of a game. Ties go to the earlier
// run. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.entries(selectEntries+` LIMIT ?`, gameID, limit)
}

// AllScores returns every run of a game in leaderboard order.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.entries(selectEntries, gameID)
}

func (s *Store) entries(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, wrap("query runs", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			secs    int64
			created any
		)
		err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.Swaps, &e.Crushes,
			&e.Bombs, &e.BestChain, &secs, &created)
		if err != nil {
			return nil, wrap("scan run", err)
		}
		e.Duration = time.Duration(secs) * time.Second
		e.CreatedAt = parseTime(created)
		out = append(out, e)
	}
	return out, wrap("query runs", rows.Err())
}

// HighScore returns the best score of a game, or 0 when it has no runs.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(score) FROM runs WHERE game_id = ?`, gameID).Scan(&best); err != nil {
		return 0, wrap("query high score", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes every run of a game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec(`DELETE FROM runs WHERE game_id = ?`, gameID)
	return wrap("clear runs", err)
}

// wrap prefixes err with the package and operation. A nil err stays nil.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("storage: %s: %w", op, err)
}

// timeLayouts are the forms the driver returns DATETIME text in.
var timeLayouts = []string{"2006-01-02 15:04:05", time.RFC3339Nano}

func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
