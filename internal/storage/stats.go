package storage

import (
	"database/sql"
	"errors"
	"time"
)

// GameStats aggregates every stored run of one game.
type GameStats struct {
	GameID       string
	GamesCount   int
	HighScore    int
	AvgScore     float64
	TotalScore   int64
	TotalCrushes int64
	TotalBombs   int64
	BestChain    int
	LastPlayed   time.Time
}

const statsQuery = `SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score),
	SUM(crushes), SUM(bombs), MAX(best_chain), MAX(created_at)
	FROM runs`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStats(row rowScanner) (*GameStats, error) {
	var (
		gs   GameStats
		last any
	)
	if err := row.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore,
		&gs.TotalCrushes, &gs.TotalBombs, &gs.BestChain, &last); err != nil {
		return nil, err
	}
	gs.LastPlayed = parseTime(last)
	return &gs, nil
}

// GetGameStats returns the aggregate of one game. A game without runs
// yields zero stats.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	gs, err := scanStats(s.db.QueryRow(statsQuery+` WHERE game_id = ? GROUP BY game_id`, gameID))
	if errors.Is(err, sql.ErrNoRows) {
		return &GameStats{GameID: gameID}, nil
	}
	if err != nil {
		return nil, wrap("query game stats", err)
	}
	return gs, nil
}

// GetAllGamesStats returns the aggregate of every game with at least one
// run, keyed by game ID.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(statsQuery + ` GROUP BY game_id`)
	if err != nil {
		return nil, wrap("query stats", err)
	}
	defer rows.Close()

	all := make(map[string]*GameStats)
	for rows.Next() {
		gs, err := scanStats(rows)
		if err != nil {
			return nil, wrap("scan stats", err)
		}
		all[gs.GameID] = gs
	}
	return all, wrap("query stats", rows.Err())
}
