// Package storage provides SQLite-based persistence for the high-score table.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// ScoreEntry represents a single finished run.
type ScoreEntry struct {
	ID          int64  `db:"id"`
	RunID       string `db:"run_id"`
	GameID      string `db:"game_id"`
	Score       int    `db:"score"`
	Level       int    `db:"level"`
	Tiles       int    `db:"tiles"` // Tiles placed by the player, seeds excluded
	CreatedUnix int64  `db:"created_at"`
}

// CreatedAt returns when the run was recorded.
func (e ScoreEntry) CreatedAt() time.Time {
	return time.Unix(e.CreatedUnix, 0)
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() string {
	return uuid.NewString()
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

	// Connect opens and pings
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close() //nolint:errcheck
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			tiles INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
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

// SaveScore records a finished run. A missing RunID is generated.
// Saving the same RunID twice keeps the better result.
// Returns the ID of the row.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	if e.RunID == "" {
		e.RunID = NewRunID()
	}
	e.CreatedUnix = s.now().Unix()

	_, err := s.db.NamedExec(
		`INSERT INTO scores (run_id, game_id, score, level, tiles, created_at)
		 VALUES (:run_id, :game_id, :score, :level, :tiles, :created_at)
		 ON CONFLICT(run_id) DO UPDATE SET
		   score = excluded.score,
		   level = excluded.level,
		   tiles = excluded.tiles,
		   created_at = excluded.created_at
		 WHERE excluded.score > scores.score`,
		e,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	var id int64
	if err := s.db.Get(&id, "SELECT id FROM scores WHERE run_id = ?", e.RunID); err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending, older runs first on ties.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var entries []ScoreEntry
	err := s.db.Select(&entries,
		`SELECT id, run_id, game_id, score, level, tiles, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return entries, nil
}

// Run returns the entry recorded for runID.
func (s *Store) Run(runID string) (*ScoreEntry, error) {
	var e ScoreEntry
	err := s.db.Get(&e,
		`SELECT id, run_id, game_id, score, level, tiles, created_at
		 FROM scores WHERE run_id = ?`,
		runID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &e, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	if err := s.db.Get(&score, "SELECT MAX(score) FROM scores WHERE game_id = ?", gameID); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string  `db:"game_id"`
	GamesCount int     `db:"games"`
	HighScore  int     `db:"high"`
	BestLevel  int     `db:"best_level"`
	AvgScore   float64 `db:"avg"`
	TotalTiles int64   `db:"total_tiles"`
	LastUnix   int64   `db:"last_played"`
}

// LastPlayed returns when the game was last recorded, or the zero time.
func (g GameStats) LastPlayed() time.Time {
	if g.LastUnix == 0 {
		return time.Time{}
	}
	return time.Unix(g.LastUnix, 0)
}

const statsColumns = `game_id,
	COUNT(*) AS games,
	COALESCE(MAX(score), 0) AS high,
	COALESCE(MAX(level), 0) AS best_level,
	COALESCE(AVG(score), 0) AS avg,
	COALESCE(SUM(tiles), 0) AS total_tiles,
	COALESCE(MAX(created_at), 0) AS last_played`

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := GameStats{GameID: gameID}
	var rows []GameStats
	err := s.db.Select(&rows,
		"SELECT "+statsColumns+" FROM scores WHERE game_id = ? GROUP BY game_id",
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	if len(rows) > 0 {
		stats = rows[0]
	}
	return &stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	var rows []GameStats
	if err := s.db.Select(&rows, "SELECT "+statsColumns+" FROM scores GROUP BY game_id"); err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}

	stats := make(map[string]*GameStats, len(rows))
	for i := range rows {
		stats[rows[i].GameID] = &rows[i]
	}
	return stats, nil
}
