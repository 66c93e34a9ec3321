package scores

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const (
	defaultLocalDBName = "blackjack_local.db"
	defaultKeepLimit   = 500
)

type SQLiteService struct {
	db        *sql.DB
	keepLimit int
}

func NewSQLiteServiceFromEnv() (*SQLiteService, error) {
	dbPath, err := scoresLocalDatabasePathFromEnv()
	if err != nil {
		return nil, err
	}
	return NewSQLiteService(dbPath)
}

func NewSQLiteService(dbPath string) (*SQLiteService, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSQLiteScoresSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteService{
		db:        db,
		keepLimit: envIntOrDefault("SCORES_KEEP_LIMIT", defaultKeepLimit),
	}, nil
}

func (s *SQLiteService) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteService) Record(game, player string, score int) {
	if strings.TrimSpace(game) == "" || strings.TrimSpace(player) == "" {
		return
	}
	nowMs := time.Now().UTC().UnixMilli()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("[Scores] begin record tx failed: game=%s player=%s err=%v", game, player, err)
		return
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO high_scores (game, player, score, recorded_at_ms)
VALUES (?, ?, ?, ?)
`, game, player, score, nowMs); err != nil {
		log.Printf("[Scores] record failed: game=%s player=%s err=%v", game, player, err)
		return
	}

	// Old low entries are trimmed so a long-running local install does
	// not grow without bound.
	if s.keepLimit > 0 {
		if _, err := tx.ExecContext(ctx, `
DELETE FROM high_scores
WHERE game = ?
  AND id IN (
      SELECT id
      FROM high_scores
      WHERE game = ?
      ORDER BY score DESC, recorded_at_ms ASC
      LIMIT -1 OFFSET ?
  )
`, game, game, s.keepLimit); err != nil {
			log.Printf("[Scores] trim failed: game=%s err=%v", game, err)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("[Scores] commit record failed: game=%s player=%s err=%v", game, player, err)
	}
}

func (s *SQLiteService) Top(ctx context.Context, game string, limit int) ([]ScoreItem, error) {
	if strings.TrimSpace(game) == "" {
		return nil, ErrNotFound
	}
	if limit <= 0 || limit > 100 {
		limit = defaultTopLimit
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT player, score, recorded_at_ms
FROM high_scores
WHERE game = ?
ORDER BY score DESC, recorded_at_ms ASC
LIMIT ?
`, game, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ScoreItem, 0, limit)
	for rows.Next() {
		var item ScoreItem
		var recordedAtMs int64
		if err := rows.Scan(&item.Player, &item.Score, &recordedAtMs); err != nil {
			return nil, err
		}
		item.RecordedAt = time.UnixMilli(recordedAtMs).UTC()
		items = append(items, item)
	}
	return items, rows.Err()
}

func ensureSQLiteScoresSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`
CREATE TABLE IF NOT EXISTS high_scores (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    game TEXT NOT NULL,
    player TEXT NOT NULL,
    score INTEGER NOT NULL,
    recorded_at_ms INTEGER NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_high_scores_top ON high_scores(game, score DESC, recorded_at_ms ASC)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func scoresLocalDatabasePathFromEnv() (string, error) {
	candidates := []string{
		strings.TrimSpace(os.Getenv("SCORES_LOCAL_DATABASE_PATH")),
		strings.TrimSpace(os.Getenv("LOCAL_DATABASE_PATH")),
	}
	for _, candidate := range candidates {
		if candidate != "" {
			return filepath.Clean(candidate), nil
		}
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "BlackjackLite", defaultLocalDBName), nil
}
