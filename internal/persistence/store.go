// Package persistence provides the SQLite-backed save store. One row
// per player, the whole save as a JSON document — the same shape the
// hosted variant keeps in its game_saves table.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SaveData is the persisted slice of a session: resources, skills and
// unlocks. Active processes and the current location are deliberately
// not part of it; they reset to idle on reload.
type SaveData struct {
	Inventory         map[string]int     `json:"inventory"`
	Credits           float64            `json:"credits"`
	SkillXP           map[string]float64 `json:"skillXp"`
	Cargo             int                `json:"cargo"`
	InstalledUpgrades []string           `json:"installedUpgrades"`
	BuildingLevels    map[string]int     `json:"buildingLevels"`
}

// Store wraps a SQLite connection for save persistence.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates the save database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS game_saves (
		user_id    TEXT PRIMARY KEY,
		save_data  TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save upserts the player's save document.
func (s *Store) Save(userID string, data SaveData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal save: %w", err)
	}
	_, err = s.conn.Exec(`
		INSERT INTO game_saves (user_id, save_data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			save_data = excluded.save_data,
			updated_at = excluded.updated_at`,
		userID, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// Load fetches the player's save. The second return is false when no
// save exists yet.
func (s *Store) Load(userID string) (SaveData, bool, error) {
	var raw string
	err := s.conn.Get(&raw, `SELECT save_data FROM game_saves WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return SaveData{}, false, nil
	}
	if err != nil {
		return SaveData{}, false, fmt.Errorf("read save: %w", err)
	}
	var data SaveData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return SaveData{}, false, fmt.Errorf("unmarshal save: %w", err)
	}
	return data, true, nil
}
