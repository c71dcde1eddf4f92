package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrPersistence is returned when the underlying store cannot be read or written
var ErrPersistence = errors.New("session store failure")

// ErrSessionNotFound is returned when the requested session does not exist
var ErrSessionNotFound = errors.New("session not found")

const saveDateFormat = "2006-01-02 15:04:05"

const createSessionsTableSQL = `
CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id TEXT NOT NULL UNIQUE,
	save_date TEXT NOT NULL,
	summary TEXT NOT NULL,
	data TEXT NOT NULL -- JSON session record
)`

// Store persists sessions in a SQLite database
type Store struct {
	db *sql.DB
}

// NewStore opens (and if needed creates) the database at dbPath
func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: could not create database directory: %v", ErrPersistence, err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open database: %v", ErrPersistence, err)
	}

	if _, err := db.Exec(createSessionsTableSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: could not create sessions table: %v", ErrPersistence, err)
	}

	return &Store{db: db}, nil
}

// Save writes the session and returns its game ID. An empty GameID is
// assigned a generated one; an existing GameID overwrites the prior save
func (s *Store) Save(ctx context.Context, sess *Session) (string, error) {
	now := time.Now()
	if sess.GameID == "" {
		sess.GameID = fmt.Sprintf("poker_%s", now.Format("20060102_150405.000000"))
	}
	sess.SaveDate = now.Format(saveDateFormat)
	sess.Summary = sess.BuildSummary()

	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("%w: could not encode session: %v", ErrPersistence, err)
	}

	const query = `
		INSERT INTO sessions (game_id, save_date, summary, data)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(game_id)
		DO UPDATE SET save_date = ?, summary = ?, data = ?`

	_, err = s.db.ExecContext(ctx, query,
		sess.GameID, sess.SaveDate, sess.Summary, data,
		sess.SaveDate, sess.Summary, data)
	if err != nil {
		return "", fmt.Errorf("%w: could not write session: %v", ErrPersistence, err)
	}

	return sess.GameID, nil
}

// Get retrieves a session by its game ID
func (s *Store) Get(ctx context.Context, gameID string) (*Session, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM sessions WHERE game_id = ?`, gameID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w: could not read session: %v", ErrPersistence, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("%w: could not decode session: %v", ErrPersistence, err)
	}

	return &sess, nil
}

// Info describes a saved session without its full state
type Info struct {
	GameID   string `json:"gameId"`
	SaveDate string `json:"saveDate"`
	Summary  string `json:"summary"`
}

// List returns all saved sessions, newest first
func (s *Store) List(ctx context.Context) ([]Info, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT game_id, save_date, summary FROM sessions ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: could not list sessions: %v", ErrPersistence, err)
	}
	defer rows.Close()

	infos := make([]Info, 0)
	for rows.Next() {
		var info Info
		if err := rows.Scan(&info.GameID, &info.SaveDate, &info.Summary); err != nil {
			return nil, fmt.Errorf("%w: could not scan session row: %v", ErrPersistence, err)
		}

		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: could not list sessions: %v", ErrPersistence, err)
	}

	return infos, nil
}

// Delete removes a saved session
func (s *Store) Delete(ctx context.Context, gameID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE game_id = ?`, gameID)
	if err != nil {
		return fmt.Errorf("%w: could not delete session: %v", ErrPersistence, err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: could not delete session: %v", ErrPersistence, err)
	}

	if count == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
