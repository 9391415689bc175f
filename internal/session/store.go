package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/alclearn/admin-console/internal/model"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUser         = "user"
)

// Session is the persisted credential: created at login, read on every
// protected render and every API call, destroyed on logout or any 401.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         model.User
}

// Store persists the session in a local sqlite file, the console's analog of
// browser storage. Writes are immediately visible to all future reads, and
// every write fires the change subscribers so dependents re-run the guard.
type Store struct {
	db  *sql.DB
	log zerolog.Logger

	mu   sync.Mutex
	subs []func()
}

// Open opens (or creates) the session store at path.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create session dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS session (
		name  TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init session db: %w", err)
	}

	return &Store{
		db:  db,
		log: log.With().Str("component", "session").Logger(),
	}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Subscribe registers a callback fired after every Save or Clear.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Save persists a freshly minted session and notifies subscribers.
func (s *Store) Save(sess Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	for name, value := range map[string]string{
		keyAccessToken:  sess.AccessToken,
		keyRefreshToken: sess.RefreshToken,
		keyUser:         string(userJSON),
	} {
		if _, err := tx.Exec(
			`INSERT INTO session (name, value) VALUES (?, ?)
			 ON CONFLICT (name) DO UPDATE SET value = excluded.value`,
			name, value,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("save session: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.notify()
	return nil
}

// Clear destroys the stored session and notifies subscribers.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.notify()
	return nil
}

// Current returns the stored session, if one exists.
func (s *Store) Current() (*Session, bool) {
	rows, err := s.db.Query(`SELECT name, value FROM session`)
	if err != nil {
		s.log.Error().Err(err).Msg("read session")
		return nil, false
	}
	defer rows.Close()

	var sess Session
	found := false
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, false
		}
		switch name {
		case keyAccessToken:
			sess.AccessToken = value
			found = value != ""
		case keyRefreshToken:
			sess.RefreshToken = value
		case keyUser:
			// A corrupt user blob is not fatal; the token still gates access.
			_ = json.Unmarshal([]byte(value), &sess.User)
		}
	}
	if err := rows.Err(); err != nil {
		s.log.Error().Err(err).Msg("read session")
		return nil, false
	}
	if !found {
		return nil, false
	}
	return &sess, true
}

// AccessToken implements api.TokenSource.
func (s *Store) AccessToken() (string, bool) {
	sess, ok := s.Current()
	if !ok {
		return "", false
	}
	return sess.AccessToken, true
}

// Invalidate implements api.TokenSource: any 401 destroys the session.
func (s *Store) Invalidate() {
	if err := s.Clear(); err != nil {
		s.log.Error().Err(err).Msg("invalidate session")
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
