// Package keyValue is a flat string key/value side-channel with TTLs, used
// for configuration mirrors (session token, last selected server and the
// like). It is not part of the entity model: values here are never a source
// of truth for the stores. With a file path it persists through sqlite so
// mirrors survive restarts; with an empty path it is memory only.
package keyValue

import (
	"database/sql"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

type Value struct {
	value   string
	expires time.Time
}

type Store struct {
	mutex   sync.RWMutex
	hashmap map[string]Value
	db      *sql.DB
	sugar   *zap.SugaredLogger
	done    chan struct{}
}

// Open loads the store. An empty path keeps everything in memory.
func Open(path string, sugar *zap.SugaredLogger) (*Store, error) {
	s := &Store{
		hashmap: make(map[string]Value),
		sugar:   sugar,
		done:    make(chan struct{}),
	}

	if path != "" {
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, err
		}

		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS key_value (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				expires INTEGER NOT NULL
			);
		`)
		if err != nil {
			db.Close()
			return nil, err
		}

		if err := s.load(db); err != nil {
			db.Close()
			return nil, err
		}
		s.db = db
	}

	go s.checkForExpiredKeys()

	return s, nil
}

func (s *Store) load(db *sql.DB) error {
	rows, err := db.Query("SELECT key, value, expires FROM key_value")
	if err != nil {
		return err
	}
	defer rows.Close()

	now := time.Now()
	for rows.Next() {
		var key, value string
		var expires int64
		if err := rows.Scan(&key, &value, &expires); err != nil {
			return err
		}
		expiry := time.UnixMilli(expires)
		if expiry.Before(now) {
			continue
		}
		s.hashmap[key] = Value{value: value, expires: expiry}
	}
	return rows.Err()
}

func (s *Store) checkForExpiredKeys() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
		}

		s.mutex.Lock()
		for key, v := range s.hashmap {
			if v.expires.Before(time.Now()) {
				s.sugar.Debugf("Key [%s] expired, deleting...", key)
				delete(s.hashmap, key)
				s.deleteRow(key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *Store) Get(key string) string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.hashmap[key].value
}

func (s *Store) GetDel(key string) string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	value := s.hashmap[key].value
	delete(s.hashmap, key)
	s.deleteRow(key)

	return value
}

func (s *Store) Set(key string, value string, expires time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	expiry := time.Now().Add(expires)
	s.hashmap[key] = Value{value: value, expires: expiry}

	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec(
		"INSERT INTO key_value (key, value, expires) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires = excluded.expires",
		key, value, expiry.UnixMilli(),
	)
	return err
}

func (s *Store) deleteRow(key string) {
	if s.db == nil {
		return
	}
	if _, err := s.db.Exec("DELETE FROM key_value WHERE key = ?", key); err != nil {
		s.sugar.Error(err)
	}
}

func (s *Store) Close() error {
	close(s.done)
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
