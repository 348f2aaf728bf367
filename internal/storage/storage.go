package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// ErrClosed is returned by operations on a closed Storage.
var ErrClosed = errors.New("storage closed")

// Storage keys
const (
	keyPreferences   = "preferences"
	keyStats         = "stats"
	keyFirstLaunch   = "first_launch"
	keySessionPrefix = "session/"
)

// Preferences stores the view settings restored on the next launch.
type Preferences struct {
	CameraYaw       float64   `json:"camera_yaw"`
	CameraPitch     float64   `json:"camera_pitch"`
	CameraDistance  float64   `json:"camera_distance"`
	ShowDiagnostics bool      `json:"show_diagnostics"`
	SoundEnabled    bool      `json:"sound_enabled"`
	LastPlayed      time.Time `json:"last_played"`
}

// DefaultPreferences returns default preferences
func DefaultPreferences() *Preferences {
	return &Preferences{
		CameraYaw:      0,
		CameraPitch:    55,
		CameraDistance: 12,
		SoundEnabled:   true,
		LastPlayed:     time.Now(),
	}
}

// Stats accumulates totals over all sessions.
type Stats struct {
	Sessions       int           `json:"sessions"`
	Selections     int           `json:"selections"`
	Arrivals       int           `json:"arrivals"`
	TotalPlayTime  time.Duration `json:"total_play_time"`
	LongestSession time.Duration `json:"longest_session"`
}

// Session describes one run of the viewer.
type Session struct {
	ID         string    `json:"id"`
	Started    time.Time `json:"started"`
	Ended      time.Time `json:"ended"`
	Selections int       `json:"selections"`
	Arrivals   int       `json:"arrivals"`
}

// NewSession starts a session record with a fresh ID.
func NewSession(now time.Time) *Session {
	return &Session{ID: uuid.NewString(), Started: now}
}

// Duration returns how long the session lasted.
func (s *Session) Duration() time.Duration {
	if s.Ended.Before(s.Started) {
		return 0
	}
	return s.Ended.Sub(s.Started)
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens the database under base (see DatabaseDir).
func Open(base string) (*Storage, error) {
	dbDir, err := DatabaseDir(base)
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dbDir, err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Storage) view(fn func(txn *badger.Txn) error) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.View(fn)
}

func (s *Storage) update(fn func(txn *badger.Txn) error) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.Update(fn)
}

// getJSON decodes key into v; a missing key leaves v untouched.
func (s *Storage) getJSON(key string, v any) error {
	return s.view(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

func (s *Storage) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true
	err := s.view(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})
	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves view preferences
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()
	return s.putJSON(keyPreferences, prefs)
}

// LoadPreferences loads preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	err := s.getJSON(keyPreferences, prefs)
	return prefs, err
}

// LoadStats loads statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*Stats, error) {
	stats := &Stats{}
	err := s.getJSON(keyStats, stats)
	return stats, err
}

// RecordSession stores a finished session and folds it into the totals.
func (s *Storage) RecordSession(sess *Session) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	d := sess.Duration()
	stats.Sessions++
	stats.Selections += sess.Selections
	stats.Arrivals += sess.Arrivals
	stats.TotalPlayTime += d
	if d > stats.LongestSession {
		stats.LongestSession = d
	}

	if err := s.putJSON(keySessionPrefix+sess.ID, sess); err != nil {
		return err
	}
	return s.putJSON(keyStats, stats)
}

// LoadSession returns a stored session by ID.
func (s *Storage) LoadSession(id string) (*Session, error) {
	sess := &Session{}
	err := s.view(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySessionPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, sess)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	return sess, nil
}

// AverageSession returns the mean session length.
func (s *Stats) AverageSession() time.Duration {
	if s.Sessions == 0 {
		return 0
	}
	return s.TotalPlayTime / time.Duration(s.Sessions)
}
