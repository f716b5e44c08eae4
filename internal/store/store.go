// Package store persists saved font pairings in a local JSON file.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/ppiankov/notmytype/internal/logging"
	"github.com/ppiankov/notmytype/internal/model"
	"github.com/ppiankov/notmytype/internal/slug"
)

// lockRetryDelay is how often a blocked caller retries the advisory lock
const lockRetryDelay = 25 * time.Millisecond

// ErrNotFound is returned when no saved pairing has the requested id
var ErrNotFound = errors.New("saved pairing not found")

// ErrLocked is returned when the lock could not be taken before the context ended
var ErrLocked = errors.New("pairing store is locked by another process")

// Store is a keyed record store of saved pairings backed by one JSON file.
// Writes replace the file atomically under an advisory lock on <path>.lock.
// The file lock only excludes other processes; mu orders callers sharing one Store.
type Store struct {
	path   string
	mu     sync.RWMutex
	lock   *flock.Flock
	now    func() time.Time
	logger logging.Logger
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for fail-soft warnings
func WithLogger(logger logging.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates a store at path. The file is created on first save.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		lock:   flock.New(path + ".lock"),
		now:    time.Now,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Save upserts a pairing by id, stamping SavedAt. An empty id is derived from the font names.
func (s *Store) Save(ctx context.Context, pairing model.FontPairing) (model.SavedPairing, error) {
	if pairing.ID == "" {
		pairing.ID = slug.PairingID(pairing.HeadingFont, pairing.BodyFont)
	}

	saved := model.SavedPairing{
		FontPairing: pairing,
		SavedAt:     s.now().UnixMilli(),
		Custom:      true,
	}

	err := s.withLock(ctx, func() error {
		records := s.read()

		replaced := false
		for i := range records {
			if records[i].ID == saved.ID {
				records[i] = saved
				replaced = true
				break
			}
		}
		if !replaced {
			records = append(records, saved)
		}

		return s.write(records)
	})
	if err != nil {
		return model.SavedPairing{}, err
	}

	return saved, nil
}

// List returns every saved pairing in insertion order
func (s *Store) List(ctx context.Context) ([]model.SavedPairing, error) {
	var records []model.SavedPairing
	err := s.withRLock(ctx, func() error {
		records = s.read()
		return nil
	})
	return records, err
}

// Get returns the saved pairing with id
func (s *Store) Get(ctx context.Context, id string) (model.SavedPairing, error) {
	records, err := s.List(ctx)
	if err != nil {
		return model.SavedPairing{}, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return model.SavedPairing{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Exists reports whether a pairing with id is saved
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Delete removes the pairing with id. Deleting a missing id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.withLock(ctx, func() error {
		records := s.read()

		kept := records[:0]
		for _, r := range records {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		if len(kept) == len(records) {
			return nil
		}
		return s.write(kept)
	})
}

// read loads records, treating a missing or malformed file as empty
func (s *Store) read() []model.SavedPairing {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Error reading saved pairings", "path", s.path, "error", err)
		}
		return []model.SavedPairing{}
	}

	var raw []model.SavedPairing
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("Ignoring malformed saved pairings file", "path", s.path, "error", err)
		return []model.SavedPairing{}
	}

	records := make([]model.SavedPairing, 0, len(raw))
	for _, r := range raw {
		if r.ID == "" || r.HeadingFont == "" || r.BodyFont == "" {
			s.logger.Warn("Skipping malformed saved pairing", "id", r.ID)
			continue
		}
		records = append(records, r)
	}
	return records
}

// write replaces the file atomically via a temp file and rename
func (s *Store) write(records []model.SavedPairing) (err error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal saved pairings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

func (s *Store) withLock(ctx context.Context, fn func() error) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !ok {
		return lockError(err)
	}
	defer func() { _ = s.lock.Unlock() }()
	return fn()
}

func (s *Store) withRLock(ctx context.Context, fn func() error) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ok, err := s.lock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil || !ok {
		return lockError(err)
	}
	defer func() { _ = s.lock.Unlock() }()
	return fn()
}

// ensureDir creates the directory holding the lock file
func (s *Store) ensureDir() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	return nil
}

func lockError(err error) error {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrLocked
	}
	return fmt.Errorf("acquiring store lock: %w", err)
}
