package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"jadwal/internal/model"
)

// ErrNotFound no schedule is stored under the requested trainee id.
var ErrNotFound = errors.New("trainee not found")

// databaseFile name of the JSON document under the data dir.
const databaseFile = "database.json"

// Store the schedule database: an in-memory map keyed by trainee id,
// mirrored to a JSON file after every mutation. Merge and Reset are the
// only writers and run under the write lock, so two concurrent uploads
// cannot race each other into a lost update.
type Store struct {
	mu    sync.RWMutex
	path  string
	db    *model.Database
	index map[string]*model.TraineeSchedule
}

// New opens the store under dataDir, loading database.json when it
// exists and starting empty otherwise.
func New(dataDir string) (*Store, error) {
	if err := ensureDir(dataDir); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		path: filepath.Join(dataDir, databaseFile),
		db:   model.EmptyDatabase(),
	}

	if fileExists(s.path) {
		db := model.EmptyDatabase()
		if err := readJSON(s.path, db); err != nil {
			return nil, fmt.Errorf("failed to load database: %w", err)
		}
		if db.Schedules == nil {
			db.Schedules = []*model.TraineeSchedule{}
		}
		s.db = db
	}

	s.rebuildIndex()
	return s, nil
}

// rebuildIndex caller must hold mu.
func (s *Store) rebuildIndex() {
	s.index = make(map[string]*model.TraineeSchedule, len(s.db.Schedules))
	for _, t := range s.db.Schedules {
		s.index[t.TraineeID] = t
	}
}

// Merge inserts or replaces each record by trainee id, then bumps the
// counter for dept by the number of records. Replaced ids keep their
// original position; new ids append in first-seen order. Replacement is
// wholesale, never a field-level merge. If the write to disk fails the
// in-memory state is rolled back and the previous database stays
// authoritative.
func (s *Store) Merge(records []*model.TraineeSchedule, dept model.DeptType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.db
	prevIndex := s.index

	next := &model.Database{
		Schedules: make([]*model.TraineeSchedule, len(prev.Schedules)),
		Stats:     prev.Stats,
	}
	copy(next.Schedules, prev.Schedules)

	s.db = next
	s.rebuildIndex()

	for _, record := range records {
		if existing, ok := s.index[record.TraineeID]; ok {
			for i, t := range s.db.Schedules {
				if t == existing {
					s.db.Schedules[i] = record
					break
				}
			}
		} else {
			s.db.Schedules = append(s.db.Schedules, record)
		}
		s.index[record.TraineeID] = record
	}

	dept.AddTo(&s.db.Stats, len(records))

	if err := writeJSONAtomic(s.path, s.db); err != nil {
		s.db = prev
		s.index = prevIndex
		return fmt.Errorf("failed to persist database: %w", err)
	}
	return nil
}

// Lookup exact-match by trimmed trainee id. Returns a deep copy so the
// caller can never mutate store-owned data.
func (s *Store) Lookup(traineeID string) (*model.TraineeSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.index[strings.TrimSpace(traineeID)]
	if !ok {
		return nil, ErrNotFound
	}
	return t.Clone(), nil
}

// Snapshot a deep copy of the whole database, records and stats.
func (s *Store) Snapshot() *model.Database {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := &model.Database{
		Schedules: make([]*model.TraineeSchedule, len(s.db.Schedules)),
		Stats:     s.db.Stats,
	}
	for i, t := range s.db.Schedules {
		out.Schedules[i] = t.Clone()
	}
	return out
}

// Count number of stored trainee records.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.db.Schedules)
}

// Reset swaps in an empty database with zeroed counters in one step and
// persists it. There is never a state with old records and new stats.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.db
	prevIndex := s.index

	s.db = model.EmptyDatabase()
	s.rebuildIndex()

	if err := writeJSONAtomic(s.path, s.db); err != nil {
		s.db = prev
		s.index = prevIndex
		return fmt.Errorf("failed to persist database: %w", err)
	}
	return nil
}

// SaveNow flushes the current database to disk. Used on shutdown.
func (s *Store) SaveNow() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return writeJSONAtomic(s.path, s.db)
}
