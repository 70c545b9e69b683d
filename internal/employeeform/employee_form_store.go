package employeeform

import (
	"context"
	"sync"
	"time"

	"go-employee-form/internal/shared/apperror"

	"go.uber.org/zap"
)

const DefaultLoadFailureMessage = "Failed to fetch employees"

type Reader interface {
	List(ctx context.Context) ([]Record, error)
}

// Store is the client-side copy of the employee collection. The backend
// stays the source of truth; the copy is refreshed by LoadAll and patched
// locally after successful writes.
type Store struct {
	reader       Reader
	errorDisplay time.Duration
	logger       *zap.Logger

	mu       sync.RWMutex
	records  []Record
	loading  bool
	errMsg   string
	errTimer *time.Timer
	closed   bool
}

func NewStore(reader Reader, errorDisplay time.Duration, logger ...*zap.Logger) *Store {
	l := zap.L().Named("employeeform.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeeform.store")
	}
	if errorDisplay <= 0 {
		errorDisplay = DefaultErrorDisplay
	}
	return &Store{
		reader:       reader,
		errorDisplay: errorDisplay,
		logger:       l,
	}
}

// LoadAll fetches the whole collection with a single request. On failure
// the collection is emptied and a transient error message is set.
func (s *Store) LoadAll(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	records, err := s.reader.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		msg := DefaultLoadFailureMessage
		if appErr, ok := apperror.As(err); ok && appErr.Message != "" {
			msg = appErr.Message
		}
		s.logger.Warn("load employees failed", zap.String("message", msg), zap.Error(err))
		s.records = nil
		s.setErrorLocked(msg)
		return []Record{}, err
	}

	s.records = append([]Record(nil), records...)
	s.clearErrorLocked()
	s.logger.Debug("load employees success", zap.Int("count", len(records)))
	return s.snapshotLocked(), nil
}

// Records returns a copy of the collection in backend order.
func (s *Store) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) Find(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

func (s *Store) Append(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// Replace swaps the record with the same ID in place. It reports false
// when no such record is held.
func (s *Store) Replace(rec Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == rec.ID {
			s.records[i] = rec
			return true
		}
	}
	return false
}

func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Err returns the current load error message, "" when there is none.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Close stops the error timer.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.clearErrorLocked()
}

func (s *Store) snapshotLocked() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) setErrorLocked(msg string) {
	if s.errTimer != nil {
		s.errTimer.Stop()
	}
	s.errMsg = msg
	if s.closed {
		return
	}
	var timer *time.Timer
	timer = time.AfterFunc(s.errorDisplay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.errTimer == timer {
			s.errMsg = ""
			s.errTimer = nil
		}
	})
	s.errTimer = timer
}

func (s *Store) clearErrorLocked() {
	if s.errTimer != nil {
		s.errTimer.Stop()
		s.errTimer = nil
	}
	s.errMsg = ""
}
