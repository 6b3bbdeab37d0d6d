package hotseats

import (
	"context"
	"fmt"
	"sync"

	"github.com/blkout/hub/internal/models"
)

type entry struct {
	mu      sync.Mutex
	session models.HotseatSession
}

// Store is the in-memory session store. Writes to one session are serialized
// by that session's lock; the index lock only guards membership and order.
type Store struct {
	mu    sync.RWMutex
	byID  map[string]*entry
	order []string
}

// NewStore builds a store from an initial dataset.
func NewStore(seed []models.HotseatSession) (*Store, error) {
	s := &Store{byID: make(map[string]*entry, len(seed))}
	for _, sess := range seed {
		if err := checkInvariants(sess); err != nil {
			return nil, err
		}
		if err := s.Insert(context.Background(), sess); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func checkInvariants(sess models.HotseatSession) error {
	if sess.MaxParticipants <= 0 {
		return fmt.Errorf("%w: session %s needs positive max_participants", models.ErrInvalidInput, sess.ID)
	}
	if len(sess.ParticipantIDs) > sess.MaxParticipants {
		return fmt.Errorf("%w: session %s over capacity", models.ErrInvalidInput, sess.ID)
	}
	seen := make(map[string]struct{}, len(sess.ParticipantIDs))
	for _, id := range sess.ParticipantIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: session %s lists %s twice", models.ErrInvalidInput, sess.ID, id)
		}
		seen[id] = struct{}{}
	}
	if !sess.Status.Valid() {
		return fmt.Errorf("%w: session %s has status %q", models.ErrInvalidInput, sess.ID, sess.Status)
	}
	return nil
}

// Insert adds a new session.
func (s *Store) Insert(_ context.Context, sess models.HotseatSession) error {
	if sess.ID == "" {
		return fmt.Errorf("%w: session id is required", models.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.byID[sess.ID]; dup {
		return fmt.Errorf("%w: duplicate session id %s", models.ErrInvalidInput, sess.ID)
	}
	s.byID[sess.ID] = &entry{session: sess.Clone()}
	s.order = append(s.order, sess.ID)
	return nil
}

func (s *Store) lookup(id string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrSessionNotFound, id)
	}
	return e, nil
}

// Get returns a snapshot of one session.
func (s *Store) Get(_ context.Context, id string) (models.HotseatSession, error) {
	e, err := s.lookup(id)
	if err != nil {
		return models.HotseatSession{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone(), nil
}

// List returns snapshots of all sessions in creation order.
func (s *Store) List(_ context.Context) ([]models.HotseatSession, error) {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, s.byID[id])
	}
	s.mu.RUnlock()

	list := make([]models.HotseatSession, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		list = append(list, e.session.Clone())
		e.mu.Unlock()
	}
	return list, nil
}

// Update applies fn to a session under its lock. The change is committed only
// when fn returns nil. Returns the resulting snapshot.
func (s *Store) Update(_ context.Context, id string, fn func(*models.HotseatSession) error) (models.HotseatSession, error) {
	e, err := s.lookup(id)
	if err != nil {
		return models.HotseatSession{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	work := e.session.Clone()
	if err := fn(&work); err != nil {
		return e.session.Clone(), err
	}
	e.session = work
	return work.Clone(), nil
}
