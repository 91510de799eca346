// Package memory keeps checkout sessions in process memory. It is the
// default session store for a single service instance and mirrors the
// behaviour of the postgres adapter: staged writes per unit of work, an
// optimistic version check on update and idle-session purging.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrSessionAlreadyExists is returned when adding an id that is stored.
var ErrSessionAlreadyExists = errors.New("session already exists")

type mutationKind int

const (
	mutationAdd mutationKind = iota
	mutationUpdate
	mutationDelete
	mutationDeleteIdle
)

type mutation struct {
	kind            mutationKind
	id              uuid.UUID
	snapshot        checkout.Snapshot
	expectedVersion int
	cutoff          time.Time
}

// SessionStore holds the committed snapshots. A unit of work that stages a
// delete claims the session until it commits or rolls back, the way a row
// lock holds a deleted row in postgres.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]checkout.Snapshot
	claims   map[uuid.UUID]*UnitOfWork
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]checkout.Snapshot),
		claims:   make(map[uuid.UUID]*UnitOfWork),
	}
}

// GetSnapshot implements ports.SessionReader.
func (s *SessionStore) GetSnapshot(_ context.Context, id kernel.UUID) (checkout.Snapshot, error) {
	if err := id.Validate(); err != nil {
		return checkout.Snapshot{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.sessions[id.Bytes()]
	if !ok {
		return checkout.Snapshot{}, errs.NewObjectNotFoundError("checkoutID", id.String())
	}
	return snapshot, nil
}

// Len reports how many sessions are stored.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) idleSince(owner *UnitOfWork, cutoff time.Time) []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uuid.UUID, 0)
	for id, snapshot := range s.sessions {
		if snapshot.UpdatedAt.Before(cutoff) && !s.claimedByOther(owner, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// claim reserves id for owner if the committed version still matches.
func (s *SessionStore) claim(owner *UnitOfWork, id uuid.UUID, expectedVersion int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.claimedByOther(owner, id) {
		return errs.NewVersionIsInvalidError("checkoutID")
	}
	current, ok := s.sessions[id]
	if !ok {
		return errs.NewObjectNotFoundError("checkoutID", id.String())
	}
	if current.Version != expectedVersion {
		return errs.NewVersionIsInvalidError("checkoutID")
	}
	s.claims[id] = owner
	return nil
}

func (s *SessionStore) release(owner *UnitOfWork) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked(owner)
}

func (s *SessionStore) releaseLocked(owner *UnitOfWork) {
	for id, holder := range s.claims {
		if holder == owner {
			delete(s.claims, id)
		}
	}
}

func (s *SessionStore) claimedByOther(owner *UnitOfWork, id uuid.UUID) bool {
	holder, ok := s.claims[id]
	return ok && holder != owner
}

// commit applies the mutations of owner and drops its claims either way.
func (s *SessionStore) commit(owner *UnitOfWork, mutations []mutation) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.releaseLocked(owner)

	return s.applyLocked(owner, mutations)
}

func (s *SessionStore) apply(owner *UnitOfWork, mutations []mutation) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyLocked(owner, mutations)
}

// applyLocked checks every mutation against the committed state and then
// applies all of them, or none. It reports how many idle sessions it purged.
func (s *SessionStore) applyLocked(owner *UnitOfWork, mutations []mutation) (int64, error) {

	view := make(map[uuid.UUID]checkout.Snapshot, len(mutations))
	present := make(map[uuid.UUID]bool, len(mutations))
	lookup := func(id uuid.UUID) (checkout.Snapshot, bool) {
		if ok, seen := present[id]; seen {
			return view[id], ok
		}
		snapshot, ok := s.sessions[id]
		return snapshot, ok
	}

	var purged int64
	for _, m := range mutations {
		current, exists := lookup(m.id)
		claimed := s.claimedByOther(owner, m.id)
		switch m.kind {
		case mutationAdd:
			if exists {
				return 0, errs.NewValueIsInvalidErrorWithCause("checkoutID", ErrSessionAlreadyExists)
			}
			view[m.id], present[m.id] = m.snapshot, true
		case mutationUpdate:
			if !exists {
				return 0, errs.NewObjectNotFoundError("checkoutID", m.id.String())
			}
			if claimed || current.Version != m.expectedVersion {
				return 0, errs.NewVersionIsInvalidError("checkoutID")
			}
			view[m.id], present[m.id] = m.snapshot, true
		case mutationDelete:
			if !exists {
				return 0, errs.NewObjectNotFoundError("checkoutID", m.id.String())
			}
			if claimed || current.Version != m.expectedVersion {
				return 0, errs.NewVersionIsInvalidError("checkoutID")
			}
			present[m.id] = false
		case mutationDeleteIdle:
			if !exists || claimed || !current.UpdatedAt.Before(m.cutoff) {
				continue
			}
			present[m.id] = false
			purged++
		}
	}

	for id, ok := range present {
		if ok {
			s.sessions[id] = view[id]
		} else {
			delete(s.sessions, id)
		}
	}
	return purged, nil
}
