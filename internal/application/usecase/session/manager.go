// Package session contains the session lifecycle use cases and the manager
// that owns the in-memory ledger state of each authenticated user.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lifeplan/backend/internal/application/adapter"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
)

const defaultSaveTimeout = 10 * time.Second

// SyncState describes the outcome of the most recent background save.
type SyncState string

const (
	// SyncStateClean means no mutation happened since hydration.
	SyncStateClean SyncState = "clean"
	// SyncStatePending means a save is in flight.
	SyncStatePending SyncState = "pending"
	// SyncStateSaved means the last save completed successfully.
	SyncStateSaved SyncState = "saved"
	// SyncStateFailed means the last save failed; data entered since then is
	// at risk until a later save succeeds.
	SyncStateFailed SyncState = "failed"
)

// SyncStatus is the observable outcome of auto-saving a session's state.
type SyncStatus struct {
	State       SyncState
	LastError   string
	LastSavedAt time.Time
}

// session holds the hydrated state of one authenticated user. The ledger
// state is mutated only under mu, and background saves serialize a clone.
type session struct {
	mu       sync.Mutex
	identity entity.Identity
	state    *entity.LedgerState
	sync     SyncStatus
}

// Manager owns all hydrated sessions, keyed by user UID. It is the only
// component that replaces or mutates in-memory ledger state: hydration
// replaces it wholesale, Mutate appends to it, and every mutation triggers a
// fire-and-forget save whose outcome stays observable through SyncStatus.
type Manager struct {
	mu          sync.RWMutex
	sessions    map[string]*session
	stateRepo   adapter.StateRepository
	saveTimeout time.Duration
}

// NewManager creates a session manager persisting through the given state
// repository.
func NewManager(stateRepo adapter.StateRepository) *Manager {
	return &Manager{
		sessions:    make(map[string]*session),
		stateRepo:   stateRepo,
		saveTimeout: defaultSaveTimeout,
	}
}

// Begin hydrates a session for identity by loading its stored state. The
// repository returns seed state when nothing is stored yet; a storage error
// propagates and no session is created.
func (m *Manager) Begin(ctx context.Context, identity entity.Identity) (*entity.LedgerState, error) {
	state, err := m.stateRepo.Load(ctx, identity)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[identity.UID] = &session{
		identity: identity,
		state:    state,
		sync:     SyncStatus{State: SyncStateClean},
	}
	m.mu.Unlock()

	return state.Clone(), nil
}

// End drops the in-memory session. Persisted state is untouched.
func (m *Manager) End(uid string) {
	m.mu.Lock()
	delete(m.sessions, uid)
	m.mu.Unlock()
}

// Snapshot returns a copy of the user's current ledger state.
func (m *Manager) Snapshot(uid string) (*entity.LedgerState, error) {
	s, err := m.session(uid)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone(), nil
}

// Mutate applies fn to the user's ledger state and triggers a background
// save of the mutated aggregate. The caller does not wait for the save;
// its outcome is recorded on the session and visible via SyncStatus.
func (m *Manager) Mutate(uid string, fn func(*entity.LedgerState)) (*entity.LedgerState, error) {
	s, err := m.session(uid)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	fn(s.state)
	snapshot := s.state.Clone()
	s.sync.State = SyncStatePending
	s.mu.Unlock()

	go m.save(s, snapshot)

	return snapshot.Clone(), nil
}

// SyncStatus reports the outcome of the most recent background save for the
// user's session.
func (m *Manager) SyncStatus(uid string) (SyncStatus, error) {
	s, err := m.session(uid)
	if err != nil {
		return SyncStatus{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sync, nil
}

func (m *Manager) session(uid string) (*session, error) {
	m.mu.RLock()
	s, ok := m.sessions[uid]
	m.mu.RUnlock()
	if !ok {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeSessionNotFound,
			"no active session for user",
			domainerror.ErrSessionNotFound,
		)
	}
	return s, nil
}

// save persists a snapshot and records the outcome. Saves for the same user
// are not serialized; two rapid mutations may complete out of order at the
// backend. The snapshot always carries every mutation made up to the moment
// it was taken, so a later successful save repairs an earlier failed one.
func (m *Manager) save(s *session, snapshot *entity.LedgerState) {
	ctx, cancel := context.WithTimeout(context.Background(), m.saveTimeout)
	defer cancel()

	err := m.stateRepo.Save(ctx, s.identity, snapshot)

	s.mu.Lock()
	if err != nil {
		s.sync.State = SyncStateFailed
		s.sync.LastError = err.Error()
	} else {
		s.sync.State = SyncStateSaved
		s.sync.LastError = ""
		s.sync.LastSavedAt = time.Now().UTC()
	}
	s.mu.Unlock()

	if err != nil {
		slog.Warn("Background state save failed",
			"uid", s.identity.UID,
			"error", err,
		)
	}
}
