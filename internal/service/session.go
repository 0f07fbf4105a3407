package service

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lr-explorer-server/internal/domain"
)

// Session owns the interaction state of one explorer: the query, the
// condition filter, the sort order, the selected record, the prevalence
// slider, and the test-result polarity. Every mutation synchronously
// recomputes the derived values, so no stale derived state is ever
// observable.
//
// Within a session all mutation is serialized behind a mutex; the core model
// is a single logical actor per session.
type Session struct {
	ID string

	logger *logrus.Logger
	views  *ViewEngine
	cfg    domain.ExplorerConfig

	mu          sync.Mutex
	state       domain.QueryState
	records     []domain.TestRecord
	derived     domain.DerivedState
	createdAt   time.Time
	updatedAt   time.Time
	subscribers map[chan domain.SessionView]struct{}
}

// NewSession creates a session with default interaction state and performs
// the initial recomputation (which auto-selects the first visible record).
func NewSession(views *ViewEngine, cfg domain.ExplorerConfig, logger *logrus.Logger) *Session {
	now := time.Now()
	s := &Session{
		ID:     uuid.New().String(),
		logger: logger,
		views:  views,
		cfg:    cfg,
		state: domain.QueryState{
			Query:         "",
			Condition:     domain.AllConditions,
			SortKey:       domain.SortByTest,
			SortDir:       domain.ASCENDING,
			PrevalencePct: cfg.DefaultPrevalencePct,
			Polarity:      domain.POSITIVE,
		},
		createdAt:   now,
		updatedAt:   now,
		subscribers: make(map[chan domain.SessionView]struct{}),
	}
	s.mu.Lock()
	s.recompute()
	s.mu.Unlock()
	return s
}

// SetQuery updates the free-text query.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Query = query
	s.recompute()
}

// SetConditionFilter updates the condition filter. Any value is accepted;
// a condition not present in the catalog simply yields an empty view.
func (s *Session) SetConditionFilter(condition string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if condition == "" {
		condition = domain.AllConditions
	}
	s.state.Condition = condition
	s.recompute()
}

// RequestSort orders the view by the given key. Requesting the current key
// again flips the direction; a new key resets to ascending.
func (s *Session) RequestSort(key domain.SortKey) error {
	if !key.IsValid() {
		return domain.ErrInvalidSortKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.SortKey == key {
		s.state.SortDir = s.state.SortDir.Toggle()
	} else {
		s.state.SortKey = key
		s.state.SortDir = domain.ASCENDING
	}
	s.recompute()
	return nil
}

// Select makes the record with the given natural key the active record.
// Selecting any visible record is always legal and overwrites the current
// selection.
func (s *Session) Select(test, condition string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].Test == test && s.records[i].Condition == condition {
			rec := s.records[i]
			s.state.Selected = &rec
			s.recompute()
			return nil
		}
	}
	return domain.ErrUnknownRecord
}

// SetPrevalence updates the prevalence slider. The value is clamped to the
// configured percentage bounds rather than rejected.
func (s *Session) SetPrevalence(pct float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if math.IsNaN(pct) {
		pct = s.cfg.DefaultPrevalencePct
	}
	if pct < s.cfg.MinPrevalencePct {
		pct = s.cfg.MinPrevalencePct
	}
	if pct > s.cfg.MaxPrevalencePct {
		pct = s.cfg.MaxPrevalencePct
	}
	s.state.PrevalencePct = pct
	s.recompute()
}

// SetPolarity updates the test-result polarity.
func (s *Session) SetPolarity(p domain.Polarity) error {
	if !p.IsValid() {
		return domain.ErrInvalidPolarity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Polarity = p
	s.recompute()
	return nil
}

// View returns a full snapshot of the session.
func (s *Session) View() domain.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a channel receiving a snapshot after every mutation.
// Slow subscribers drop updates rather than block recomputation.
func (s *Session) Subscribe() chan domain.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan domain.SessionView, 8)
	s.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a subscriber channel.
func (s *Session) Unsubscribe(ch chan domain.SessionView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscribers[ch]; ok {
		delete(s.subscribers, ch)
		close(ch)
	}
}

// LastActivity returns the time of the most recent mutation.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// recompute refreshes the visible view and every derived value from the
// current interaction state. Callers must hold s.mu.
//
// Auto-select fires only when no selection exists at all. A previously
// selected record that the filter removed from view is kept as the active
// record; re-filtering must not silently change what the probability panel
// is showing.
func (s *Session) recompute() {
	s.records = s.views.View(s.state.Query, s.state.Condition, s.state.SortKey, s.state.SortDir)

	if s.state.Selected == nil && len(s.records) > 0 {
		rec := s.records[0]
		s.state.Selected = &rec
		s.logger.WithFields(logrus.Fields{
			"session_id": s.ID,
			"test":       rec.Test,
			"condition":  rec.Condition,
		}).Debug("Auto-selected first visible record")
	}

	total := s.cfg.CohortSize
	preTest := s.state.PrevalencePct / 100

	derived := domain.DerivedState{
		ActiveRecord: s.state.Selected,
		PreTestProb:  ClampProbability(preTest),
	}

	if rec := s.state.Selected; rec != nil {
		derived.ActiveLR = rec.LR(s.state.Polarity)
		derived.PostTestProb = PostTestProbability(derived.PreTestProb, derived.ActiveLR)
		derived.DiseaseGrid = DiseaseCohortGrid(rec, total)
		derived.NonDiseaseGrid = NonDiseaseCohortGrid(rec, total)
		derived.PostTestGrid = PostTestGrid(derived.PostTestProb, total)
	} else {
		derived.DiseaseGrid = DiseaseCohortGrid(nil, total)
		derived.NonDiseaseGrid = NonDiseaseCohortGrid(nil, total)
		derived.PostTestGrid = DeriveCounts(0, total)
	}

	s.derived = derived
	s.updatedAt = time.Now()
	s.notifyLocked()
}

func (s *Session) snapshotLocked() domain.SessionView {
	records := make([]domain.TestRecord, len(s.records))
	copy(records, s.records)
	return domain.SessionView{
		ID:         s.ID,
		State:      s.state,
		Records:    records,
		Conditions: s.views.Conditions(),
		Derived:    s.derived,
		CreatedAt:  s.createdAt,
		UpdatedAt:  s.updatedAt,
	}
}

func (s *Session) notifyLocked() {
	if len(s.subscribers) == 0 {
		return
	}
	snapshot := s.snapshotLocked()
	for ch := range s.subscribers {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// SessionManager tracks live explorer sessions by ID and expires idle ones.
type SessionManager struct {
	logger *logrus.Logger
	views  *ViewEngine
	cfg    domain.ExplorerConfig

	mu       sync.RWMutex
	sessions map[string]*Session
	stop     chan struct{}
	stopOnce sync.Once
}

// NewSessionManager creates a session manager and starts the idle-session
// cleanup routine.
func NewSessionManager(views *ViewEngine, cfg domain.ExplorerConfig, logger *logrus.Logger) *SessionManager {
	sm := &SessionManager{
		logger:   logger,
		views:    views,
		cfg:      cfg,
		sessions: make(map[string]*Session),
		stop:     make(chan struct{}),
	}
	go sm.cleanupLoop()
	return sm
}

// Create creates and registers a new session.
func (sm *SessionManager) Create() *Session {
	session := NewSession(sm.views, sm.cfg, sm.logger)

	sm.mu.Lock()
	sm.sessions[session.ID] = session
	count := len(sm.sessions)
	sm.mu.Unlock()

	sm.logger.WithFields(logrus.Fields{
		"session_id":    session.ID,
		"session_count": count,
	}).Info("Created explorer session")

	return session
}

// Get retrieves a session by ID.
func (sm *SessionManager) Get(id string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	session, ok := sm.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// Delete removes a session by ID.
func (sm *SessionManager) Delete(id string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if _, ok := sm.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(sm.sessions, id)
	sm.logger.WithField("session_id", id).Info("Deleted explorer session")
	return nil
}

// Count returns the number of live sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Close stops the cleanup routine.
func (sm *SessionManager) Close() {
	sm.stopOnce.Do(func() { close(sm.stop) })
}

func (sm *SessionManager) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-sm.stop:
			return
		case <-ticker.C:
			sm.expireIdle()
		}
	}
}

func (sm *SessionManager) expireIdle() {
	if sm.cfg.SessionTTL <= 0 {
		return
	}
	cutoff := time.Now().Add(-sm.cfg.SessionTTL)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	for id, session := range sm.sessions {
		if session.LastActivity().Before(cutoff) {
			delete(sm.sessions, id)
			sm.logger.WithField("session_id", id).Info("Expired idle explorer session")
		}
	}
}
