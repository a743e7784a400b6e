package board

import (
	"context"
	"errors"
	"sync"
	"time"

	apperrors "technician-board/internal/errors"
	"technician-board/internal/logger"
	"technician-board/internal/roster"
)

// DefaultRefreshInterval is the polling period when none is configured
const DefaultRefreshInterval = 30 * time.Second

// Remote is the server side of the board.
type Remote interface {
	FetchAssignments(ctx context.Context) (roster.View, error)
	MoveTechnician(ctx context.Context, move roster.Move) error
}

// Option customizes a Syncer
type Option func(*Syncer)

// WithClock overrides the time source used to stamp refreshes
func WithClock(now func() time.Time) Option {
	return func(s *Syncer) {
		if now != nil {
			s.now = now
		}
	}
}

// WithOnChange registers a callback invoked with every new state
func WithOnChange(fn func(State)) Option {
	return func(s *Syncer) {
		s.onChange = fn
	}
}

// Syncer owns the session state and reconciles it with the server by polling.
type Syncer struct {
	remote   Remote
	lock     *LockController
	interval time.Duration
	now      func() time.Time
	onChange func(State)
	refresh  chan struct{}

	mu    sync.Mutex
	state State
}

// NewSyncer creates a Syncer. Moves are refused unless lock is unlocked.
func NewSyncer(remote Remote, lock *LockController, interval time.Duration, opts ...Option) *Syncer {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	s := &Syncer{
		remote:   remote,
		lock:     lock,
		interval: interval,
		now:      time.Now,
		refresh:  make(chan struct{}, 1),
		state:    State{View: roster.View{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state. The view is safe to mutate.
func (s *Syncer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.View = st.View.Clone()
	return st
}

// Lock returns the edit gate the Syncer consults
func (s *Syncer) Lock() *LockController {
	return s.lock
}

// Run refreshes immediately, then on every tick and every RequestRefresh,
// until ctx is done. Individual refresh failures never stop the loop.
func (s *Syncer) Run(ctx context.Context) error {
	_ = s.Refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_ = s.Refresh(ctx)
		case <-s.refresh:
			_ = s.Refresh(ctx)
		}
	}
}

// RequestRefresh asks Run for a refresh without blocking. Requests made while
// one is already pending are coalesced.
func (s *Syncer) RequestRefresh() {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// Refresh fetches the full view and replaces the snapshot. A failure marks
// the board offline and keeps the previous snapshot. Results that arrive
// after ctx is done are dropped.
func (s *Syncer) Refresh(ctx context.Context) error {
	s.dispatch(RefreshStarted{})

	view, err := s.remote.FetchAssignments(ctx)
	if ctx.Err() != nil {
		s.dispatch(RefreshAbandoned{})
		return ctx.Err()
	}
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Board refresh failed")
		s.dispatch(RefreshFailed{Err: err})
		return err
	}

	s.dispatch(RefreshSucceeded{View: view, At: s.now()})
	return nil
}

// Move asks the server to move a technician and patches the snapshot once
// the server acknowledges. It returns ErrBoardLocked while the lock is
// engaged and does nothing when the technician is already at the target.
// Any failure triggers a full refresh. Fields are trimmed the way the
// server trims them so the local patch matches the stored row.
func (s *Syncer) Move(ctx context.Context, move roster.Move) error {
	move = move.Normalize()
	if s.lock != nil && !s.lock.CanMove() {
		return apperrors.ErrBoardLocked
	}
	if s.alreadyAt(move) {
		return nil
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"technician_id": move.TechnicianID,
		"department":    move.NewDepartment,
		"foreman_name":  move.NewForemanName,
	})

	s.dispatch(MoveStarted{})
	if err := s.remote.MoveTechnician(ctx, move); err != nil {
		log.WithError(err).Warn("Move failed, resynchronizing")
		s.dispatch(MoveFailed{Err: err})
		if refreshErr := s.Refresh(ctx); refreshErr != nil && !errors.Is(refreshErr, context.Canceled) {
			log.WithError(refreshErr).Warn("Resynchronization after failed move also failed")
		}
		return err
	}

	s.dispatch(MoveSucceeded{Move: move})
	log.Info("Technician moved")
	return nil
}

func (s *Syncer) alreadyAt(move roster.Move) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	loc, _, ok := s.state.View.Locate(move.TechnicianID)
	return ok &&
		loc.Department == move.NewDepartment &&
		loc.ForemanName == move.NewForemanName &&
		loc.ForemanID == move.NewForemanID
}

func (s *Syncer) dispatch(e Event) {
	s.mu.Lock()
	s.state = Reduce(s.state, e)
	snapshot := s.state
	s.mu.Unlock()

	if s.onChange != nil {
		snapshot.View = snapshot.View.Clone()
		s.onChange(snapshot)
	}
}
