package board

import (
	"context"
	"sync"
	"time"

	apperrors "technician-board/internal/errors"
)

// LockState is the edit gate's state.
type LockState int

const (
	Locked LockState = iota
	Unlocked
)

func (s LockState) String() string {
	if s == Unlocked {
		return "UNLOCKED"
	}
	return "LOCKED"
}

// Verifier checks a PIN against the server.
type Verifier interface {
	VerifyPin(ctx context.Context, pin string) (bool, error)
}

// LockController gates moves behind the shared edit PIN. Every session starts Locked.
type LockController struct {
	verifier      Verifier
	errorDuration time.Duration
	now           func() time.Time

	mu         sync.Mutex
	state      LockState
	errorUntil time.Time
}

// NewLockController creates a locked controller. A wrong PIN raises the PIN
// error flag for errorDuration.
func NewLockController(verifier Verifier, errorDuration time.Duration) *LockController {
	return &LockController{
		verifier:      verifier,
		errorDuration: errorDuration,
		now:           time.Now,
		state:         Locked,
	}
}

// WithClock overrides the time source used for the PIN error flag
func (l *LockController) WithClock(now func() time.Time) *LockController {
	l.now = now
	return l
}

// State returns the current lock state
func (l *LockController) State() LockState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// CanMove reports whether moves may be initiated
func (l *LockController) CanMove() bool {
	return l.State() == Unlocked
}

// Unlock verifies pin and moves to Unlocked on a match. A mismatch returns
// ErrInvalidPin and raises the PIN error flag. Transport errors leave the
// state and flag untouched.
func (l *LockController) Unlock(ctx context.Context, pin string) error {
	if l.CanMove() {
		return nil
	}

	match, err := l.verifier.VerifyPin(ctx, pin)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !match {
		l.errorUntil = l.now().Add(l.errorDuration)
		return apperrors.ErrInvalidPin
	}
	l.state = Unlocked
	l.errorUntil = time.Time{}
	return nil
}

// Lock returns to Locked
func (l *LockController) Lock() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = Locked
}

// PinError reports whether the transient wrong-PIN flag is raised
func (l *LockController) PinError() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now().Before(l.errorUntil)
}
