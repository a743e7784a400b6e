package service

import (
	"context"
	"crypto/subtle"

	apperrors "technician-board/internal/errors"
	"technician-board/internal/logger"
	"technician-board/internal/metrics"
)

// PinService verifies the shared edit PIN
type PinService struct {
	pin     string
	limiter AttemptLimiter
	metrics *metrics.Metrics
}

// Ensure PinService implements PinServiceInterface
var _ PinServiceInterface = (*PinService)(nil)

// NewPinService creates a new PIN service. limiter may be nil to disable throttling.
func NewPinService(pin string, limiter AttemptLimiter, m *metrics.Metrics) *PinService {
	return &PinService{
		pin:     pin,
		limiter: limiter,
		metrics: m,
	}
}

// PinRequest represents the request to verify the edit PIN
type PinRequest struct {
	Pin string `json:"pin"`
}

// VerifyPin reports nil when pin matches, ErrInvalidPin otherwise.
// ErrRateLimited is returned once clientKey exhausts its attempt budget.
func (s *PinService) VerifyPin(ctx context.Context, pin, clientKey string) error {
	log := logger.WithContext(ctx).WithField("client", clientKey)

	if s.limiter != nil {
		allowed, attempts, err := s.limiter.Allow(ctx, clientKey)
		if err != nil {
			// fail open
			log.WithError(err).Warn("PIN rate limiter unavailable, skipping")
		} else if !allowed {
			s.metrics.ObservePinCheck(metrics.ResultLimited)
			log.WithField("attempts", attempts).Warn("PIN attempts rate limited")
			return apperrors.ErrRateLimited
		}
	}

	if subtle.ConstantTimeCompare([]byte(pin), []byte(s.pin)) != 1 {
		s.metrics.ObservePinCheck(metrics.ResultMismatch)
		log.Info("PIN mismatch")
		return apperrors.ErrInvalidPin
	}

	s.metrics.ObservePinCheck(metrics.ResultMatch)
	return nil
}
