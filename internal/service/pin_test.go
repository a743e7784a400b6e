package service_test

import (
	"context"
	"errors"
	"testing"

	apperrors "technician-board/internal/errors"
	"technician-board/internal/metrics"
	"technician-board/internal/mocks"
	"technician-board/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPinService_VerifyPin(t *testing.T) {
	svc := service.NewPinService("1971", nil, nil)

	assert.NoError(t, svc.VerifyPin(context.Background(), "1971", "10.0.0.1"))

	err := svc.VerifyPin(context.Background(), "1234", "10.0.0.1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPin)
	assert.True(t, apperrors.IsAuthentication(err))

	assert.ErrorIs(t, svc.VerifyPin(context.Background(), "", "10.0.0.1"), apperrors.ErrInvalidPin)
	assert.ErrorIs(t, svc.VerifyPin(context.Background(), "19710", "10.0.0.1"), apperrors.ErrInvalidPin)
}

func TestPinService_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockAttemptLimiter(ctrl)
	reg := prometheus.NewRegistry()
	svc := service.NewPinService("1971", limiter, metrics.New(reg))
	ctx := context.Background()

	limiter.EXPECT().Allow(ctx, "10.0.0.1").Return(false, int64(6), nil)

	err := svc.VerifyPin(ctx, "1971", "10.0.0.1")

	assert.ErrorIs(t, err, apperrors.ErrRateLimited)
	mfs, err := reg.Gather()
	require.NoError(t, err)
	var limited float64
	for _, mf := range mfs {
		if mf.GetName() != "technician_board_pin_checks_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "result" && l.GetValue() == metrics.ResultLimited {
					limited += m.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, 1.0, limited)
}

func TestPinService_LimiterAllows(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockAttemptLimiter(ctrl)
	svc := service.NewPinService("1971", limiter, nil)
	ctx := context.Background()

	gomock.InOrder(
		limiter.EXPECT().Allow(ctx, "10.0.0.1").Return(true, int64(1), nil),
		limiter.EXPECT().Allow(ctx, "10.0.0.1").Return(true, int64(2), nil),
	)

	assert.ErrorIs(t, svc.VerifyPin(ctx, "0000", "10.0.0.1"), apperrors.ErrInvalidPin)
	assert.NoError(t, svc.VerifyPin(ctx, "1971", "10.0.0.1"))
}

func TestPinService_LimiterErrorFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockAttemptLimiter(ctrl)
	svc := service.NewPinService("1971", limiter, nil)
	ctx := context.Background()

	limiter.EXPECT().Allow(ctx, "10.0.0.1").Return(false, int64(0), errors.New("redis: connection refused")).Times(2)

	assert.NoError(t, svc.VerifyPin(ctx, "1971", "10.0.0.1"))
	assert.ErrorIs(t, svc.VerifyPin(ctx, "1111", "10.0.0.1"), apperrors.ErrInvalidPin)
}
