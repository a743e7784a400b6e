package service

import (
	"context"

	"technician-board/internal/roster"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AssignmentServiceInterface defines the interface for assignment service
type AssignmentServiceInterface interface {
	GetAssignments(ctx context.Context) (roster.View, error)
	MoveTechnician(ctx context.Context, req *MoveTechnicianRequest) error
	GetAuditLog(ctx context.Context, limit int) ([]roster.AuditEntry, error)
}

// PinServiceInterface defines the interface for edit PIN verification
type PinServiceInterface interface {
	VerifyPin(ctx context.Context, pin, clientKey string) error
}

// AttemptLimiter bounds verification attempts per client key
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, int64, error)
}
