package repository

import (
	"context"

	"technician-board/internal/database/models"
	"technician-board/internal/roster"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// AssignmentRepositoryInterface defines the store contract for technician assignments
type AssignmentRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Assignment, error)
	MoveTechnician(ctx context.Context, move roster.Move) error
	RecentChanges(ctx context.Context, limit int) ([]models.Assignment, error)
	Ping(ctx context.Context) error
}
