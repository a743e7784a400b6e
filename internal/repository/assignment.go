package repository

import (
	"context"
	"fmt"
	"time"

	"technician-board/internal/database/models"
	apperrors "technician-board/internal/errors"
	"technician-board/internal/roster"

	"gorm.io/gorm"
)

// MaxRecentChanges caps the recent-changes log
const MaxRecentChanges = 50

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// Ensure AssignmentRepository implements AssignmentRepositoryInterface
var _ AssignmentRepositoryInterface = (*AssignmentRepository)(nil)

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db, now: time.Now}
}

// WithClock overrides the time source used to stamp updated_at
func (r *AssignmentRepository) WithClock(now func() time.Time) *AssignmentRepository {
	r.now = now
	return r
}

// GetAll retrieves every assignment row ordered by department, foreman and technician name
func (r *AssignmentRepository) GetAll(ctx context.Context) ([]models.Assignment, error) {
	var rows []models.Assignment
	err := r.db.WithContext(ctx).
		Order("department_name ASC").
		Order("foreman_name ASC").
		Order("technician_name ASC").
		Order("technician_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MoveTechnician overwrites the department and foreman of the row matching
// move.TechnicianID in a single UPDATE. It returns ErrTechnicianNotFound when
// no row matches; no row is ever inserted.
func (r *AssignmentRepository) MoveTechnician(ctx context.Context, move roster.Move) error {
	result := r.db.WithContext(ctx).
		Model(&models.Assignment{}).
		Where("technician_id = ?", move.TechnicianID).
		Updates(map[string]interface{}{
			"department_name": move.NewDepartment,
			"foreman_name":    move.NewForemanName,
			"foreman_id":      models.StringPtr(move.NewForemanID),
			"updated_at":      r.now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("update assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTechnicianNotFound
	}
	return nil
}

// RecentChanges returns the most recently updated rows, newest first.
// limit is clamped to 1..MaxRecentChanges.
func (r *AssignmentRepository) RecentChanges(ctx context.Context, limit int) ([]models.Assignment, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxRecentChanges {
		limit = MaxRecentChanges
	}
	var rows []models.Assignment
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Ping checks database connectivity
func (r *AssignmentRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
