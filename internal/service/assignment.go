package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "technician-board/internal/errors"
	"technician-board/internal/logger"
	"technician-board/internal/metrics"
	"technician-board/internal/repository"
	"technician-board/internal/roster"

	"github.com/go-playground/validator/v10"
)

// AssignmentService handles business logic for technician assignments
type AssignmentService struct {
	repo      repository.AssignmentRepositoryInterface
	validator *validator.Validate
	metrics   *metrics.Metrics
}

// Ensure AssignmentService implements AssignmentServiceInterface
var _ AssignmentServiceInterface = (*AssignmentService)(nil)

// NewAssignmentService creates a new assignment service
func NewAssignmentService(repo repository.AssignmentRepositoryInterface, validator *validator.Validate, m *metrics.Metrics) *AssignmentService {
	return &AssignmentService{
		repo:      repo,
		validator: validator,
		metrics:   m,
	}
}

// MoveTechnicianRequest represents the request to reassign a technician
type MoveTechnicianRequest struct {
	TechnicianID   string `json:"technicianId" validate:"required"`
	NewDepartment  string `json:"newDepartment" validate:"required"`
	NewForemanName string `json:"newForemanName" validate:"required"`
	NewForemanID   string `json:"newForemanId"`
}

// SuccessResponse is the acknowledgement body for mutating endpoints
type SuccessResponse struct {
	Success bool `json:"success"`
}

// GetAssignments loads every record and groups it into the department/foreman view
func (s *AssignmentService) GetAssignments(ctx context.Context) (roster.View, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.metrics.ObserveFetch(metrics.ResultError)
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	records := make([]roster.Record, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToRecord())
	}
	s.metrics.ObserveFetch(metrics.ResultSuccess)
	return roster.Aggregate(records), nil
}

// MoveTechnician validates the request and moves the technician to the target department and foreman
func (s *AssignmentService) MoveTechnician(ctx context.Context, req *MoveTechnicianRequest) error {
	if req == nil {
		s.metrics.ObserveMove(metrics.ResultInvalid)
		return apperrors.NewValidationError("", "request body is required")
	}

	move := roster.Move(*req).Normalize()
	normalized := MoveTechnicianRequest(move)
	if err := s.validator.Struct(&normalized); err != nil {
		s.metrics.ObserveMove(metrics.ResultInvalid)
		return toValidationError(err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"technician_id": move.TechnicianID,
		"department":    move.NewDepartment,
		"foreman_name":  move.NewForemanName,
		"foreman_id":    move.NewForemanID,
	})

	if err := s.repo.MoveTechnician(ctx, move); err != nil {
		if apperrors.IsNotFound(err) {
			s.metrics.ObserveMove(metrics.ResultNotFound)
			log.Warn("Move rejected: technician not found")
			return err
		}
		s.metrics.ObserveMove(metrics.ResultError)
		log.WithError(err).Error("Failed to move technician")
		return fmt.Errorf("failed to move technician: %w", err)
	}

	s.metrics.ObserveMove(metrics.ResultSuccess)
	log.Info("Technician moved")
	return nil
}

// GetAuditLog returns the most recently updated records, newest first
func (s *AssignmentService) GetAuditLog(ctx context.Context, limit int) ([]roster.AuditEntry, error) {
	rows, err := s.repo.RecentChanges(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit log: %w", err)
	}

	entries := make([]roster.AuditEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].ToAuditEntry())
	}
	return entries, nil
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(jsonFieldName(fe.Field()), fmt.Sprintf("failed on '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

func jsonFieldName(field string) string {
	switch field {
	case "TechnicianID":
		return "technicianId"
	case "NewDepartment":
		return "newDepartment"
	case "NewForemanName":
		return "newForemanName"
	case "NewForemanID":
		return "newForemanId"
	}
	return field
}
