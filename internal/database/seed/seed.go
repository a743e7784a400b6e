// Package seed loads the default roster into an empty assignments table.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"technician-board/internal/database/models"
	apperrors "technician-board/internal/errors"
	"technician-board/internal/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed roster.yaml
var defaultRoster []byte

// File mirrors the roster YAML layout.
type File struct {
	Departments []DepartmentData `yaml:"departments"`
}

type DepartmentData struct {
	Name    string        `yaml:"name"`
	Foremen []ForemanData `yaml:"foremen"`
}

type ForemanData struct {
	Name        string           `yaml:"name"`
	ID          string           `yaml:"id"`
	Technicians []TechnicianData `yaml:"technicians"`
}

type TechnicianData struct {
	Name  string `yaml:"name"`
	ID    string `yaml:"id"`
	Notes string `yaml:"notes,omitempty"`
}

// Default returns the built-in shop roster.
func Default() (*File, error) {
	return Parse(defaultRoster)
}

// ParseFile reads and decodes a roster YAML file.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return Parse(data)
}

// Parse decodes a roster YAML document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if len(f.Departments) == 0 {
		return nil, apperrors.ErrEmptyRoster
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	for i, d := range f.Departments {
		if strings.TrimSpace(d.Name) == "" {
			return apperrors.NewValidationError(fmt.Sprintf("departments[%d].name", i), "department name is required")
		}
		for j, fm := range d.Foremen {
			if strings.TrimSpace(fm.Name) == "" {
				return apperrors.NewValidationError(fmt.Sprintf("%s.foremen[%d].name", d.Name, j), "foreman name is required")
			}
			for k, t := range fm.Technicians {
				field := fmt.Sprintf("%s.%s.technicians[%d]", d.Name, fm.Name, k)
				if strings.TrimSpace(t.Name) == "" {
					return apperrors.NewValidationError(field+".name", "technician name is required")
				}
				if strings.TrimSpace(t.ID) == "" {
					return apperrors.NewValidationError(field+".id", "technician id is required")
				}
			}
		}
	}
	return nil
}

// Assignments flattens the roster into rows stamped with now. Every name and
// id is trimmed the way the move endpoint trims its input. Entries with a
// blank department, foreman, technician name or technician id are left out,
// as is any repeat of a technician id already seen; both are reported in
// skipped.
func (f *File) Assignments(now time.Time) (rows []models.Assignment, skipped []string) {
	seen := make(map[string]bool)
	for _, d := range f.Departments {
		dept := strings.TrimSpace(d.Name)
		for _, fm := range d.Foremen {
			foreman := strings.TrimSpace(fm.Name)
			for _, t := range fm.Technicians {
				id := strings.TrimSpace(t.ID)
				name := strings.TrimSpace(t.Name)
				if dept == "" || foreman == "" || name == "" || id == "" {
					skipped = append(skipped, fmt.Sprintf("%s (%s): incomplete entry", id, name))
					continue
				}
				if seen[id] {
					skipped = append(skipped, fmt.Sprintf("%s (%s)", id, name))
					continue
				}
				seen[id] = true
				rows = append(rows, models.Assignment{
					DepartmentName:  dept,
					ForemanName:     foreman,
					ForemanID:       models.StringPtr(strings.TrimSpace(fm.ID)),
					TechnicianName:  name,
					TechnicianID:    id,
					TechnicianNotes: models.StringPtr(strings.TrimSpace(t.Notes)),
					UpdatedAt:       now,
				})
			}
		}
	}
	return rows, skipped
}

// IfEmpty inserts the roster when the assignments table has no rows and
// returns the number of rows written.
func IfEmpty(ctx context.Context, db *gorm.DB, f *File, now time.Time) (int, error) {
	inserted := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Assignment{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count assignments: %w", err)
		}
		if count > 0 {
			return nil
		}

		logger.WithContext(ctx).Info("Initializing database with default assignments")
		n, err := insert(ctx, tx, f, now)
		inserted = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// Replace discards every assignment and loads the roster in its place. The
// table is left untouched if the roster cannot be written.
func Replace(ctx context.Context, db *gorm.DB, f *File, now time.Time) (int, error) {
	inserted := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Assignment{}).Error; err != nil {
			return fmt.Errorf("clear assignments: %w", err)
		}
		n, err := insert(ctx, tx, f, now)
		inserted = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func insert(ctx context.Context, tx *gorm.DB, f *File, now time.Time) (int, error) {
	rows, skipped := f.Assignments(now.UTC())
	for _, s := range skipped {
		logger.WithContext(ctx).WithField("technician", s).Warn("Skipping roster entry")
	}
	if len(rows) == 0 {
		return 0, apperrors.ErrEmptyRoster
	}
	if err := tx.CreateInBatches(rows, 100).Error; err != nil {
		return 0, fmt.Errorf("insert assignments: %w", err)
	}
	return len(rows), nil
}
