package models

import (
	"time"

	"technician-board/internal/roster"
)

// Assignment is one technician's current department/foreman placement.
// Rows are created by seeding and afterwards only relocated, never deleted.
type Assignment struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	DepartmentName  string    `json:"department_name" gorm:"not null;index:idx_assignments_group,priority:1"`
	ForemanName     string    `json:"foreman_name" gorm:"not null;index:idx_assignments_group,priority:2"`
	ForemanID       *string   `json:"foreman_id"`
	TechnicianName  string    `json:"technician_name" gorm:"not null"`
	TechnicianID    string    `json:"technician_id" gorm:"not null;uniqueIndex"`
	TechnicianNotes *string   `json:"technician_notes"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"index;autoUpdateTime:false"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}

// ToRecord converts the row into the read-model record. NULL foreman ids and
// notes become empty strings.
func (a *Assignment) ToRecord() roster.Record {
	return roster.Record{
		Department:     a.DepartmentName,
		ForemanName:    a.ForemanName,
		ForemanID:      deref(a.ForemanID),
		TechnicianName: a.TechnicianName,
		TechnicianID:   a.TechnicianID,
		Notes:          deref(a.TechnicianNotes),
		UpdatedAt:      a.UpdatedAt,
	}
}

// ToAuditEntry projects the row onto the recent-changes log shape.
func (a *Assignment) ToAuditEntry() roster.AuditEntry {
	return roster.AuditEntry{
		TechnicianName: a.TechnicianName,
		TechnicianID:   a.TechnicianID,
		DepartmentName: a.DepartmentName,
		ForemanName:    a.ForemanName,
		UpdatedAt:      a.UpdatedAt,
	}
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
