package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"technician-board/internal/database/models"
)

var technicianSeq atomic.Int64

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct {
	// Now stamps UpdatedAt; defaults to time.Now
	Now func() time.Time
}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{Now: time.Now}
}

// Create creates a test Assignment with a unique technician id
func (f *AssignmentFactory) Create() *models.Assignment {
	n := technicianSeq.Add(1)
	return &models.Assignment{
		DepartmentName: "1st Shift",
		ForemanName:    "Shane Doty",
		ForemanID:      models.StringPtr("186"),
		TechnicianName: fmt.Sprintf("Technician %d", n),
		TechnicianID:   fmt.Sprintf("t-%d", n),
		UpdatedAt:      f.Now().UTC(),
	}
}

// WithTechnician sets the technician id and name
func (f *AssignmentFactory) WithTechnician(id, name string) *models.Assignment {
	a := f.Create()
	a.TechnicianID = id
	a.TechnicianName = name
	return a
}

// WithForeman places a new assignment under the given department and foreman
func (f *AssignmentFactory) WithForeman(department, foremanName, foremanID string) *models.Assignment {
	a := f.Create()
	a.DepartmentName = department
	a.ForemanName = foremanName
	a.ForemanID = models.StringPtr(foremanID)
	return a
}

// Crew creates count technicians under one foreman
func (f *AssignmentFactory) Crew(department, foremanName, foremanID string, count int) []*models.Assignment {
	crew := make([]*models.Assignment, 0, count)
	for i := 0; i < count; i++ {
		crew = append(crew, f.WithForeman(department, foremanName, foremanID))
	}
	return crew
}

// FactorySet provides access to all factories
type FactorySet struct {
	Assignment *AssignmentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Assignment: NewAssignmentFactory(),
	}
}
