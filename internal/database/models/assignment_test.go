package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssignment_ToRecord(t *testing.T) {
	ts := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	a := &Assignment{
		DepartmentName:  "Body Shop",
		ForemanName:     "Devin Kahle",
		ForemanID:       StringPtr("151"),
		TechnicianName:  "Ray Archer",
		TechnicianID:    "102",
		TechnicianNotes: StringPtr("ST7"),
		UpdatedAt:       ts,
	}

	rec := a.ToRecord()
	assert.Equal(t, "Body Shop", rec.Department)
	assert.Equal(t, "151", rec.ForemanID)
	assert.Equal(t, "ST7", rec.Notes)
	assert.Equal(t, ts, rec.UpdatedAt)
}

func TestAssignment_ToRecord_NullColumns(t *testing.T) {
	a := &Assignment{DepartmentName: "2nd Shift", ForemanName: "Danny Cross", TechnicianName: "Jim Carroll", TechnicianID: "171"}

	rec := a.ToRecord()
	assert.Equal(t, "", rec.ForemanID)
	assert.Equal(t, "", rec.Notes)
}

func TestAssignment_ToAuditEntry(t *testing.T) {
	ts := time.Now().UTC()
	a := &Assignment{DepartmentName: "Recon", ForemanName: "Chris Schreiner", TechnicianName: "James Drake", TechnicianID: "752", UpdatedAt: ts}

	entry := a.ToAuditEntry()
	assert.Equal(t, "James Drake", entry.TechnicianName)
	assert.Equal(t, "752", entry.TechnicianID)
	assert.Equal(t, "Recon", entry.DepartmentName)
	assert.Equal(t, "Chris Schreiner", entry.ForemanName)
	assert.Equal(t, ts, entry.UpdatedAt)
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))
	assert.Equal(t, "x", *StringPtr("x"))
}
