//go:build integration
// +build integration

package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"technician-board/internal/database/models"
	apperrors "technician-board/internal/errors"
	"technician-board/internal/roster"
	"technician-board/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// AssignmentPostgresTestSuite runs the AssignmentRepository against a real Postgres container
type AssignmentPostgresTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssignmentRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentPostgresTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAssignmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentPostgresTestSuite) TearDownSuite() {
	suite.baseTestSuite.TearDownSuite()
}

// SetupTest runs before each test
func (suite *AssignmentPostgresTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssignmentPostgresTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssignmentPostgresTestSuite) insert(rows ...*models.Assignment) {
	for _, r := range rows {
		suite.Require().NoError(suite.baseTestSuite.DB.Create(r).Error)
	}
}

// TestMoveTechnician tests a move followed by a full read
func (suite *AssignmentPostgresTestSuite) TestMoveTechnician() {
	f := suite.factories.Assignment
	luke := f.WithTechnician("751", "Luke Border")
	ray := f.WithForeman("Body Shop", "Devin Kahle", "151")
	suite.insert(luke, ray)

	err := suite.repo.MoveTechnician(suite.ctx, roster.Move{
		TechnicianID: "751", NewDepartment: "Body Shop", NewForemanName: "Devin Kahle", NewForemanID: "151",
	})
	suite.NoError(err)

	rows, err := suite.repo.GetAll(suite.ctx)
	suite.Require().NoError(err)
	records := make([]roster.Record, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToRecord())
	}
	view := roster.Aggregate(records)
	suite.NotContains(view, "1st Shift")
	devin, ok := view["Body Shop"].Foreman("Devin Kahle")
	suite.Require().True(ok)
	suite.Len(devin.Technicians, 2)
}

// TestMoveTechnician_NotFound tests that an unknown id changes nothing
func (suite *AssignmentPostgresTestSuite) TestMoveTechnician_NotFound() {
	suite.insert(suite.factories.Assignment.Create())

	err := suite.repo.MoveTechnician(suite.ctx, roster.Move{
		TechnicianID: "missing", NewDepartment: "Recon", NewForemanName: "Chris Schreiner",
	})

	suite.ErrorIs(err, apperrors.ErrTechnicianNotFound)
	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Assignment{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestMoveTechnician_ConcurrentSameTechnician tests that racing moves leave exactly one row
func (suite *AssignmentPostgresTestSuite) TestMoveTechnician_ConcurrentSameTechnician() {
	suite.insert(suite.factories.Assignment.WithTechnician("140", "Benjamin Cooke"))
	targets := []roster.Move{
		{TechnicianID: "140", NewDepartment: "Recon", NewForemanName: "Chris Schreiner", NewForemanID: "756"},
		{TechnicianID: "140", NewDepartment: "PacLease", NewForemanName: "William Callison", NewForemanID: "709"},
		{TechnicianID: "140", NewDepartment: "Body Shop", NewForemanName: "Devin Kahle", NewForemanID: "151"},
	}

	var wg sync.WaitGroup
	for _, m := range targets {
		wg.Add(1)
		go func(m roster.Move) {
			defer wg.Done()
			suite.NoError(suite.repo.MoveTechnician(suite.ctx, m))
		}(m)
	}
	wg.Wait()

	var rows []models.Assignment
	suite.Require().NoError(suite.baseTestSuite.DB.Where("technician_id = ?", "140").Find(&rows).Error)
	suite.Require().Len(rows, 1)
	landed := false
	for _, m := range targets {
		if rows[0].DepartmentName == m.NewDepartment && rows[0].ForemanName == m.NewForemanName {
			landed = true
		}
	}
	suite.True(landed)
}

// TestRecentChanges tests newest-first ordering
func (suite *AssignmentPostgresTestSuite) TestRecentChanges() {
	f := suite.factories.Assignment
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		a := f.Create()
		a.UpdatedAt = base.Add(time.Duration(i) * time.Hour)
		suite.insert(a)
	}

	rows, err := suite.repo.RecentChanges(suite.ctx, 2)

	suite.NoError(err)
	suite.Require().Len(rows, 2)
	suite.True(rows[0].UpdatedAt.After(rows[1].UpdatedAt))
}

// TestPing tests connectivity
func (suite *AssignmentPostgresTestSuite) TestPing() {
	suite.NoError(suite.repo.Ping(suite.ctx))
}

func TestAssignmentPostgresTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentPostgresTestSuite))
}
