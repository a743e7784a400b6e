package roster

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureRecords() []Record {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	return []Record{
		{Department: "1st Shift", ForemanName: "Shane Doty", ForemanID: "186", TechnicianName: "Phil Cummins", TechnicianID: "101", UpdatedAt: now},
		{Department: "1st Shift", ForemanName: "Shane Doty", ForemanID: "186", TechnicianName: "Luke Border", TechnicianID: "751", UpdatedAt: now},
		{Department: "1st Shift", ForemanName: "Shane Doty", ForemanID: "186", TechnicianName: "Trent Weatherington", TechnicianID: "735", Notes: "ND", UpdatedAt: now},
		{Department: "1st Shift", ForemanName: "Tyler Merriman", ForemanID: "782", TechnicianName: "Benjamin Cooke", TechnicianID: "140", Notes: "ND", UpdatedAt: now},
		{Department: "2nd Shift", ForemanName: "Danny Cross", ForemanID: "", TechnicianName: "Steve Jostock", TechnicianID: "148", UpdatedAt: now},
		{Department: "2nd Shift", ForemanName: "Danny Cross", ForemanID: "", TechnicianName: "Jim Carroll", TechnicianID: "171", UpdatedAt: now},
		{Department: "Body Shop", ForemanName: "Devin Kahle", ForemanID: "151", TechnicianName: "Ray Archer", TechnicianID: "102", UpdatedAt: now},
		{Department: "Body Shop", ForemanName: "Devin Kahle", ForemanID: "151", TechnicianName: "Colin Stanley", TechnicianID: "172", UpdatedAt: now},
		{Department: "Field Service", ForemanName: "Chris Valyo", ForemanID: "9133", TechnicianName: "Austin Beye", TechnicianID: "9161", Notes: "ST1", UpdatedAt: now},
	}
}

func TestAggregate_GroupsAndOrders(t *testing.T) {
	view := Aggregate(fixtureRecords())

	assert.Equal(t, []string{"1st Shift", "2nd Shift", "Body Shop", "Field Service"}, view.DepartmentNames())

	first := view["1st Shift"]
	require.Len(t, first.Foremen, 2)
	assert.Equal(t, "Shane Doty", first.Foremen[0].Name)
	assert.Equal(t, "186", first.Foremen[0].ID)
	assert.Equal(t, "Tyler Merriman", first.Foremen[1].Name)

	names := []string{}
	for _, tech := range first.Foremen[0].Technicians {
		names = append(names, tech.Name)
	}
	assert.Equal(t, []string{"Luke Border", "Phil Cummins", "Trent Weatherington"}, names)
	assert.Equal(t, "ND", first.Foremen[0].Technicians[2].Notes)
	assert.Equal(t, 4, first.TechnicianCount())
}

func TestAggregate_EmptyForemanIDIsEmptyString(t *testing.T) {
	view := Aggregate(fixtureRecords())

	raw, err := json.Marshal(view["2nd Shift"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"foremen":[{"name":"Danny Cross","id":"","technicians":[
		{"id":"171","name":"Jim Carroll","notes":""},
		{"id":"148","name":"Steve Jostock","notes":""}]}]}`, string(raw))
}

func TestAggregate_DeterministicAcrossInputOrder(t *testing.T) {
	records := fixtureRecords()
	want := Aggregate(records)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := make([]Record, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Aggregate(shuffled)
		assert.Equal(t, want, got)

		wantJSON, _ := json.Marshal(want)
		gotJSON, _ := json.Marshal(got)
		assert.Equal(t, string(wantJSON), string(gotJSON))
	}
}

func TestAggregate_DoesNotReorderInput(t *testing.T) {
	records := fixtureRecords()
	before := make([]Record, len(records))
	copy(before, records)

	Aggregate(records)
	assert.Equal(t, before, records)
}

func TestAggregate_SameForemanNameDifferentIDsMerge(t *testing.T) {
	records := []Record{
		{Department: "Recon", ForemanName: "Chris Schreiner", ForemanID: "999", TechnicianName: "Michael Miller", TechnicianID: "762"},
		{Department: "Recon", ForemanName: "Chris Schreiner", ForemanID: "756", TechnicianName: "Aiden Adams", TechnicianID: "765"},
	}

	view := Aggregate(records)
	require.Len(t, view["Recon"].Foremen, 1)
	foreman := view["Recon"].Foremen[0]
	assert.Len(t, foreman.Technicians, 2)
	// Aiden Adams sorts first, so his row's foreman id is kept
	assert.Equal(t, "756", foreman.ID)
}

func TestAggregate_SameNameAcrossDepartmentsStaysSeparate(t *testing.T) {
	records := []Record{
		{Department: "Body Shop", ForemanName: "Pat", ForemanID: "1", TechnicianName: "A", TechnicianID: "1"},
		{Department: "Recon", ForemanName: "Pat", ForemanID: "1", TechnicianName: "B", TechnicianID: "2"},
	}

	view := Aggregate(records)
	assert.Len(t, view, 2)
	assert.Len(t, view["Body Shop"].Foremen, 1)
	assert.Len(t, view["Recon"].Foremen, 1)
}

func TestAggregate_Empty(t *testing.T) {
	view := Aggregate(nil)
	assert.NotNil(t, view)
	assert.Empty(t, view)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestView_Locate(t *testing.T) {
	view := Aggregate(fixtureRecords())

	loc, tech, ok := view.Locate("751")
	require.True(t, ok)
	assert.Equal(t, Location{Department: "1st Shift", ForemanName: "Shane Doty", ForemanID: "186"}, loc)
	assert.Equal(t, "Luke Border", tech.Name)

	_, _, ok = view.Locate("nope")
	assert.False(t, ok)
}

func TestView_CloneIsDeep(t *testing.T) {
	view := Aggregate(fixtureRecords())
	clone := view.Clone()

	clone["Body Shop"].Foremen[0].Technicians[0].Name = "changed"
	assert.NotEqual(t, "changed", view["Body Shop"].Foremen[0].Technicians[0].Name)
	assert.Nil(t, View(nil).Clone())
}
