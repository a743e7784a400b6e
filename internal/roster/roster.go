// Package roster holds the assignment read model shared by the API server and
// the board client: flat assignment records, the nested department view built
// from them, and the in-place move patch that keeps a client view in step with
// the server between full refreshes.
package roster

import (
	"sort"
	"strings"
	"time"
)

// Record is one persisted technician assignment row.
type Record struct {
	Department     string
	ForemanName    string
	ForemanID      string
	TechnicianName string
	TechnicianID   string
	Notes          string
	UpdatedAt      time.Time
}

// Technician is a leaf of the aggregated view.
type Technician struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

// Foreman groups technicians within one department.
type Foreman struct {
	Name        string       `json:"name"`
	ID          string       `json:"id"`
	Technicians []Technician `json:"technicians"`
}

// Department is the value stored per department name in a View.
type Department struct {
	Foremen []Foreman `json:"foremen"`
}

// View maps department name to its foremen. encoding/json writes map keys in
// sorted order, so the wire form is ordered by department name.
type View map[string]Department

// Move relocates one technician to a department/foreman pair.
type Move struct {
	TechnicianID   string `json:"technicianId"`
	NewDepartment  string `json:"newDepartment"`
	NewForemanName string `json:"newForemanName"`
	NewForemanID   string `json:"newForemanId"`
}

// Normalize returns the move with surrounding whitespace stripped from every field.
func (m Move) Normalize() Move {
	return Move{
		TechnicianID:   strings.TrimSpace(m.TechnicianID),
		NewDepartment:  strings.TrimSpace(m.NewDepartment),
		NewForemanName: strings.TrimSpace(m.NewForemanName),
		NewForemanID:   strings.TrimSpace(m.NewForemanID),
	}
}

// AuditEntry is one row of the recent-changes log.
type AuditEntry struct {
	TechnicianName string    `json:"technician_name"`
	TechnicianID   string    `json:"technician_id"`
	DepartmentName string    `json:"department_name"`
	ForemanName    string    `json:"foreman_name"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Location identifies where a technician sits in a View.
type Location struct {
	Department  string
	ForemanName string
	ForemanID   string
}

// Locate returns the location of the technician with the given id.
func (v View) Locate(technicianID string) (Location, Technician, bool) {
	for name, dept := range v {
		for _, f := range dept.Foremen {
			for _, t := range f.Technicians {
				if t.ID == technicianID {
					return Location{Department: name, ForemanName: f.Name, ForemanID: f.ID}, t, true
				}
			}
		}
	}
	return Location{}, Technician{}, false
}

// TechnicianCount returns the number of technicians in the department.
func (d Department) TechnicianCount() int {
	total := 0
	for _, f := range d.Foremen {
		total += len(f.Technicians)
	}
	return total
}

// Foreman returns the foreman with the given name.
func (d Department) Foreman(name string) (Foreman, bool) {
	for _, f := range d.Foremen {
		if f.Name == name {
			return f, true
		}
	}
	return Foreman{}, false
}

// DepartmentNames returns department names in sorted order.
func (v View) DepartmentNames() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the view.
func (v View) Clone() View {
	if v == nil {
		return nil
	}
	out := make(View, len(v))
	for name, dept := range v {
		foremen := make([]Foreman, len(dept.Foremen))
		for i, f := range dept.Foremen {
			techs := make([]Technician, len(f.Technicians))
			copy(techs, f.Technicians)
			foremen[i] = Foreman{Name: f.Name, ID: f.ID, Technicians: techs}
		}
		out[name] = Department{Foremen: foremen}
	}
	return out
}
