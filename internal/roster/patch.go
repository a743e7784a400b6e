package roster

import "sort"

// ApplyMove returns a copy of v with the technician relocated as m describes.
// The result is what Aggregate would produce after the same move was written
// to the store, provided v itself came from Aggregate and each foreman's rows
// share one foreman id. The input view is never modified.
//
// ok is false when the technician is not present in v; the caller then has
// nothing to patch and should refresh from the store instead.
func ApplyMove(v View, m Move) (View, bool) {
	loc, tech, found := v.Locate(m.TechnicianID)
	if !found {
		return v, false
	}

	out := v.Clone()
	removeTechnician(out, loc, tech.ID)
	insertTechnician(out, m, tech)
	return out, true
}

func removeTechnician(v View, loc Location, technicianID string) {
	dept := v[loc.Department]
	for i := range dept.Foremen {
		f := &dept.Foremen[i]
		if f.Name != loc.ForemanName {
			continue
		}
		for j := range f.Technicians {
			if f.Technicians[j].ID == technicianID {
				f.Technicians = append(f.Technicians[:j], f.Technicians[j+1:]...)
				break
			}
		}
		if len(f.Technicians) == 0 {
			dept.Foremen = append(dept.Foremen[:i], dept.Foremen[i+1:]...)
		}
		break
	}
	if len(dept.Foremen) == 0 {
		delete(v, loc.Department)
		return
	}
	v[loc.Department] = dept
}

func insertTechnician(v View, m Move, tech Technician) {
	dept := v[m.NewDepartment]

	fi := sort.Search(len(dept.Foremen), func(i int) bool {
		return dept.Foremen[i].Name >= m.NewForemanName
	})
	if fi == len(dept.Foremen) || dept.Foremen[fi].Name != m.NewForemanName {
		dept.Foremen = append(dept.Foremen, Foreman{})
		copy(dept.Foremen[fi+1:], dept.Foremen[fi:])
		dept.Foremen[fi] = Foreman{
			Name:        m.NewForemanName,
			ID:          m.NewForemanID,
			Technicians: []Technician{tech},
		}
		v[m.NewDepartment] = dept
		return
	}

	f := &dept.Foremen[fi]
	ti := sort.Search(len(f.Technicians), func(i int) bool {
		return !technicianLess(f.Technicians[i], tech)
	})
	f.Technicians = append(f.Technicians, Technician{})
	copy(f.Technicians[ti+1:], f.Technicians[ti:])
	f.Technicians[ti] = tech
	if ti == 0 {
		// the moved row is now first in sort order, so its foreman id is the one a refresh keeps
		f.ID = m.NewForemanID
	}
	v[m.NewDepartment] = dept
}
