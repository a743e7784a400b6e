package roster

import "sort"

// Aggregate groups flat records into the department -> foreman -> technician
// view. Output ordering is department name, then foreman name, then technician
// name (technician id breaks ties) regardless of input order.
//
// Foremen are keyed by name within a department. When rows for the same
// foreman carry different foreman ids, the id on the first row in sorted order
// is kept.
func Aggregate(records []Record) View {
	rows := make([]Record, len(records))
	copy(rows, records)
	sort.SliceStable(rows, func(i, j int) bool {
		return recordLess(rows[i], rows[j])
	})

	view := make(View)
	for _, row := range rows {
		dept := view[row.Department]
		idx := -1
		for i := range dept.Foremen {
			if dept.Foremen[i].Name == row.ForemanName {
				idx = i
				break
			}
		}
		if idx < 0 {
			dept.Foremen = append(dept.Foremen, Foreman{
				Name:        row.ForemanName,
				ID:          row.ForemanID,
				Technicians: []Technician{},
			})
			idx = len(dept.Foremen) - 1
		}
		dept.Foremen[idx].Technicians = append(dept.Foremen[idx].Technicians, Technician{
			ID:    row.TechnicianID,
			Name:  row.TechnicianName,
			Notes: row.Notes,
		})
		view[row.Department] = dept
	}
	return view
}

func recordLess(a, b Record) bool {
	if a.Department != b.Department {
		return a.Department < b.Department
	}
	if a.ForemanName != b.ForemanName {
		return a.ForemanName < b.ForemanName
	}
	return technicianLess(
		Technician{ID: a.TechnicianID, Name: a.TechnicianName},
		Technician{ID: b.TechnicianID, Name: b.TechnicianName},
	)
}

func technicianLess(a, b Technician) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}
