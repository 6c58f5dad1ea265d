package alumni

import "strings"

// Filter computes a filtered view over records. A record is included iff the
// search term (case-insensitive) matches name, email, company or position,
// AND the batch and department values match exactly when set. The relative
// order of records is preserved; an empty result is a valid output.
func Filter(records []Record, search, batch, department string) []Record {
	term := strings.ToLower(search)

	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Email), term) ||
			strings.Contains(strings.ToLower(r.Company), term) ||
			strings.Contains(strings.ToLower(r.Position), term)

		matchesBatch := batch == "" || r.Batch == batch
		matchesDepartment := department == "" || r.Department == department

		if matchesSearch && matchesBatch && matchesDepartment {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
