package models

// Result is the outcome of parsing one statement file.
type Result struct {
	Format     string
	Rows       []Row
	Violations []Violation
	// Skipped holds construction errors of rows that were dropped instead of
	// aborting the whole file.
	Skipped []error
}

// Valid reports whether no row produced a violation.
func (r *Result) Valid() bool {
	return len(r.Violations) == 0
}

// ViolationsByLine groups violations by the line identifier prefix of their path.
func (r *Result) ViolationsByLine() map[string][]Violation {
	grouped := make(map[string][]Violation)
	for _, v := range r.Violations {
		line := v.Path
		for i := 0; i < len(line); i++ {
			if line[i] == '.' {
				line = line[:i]
				break
			}
		}
		grouped[line] = append(grouped[line], v)
	}
	return grouped
}
