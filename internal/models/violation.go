package models

import "fmt"

// Violation reports one broken validation constraint. It never mutates the row.
type Violation struct {
	Path         string `json:"path" yaml:"path" csv:"path"`
	Message      string `json:"message" yaml:"message" csv:"message"`
	InvalidValue string `json:"invalid_value" yaml:"invalid_value" csv:"invalid_value"`
}

// String renders the violation as `<path> <message> Value: "<value>".`
func (v Violation) String() string {
	return fmt.Sprintf("%s %s Value: \"%s\".", v.Path, v.Message, v.InvalidValue)
}

// StringifyViolations renders every violation with Violation.String.
func StringifyViolations(violations []Violation) []string {
	out := make([]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.String())
	}
	return out
}
