package models

import "fmt"

// RawRow is a single logical CSV row as produced by the line splitter.
// LineNo counts logical rows, so a quoted value spanning several physical
// lines still belongs to one row.
type RawRow struct {
	LineNo int
	Fields []string
	Source string
}

// LineID returns the caller-facing row identifier, e.g. "line-3".
func (r RawRow) LineID() string {
	return LineID(r.LineNo)
}

// LineID formats a 1-based row position as a row identifier.
func LineID(lineNo int) string {
	return fmt.Sprintf("line-%d", lineNo)
}

// Row is the common read-only view shared by all typed statement rows.
type Row interface {
	LineID() string
	SourceRow() []string
	SourceString() string
	// Value returns the raw field at the given column, or "" when the row is shorter.
	Value(column int) string
	String() string
}

// FieldAt returns fields[column] or an empty string when the column is absent.
func FieldAt(fields []string, column int) string {
	if column < 0 || column >= len(fields) {
		return ""
	}
	return fields[column]
}
