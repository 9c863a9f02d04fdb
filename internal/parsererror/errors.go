// Package parsererror defines the error kinds returned while turning statement
// files into rows. Validation failures are not errors; see models.Violation.
package parsererror

import "fmt"

// ParseError represents a failure to derive a typed value from a raw field
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MalformedCSVError is returned when the statement content is not structurally
// valid CSV (e.g. an unterminated quote). It aborts processing of the whole file.
type MalformedCSVError struct {
	Line   int
	Column int
	Err    error
}

func (e *MalformedCSVError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed CSV at line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("malformed CSV: %v", e.Err)
}

func (e *MalformedCSVError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input or its reading
// configuration does not conform to what a parser supports.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
			e.FilePath, e.Msg, e.ExpectedFormat)
	}
	return fmt.Sprintf("invalid format: %s. Expected: %s", e.Msg, e.ExpectedFormat)
}

// UnrecognizedRecordTypeError is returned when a Swedbank row carries a
// non-empty record type that no row type is registered for.
type UnrecognizedRecordTypeError struct {
	LineID     string
	RecordType string
}

func (e *UnrecognizedRecordTypeError) Error() string {
	return fmt.Sprintf("could not create Swedbank row for %s, record type \"%s\" is not implemented",
		e.LineID, e.RecordType)
}

// EmptyRecordTypeError is returned when a Swedbank row has a blank or missing
// record type column.
type EmptyRecordTypeError struct {
	LineID string
}

func (e *EmptyRecordTypeError) Error() string {
	return fmt.Sprintf("could not create Swedbank row for %s, record type is empty", e.LineID)
}

// DetailsFormatError is returned when the details column of a Swedbank
// transaction does not hold 9 values separated by "/".
type DetailsFormatError struct {
	Details string
}

func (e *DetailsFormatError) Error() string {
	return fmt.Sprintf("details string was not in correct format, expected 9 strings concatenated by \"/\", got \"%s\"",
		e.Details)
}
