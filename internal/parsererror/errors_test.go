package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "amount parse error",
			err: &ParseError{
				Parser: "postlt",
				Field:  "amount",
				Value:  "abc",
				Err:    errors.New("invalid decimal"),
			},
			expected: "postlt: failed to parse amount='abc': invalid decimal",
		},
		{
			name: "parse error with empty value",
			err: &ParseError{
				Parser: "swedbank",
				Field:  "transactionDate",
				Value:  "",
				Err:    errors.New("empty date"),
			},
			expected: "swedbank: failed to parse transactionDate='': empty date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	parseErr := &ParseError{Parser: "postlt", Field: "amount", Value: "x", Err: originalErr}

	assert.Equal(t, originalErr, parseErr.Unwrap())
	assert.True(t, errors.Is(parseErr, originalErr))
}

func TestMalformedCSVError(t *testing.T) {
	inner := errors.New("extraneous or missing \" in quoted-field")

	withPos := &MalformedCSVError{Line: 3, Column: 7, Err: inner}
	assert.Equal(t, "malformed CSV at line 3, column 7: extraneous or missing \" in quoted-field", withPos.Error())
	assert.ErrorIs(t, withPos, inner)

	noPos := &MalformedCSVError{Err: inner}
	assert.Equal(t, "malformed CSV: extraneous or missing \" in quoted-field", noPos.Error())
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{ExpectedFormat: "quote character '\"'", Msg: "unsupported quote character '''"}
	assert.Equal(t, "invalid format: unsupported quote character '''. Expected: quote character '\"'", err.Error())

	err.FilePath = "/tmp/statement.csv"
	assert.Contains(t, err.Error(), "invalid format in file '/tmp/statement.csv'")
}

func TestRecordTypeErrors(t *testing.T) {
	unknown := &UnrecognizedRecordTypeError{LineID: "line-1", RecordType: "999"}
	assert.Equal(t, `could not create Swedbank row for line-1, record type "999" is not implemented`, unknown.Error())

	empty := &EmptyRecordTypeError{LineID: "line-2"}
	assert.Equal(t, "could not create Swedbank row for line-2, record type is empty", empty.Error())
	assert.NotContains(t, empty.Error(), `"`)
}

func TestDetailsFormatError(t *testing.T) {
	err := &DetailsFormatError{Details: "invalid data"}
	assert.Equal(t, `details string was not in correct format, expected 9 strings concatenated by "/", got "invalid data"`, err.Error())
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("creating row: %w", &UnrecognizedRecordTypeError{LineID: "line-4", RecordType: "31"})

	var target *UnrecognizedRecordTypeError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "31", target.RecordType)

	var emptyTarget *EmptyRecordTypeError
	assert.False(t, errors.As(wrapped, &emptyTarget))
}
