// Package common provides shared functionality across the statement parsers:
// quote-aware CSV splitting with source reconstruction, and encoding normalization.
package common

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// Dialect holds the CSV formatting parameters of a statement format.
type Dialect struct {
	Delimiter rune
	Quote     rune
	HasHeader bool
}

var (
	// PostLtDialect is the tab separated PostLt payment export.
	PostLtDialect = Dialect{Delimiter: '\t', Quote: '"', HasHeader: false}
	// SwedbankDialect is the comma separated Swedbank account statement.
	SwedbankDialect = Dialect{Delimiter: ',', Quote: '"', HasHeader: false}
)

// Validate checks that the dialect can be handled by the CSV reader.
func (d Dialect) Validate() error {
	if d.Quote != '"' {
		return &parsererror.InvalidFormatError{
			ExpectedFormat: `quote character '"'`,
			Msg:            fmt.Sprintf("unsupported quote character %q", d.Quote),
		}
	}
	if d.Delimiter == d.Quote || d.Delimiter == '\r' || d.Delimiter == '\n' || d.Delimiter == 0 {
		return &parsererror.InvalidFormatError{
			ExpectedFormat: "a delimiter distinct from quote and line breaks",
			Msg:            fmt.Sprintf("unsupported delimiter %q", d.Delimiter),
		}
	}
	return nil
}

// newReader reads with lazy quotes: a quote inside an unquoted field, as in
// UAB "Bite", is plain text. Unterminated quoted fields are caught by
// unterminatedQuote before reading.
func (d Dialect) newReader(content string) gocsv.CSVReader {
	r := csv.NewReader(strings.NewReader(content))
	r.Comma = d.Delimiter
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // column count is a validation rule, not a reading one
	return r
}

// unterminatedQuote returns a MalformedCSVError when a quoted field is still
// open at the end of content. It follows the lazy reader: a field is quoted
// only when it starts with a quote, a doubled quote is an escaped quote and a
// quote closes the field only when followed by the delimiter, a line break or
// the end of content.
func unterminatedQuote(content string, d Dialect) error {
	line, col := 1, 0
	startLine, startCol := 0, 0
	fieldStart, quoted := true, false

	for i := 0; i < len(content); {
		r, size := utf8.DecodeRuneInString(content[i:])
		i += size
		col++

		switch {
		case quoted && r == d.Quote:
			next, nextSize := utf8.DecodeRuneInString(content[i:])
			switch {
			case nextSize > 0 && next == d.Quote:
				i += nextSize
				col++
			case i == len(content) || next == d.Delimiter || next == '\n' || strings.HasPrefix(content[i:], "\r\n"):
				quoted = false
			}
		case quoted:
			if r == '\n' {
				line++
				col = 0
			}
		case r == d.Delimiter:
			fieldStart = true
			continue
		case r == '\n':
			line++
			col = 0
			fieldStart = true
			continue
		case fieldStart && r == d.Quote:
			quoted = true
			startLine, startCol = line, col
		}
		fieldStart = false
	}

	if quoted {
		return &parsererror.MalformedCSVError{Line: startLine, Column: startCol, Err: csv.ErrQuote}
	}
	return nil
}

// SplitRows splits decoded statement content into logical rows. Quoted values
// may contain the delimiter and line breaks. Rows are numbered 1..N in logical
// order; a header row, when the dialect has one, is dropped and not numbered.
// Every row carries its reconstructed source text, see JoinRow.
func SplitRows(content string, d Dialect) ([]models.RawRow, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := unterminatedQuote(content, d); err != nil {
		return nil, err
	}

	reader := d.newReader(content)
	rows := make([]models.RawRow, 0)
	headerPending := d.HasHeader

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformed(err)
		}
		if headerPending {
			headerPending = false
			continue
		}

		source, err := JoinRow(fields, d)
		if err != nil {
			return nil, fmt.Errorf("error reconstructing row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, models.RawRow{
			LineNo: len(rows) + 1,
			Fields: fields,
			Source: source,
		})
	}

	return rows, nil
}

// JoinRow re-encodes fields as a single CSV row in the given dialect: fields
// are delimiter-joined, quoted where needed with quotes doubled, and no
// trailing line break is added. Splitting the result yields the same fields.
func JoinRow(fields []string, d Dialect) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	// A lone empty field would be written as an empty line, which splits
	// into no row at all.
	if len(fields) == 1 && fields[0] == "" {
		return string(d.Quote) + string(d.Quote), nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = d.Delimiter
	safe := gocsv.NewSafeCSVWriter(w)
	if err := safe.Write(fields); err != nil {
		return "", fmt.Errorf("error writing CSV row: %w", err)
	}
	safe.Flush()
	if err := safe.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV row: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// JoinRows re-encodes all rows, one per line.
func JoinRows(rows []models.RawRow, d Dialect) (string, error) {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		line, err := JoinRow(row.Fields, d)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func malformed(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &parsererror.MalformedCSVError{
			Line:   parseErr.Line,
			Column: parseErr.Column,
			Err:    parseErr.Err,
		}
	}
	return &parsererror.MalformedCSVError{Err: err}
}
