// Package dateutils provides the date handling shared by the statement formats.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts found in statement files
const (
	DateLayoutISO = "2006-01-02"
	DateLayoutDot = "2006.01.02"
)

// ParseISODate parses a yyyy-mm-dd calendar date as midnight UTC.
func ParseISODate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
	}
	return t, nil
}

// ParseDotDate parses a yyyy.mm.dd date by replacing the dots with dashes
// and parsing the result as an ISO date.
func ParseDotDate(dateStr string) (time.Time, error) {
	return ParseISODate(strings.ReplaceAll(dateStr, ".", "-"))
}
