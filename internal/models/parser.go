package models

import (
	"context"

	"emo/payment-statement-parser/internal/logging"
)

// Parser defines the interface for all statement parser implementations.
type Parser interface {
	// Parse turns raw statement bytes into typed rows and validates each of them.
	// Validation failures end up in Result.Violations; only structural problems
	// (malformed CSV, undispatchable rows) are returned as errors.
	Parse(ctx context.Context, content []byte) (*Result, error)
	// ParseFile reads the whole file into memory and calls Parse.
	ParseFile(ctx context.Context, path string) (*Result, error)
	// Format returns the format identifier handled by the parser.
	Format() string
	SetLogger(logger logging.Logger)
}
