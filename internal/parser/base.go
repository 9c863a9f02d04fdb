// Package parser provides the functionality shared by the statement format
// parsers: logger handling, encoding normalization and row splitting.
package parser

import (
	"context"
	"fmt"
	"runtime"

	"emo/payment-statement-parser/internal/common"
	"emo/payment-statement-parser/internal/fileutils"
	"emo/payment-statement-parser/internal/logging"
	"emo/payment-statement-parser/internal/models"
)

// BaseParser provides common functionality for all parser implementations.
// Parsers embed it and add their row construction and rule tables:
//
//	type Parser struct {
//		parser.BaseParser
//		// format-specific fields
//	}
type BaseParser struct {
	format     string
	dialect    common.Dialect
	logger     logging.Logger
	normalizer common.Normalizer
	workers    int
}

// NewBaseParser creates a BaseParser for the given format and CSV dialect.
// If logger is nil, a default logger will be used.
func NewBaseParser(format string, dialect common.Dialect, logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.Default()
	}

	return BaseParser{
		format:  format,
		dialect: dialect,
		logger:  logger,
		workers: runtime.NumCPU(),
	}
}

// Format returns the format identifier handled by the parser.
func (b *BaseParser) Format() string {
	return b.format
}

// Dialect returns the CSV dialect of the format.
func (b *BaseParser) Dialect() common.Dialect {
	return b.dialect
}

// SetLogger allows parsers to configure their logging instance.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// SetPassthroughUTF8 controls whether input that already is UTF-8 skips the
// ISO-8859-13 decoding.
func (b *BaseParser) SetPassthroughUTF8(enabled bool) {
	b.normalizer.PassthroughUTF8 = enabled
}

// SetWorkers bounds the number of rows validated concurrently.
func (b *BaseParser) SetWorkers(workers int) {
	if workers > 0 {
		b.workers = workers
	}
}

// Workers returns the validation concurrency bound.
func (b *BaseParser) Workers() int {
	return b.workers
}

// ReadFile reads a statement file into memory, honouring ctx cancellation
// before the read starts.
func (b *BaseParser) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.logger.Debug("Reading statement file",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldFormat, b.format))

	content, err := fileutils.ReadFile(path)
	if err != nil {
		b.logger.WithError(err).Error("Failed to read statement file",
			logging.F(logging.FieldFile, path))
		return nil, fmt.Errorf("error reading %s statement: %w", b.format, err)
	}
	return content, nil
}

// SplitContent normalizes the encoding of content and splits it into rows
// using the parser dialect.
func (b *BaseParser) SplitContent(ctx context.Context, content []byte) ([]models.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := b.normalizer.Normalize(content)
	rows, err := common.SplitRows(text, b.dialect)
	if err != nil {
		b.logger.WithError(err).Error("Failed to split statement into rows",
			logging.F(logging.FieldFormat, b.format))
		return nil, fmt.Errorf("error reading %s statement: %w", b.format, err)
	}

	b.logger.Debug("Split statement into rows",
		logging.F(logging.FieldFormat, b.format),
		logging.F(logging.FieldCount, len(rows)),
		logging.F(logging.FieldDelimiter, string(b.dialect.Delimiter)))

	return rows, nil
}

// LogResult writes the summary line of a finished parse.
func (b *BaseParser) LogResult(result *models.Result) {
	b.logger.Info("Parsed statement",
		logging.F(logging.FieldFormat, b.format),
		logging.F(logging.FieldCount, len(result.Rows)),
		logging.F(logging.FieldViolations, len(result.Violations)),
		logging.F(logging.FieldSkipped, len(result.Skipped)))
}
