// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"emo/payment-statement-parser/internal/fileutils"
	"emo/payment-statement-parser/internal/logging"
	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/report"
	"emo/payment-statement-parser/internal/validation"
)

// ErrViolations is returned when a statement parsed but some rows broke
// their validation rules.
var ErrViolations = errors.New("statement has validation violations")

// ReportGenerator renders a report in a named format.
type ReportGenerator interface {
	GenerateReport(r report.Report, format string) ([]byte, error)
}

// Options select where and how a report is written.
type Options struct {
	Input  string
	Output string
	Format string
	// Stdout receives the report when Output is empty.
	Stdout io.Writer
}

// ProcessFile parses one statement file with p and writes its report. The
// result is returned even when it carries violations; the error is then
// ErrViolations.
func ProcessFile(ctx context.Context, p models.Parser, gen ReportGenerator, opts Options, log logging.Logger) (*models.Result, error) {
	if opts.Input == "" {
		return nil, fmt.Errorf("input file must be specified")
	}
	if err := validation.IsValidPath(opts.Input); err != nil {
		return nil, fmt.Errorf("invalid input file: %w", err)
	}

	log.Info("Processing statement",
		logging.F(logging.FieldInputFile, opts.Input),
		logging.F(logging.FieldFormat, p.Format()))

	result, err := p.ParseFile(ctx, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", opts.Input, err)
	}

	if err := WriteReport(gen, report.NewReport(filepath.Base(opts.Input), result), opts); err != nil {
		return result, err
	}

	if !result.Valid() {
		log.Warn("Statement has violations",
			logging.F(logging.FieldInputFile, opts.Input),
			logging.F(logging.FieldViolations, len(result.Violations)))
		return result, ErrViolations
	}
	return result, nil
}

// WriteReport renders r and writes it to opts.Output, or to opts.Stdout when
// no output file is set.
func WriteReport(gen ReportGenerator, r report.Report, opts Options) error {
	content, err := gen.GenerateReport(r, opts.Format)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		if opts.Stdout == nil {
			return fmt.Errorf("no output file and no writer for the report")
		}
		_, err := opts.Stdout.Write(content)
		return err
	}

	if err := fileutils.WriteFile(opts.Output, content, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}
