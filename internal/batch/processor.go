// Package batch parses many statement files of the same format.
package batch

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"

	"emo/payment-statement-parser/internal/logging"
	"emo/payment-statement-parser/internal/models"

	"golang.org/x/sync/errgroup"
)

// FileResult is the outcome of one file. Exactly one of Result and Err is set.
type FileResult struct {
	Path   string
	Result *models.Result
	Err    error
}

// Summary counts the outcomes of a batch.
type Summary struct {
	Files      int
	Failed     int
	Invalid    int
	Rows       int
	Violations int
	Skipped    int
}

// Processor parses files concurrently with a single parser.
type Processor struct {
	parser   models.Parser
	logger   logging.Logger
	workers  int
	progress Progress
}

// NewProcessor creates a Processor for p. If logger is nil, a default logger
// will be used.
func NewProcessor(p models.Parser, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.Default()
	}
	return &Processor{
		parser:   p,
		logger:   logger,
		workers:  runtime.NumCPU(),
		progress: NewNoopProgress(),
	}
}

// SetProgress reports every finished file to progress. Nil disables
// progress reporting.
func (p *Processor) SetProgress(progress Progress) {
	if progress == nil {
		progress = NewNoopProgress()
	}
	p.progress = progress
}

// SetWorkers bounds the number of files parsed at the same time. Values
// below 1 are ignored.
func (p *Processor) SetWorkers(workers int) {
	if workers > 0 {
		p.workers = workers
	}
}

// ProcessFiles parses every file and returns the results in input order.
// A file that fails to parse does not stop the batch; its error is kept in
// its FileResult. Only context cancellation is returned as error.
func (p *Processor) ProcessFiles(ctx context.Context, files []string) ([]FileResult, error) {
	results := make([]FileResult, len(files))
	defer p.progress.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := p.parser.ParseFile(ctx, file)
			results[i] = FileResult{Path: file, Result: result, Err: err}
			if err != nil {
				p.logger.WithError(err).Warn("Failed to parse statement file",
					logging.F(logging.FieldFile, filepath.Base(file)))
			}
			if err := p.progress.Add(1); err != nil {
				p.logger.WithError(err).Debug("Failed to update progress")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := Summarize(results)
	p.logger.Info("Batch processing completed",
		logging.F(logging.FieldFormat, p.parser.Format()),
		logging.F(logging.FieldCount, summary.Files),
		logging.F("failed", summary.Failed),
		logging.F(logging.FieldViolations, summary.Violations))

	return results, nil
}

// Summarize counts files, rows and problems over results.
func Summarize(results []FileResult) Summary {
	var s Summary
	for _, r := range results {
		s.Files++
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Rows += len(r.Result.Rows)
		s.Violations += len(r.Result.Violations)
		s.Skipped += len(r.Result.Skipped)
		if !r.Result.Valid() {
			s.Invalid++
		}
	}
	return s
}

// OK reports whether every file parsed without violations.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Invalid == 0
}

// ReportFilename returns the name of the report written for inputPath, e.g.
// "statement.csv" with the json format becomes "statement_report.json".
func ReportFilename(inputPath, format string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	ext := format
	if format == "text" {
		ext = "txt"
	}
	return name + "_report." + ext
}
