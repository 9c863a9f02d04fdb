package validation

import (
	"context"
	"runtime"

	"emo/payment-statement-parser/internal/logging"
	"emo/payment-statement-parser/internal/models"

	"golang.org/x/sync/errgroup"
)

// sequentialThreshold is the row count below which rows are validated on the
// calling goroutine.
const sequentialThreshold = 100

// RuleLookup selects the rule set that applies to a row.
type RuleLookup func(row models.Row) RuleSet

// Static returns a lookup that applies the same rules to every row.
func Static(rules RuleSet) RuleLookup {
	return func(models.Row) RuleSet { return rules }
}

// Validator evaluates rule sets against rows. Violation paths are scoped by
// the row line identifier: "<lineId>" for row-level rules and
// "<lineId>.<field>" for column rules.
type Validator struct {
	lookup  RuleLookup
	logger  logging.Logger
	workers int
}

// NewValidator creates a validator using lookup to pick the rules of each row.
func NewValidator(lookup RuleLookup, logger logging.Logger) *Validator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Validator{
		lookup:  lookup,
		logger:  logger,
		workers: runtime.NumCPU(),
	}
}

// SetLogger replaces the validator logger.
func (v *Validator) SetLogger(logger logging.Logger) {
	if logger != nil {
		v.logger = logger
	}
}

// SetWorkers bounds the number of rows validated at the same time. Values
// below 1 are ignored.
func (v *Validator) SetWorkers(workers int) {
	if workers > 0 {
		v.workers = workers
	}
}

// Workers returns the concurrency bound used by ValidateAll.
func (v *Validator) Workers() int {
	return v.workers
}

// Validate returns the violations of a single row in rule declaration order:
// column count first, then fields, then row rules. An empty slice means the
// row is valid.
func (v *Validator) Validate(row models.Row) []models.Violation {
	rules := v.lookup(row)
	lineID := row.LineID()
	violations := make([]models.Violation, 0)

	if rules.ColumnCount > 0 && len(row.SourceRow()) != rules.ColumnCount {
		violations = append(violations, models.Violation{
			Path:         lineID,
			Message:      CountMessage(rules.ColumnCount),
			InvalidValue: row.SourceString(),
		})
	}

	for _, field := range rules.Fields {
		value := row.Value(field.Column)
		for _, rule := range field.Rules {
			if rule.Passes(value) {
				continue
			}
			violations = append(violations, models.Violation{
				Path:         lineID + "." + field.Name,
				Message:      rule.Message,
				InvalidValue: value,
			})
		}
	}

	for _, rule := range rules.RowRules {
		if rule.Check(row) {
			continue
		}
		violations = append(violations, models.Violation{
			Path:         lineID,
			Message:      rule.Message,
			InvalidValue: row.String(),
		})
	}

	return violations
}

// ValidateAll validates every row and returns the violations in row order.
// Large inputs are validated concurrently, bounded by Workers. The only
// error returned is the context error when ctx is done before completion.
func (v *Validator) ValidateAll(ctx context.Context, rows []models.Row) ([]models.Violation, error) {
	perRow := make([][]models.Violation, len(rows))

	if len(rows) < sequentialThreshold || v.workers == 1 {
		for i, row := range rows {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			perRow[i] = v.Validate(row)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(v.workers)
		for i, row := range rows {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				perRow[i] = v.Validate(row)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		v.logger.Debug("Concurrent validation completed",
			logging.F(logging.FieldCount, len(rows)),
			logging.F(logging.FieldWorkers, v.workers))
	}

	violations := make([]models.Violation, 0)
	for _, rowViolations := range perRow {
		violations = append(violations, rowViolations...)
	}
	return violations, nil
}
