package swedbankparser

import (
	"context"

	"emo/payment-statement-parser/internal/common"
	"emo/payment-statement-parser/internal/logging"
	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/parser"
	"emo/payment-statement-parser/internal/validation"
)

// Parser reads Swedbank account statements.
type Parser struct {
	parser.BaseParser
	validator        *validation.Validator
	skipUnknown      bool
	transactionsOnly bool
}

// NewParser creates a Swedbank parser logging to logger.
func NewParser(logger logging.Logger) *Parser {
	base := parser.NewBaseParser(models.FormatSwedbank, common.SwedbankDialect, logger)
	validator := validation.NewValidator(RulesFor, base.GetLogger())
	validator.SetWorkers(base.Workers())
	return &Parser{
		BaseParser: base,
		validator:  validator,
	}
}

// SetLogger replaces the logger of the parser and its validator.
func (p *Parser) SetLogger(logger logging.Logger) {
	p.BaseParser.SetLogger(logger)
	p.validator.SetLogger(logger)
}

// SetWorkers bounds the number of rows validated concurrently.
func (p *Parser) SetWorkers(workers int) {
	p.BaseParser.SetWorkers(workers)
	p.validator.SetWorkers(workers)
}

// SetSkipUnknownRecordTypes controls what happens to rows whose record type is
// empty or unknown. By default Parse fails on the first such row; when
// enabled the row is left out and its error recorded in Result.Skipped.
func (p *Parser) SetSkipUnknownRecordTypes(skip bool) {
	p.skipUnknown = skip
}

// SetTransactionsOnly keeps only Transaction rows in the result. Balance,
// turnover and interest rows are dropped before validation.
func (p *Parser) SetTransactionsOnly(only bool) {
	p.transactionsOnly = only
}

// Parse decodes content, dispatches every row on its record type and
// validates the rows with the rules of their type.
func (p *Parser) Parse(ctx context.Context, content []byte) (*models.Result, error) {
	raw, err := p.SplitContent(ctx, content)
	if err != nil {
		return nil, err
	}

	logger := p.GetLogger()
	result := &models.Result{Format: p.Format()}
	rows := make([]models.Row, 0, len(raw))
	for _, r := range raw {
		row, err := NewRow(r.LineID(), r.Fields, r.Source)
		if err != nil {
			if !p.skipUnknown {
				logger.WithError(err).Error("Failed to create Swedbank row",
					logging.F(logging.FieldLine, r.LineID()))
				return nil, err
			}
			logger.WithError(err).Warn("Skipping Swedbank row",
				logging.F(logging.FieldLine, r.LineID()),
				logging.F(logging.FieldRecordType, models.FieldAt(r.Fields, ColumnRecordType)))
			result.Skipped = append(result.Skipped, err)
			continue
		}
		if p.transactionsOnly && !row.IsTransaction() {
			logger.Debug("Dropping non-transaction row",
				logging.F(logging.FieldLine, row.LineID()),
				logging.F(logging.FieldRecordType, row.Type().Name()))
			continue
		}
		rows = append(rows, row)
	}

	violations, err := p.validator.ValidateAll(ctx, rows)
	if err != nil {
		return nil, err
	}

	result.Rows = rows
	result.Violations = violations
	p.LogResult(result)
	return result, nil
}

// ParseFile reads the whole file and parses it.
func (p *Parser) ParseFile(ctx context.Context, path string) (*models.Result, error) {
	content, err := p.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return p.Parse(ctx, content)
}

// PaymentRows returns the Swedbank rows of a result.
func PaymentRows(result *models.Result) []*PaymentRow {
	rows := make([]*PaymentRow, 0, len(result.Rows))
	for _, row := range result.Rows {
		if payment, ok := row.(*PaymentRow); ok {
			rows = append(rows, payment)
		}
	}
	return rows
}

// Transactions returns the Transaction rows of a result, optionally only the
// credit ones.
func Transactions(result *models.Result, creditOnly bool) []*PaymentRow {
	rows := make([]*PaymentRow, 0)
	for _, row := range PaymentRows(result) {
		if !row.IsTransaction() {
			continue
		}
		if creditOnly && !row.IsCredit() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
