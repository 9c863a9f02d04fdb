package postltparser

import (
	"context"

	"emo/payment-statement-parser/internal/common"
	"emo/payment-statement-parser/internal/logging"
	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/parser"
	"emo/payment-statement-parser/internal/validation"
)

// Parser reads PostLt payment exports.
type Parser struct {
	parser.BaseParser
	validator *validation.Validator
}

// NewParser creates a PostLt parser logging to logger.
func NewParser(logger logging.Logger) *Parser {
	base := parser.NewBaseParser(models.FormatPostLt, common.PostLtDialect, logger)
	validator := validation.NewValidator(validation.Static(Rules), base.GetLogger())
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

// Parse decodes content, builds one PaymentRow per logical CSV row and
// validates all of them. Malformed CSV is returned as an error; broken
// column rules end up in Result.Violations.
func (p *Parser) Parse(ctx context.Context, content []byte) (*models.Result, error) {
	raw, err := p.SplitContent(ctx, content)
	if err != nil {
		return nil, err
	}

	rows := make([]models.Row, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, NewPaymentRow(r.LineID(), r.Fields, r.Source))
	}

	violations, err := p.validator.ValidateAll(ctx, rows)
	if err != nil {
		return nil, err
	}

	result := &models.Result{
		Format:     p.Format(),
		Rows:       rows,
		Violations: violations,
	}
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

// PaymentRows returns the PostLt rows of a result.
func PaymentRows(result *models.Result) []*PaymentRow {
	rows := make([]*PaymentRow, 0, len(result.Rows))
	for _, row := range result.Rows {
		if payment, ok := row.(*PaymentRow); ok {
			rows = append(rows, payment)
		}
	}
	return rows
}
