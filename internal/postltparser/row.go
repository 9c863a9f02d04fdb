// Package postltparser parses the tab separated PostLt payment export into
// typed payment rows and validates them.
package postltparser

import (
	"fmt"

	"emo/payment-statement-parser/internal/models"
)

// ColumnCount is the number of columns of a PostLt payment row. The last 12
// are "Counter" columns that are not used.
const ColumnCount = 24

// Column positions of the named PostLt fields
const (
	ColumnPostCode              = 0
	ColumnPaymentDate           = 1
	ColumnBankAccountNumber     = 2
	ColumnPaymentDetails        = 3
	ColumnAdditionalInformation = 4
	ColumnPayedByName           = 5
	ColumnPayedByAddress        = 6
	ColumnPaymentCode           = 7
	ColumnAmount                = 8
	ColumnCurrency              = 9
	ColumnBankTransferCode      = 10
	ColumnBankTransferDate      = 11
)

// PaymentRow is one payment of a PostLt export. It is immutable once built.
type PaymentRow struct {
	lineID       string
	sourceRow    []string
	sourceString string
}

// NewPaymentRow builds a row from its split fields. Missing columns read as
// empty strings; the column count is checked by validation, not here.
func NewPaymentRow(lineID string, fields []string, source string) *PaymentRow {
	return &PaymentRow{
		lineID:       lineID,
		sourceRow:    append([]string(nil), fields...),
		sourceString: source,
	}
}

func (r *PaymentRow) LineID() string { return r.lineID }

// SourceRow returns a copy of the raw fields.
func (r *PaymentRow) SourceRow() []string { return append([]string(nil), r.sourceRow...) }

// SourceString returns the reconstructed CSV text of the row.
func (r *PaymentRow) SourceString() string { return r.sourceString }

// Value returns the raw field at column or "".
func (r *PaymentRow) Value(column int) string { return models.FieldAt(r.sourceRow, column) }

func (r *PaymentRow) String() string {
	return fmt.Sprintf("PostLt payment row %s", r.lineID)
}

func (r *PaymentRow) PostCode() string              { return r.Value(ColumnPostCode) }
func (r *PaymentRow) PaymentDate() string           { return r.Value(ColumnPaymentDate) }
func (r *PaymentRow) BankAccountNumber() string     { return r.Value(ColumnBankAccountNumber) }
func (r *PaymentRow) PaymentDetails() string        { return r.Value(ColumnPaymentDetails) }
func (r *PaymentRow) AdditionalInformation() string { return r.Value(ColumnAdditionalInformation) }
func (r *PaymentRow) PayedByName() string           { return r.Value(ColumnPayedByName) }
func (r *PaymentRow) PayedByAddress() string        { return r.Value(ColumnPayedByAddress) }
func (r *PaymentRow) PaymentCode() string           { return r.Value(ColumnPaymentCode) }
func (r *PaymentRow) Amount() string                { return r.Value(ColumnAmount) }
func (r *PaymentRow) Currency() string              { return r.Value(ColumnCurrency) }
func (r *PaymentRow) BankTransferCode() string      { return r.Value(ColumnBankTransferCode) }
func (r *PaymentRow) BankTransferDate() string      { return r.Value(ColumnBankTransferDate) }
