// Package swedbankparser parses comma separated Swedbank account statements.
// Every row is dispatched on its record type column into a PaymentRow tagged
// with that RecordType; the tag selects the validation rules of the row.
package swedbankparser

import (
	"fmt"

	"emo/payment-statement-parser/internal/models"
)

// ColumnCount is the number of columns of every Swedbank row.
const ColumnCount = 12

// Column positions shared by all record types
const (
	ColumnBankAccountNumber    = 0
	ColumnRecordType           = 1
	ColumnTransactionDate      = 2
	ColumnParty                = 3
	ColumnDetails              = 4
	ColumnAmount               = 5
	ColumnCurrency             = 6
	ColumnDebitCreditIndicator = 7
	ColumnTransactionReference = 8
	ColumnTransactionType      = 9
	ColumnClientReference      = 10
	ColumnDocumentNumber       = 11
)

// Debit/credit indicator values
const (
	IndicatorCredit = "K"
	IndicatorDebit  = "D"
)

// TransactionTypeMK is the only transaction type in use.
const TransactionTypeMK = "MK"

// PaymentRow is one row of a Swedbank statement. The record type is fixed at
// construction; rows are immutable.
type PaymentRow struct {
	recordType   RecordType
	lineID       string
	sourceRow    []string
	sourceString string
}

func newPaymentRow(rt RecordType, lineID string, fields []string, source string) *PaymentRow {
	return &PaymentRow{
		recordType:   rt,
		lineID:       lineID,
		sourceRow:    append([]string(nil), fields...),
		sourceString: source,
	}
}

// Type returns the record type the row was dispatched into.
func (r *PaymentRow) Type() RecordType { return r.recordType }

func (r *PaymentRow) LineID() string { return r.lineID }

// SourceRow returns a copy of the raw fields.
func (r *PaymentRow) SourceRow() []string { return append([]string(nil), r.sourceRow...) }

// SourceString returns the reconstructed CSV text of the row.
func (r *PaymentRow) SourceString() string { return r.sourceString }

// Value returns the raw field at column or "".
func (r *PaymentRow) Value(column int) string { return models.FieldAt(r.sourceRow, column) }

func (r *PaymentRow) String() string {
	return fmt.Sprintf("Swedbank %s row %s", r.recordType.Name(), r.lineID)
}

func (r *PaymentRow) BankAccountNumber() string    { return r.Value(ColumnBankAccountNumber) }
func (r *PaymentRow) RecordType() string           { return r.Value(ColumnRecordType) }
func (r *PaymentRow) TransactionDate() string      { return r.Value(ColumnTransactionDate) }
func (r *PaymentRow) Party() string                { return r.Value(ColumnParty) }
func (r *PaymentRow) Details() string              { return r.Value(ColumnDetails) }
func (r *PaymentRow) Amount() string               { return r.Value(ColumnAmount) }
func (r *PaymentRow) Currency() string             { return r.Value(ColumnCurrency) }
func (r *PaymentRow) DebitCreditIndicator() string { return r.Value(ColumnDebitCreditIndicator) }
func (r *PaymentRow) TransactionReference() string { return r.Value(ColumnTransactionReference) }
func (r *PaymentRow) TransactionType() string      { return r.Value(ColumnTransactionType) }
func (r *PaymentRow) ClientReference() string      { return r.Value(ColumnClientReference) }
func (r *PaymentRow) DocumentNumber() string       { return r.Value(ColumnDocumentNumber) }

// IsTransaction reports whether the row is a Transaction record.
func (r *PaymentRow) IsTransaction() bool { return r.recordType == Transaction }

// IsCredit reports whether money came into the account.
func (r *PaymentRow) IsCredit() bool { return r.DebitCreditIndicator() == IndicatorCredit }

// IsDebit reports whether money left the account.
func (r *PaymentRow) IsDebit() bool { return r.DebitCreditIndicator() == IndicatorDebit }
