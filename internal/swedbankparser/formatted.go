package swedbankparser

import (
	"fmt"
	"time"

	"emo/payment-statement-parser/internal/dateutils"
	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/parsererror"
)

// FormattedTransactionRow derives typed values from a Transaction row.
type FormattedTransactionRow struct {
	row *PaymentRow
}

// NewFormattedTransactionRow wraps row, which must be a Transaction record.
func NewFormattedTransactionRow(row *PaymentRow) (FormattedTransactionRow, error) {
	if row == nil || !row.IsTransaction() {
		return FormattedTransactionRow{}, fmt.Errorf("formatted transaction row needs a %s row, got %v", Transaction.Name(), row)
	}
	return FormattedTransactionRow{row: row}, nil
}

// Row returns the wrapped transaction row.
func (f FormattedTransactionRow) Row() *PaymentRow {
	return f.row
}

// AmountInCents returns the amount in minor units, e.g. "283.50" is 28350.
func (f FormattedTransactionRow) AmountInCents() (int64, error) {
	cents, err := models.AmountInCents(f.row.Amount())
	if err != nil {
		return 0, &parsererror.ParseError{Parser: models.FormatSwedbank, Field: "amount", Value: f.row.Amount(), Err: err}
	}
	return cents, nil
}

// TransactionDate parses the yyyy-mm-dd transaction date.
func (f FormattedTransactionRow) TransactionDate() (time.Time, error) {
	t, err := dateutils.ParseISODate(f.row.TransactionDate())
	if err != nil {
		return time.Time{}, &parsererror.ParseError{Parser: models.FormatSwedbank, Field: "transactionDate", Value: f.row.TransactionDate(), Err: err}
	}
	return t, nil
}

// Details parses the details column.
func (f FormattedTransactionRow) Details() (TransactionDetails, error) {
	return ParseTransactionDetails(f.row.Details())
}
