package postltparser

import (
	"time"

	"emo/payment-statement-parser/internal/dateutils"
	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/parsererror"
)

// FormattedRow derives typed values from the raw fields of a PaymentRow.
type FormattedRow struct {
	row *PaymentRow
}

// NewFormattedRow wraps row.
func NewFormattedRow(row *PaymentRow) FormattedRow {
	return FormattedRow{row: row}
}

// Row returns the wrapped payment row.
func (f FormattedRow) Row() *PaymentRow {
	return f.row
}

// AmountInCents returns the amount in minor units, e.g. "148.50" is 14850.
func (f FormattedRow) AmountInCents() (int64, error) {
	cents, err := models.AmountInCents(f.row.Amount())
	if err != nil {
		return 0, &parsererror.ParseError{Parser: models.FormatPostLt, Field: "amount", Value: f.row.Amount(), Err: err}
	}
	return cents, nil
}

// PaymentDate parses the yyyy.mm.dd payment date.
func (f FormattedRow) PaymentDate() (time.Time, error) {
	return parseDate("paymentDate", f.row.PaymentDate())
}

// BankTransferDate parses the yyyy.mm.dd bank transfer date.
func (f FormattedRow) BankTransferDate() (time.Time, error) {
	return parseDate("bankTransferDate", f.row.BankTransferDate())
}

func parseDate(field, value string) (time.Time, error) {
	t, err := dateutils.ParseDotDate(value)
	if err != nil {
		return time.Time{}, &parsererror.ParseError{Parser: models.FormatPostLt, Field: field, Value: value, Err: err}
	}
	return t, nil
}
