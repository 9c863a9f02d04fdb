package swedbankparser

import (
	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/parsererror"
)

// NewRow builds the row for fields, dispatching on the record type column.
// A non-empty unknown record type fails with UnrecognizedRecordTypeError, a
// blank or missing one with EmptyRecordTypeError.
func NewRow(lineID string, fields []string, source string) (*PaymentRow, error) {
	value := models.FieldAt(fields, ColumnRecordType)
	if value == "" {
		return nil, &parsererror.EmptyRecordTypeError{LineID: lineID}
	}

	rt, ok := LookupRecordType(value)
	if !ok {
		return nil, &parsererror.UnrecognizedRecordTypeError{LineID: lineID, RecordType: value}
	}

	return newPaymentRow(rt, lineID, fields, source), nil
}
