package swedbankparser

import (
	"strings"

	"emo/payment-statement-parser/internal/parsererror"
)

// detailsSegments is the number of "/" separated values in the details column
// of a transaction.
const detailsSegments = 9

// whitespace trimmed from the purpose of payment
const detailsCutset = " \t\n\r\x00\x0B"

// TransactionDetails holds the values packed into the details column of a
// Transaction row. Only the purpose of payment has a known meaning.
type TransactionDetails struct {
	PurposeOfPayment string
	// Segments are the raw values, untrimmed, in column order.
	Segments []string
}

// ParseTransactionDetails splits details into its 9 values.
func ParseTransactionDetails(details string) (TransactionDetails, error) {
	segments := strings.Split(details, "/")
	if len(segments) != detailsSegments {
		return TransactionDetails{}, &parsererror.DetailsFormatError{Details: details}
	}

	return TransactionDetails{
		PurposeOfPayment: strings.Trim(segments[0], detailsCutset),
		Segments:         segments,
	}, nil
}
