package postltparser

import (
	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/validation"
)

const (
	dateFormatMessage   = `This value is not valid. Valid formats: "yyyy.mm.dd".`
	amountFormatMessage = `Value must be formatted as float "x.yy".`
	datePattern         = `^\d{4}\.\d{2}\.\d{2}$`
	amountPattern       = `^\d+\.\d{2}$`
)

// Rules is the validation rule table of a PostLt payment row.
var Rules = validation.RuleSet{
	ColumnCount: ColumnCount,
	Fields: []validation.FieldRules{
		{Name: "postCode", Column: ColumnPostCode, Rules: []validation.Rule{
			validation.NotBlank(ColumnPostCode),
			validation.Digits(ColumnPostCode),
		}},
		{Name: "paymentDate", Column: ColumnPaymentDate, Rules: []validation.Rule{
			validation.NotBlank(ColumnPaymentDate),
			validation.Regex(ColumnPaymentDate, datePattern, dateFormatMessage),
		}},
		{Name: "bankAccountNumber", Column: ColumnBankAccountNumber, Rules: []validation.Rule{
			validation.NotBlank(ColumnBankAccountNumber),
		}},
		{Name: "paymentDetails", Column: ColumnPaymentDetails, Rules: []validation.Rule{
			validation.NotBlank(ColumnPaymentDetails),
		}},
		{Name: "additionalInformation", Column: ColumnAdditionalInformation},
		{Name: "payedByName", Column: ColumnPayedByName, Rules: []validation.Rule{
			validation.NotBlank(ColumnPayedByName),
		}},
		{Name: "payedByAddress", Column: ColumnPayedByAddress},
		// blank or digits
		{Name: "paymentCode", Column: ColumnPaymentCode, Rules: []validation.Rule{
			validation.Regex(ColumnPaymentCode, `^\d*$`, "This value should be of type digit."),
		}},
		{Name: "amount", Column: ColumnAmount, Rules: []validation.Rule{
			validation.NotBlank(ColumnAmount),
			validation.Regex(ColumnAmount, amountPattern, amountFormatMessage),
		}},
		{Name: "currency", Column: ColumnCurrency, Rules: []validation.Rule{
			validation.NotBlank(ColumnCurrency),
			validation.Choice(ColumnCurrency, models.CurrencyEUR),
		}},
		{Name: "bankTransferCode", Column: ColumnBankTransferCode, Rules: []validation.Rule{
			validation.NotBlank(ColumnBankTransferCode),
			validation.Digits(ColumnBankTransferCode),
		}},
		{Name: "bankTransferDate", Column: ColumnBankTransferDate, Rules: []validation.Rule{
			validation.NotBlank(ColumnBankTransferDate),
			validation.Regex(ColumnBankTransferDate, datePattern, dateFormatMessage),
		}},
	},
}
