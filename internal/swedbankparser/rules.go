package swedbankparser

import (
	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/validation"
)

// BaseRules apply to the columns shared by every record type.
var BaseRules = validation.RuleSet{
	ColumnCount: ColumnCount,
	Fields: []validation.FieldRules{
		{Name: "bankAccountNumber", Column: ColumnBankAccountNumber, Rules: []validation.Rule{
			validation.NotBlank(ColumnBankAccountNumber),
		}},
		{Name: "recordType", Column: ColumnRecordType, Rules: []validation.Rule{
			validation.NotBlank(ColumnRecordType),
			validation.Choice(ColumnRecordType, recordTypeValues()...),
		}},
		{Name: "transactionDate", Column: ColumnTransactionDate, Rules: []validation.Rule{
			validation.NotBlank(ColumnTransactionDate),
			validation.Regex(ColumnTransactionDate, `^\d{4}-\d{2}-\d{2}$`, `This value is not valid. Valid formats: "yyyy-mm-dd".`),
		}},
		{Name: "party", Column: ColumnParty, Rules: []validation.Rule{
			validation.NotBlank(ColumnParty),
		}},
		{Name: "details", Column: ColumnDetails, Rules: []validation.Rule{
			validation.NotBlank(ColumnDetails),
		}},
		{Name: "amount", Column: ColumnAmount, Rules: []validation.Rule{
			validation.NotBlank(ColumnAmount),
			validation.Regex(ColumnAmount, `^\d+\.\d{2}$`, `Value must be formatted as float "x.yy".`),
		}},
		{Name: "currency", Column: ColumnCurrency, Rules: []validation.Rule{
			validation.NotBlank(ColumnCurrency),
			validation.Choice(ColumnCurrency, models.CurrencyEUR),
		}},
		{Name: "debitCreditIndicator", Column: ColumnDebitCreditIndicator, Rules: []validation.Rule{
			validation.NotBlank(ColumnDebitCreditIndicator),
			validation.Choice(ColumnDebitCreditIndicator, IndicatorCredit, IndicatorDebit),
		}},
		{Name: "transactionReference", Column: ColumnTransactionReference, Rules: []validation.Rule{
			validation.NotBlank(ColumnTransactionReference),
			validation.Regex(ColumnTransactionReference, `^\d{16}$`, "Value must be formatted as 16 digits."),
		}},
		{Name: "transactionType", Column: ColumnTransactionType, Rules: []validation.Rule{
			validation.NotBlank(ColumnTransactionType),
			validation.Choice(ColumnTransactionType, TransactionTypeMK),
		}},
		{Name: "clientReference", Column: ColumnClientReference, Rules: []validation.Rule{
			validation.Blank(ColumnClientReference, "Not used"),
		}},
		{Name: "documentNumber", Column: ColumnDocumentNumber},
	},
}

// TransactionRules are stacked on top of BaseRules for Transaction rows.
var TransactionRules = validation.RuleSet{
	Fields: []validation.FieldRules{
		{Name: "recordType", Column: ColumnRecordType, Rules: []validation.Rule{
			validation.Choice(ColumnRecordType, string(Transaction)),
		}},
		{Name: "transactionType", Column: ColumnTransactionType, Rules: []validation.Rule{
			validation.Choice(ColumnTransactionType, TransactionTypeMK),
		}},
	},
}

// rulesByType selects the rule set of each record type. Record types whose
// validation is not written yet report a single row-level violation.
var rulesByType = map[RecordType]validation.RuleSet{
	Transaction:     BaseRules.Extend(TransactionRules),
	OpeningBalance:  notImplemented(OpeningBalance),
	Turnover:        notImplemented(Turnover),
	ClosingBalance:  notImplemented(ClosingBalance),
	AccruedInterest: notImplemented(AccruedInterest),
}

// RulesFor returns the rule set of a Swedbank row. Rows that are not
// PaymentRows get the base rules.
func RulesFor(row models.Row) validation.RuleSet {
	payment, ok := row.(*PaymentRow)
	if !ok {
		return BaseRules
	}
	if rules, ok := rulesByType[payment.Type()]; ok {
		return rules
	}
	return BaseRules
}

func notImplemented(rt RecordType) validation.RuleSet {
	return validation.RuleSet{RowRules: []validation.RowRule{validation.NotImplemented(rt.Name())}}
}

func recordTypeValues() []string {
	values := make([]string, 0, len(recordTypes))
	for _, rt := range RecordTypes() {
		values = append(values, string(rt))
	}
	return values
}
