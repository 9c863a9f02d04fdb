package swedbankparser

// RecordType tags a Swedbank row with the kind of record it holds. It is
// decided once, from the record type column, when the row is built.
type RecordType string

// Record types of a Swedbank account statement
const (
	OpeningBalance  RecordType = "10"
	Transaction     RecordType = "20"
	Turnover        RecordType = "82"
	ClosingBalance  RecordType = "86"
	AccruedInterest RecordType = "900"
)

// recordTypes maps the record type column value to its row type.
var recordTypes = map[string]RecordType{
	string(OpeningBalance):  OpeningBalance,
	string(Transaction):     Transaction,
	string(Turnover):        Turnover,
	string(ClosingBalance):  ClosingBalance,
	string(AccruedInterest): AccruedInterest,
}

var recordTypeNames = map[RecordType]string{
	OpeningBalance:  "OpeningBalance",
	Transaction:     "Transaction",
	Turnover:        "Turnover",
	ClosingBalance:  "ClosingBalance",
	AccruedInterest: "AccruedInterest",
}

// RecordTypes lists the known record types in column value order.
func RecordTypes() []RecordType {
	return []RecordType{OpeningBalance, Transaction, Turnover, ClosingBalance, AccruedInterest}
}

// LookupRecordType returns the record type for a column value.
func LookupRecordType(value string) (RecordType, bool) {
	rt, ok := recordTypes[value]
	return rt, ok
}

// Name returns the row type name, e.g. "Transaction".
func (rt RecordType) Name() string {
	if name, ok := recordTypeNames[rt]; ok {
		return name
	}
	return "Unknown"
}

func (rt RecordType) String() string {
	return string(rt)
}
