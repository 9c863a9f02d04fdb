package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldParser     = "parser"
	FieldFormat     = "format"
	FieldLine       = "line_id"
	FieldRecordType = "record_type"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldViolations = "violations"
	FieldSkipped    = "skipped"
	FieldDelimiter  = "delimiter"
	FieldWorkers    = "workers"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
