package logging

// Standardized field names for structured log output. Using the same keys
// everywhere keeps the logs filterable when the JSON format is enabled.
const (
	FieldFile       = "file_path"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldReportFile = "report_file"
	FieldCount      = "count"
	FieldBlocks     = "purchase_blocks"
	FieldDate       = "date"
	FieldItem       = "item"
	FieldAmount     = "amount"
	FieldReason     = "reason"
	FieldDelimiter  = "delimiter"
)
