package logging

// Standardized field names for structured logging.
const (
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
	FieldDestination   = "destination"
	FieldActivityID    = "activity_id"
	FieldActivityType  = "activity_type"
	FieldSubType       = "sub_type"
	FieldStatus        = "status"
	FieldTransactionID = "transaction_id"
	FieldAccountID     = "account_id"
	FieldCategory      = "category"
	FieldFormat        = "format"
	FieldReason        = "reason"
	FieldCount         = "count"
	FieldExcluded      = "excluded"
	FieldRunID         = "run_id"
	FieldError         = "error"
)
