package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldName      = "name"
	FieldID        = "id"
	FieldCount     = "count"
	FieldError     = "error"
)

const (
	ComponentApp         = "app"
	ComponentAccount     = "account"
	ComponentType        = "transaction_type"
	ComponentTransaction = "transaction"
	ComponentSchedule    = "schedule"
	ComponentDashboard   = "dashboard"
)

const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpClear  = "clear"
	OpLoad   = "load"
	OpSeed   = "seed"
)
