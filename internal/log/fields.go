package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldUserID          = "user_id"
	FieldActivityType    = "activity_type"
	FieldDurationMinutes = "duration_minutes"
	FieldIntensity       = "intensity"
	FieldActivityDate    = "activity_date"
	FieldWeekStart       = "week_start"
	FieldWeekEnd         = "week_end"
	FieldPeriodStart     = "period_start"
	FieldPeriodEnd       = "period_end"
	FieldExportFormat    = "export_format"
	FieldExportPath      = "export_path"
)

// Components defines standard component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentStorage = "storage"
	ComponentTracker = "tracker"
	ComponentReport  = "report"
	ComponentCache   = "cache"
	ComponentBackend = "backend"
)

// Operations defines standard operation names.
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpUpsert   = "upsert"
	OpList     = "list"
	OpSummary  = "summary"
	OpExport   = "export"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
