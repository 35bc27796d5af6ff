package logschema

// Log schema constants for arraysaver structured logs.
const (
	SchemaID    = "arraysaver.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent = "component"
	FieldEvent     = "event"
	FieldPath      = "path"
	FieldRows      = "rows"
	FieldCols      = "cols"
	FieldError     = "error"
)
