package logging

import "log/slog"

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldKind is the standardized structured logging key for entity kind names.
	FieldKind = "kind"
	// FieldRecordID is the standardized structured logging key for record identifiers.
	FieldRecordID = "record_id"
	// FieldOperation is the standardized structured logging key for CRUD operation names.
	FieldOperation = "operation"
	// FieldGenerationType is the standardized structured logging key for generation flow names.
	FieldGenerationType = "generation_type"
)

// WithComponent returns a logger scoped to the named component.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}
