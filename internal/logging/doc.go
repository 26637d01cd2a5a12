// Package logging builds the slog loggers used across trackdesk.
//
// It offers a console handler tuned for interactive use and a JSON handler
// for machine consumption, selected via configuration. Standardized field
// keys (component, kind, record_id, operation) keep output greppable.
package logging
