package generation

import (
	"context"
	"fmt"
	"time"

	"trackdesk/internal/catalog"
	"trackdesk/internal/records"
)

// Logger appends one generation_log record per provider exchange. Every
// call is logged, whether the provider answered, refused, or failed, so the
// log is a complete account of what was sent and received.
type Logger struct {
	store *records.Store
	now   func() time.Time
}

// NewLogger constructs a generation logger over the record store.
func NewLogger(store *records.Store) *Logger {
	return &Logger{store: store, now: time.Now}
}

// Log records one exchange and returns the new log record's id.
func (l *Logger) Log(ctx context.Context, generationType, prompt, response, entityID string) (string, error) {
	def := catalog.Get(catalog.KindGenerationLog)
	id := records.NewID()
	rec := records.Record{
		def.IDColumn:      id,
		"generation_type": generationType,
		"prompt":          prompt,
		"response":        response,
		"entity_id":       entityID,
		"timestamp":       l.now().UTC().Format(time.RFC3339),
	}
	if err := l.store.Append(ctx, def.Worksheet(), rec); err != nil {
		return "", fmt.Errorf("log generation: %w", err)
	}
	return id, nil
}
