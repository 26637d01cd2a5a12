package records

import (
	"strings"

	"github.com/google/uuid"
)

// Record is one worksheet row: a mapping of column name to string value.
// Column order is defined by the owning worksheet's header, not the map.
type Record map[string]string

// Canonical boolean tokens. The store is text-only, so boolean fields are
// persisted as exactly one of these two values.
const (
	TrueToken  = "TRUE"
	FalseToken = "FALSE"
)

// listSeparator joins multi-value fields into a single stored string.
const listSeparator = ","

// Clone returns a copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	clone := make(Record, len(r))
	for column, value := range r {
		clone[column] = value
	}
	return clone
}

// Values returns the record's values in header order, defaulting missing
// columns to the empty string.
func (r Record) Values(header []string) []string {
	values := make([]string, len(header))
	for i, column := range header {
		values[i] = r[column]
	}
	return values
}

// BoolToken converts a native bool to its canonical stored token.
func BoolToken(value bool) string {
	if value {
		return TrueToken
	}
	return FalseToken
}

// IsTrue reports whether a stored value is the canonical true token.
func IsTrue(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), TrueToken)
}

// JoinList encodes a multi-value field as a single comma-joined string.
// Empty entries are dropped and whitespace trimmed.
func JoinList(values []string) string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return strings.Join(cleaned, listSeparator)
}

// SplitList decodes a comma-joined multi-value field. The empty string
// decodes to no values.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, listSeparator)
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		values = append(values, trimmed)
	}
	return values
}

// NewID returns a fresh row identifier. Identifiers are never reused; a
// deleted row's id stays retired.
func NewID() string {
	id := uuid.NewString()
	if idx := strings.IndexByte(id, '-'); idx > 0 {
		return id[:idx]
	}
	return id
}
