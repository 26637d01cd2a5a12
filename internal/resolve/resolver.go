package resolve

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"trackdesk/internal/catalog"
	"trackdesk/internal/records"
)

// Option is one selectable value: the stored id plus its display label.
type Option struct {
	ID    string
	Label string
}

const (
	// displaySeparator joins id and display value in option labels.
	displaySeparator = " — "
	// asciiSeparator is the legacy plain-hyphen variant still found in
	// values written by older clients.
	asciiSeparator = " - "
)

// Resolver materializes field options from the record store and converts
// between stored ids and display labels. A resolver caches loaded
// collections, so its lifetime should match one request or form pass.
type Resolver struct {
	store      *records.Store
	inferKinds bool
	collator   *collate.Collator
	cache      map[catalog.Kind][]records.Record
}

// ResolverOption customizes resolver construction.
type ResolverOption func(*Resolver)

// WithLegacyInference enables name-based inference of a field's referenced
// kind when the schema declares none.
func WithLegacyInference(enabled bool) ResolverOption {
	return func(r *Resolver) {
		r.inferKinds = enabled
	}
}

// New constructs a resolver over the supplied store.
func New(store *records.Store, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:    store,
		collator: collate.New(language.English, collate.IgnoreCase),
		cache:    make(map[catalog.Kind][]records.Record),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reset drops cached collections so subsequent lookups re-fetch.
func (r *Resolver) Reset() {
	r.cache = make(map[catalog.Kind][]records.Record)
}

// Options resolves the selectable options for a field. Static enumerations
// are returned verbatim; reference fields load the referenced kind's records
// and label them "id — display". An empty referenced collection yields only
// the unset option, never an error.
func (r *Resolver) Options(ctx context.Context, field catalog.Field) ([]Option, error) {
	if len(field.Options) > 0 {
		options := make([]Option, 0, len(field.Options)+1)
		if !field.Required {
			options = append(options, Option{})
		}
		for _, value := range field.Options {
			options = append(options, Option{ID: value, Label: value})
		}
		return options, nil
	}

	kind := field.OptionsKind
	if kind == "" && r.inferKinds {
		if inferred, ok := catalog.InferOptionsKind(field.Name); ok {
			kind = inferred
		}
	}
	if kind == "" {
		// Free-form field with no option source.
		return []Option{{}}, nil
	}

	def := catalog.Get(kind)
	idCol := def.IDColumn
	nameCol := def.DisplayColumn
	if field.OptionsIDCol != "" {
		idCol = field.OptionsIDCol
	}
	if field.OptionsNameCol != "" {
		nameCol = field.OptionsNameCol
	}

	rows, err := r.load(ctx, kind)
	if err != nil {
		return nil, err
	}

	options := make([]Option, 0, len(rows)+1)
	options = append(options, Option{})
	for _, row := range rows {
		id := strings.TrimSpace(row[idCol])
		if id == "" {
			continue
		}
		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			name = id
		}
		options = append(options, Option{ID: id, Label: id + displaySeparator + name})
	}

	r.sortByLabel(options[1:])
	return options, nil
}

func (r *Resolver) load(ctx context.Context, kind catalog.Kind) ([]records.Record, error) {
	if cached, ok := r.cache[kind]; ok {
		return cached, nil
	}
	rows, err := r.store.List(ctx, catalog.Get(kind).Worksheet())
	if err != nil {
		return nil, fmt.Errorf("resolve options for %s: %w", kind, err)
	}
	r.cache[kind] = rows
	return rows, nil
}

func (r *Resolver) sortByLabel(options []Option) {
	// Order by the display portion of the label so renamed records keep a
	// stable, human-sensible ordering regardless of id.
	keys := make([]string, len(options))
	for i, opt := range options {
		keys[i] = displayPortion(opt.Label)
	}
	for i := 1; i < len(options); i++ {
		for j := i; j > 0 && r.collator.CompareString(keys[j], keys[j-1]) < 0; j-- {
			options[j], options[j-1] = options[j-1], options[j]
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
}

func displayPortion(label string) string {
	if idx := strings.Index(label, displaySeparator); idx >= 0 {
		return label[idx+len(displaySeparator):]
	}
	if idx := strings.Index(label, asciiSeparator); idx >= 0 {
		return label[idx+len(asciiSeparator):]
	}
	return label
}

// DisplayToID extracts the stored id from a display label. The split happens
// on the first separator occurrence; the left segment is returned verbatim.
// Malformed or empty input yields the empty string, never an error.
func DisplayToID(display string) string {
	trimmed := strings.TrimSpace(display)
	if trimmed == "" {
		return ""
	}
	if idx := strings.Index(trimmed, displaySeparator); idx >= 0 {
		return strings.TrimSpace(trimmed[:idx])
	}
	if idx := strings.Index(trimmed, asciiSeparator); idx >= 0 {
		return strings.TrimSpace(trimmed[:idx])
	}
	return trimmed
}

// DefaultIndex locates the option matching the current stored value when
// editing. It matches by id first, then falls back to display-name equality
// (a referenced record may have been renamed), and finally to the unset or
// first index so a dangling reference never crashes the form.
func DefaultIndex(current string, options []Option) int {
	trimmed := strings.TrimSpace(current)
	if trimmed == "" || len(options) == 0 {
		return 0
	}
	for i, opt := range options {
		if opt.ID == trimmed {
			return i
		}
	}
	for i, opt := range options {
		if opt.Label == "" {
			continue
		}
		if strings.EqualFold(displayPortion(opt.Label), trimmed) {
			return i
		}
	}
	return 0
}
