package forms

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"trackdesk/internal/catalog"
	"trackdesk/internal/logging"
	"trackdesk/internal/media"
	"trackdesk/internal/records"
	"trackdesk/internal/resolve"
)

// AttachmentStore persists uploaded binaries. Satisfied by *media.Storage.
type AttachmentStore interface {
	Attach(class media.Class, originalName string, data []byte) (string, error)
}

// Attachment carries an uploaded binary destined for one attachment field.
type Attachment struct {
	Field string
	Name  string
	Data  []byte
}

// Submission is the collected field input for one Create or Update pass.
// Values holds single-valued fields; Multi holds the collected sets for
// multi-choice fields, joined during the collecting transition.
type Submission struct {
	Values      map[string]string
	Multi       map[string][]string
	Attachments []Attachment
}

// Result reports a committed workflow. Reload names the collection the
// caller must re-fetch before further interaction; the engine never updates
// caches incrementally.
type Result struct {
	Kind   catalog.Kind
	ID     string
	Reload catalog.Kind
}

// Engine runs the generic Create, Update, and Delete workflows for any
// entity kind the catalog knows.
type Engine struct {
	store    *records.Store
	resolver *resolve.Resolver
	media    AttachmentStore
	logger   *slog.Logger
}

// New constructs an engine. The resolver should share the engine's request
// lifetime so option caches stay coherent.
func New(store *records.Store, resolver *resolve.Resolver, attachments AttachmentStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		store:    store,
		resolver: resolver,
		media:    attachments,
		logger:   logging.WithComponent(logger, "forms"),
	}
}

// Options resolves the selectable options for one field of the kind. Form
// renderers call this per choice field before collecting input.
func (e *Engine) Options(ctx context.Context, kind catalog.Kind, fieldName string) ([]resolve.Option, error) {
	def := catalog.Get(kind)
	field, ok := def.Field(fieldName)
	if !ok {
		return nil, fmt.Errorf("options: unknown field %q on %s", fieldName, kind)
	}
	return e.resolver.Options(ctx, field)
}

// Create runs the full create workflow: collect per schema order, validate
// required fields (first failure wins), persist attachments, assign a fresh
// id, and append one complete row.
func (e *Engine) Create(ctx context.Context, kind catalog.Kind, sub Submission) (Result, error) {
	def := catalog.Get(kind)

	columns := e.collect(def, sub, true)
	if err := e.validate(def, columns, nil); err != nil {
		return Result{}, err
	}

	if err := e.commitAttachments(def, sub.Attachments, columns); err != nil {
		return Result{}, err
	}

	id := records.NewID()
	rec := make(records.Record, len(columns)+1)
	for column, value := range columns {
		rec[column] = value
	}
	rec[def.IDColumn] = id

	if err := e.store.Append(ctx, def.Worksheet(), rec); err != nil {
		return Result{}, fmt.Errorf("create %s: %w", kind, err)
	}

	e.logger.Info("record created",
		slog.String(logging.FieldKind, string(kind)),
		slog.String(logging.FieldRecordID, id),
		slog.String(logging.FieldOperation, "create"),
	)
	return Result{Kind: kind, ID: id, Reload: kind}, nil
}

// Update runs the update workflow for one existing row: validate the
// supplied fields, persist attachments, and overwrite exactly the submitted
// columns. Unspecified columns keep their prior values.
func (e *Engine) Update(ctx context.Context, kind catalog.Kind, id string, sub Submission) (Result, error) {
	def := catalog.Get(kind)

	columns := e.collect(def, sub, false)
	supplied := make(map[string]bool, len(columns))
	for column := range columns {
		supplied[column] = true
	}
	if err := e.validate(def, columns, supplied); err != nil {
		return Result{}, err
	}

	if err := e.commitAttachments(def, sub.Attachments, columns); err != nil {
		return Result{}, err
	}

	if len(columns) == 0 {
		return Result{Kind: kind, ID: id, Reload: kind}, nil
	}

	if err := e.store.Update(ctx, def.Worksheet(), id, columns); err != nil {
		return Result{}, fmt.Errorf("update %s: %w", kind, err)
	}

	e.logger.Info("record updated",
		slog.String(logging.FieldKind, string(kind)),
		slog.String(logging.FieldRecordID, id),
		slog.String(logging.FieldOperation, "update"),
	)
	return Result{Kind: kind, ID: id, Reload: kind}, nil
}

// collect gathers submitted values in schema order. When seeding (create),
// every schema column is materialized, falling back to field defaults and
// empty strings; updates only carry the supplied fields. Multi-choice sets
// are joined into their stored comma form here, on the way out of
// collecting.
func (e *Engine) collect(def catalog.Definition, sub Submission, seedDefaults bool) map[string]string {
	columns := make(map[string]string)
	for _, field := range def.Fields {
		if values, ok := sub.Multi[field.Name]; ok && field.Type == catalog.MultiChoice {
			ids := make([]string, 0, len(values))
			for _, value := range values {
				if id := resolve.DisplayToID(value); id != "" {
					ids = append(ids, id)
				}
			}
			columns[field.Name] = records.JoinList(ids)
			continue
		}

		value, ok := sub.Values[field.Name]
		if !ok {
			if seedDefaults {
				columns[field.Name] = field.Default
			}
			continue
		}
		columns[field.Name] = normalizeValue(field, value)
	}
	return columns
}

func normalizeValue(field catalog.Field, value string) string {
	trimmed := strings.TrimSpace(value)
	switch field.Type {
	case catalog.SingleChoice:
		return resolve.DisplayToID(trimmed)
	case catalog.MultiChoice:
		ids := make([]string, 0, 4)
		for _, part := range records.SplitList(trimmed) {
			if id := resolve.DisplayToID(part); id != "" {
				ids = append(ids, id)
			}
		}
		return records.JoinList(ids)
	case catalog.Boolean:
		if trimmed == "" {
			return ""
		}
		return records.BoolToken(parseBool(trimmed))
	default:
		return trimmed
	}
}

func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "yes", "y", "1", strings.ToLower(records.TrueToken):
		return true
	}
	return false
}

// validate rejects on the first empty required field in schema order. When
// supplied is non-nil (update), only supplied fields are checked.
func (e *Engine) validate(def catalog.Definition, columns map[string]string, supplied map[string]bool) error {
	for _, field := range def.Fields {
		if !field.Required {
			continue
		}
		if supplied != nil && !supplied[field.Name] {
			continue
		}
		if strings.TrimSpace(columns[field.Name]) == "" {
			return &ValidationError{
				Kind:   def.Kind,
				Field:  field.Name,
				Reason: "required value is missing",
			}
		}
	}
	return nil
}

// commitAttachments persists every uploaded binary and writes the returned
// relative paths into the destination columns. Any failure aborts the whole
// commit before the store is touched.
func (e *Engine) commitAttachments(def catalog.Definition, attachments []Attachment, columns map[string]string) error {
	for _, attachment := range attachments {
		field, ok := def.Field(attachment.Field)
		if !ok || !field.IsAttachment() {
			return &AttachmentError{
				Field: attachment.Field,
				Err:   fmt.Errorf("not an attachment field on %s", def.Kind),
			}
		}
		if e.media == nil {
			return &AttachmentError{Field: attachment.Field, Err: fmt.Errorf("no attachment storage configured")}
		}
		class := attachmentClass(def.Kind, field)
		path, err := e.media.Attach(class, attachment.Name, attachment.Data)
		if err != nil {
			return &AttachmentError{Field: attachment.Field, Err: err}
		}
		columns[field.Name] = path
	}
	return nil
}

// attachmentClass maps an attachment field to its media class. Audio always
// lands in the clip directory; images split by entity kind because album
// covers live apart from song covers.
func attachmentClass(kind catalog.Kind, field catalog.Field) media.Class {
	if field.Type == catalog.AttachedAudio {
		return media.AudioClip
	}
	if kind == catalog.KindAlbums {
		return media.AlbumCover
	}
	return media.SongCover
}
