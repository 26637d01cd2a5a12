package catalog

// FieldType identifies how a field collects and stores its value.
type FieldType string

const (
	ShortText     FieldType = "short_text"
	LongText      FieldType = "long_text"
	SingleChoice  FieldType = "single_choice"
	MultiChoice   FieldType = "multi_choice"
	Date          FieldType = "date"
	Number        FieldType = "number"
	Boolean       FieldType = "boolean"
	AttachedAudio FieldType = "attached_audio"
	AttachedImage FieldType = "attached_image"
)

// Field describes one column of an entity kind's schema.
type Field struct {
	// Name is both the form label and the worksheet column.
	Name string
	Type FieldType
	// Required fields reject empty submissions during validation.
	Required bool
	// Options is a static enumeration for choice fields without a
	// referenced kind.
	Options []string
	// OptionsKind references another entity kind whose records supply the
	// selectable options. The stored value is that kind's id column value.
	OptionsKind Kind
	// OptionsIDCol / OptionsNameCol override the referenced kind's id and
	// display columns. Leave empty to use the kind's canonical pair.
	OptionsIDCol   string
	OptionsNameCol string
	// Default seeds the field on create.
	Default string
}

// IsChoice reports whether the field selects from resolved options.
func (f Field) IsChoice() bool {
	return f.Type == SingleChoice || f.Type == MultiChoice
}

// IsAttachment reports whether the field stores an uploaded media path.
func (f Field) IsAttachment() bool {
	return f.Type == AttachedAudio || f.Type == AttachedImage
}
