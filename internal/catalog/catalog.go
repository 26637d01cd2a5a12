package catalog

import (
	"fmt"

	"trackdesk/internal/records"
)

// Kind names an entity collection.
type Kind string

const (
	KindTracks         Kind = "tracks"
	KindAlbums         Kind = "albums"
	KindArtists        Kind = "artists"
	KindMusicalStyles  Kind = "musical_styles"
	KindLyricalStyles  Kind = "lyrical_styles"
	KindThemes         Kind = "themes"
	KindMoods          Kind = "moods"
	KindInstruments    Kind = "instruments"
	KindVocalStyles    Kind = "vocal_styles"
	KindSongStructures Kind = "song_structures"
	KindGenerationRule Kind = "generation_rules"
	KindProjects       Kind = "projects"
	KindToolReferences Kind = "tool_references"
	KindTimelineEvents Kind = "timeline_events"
	KindManualLyrics   Kind = "manual_lyrics"
	KindGenerationLog  Kind = "generation_log"
)

// Definition describes one entity kind: its worksheet identity plus the
// ordered field schema shared by every record in the collection.
type Definition struct {
	Kind          Kind
	IDColumn      string
	DisplayColumn string
	Fields        []Field
}

// Header returns the worksheet column set: the id column followed by every
// field column in schema order.
func (d Definition) Header() []string {
	header := make([]string, 0, len(d.Fields)+1)
	header = append(header, d.IDColumn)
	for _, field := range d.Fields {
		header = append(header, field.Name)
	}
	return header
}

// Worksheet returns the records-layer addressing for the kind.
func (d Definition) Worksheet() records.Worksheet {
	return records.Worksheet{
		Name:     string(d.Kind),
		IDColumn: d.IDColumn,
		Header:   d.Header(),
	}
}

// Field returns the named field descriptor.
func (d Definition) Field(name string) (Field, bool) {
	for _, field := range d.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

func taxonomy(kind Kind) Definition {
	return Definition{
		Kind:          kind,
		IDColumn:      "id",
		DisplayColumn: "name",
		Fields: []Field{
			{Name: "name", Type: ShortText, Required: true},
			{Name: "description", Type: LongText},
		},
	}
}

var definitions = func() map[Kind]Definition {
	defs := []Definition{
		taxonomy(KindMusicalStyles),
		taxonomy(KindLyricalStyles),
		taxonomy(KindThemes),
		taxonomy(KindMoods),
		taxonomy(KindInstruments),
		taxonomy(KindVocalStyles),
		{
			Kind:          KindSongStructures,
			IDColumn:      "id",
			DisplayColumn: "name",
			Fields: []Field{
				{Name: "name", Type: ShortText, Required: true},
				{Name: "sections", Type: LongText},
			},
		},
		{
			Kind:          KindGenerationRule,
			IDColumn:      "id",
			DisplayColumn: "name",
			Fields: []Field{
				{Name: "name", Type: ShortText, Required: true},
				{Name: "rule_text", Type: LongText},
				{Name: "applies_to", Type: SingleChoice, Options: []string{"track", "album", "lyrics"}},
				{Name: "active", Type: Boolean, Default: records.TrueToken},
			},
		},
		{
			Kind:          KindProjects,
			IDColumn:      "id",
			DisplayColumn: "name",
			Fields: []Field{
				{Name: "name", Type: ShortText, Required: true},
				{Name: "description", Type: LongText},
				{Name: "status", Type: SingleChoice, Options: []string{"Planned", "Active", "Completed"}, Default: "Planned"},
				{Name: "start_date", Type: Date},
			},
		},
		{
			Kind:          KindToolReferences,
			IDColumn:      "id",
			DisplayColumn: "name",
			Fields: []Field{
				{Name: "name", Type: ShortText, Required: true},
				{Name: "url", Type: ShortText},
				{Name: "notes", Type: LongText},
			},
		},
		{
			Kind:          KindTimelineEvents,
			IDColumn:      "id",
			DisplayColumn: "title",
			Fields: []Field{
				{Name: "title", Type: ShortText, Required: true},
				{Name: "date", Type: Date},
				{Name: "project", Type: SingleChoice, OptionsKind: KindProjects},
				{Name: "notes", Type: LongText},
			},
		},
		{
			Kind:          KindArtists,
			IDColumn:      "id",
			DisplayColumn: "name",
			Fields: []Field{
				{Name: "name", Type: ShortText, Required: true},
				{Name: "bio", Type: LongText},
				{Name: "style", Type: SingleChoice, OptionsKind: KindMusicalStyles},
				{Name: "vocal_style", Type: SingleChoice, OptionsKind: KindVocalStyles},
			},
		},
		{
			Kind:          KindAlbums,
			IDColumn:      "id",
			DisplayColumn: "title",
			Fields: []Field{
				{Name: "title", Type: ShortText, Required: true},
				{Name: "artist", Type: SingleChoice, OptionsKind: KindArtists},
				{Name: "release_date", Type: Date},
				{Name: "status", Type: SingleChoice, Options: []string{"Draft", "In Progress", "Released"}, Default: "Draft"},
				{Name: "description", Type: LongText},
				{Name: "album_cover_path", Type: AttachedImage},
			},
		},
		{
			Kind:          KindTracks,
			IDColumn:      "id",
			DisplayColumn: "title",
			Fields: []Field{
				{Name: "title", Type: ShortText, Required: true},
				{Name: "artist", Type: SingleChoice, OptionsKind: KindArtists},
				{Name: "album", Type: SingleChoice, OptionsKind: KindAlbums},
				{Name: "style", Type: SingleChoice, Required: true, OptionsKind: KindMusicalStyles},
				{Name: "lyrical_style", Type: SingleChoice, OptionsKind: KindLyricalStyles},
				{Name: "themes", Type: MultiChoice, OptionsKind: KindThemes},
				{Name: "moods", Type: MultiChoice, OptionsKind: KindMoods},
				{Name: "instruments", Type: MultiChoice, OptionsKind: KindInstruments},
				{Name: "vocal_style", Type: SingleChoice, OptionsKind: KindVocalStyles},
				{Name: "structure", Type: SingleChoice, OptionsKind: KindSongStructures},
				{Name: "project", Type: SingleChoice, OptionsKind: KindProjects},
				{Name: "bpm", Type: Number},
				{Name: "explicit", Type: Boolean, Default: records.FalseToken},
				{Name: "status", Type: SingleChoice, Options: []string{"Draft", "In Progress", "Finalized"}, Default: "Draft"},
				{Name: "lyrics", Type: LongText},
				{Name: "audio_clip_path", Type: AttachedAudio},
				{Name: "cover_path", Type: AttachedImage},
				{Name: "notes", Type: LongText},
			},
		},
		{
			Kind:          KindManualLyrics,
			IDColumn:      "id",
			DisplayColumn: "title",
			Fields: []Field{
				{Name: "title", Type: ShortText, Required: true},
				{Name: "track", Type: SingleChoice, OptionsKind: KindTracks},
				{Name: "text", Type: LongText},
			},
		},
		{
			Kind:          KindGenerationLog,
			IDColumn:      "id",
			DisplayColumn: "generation_type",
			Fields: []Field{
				{Name: "generation_type", Type: ShortText, Required: true},
				{Name: "prompt", Type: LongText},
				{Name: "response", Type: LongText},
				{Name: "entity_id", Type: ShortText},
				{Name: "timestamp", Type: Date},
				{Name: "feedback", Type: LongText},
			},
		},
	}

	byKind := make(map[Kind]Definition, len(defs))
	for _, def := range defs {
		byKind[def.Kind] = def
	}
	return byKind
}()

var kindOrder = []Kind{
	KindTracks,
	KindAlbums,
	KindArtists,
	KindMusicalStyles,
	KindLyricalStyles,
	KindThemes,
	KindMoods,
	KindInstruments,
	KindVocalStyles,
	KindSongStructures,
	KindGenerationRule,
	KindProjects,
	KindToolReferences,
	KindTimelineEvents,
	KindManualLyrics,
	KindGenerationLog,
}

// Lookup returns the definition for kind, reporting whether it exists.
func Lookup(kind Kind) (Definition, bool) {
	def, ok := definitions[kind]
	return def, ok
}

// Get returns the definition for kind. An unknown kind is a programmer
// error and panics.
func Get(kind Kind) Definition {
	def, ok := definitions[kind]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown entity kind %q", kind))
	}
	return def
}

// Schema returns the ordered field schema for kind.
func Schema(kind Kind) []Field {
	return Get(kind).Fields
}

// IDColumn returns the unique identifier column for kind.
func IDColumn(kind Kind) string {
	return Get(kind).IDColumn
}

// DisplayColumn returns the human-readable label column for kind.
func DisplayColumn(kind Kind) string {
	return Get(kind).DisplayColumn
}

// Kinds enumerates every known entity kind in catalog order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}
