package catalog

import "strings"

// legacyReferences maps field-name fragments to the entity kind they
// historically referenced. Early worksheet schemas carried no explicit
// options metadata, so reference columns were recognized by name alone.
// The table exists only for those schemas and is consulted solely when
// catalog.legacy_name_inference is enabled in config.
var legacyReferences = []struct {
	fragment string
	kind     Kind
}{
	{"vocal_style", KindVocalStyles},
	{"lyrical_style", KindLyricalStyles},
	{"style", KindMusicalStyles},
	{"theme", KindThemes},
	{"mood", KindMoods},
	{"instrument", KindInstruments},
	{"structure", KindSongStructures},
	{"artist", KindArtists},
	{"album", KindAlbums},
	{"track", KindTracks},
	{"project", KindProjects},
}

// InferOptionsKind guesses the referenced entity kind from a field name.
// Explicit descriptor metadata always wins; callers must only fall back to
// this when the schema declares no OptionsKind and legacy inference is
// enabled.
func InferOptionsKind(fieldName string) (Kind, bool) {
	lowered := strings.ToLower(strings.TrimSpace(fieldName))
	if lowered == "" {
		return "", false
	}
	for _, entry := range legacyReferences {
		if strings.Contains(lowered, entry.fragment) {
			return entry.kind, true
		}
	}
	return "", false
}
