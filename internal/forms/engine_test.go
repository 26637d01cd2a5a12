package forms_test

import (
	"context"
	"errors"
	"testing"

	"trackdesk/internal/catalog"
	"trackdesk/internal/forms"
	"trackdesk/internal/media"
	"trackdesk/internal/records"
	"trackdesk/internal/resolve"
	"trackdesk/internal/testsupport"
)

func newEngine(t *testing.T) (*forms.Engine, *records.Store) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	resolver := resolve.New(store)
	engine := forms.New(store, resolver, media.NewStorage(cfg), nil)
	return engine, store
}

func TestCreateSeedsDefaultsAndEmptyColumns(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	styleID := testsupport.SeedNamed(t, store, catalog.KindMusicalStyles, "Ambient")

	result, err := engine.Create(ctx, catalog.KindTracks, forms.Submission{
		Values: map[string]string{
			"title": "First Light",
			"style": styleID,
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if result.ID == "" || result.Reload != catalog.KindTracks {
		t.Fatalf("unexpected result: %#v", result)
	}

	def := catalog.Get(catalog.KindTracks)
	rec, found, err := store.Get(ctx, def.Worksheet(), result.ID)
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if rec["title"] != "First Light" || rec["style"] != styleID {
		t.Fatalf("unexpected record: %#v", rec)
	}
	if rec["explicit"] != records.FalseToken {
		t.Fatalf("explicit default = %q, want FALSE", rec["explicit"])
	}
	if rec["status"] != "Draft" {
		t.Fatalf("status default = %q, want Draft", rec["status"])
	}
	if rec["lyrics"] != "" || rec["album"] != "" {
		t.Fatalf("unsupplied optional fields should persist empty: %#v", rec)
	}
}

func TestCreateAcceptsDisplayLabels(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	styleID := testsupport.SeedNamed(t, store, catalog.KindMusicalStyles, "Ambient")
	themeA := testsupport.SeedNamed(t, store, catalog.KindThemes, "Night")
	themeB := testsupport.SeedNamed(t, store, catalog.KindThemes, "Rain")

	result, err := engine.Create(ctx, catalog.KindTracks, forms.Submission{
		Values: map[string]string{
			"title": "Downpour",
			"style": styleID + " — Ambient",
		},
		Multi: map[string][]string{
			"themes": {themeA + " — Night", themeB + " — Rain"},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	def := catalog.Get(catalog.KindTracks)
	rec, _, err := store.Get(ctx, def.Worksheet(), result.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec["style"] != styleID {
		t.Fatalf("style = %q, want bare id %q", rec["style"], styleID)
	}
	if rec["themes"] != records.JoinList([]string{themeA, themeB}) {
		t.Fatalf("themes = %q", rec["themes"])
	}
}

func TestCreateNormalizesBooleans(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	styleID := testsupport.SeedNamed(t, store, catalog.KindMusicalStyles, "Ambient")

	result, err := engine.Create(ctx, catalog.KindTracks, forms.Submission{
		Values: map[string]string{
			"title":    "Loud One",
			"style":    styleID,
			"explicit": "yes",
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	def := catalog.Get(catalog.KindTracks)
	rec, _, _ := store.Get(ctx, def.Worksheet(), result.ID)
	if rec["explicit"] != records.TrueToken {
		t.Fatalf("explicit = %q, want TRUE", rec["explicit"])
	}
}

func TestCreateRejectsMissingRequiredField(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	_, err := engine.Create(ctx, catalog.KindTracks, forms.Submission{
		Values: map[string]string{"title": "No Style"},
	})
	ve, ok := forms.AsValidationError(err)
	if !ok {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if ve.Field != "style" {
		t.Fatalf("failed field = %q, want style", ve.Field)
	}

	// Validation failure must leave the worksheet untouched.
	count, err := store.Count(ctx, catalog.Get(catalog.KindTracks).Worksheet())
	if err != nil || count != 0 {
		t.Fatalf("Count = %d, %v; want 0 rows", count, err)
	}
}

func TestValidationReportsFirstFailureInSchemaOrder(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.Create(context.Background(), catalog.KindTracks, forms.Submission{})
	ve, ok := forms.AsValidationError(err)
	if !ok {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if ve.Field != "title" {
		t.Fatalf("first failure = %q, want title (schema order)", ve.Field)
	}
}

func TestUpdateTouchesOnlySuppliedFields(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	styleID := testsupport.SeedNamed(t, store, catalog.KindMusicalStyles, "Ambient")
	result, err := engine.Create(ctx, catalog.KindTracks, forms.Submission{
		Values: map[string]string{"title": "Original", "style": styleID, "bpm": "120"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := engine.Update(ctx, catalog.KindTracks, result.ID, forms.Submission{
		Values: map[string]string{"title": "Renamed"},
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	def := catalog.Get(catalog.KindTracks)
	rec, _, err := store.Get(ctx, def.Worksheet(), result.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec["title"] != "Renamed" {
		t.Fatalf("title = %q", rec["title"])
	}
	if rec["style"] != styleID || rec["bpm"] != "120" {
		t.Fatalf("unsupplied fields changed: %#v", rec)
	}
}

func TestUpdateValidatesSuppliedRequiredFields(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	styleID := testsupport.SeedNamed(t, store, catalog.KindMusicalStyles, "Ambient")
	result, err := engine.Create(ctx, catalog.KindTracks, forms.Submission{
		Values: map[string]string{"title": "Keeper", "style": styleID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Clearing a required field is rejected; omitting it entirely is fine.
	_, err = engine.Update(ctx, catalog.KindTracks, result.ID, forms.Submission{
		Values: map[string]string{"title": "  "},
	})
	if _, ok := forms.AsValidationError(err); !ok {
		t.Fatalf("error = %v, want *ValidationError", err)
	}

	if _, err := engine.Update(ctx, catalog.KindTracks, result.ID, forms.Submission{
		Values: map[string]string{"notes": "still fine"},
	}); err != nil {
		t.Fatalf("Update without required fields: %v", err)
	}
}

func TestCreateWithAttachment(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	styleID := testsupport.SeedNamed(t, store, catalog.KindMusicalStyles, "Ambient")
	result, err := engine.Create(ctx, catalog.KindTracks, forms.Submission{
		Values: map[string]string{"title": "With Clip", "style": styleID},
		Attachments: []forms.Attachment{
			{Field: "audio_clip_path", Name: "demo take.mp3", Data: []byte("audio-bytes")},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	def := catalog.Get(catalog.KindTracks)
	rec, _, err := store.Get(ctx, def.Worksheet(), result.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec["audio_clip_path"] == "" {
		t.Fatal("attachment path not written to record")
	}
}

type failingAttachments struct{}

func (failingAttachments) Attach(media.Class, string, []byte) (string, error) {
	return "", errors.New("disk full")
}

func TestAttachmentFailureAbortsCommit(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	engine := forms.New(store, resolve.New(store), failingAttachments{}, nil)
	ctx := context.Background()

	styleID := testsupport.SeedNamed(t, store, catalog.KindMusicalStyles, "Ambient")
	_, err := engine.Create(ctx, catalog.KindTracks, forms.Submission{
		Values: map[string]string{"title": "Doomed", "style": styleID},
		Attachments: []forms.Attachment{
			{Field: "audio_clip_path", Name: "take.mp3", Data: []byte("x")},
		},
	})
	var ae *forms.AttachmentError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v, want *AttachmentError", err)
	}
	if ae.Field != "audio_clip_path" {
		t.Fatalf("failed field = %q", ae.Field)
	}

	count, err := store.Count(ctx, catalog.Get(catalog.KindTracks).Worksheet())
	if err != nil || count != 0 {
		t.Fatalf("Count = %d, %v; aborted commit must not write", count, err)
	}
}

func TestAttachmentToNonAttachmentField(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	styleID := testsupport.SeedNamed(t, store, catalog.KindMusicalStyles, "Ambient")
	_, err := engine.Create(ctx, catalog.KindTracks, forms.Submission{
		Values: map[string]string{"title": "Bad Upload", "style": styleID},
		Attachments: []forms.Attachment{
			{Field: "notes", Name: "notes.txt", Data: []byte("x")},
		},
	})
	var ae *forms.AttachmentError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v, want *AttachmentError", err)
	}
}

func TestEngineOptionsResolvesByFieldName(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	testsupport.SeedNamed(t, store, catalog.KindMusicalStyles, "Ambient")

	options, err := engine.Options(ctx, catalog.KindTracks, "style")
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}

	if _, err := engine.Options(ctx, catalog.KindTracks, "nope"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
