package generation_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"trackdesk/internal/catalog"
	"trackdesk/internal/generation"
	"trackdesk/internal/records"
	"trackdesk/internal/services/llm"
	"trackdesk/internal/testsupport"
)

type stubProvider struct {
	text    string
	err     error
	prompts []string
	systems []string
}

func (p *stubProvider) Generate(_ context.Context, prompt string, params llm.Params) (llm.Result, error) {
	p.prompts = append(p.prompts, prompt)
	p.systems = append(p.systems, params.SystemPrompt)
	if p.err != nil {
		return llm.Result{}, p.err
	}
	return llm.Result{Text: p.text}, nil
}

func seedTrack(t *testing.T, store *records.Store, styleID string) string {
	t.Helper()
	return testsupport.SeedRecord(t, store, catalog.KindTracks, map[string]string{
		"title": "Night Drive",
		"style": styleID,
	})
}

func logEntries(t *testing.T, store *records.Store) []records.Record {
	t.Helper()
	rows, err := store.List(context.Background(), catalog.Get(catalog.KindGenerationLog).Worksheet())
	if err != nil {
		t.Fatalf("List generation_log: %v", err)
	}
	return rows
}

func TestLyricsWritesTrackAndLog(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	provider := &stubProvider{text: "Verse one\nChorus"}
	gen := generation.New(store, provider, generation.NewLogger(store), nil, nil)

	ctx := context.Background()
	styleID := testsupport.SeedNamed(t, store, catalog.KindMusicalStyles, "Synthwave")
	trackID := seedTrack(t, store, styleID)

	text, err := gen.Lyrics(ctx, trackID)
	if err != nil {
		t.Fatalf("Lyrics: %v", err)
	}
	if text != "Verse one\nChorus" {
		t.Fatalf("text = %q", text)
	}

	// Prompt references the style by display name, not id.
	if len(provider.prompts) != 1 || !strings.Contains(provider.prompts[0], "Synthwave") {
		t.Fatalf("prompt = %q", provider.prompts)
	}
	if strings.Contains(provider.prompts[0], styleID) {
		t.Fatalf("prompt leaked raw id: %q", provider.prompts[0])
	}

	track, _, err := store.Get(ctx, catalog.Get(catalog.KindTracks).Worksheet(), trackID)
	if err != nil {
		t.Fatalf("Get track: %v", err)
	}
	if track["lyrics"] != text {
		t.Fatalf("lyrics column = %q", track["lyrics"])
	}

	entries := logEntries(t, store)
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	entry := entries[0]
	if entry["generation_type"] != "lyrics" || entry["entity_id"] != trackID {
		t.Fatalf("unexpected log entry: %#v", entry)
	}
	if entry["response"] != text || entry["prompt"] == "" {
		t.Fatalf("log entry missing exchange: %#v", entry)
	}
	if entry["timestamp"] == "" {
		t.Fatal("log entry missing timestamp")
	}
}

func TestLyricsBlockedGenerationIsLogged(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	provider := &stubProvider{err: &llm.BlockedError{Reason: "refused"}}
	gen := generation.New(store, provider, generation.NewLogger(store), nil, nil)

	ctx := context.Background()
	styleID := testsupport.SeedNamed(t, store, catalog.KindMusicalStyles, "Synthwave")
	trackID := seedTrack(t, store, styleID)

	_, err := gen.Lyrics(ctx, trackID)
	var blocked *llm.BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("error = %v, want *BlockedError", err)
	}

	entries := logEntries(t, store)
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	if entries[0]["response"] != "BLOCKED: refused" {
		t.Fatalf("response = %q", entries[0]["response"])
	}

	// A blocked generation never touches the track.
	track, _, _ := store.Get(ctx, catalog.Get(catalog.KindTracks).Worksheet(), trackID)
	if track["lyrics"] != "" {
		t.Fatalf("lyrics written despite block: %q", track["lyrics"])
	}
}

func TestLyricsProviderFailureIsLogged(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	provider := &stubProvider{err: errors.New("connection reset")}
	gen := generation.New(store, provider, generation.NewLogger(store), nil, nil)

	ctx := context.Background()
	styleID := testsupport.SeedNamed(t, store, catalog.KindMusicalStyles, "Synthwave")
	trackID := seedTrack(t, store, styleID)

	if _, err := gen.Lyrics(ctx, trackID); err == nil {
		t.Fatal("expected provider error")
	}

	entries := logEntries(t, store)
	if len(entries) != 1 || !strings.HasPrefix(entries[0]["response"], "ERROR: ") {
		t.Fatalf("log entries = %#v", entries)
	}
}

func TestLyricsUnknownTrack(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	provider := &stubProvider{text: "unused"}
	gen := generation.New(store, provider, generation.NewLogger(store), nil, nil)

	if _, err := gen.Lyrics(context.Background(), "absent"); err == nil {
		t.Fatal("expected error for unknown track")
	}
	if len(provider.prompts) != 0 {
		t.Fatal("provider called for unknown track")
	}
}

func TestLyricsDanglingReferenceFallsBackToID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	provider := &stubProvider{text: "ok"}
	gen := generation.New(store, provider, generation.NewLogger(store), nil, nil)

	trackID := seedTrack(t, store, "gone123")
	if _, err := gen.Lyrics(context.Background(), trackID); err != nil {
		t.Fatalf("Lyrics: %v", err)
	}
	if !strings.Contains(provider.prompts[0], "gone123") {
		t.Fatalf("dangling id missing from prompt: %q", provider.prompts[0])
	}
}

func TestLyricsAppliesActiveRules(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	provider := &stubProvider{text: "ok"}
	gen := generation.New(store, provider, generation.NewLogger(store), nil, nil)

	styleID := testsupport.SeedNamed(t, store, catalog.KindMusicalStyles, "Synthwave")
	trackID := seedTrack(t, store, styleID)

	testsupport.SeedRecord(t, store, catalog.KindGenerationRule, map[string]string{
		"name": "no cliches", "rule_text": "Avoid cliches", "applies_to": "lyrics", "active": records.TrueToken,
	})
	testsupport.SeedRecord(t, store, catalog.KindGenerationRule, map[string]string{
		"name": "inactive", "rule_text": "Rhyme everything", "applies_to": "lyrics", "active": records.FalseToken,
	})
	testsupport.SeedRecord(t, store, catalog.KindGenerationRule, map[string]string{
		"name": "album only", "rule_text": "Album rule", "applies_to": "album", "active": records.TrueToken,
	})

	if _, err := gen.Lyrics(context.Background(), trackID); err != nil {
		t.Fatalf("Lyrics: %v", err)
	}
	prompt := provider.prompts[0]
	if !strings.Contains(prompt, "Avoid cliches") {
		t.Fatalf("active rule missing: %q", prompt)
	}
	if strings.Contains(prompt, "Rhyme everything") || strings.Contains(prompt, "Album rule") {
		t.Fatalf("inactive or mismatched rule applied: %q", prompt)
	}
}

func TestStyleSuggestion(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	provider := &stubProvider{text: "Lean into tape saturation."}
	gen := generation.New(store, provider, generation.NewLogger(store), nil, nil)

	ctx := context.Background()
	artistID := testsupport.SeedRecord(t, store, catalog.KindArtists, map[string]string{
		"name": "Vera Nocturne",
		"bio":  "Late-night electronic artist.",
	})

	text, err := gen.StyleSuggestion(ctx, artistID)
	if err != nil {
		t.Fatalf("StyleSuggestion: %v", err)
	}
	if text != "Lean into tape saturation." {
		t.Fatalf("text = %q", text)
	}
	if !strings.Contains(provider.prompts[0], "Vera Nocturne") {
		t.Fatalf("prompt = %q", provider.prompts[0])
	}

	entries := logEntries(t, store)
	if len(entries) != 1 || entries[0]["generation_type"] != "style_suggestion" {
		t.Fatalf("log entries = %#v", entries)
	}

	// Suggestions are advisory; the artist record stays untouched.
	artist, _, _ := store.Get(ctx, catalog.Get(catalog.KindArtists).Worksheet(), artistID)
	if artist["bio"] != "Late-night electronic artist." {
		t.Fatalf("artist mutated: %#v", artist)
	}
}
