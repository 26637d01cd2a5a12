package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"trackdesk/internal/catalog"
	"trackdesk/internal/logging"
	"trackdesk/internal/media"
	"trackdesk/internal/records"
	"trackdesk/internal/services/llm"
)

// Provider is the text-generation boundary. Satisfied by *llm.Client.
type Provider interface {
	Generate(ctx context.Context, prompt string, params llm.Params) (llm.Result, error)
}

// TextStore persists generated texts. Satisfied by *media.Storage.
type TextStore interface {
	Attach(class media.Class, originalName string, data []byte) (string, error)
}

// Generator drives the content-generation flows: it assembles prompts from
// stored records, calls the provider, logs every exchange, and writes the
// results back into records and media storage.
type Generator struct {
	store    *records.Store
	provider Provider
	log      *Logger
	texts    TextStore
	logger   *slog.Logger
}

// New constructs a generator.
func New(store *records.Store, provider Provider, log *Logger, texts TextStore, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Generator{
		store:    store,
		provider: provider,
		log:      log,
		texts:    texts,
		logger:   logging.WithComponent(logger, "generation"),
	}
}

// Lyrics generates lyrics for the track, stores the text under the
// generated_texts directory, and writes it into the track's lyrics column.
// The exchange is logged regardless of outcome; a provider refusal is
// returned as *llm.BlockedError with the log already written.
func (g *Generator) Lyrics(ctx context.Context, trackID string) (string, error) {
	def := catalog.Get(catalog.KindTracks)
	track, found, err := g.store.Get(ctx, def.Worksheet(), trackID)
	if err != nil {
		return "", fmt.Errorf("generate lyrics: %w", err)
	}
	if !found {
		return "", fmt.Errorf("generate lyrics: track %s not found", trackID)
	}

	input := lyricsPromptInput{
		Title:        track["title"],
		Style:        g.displayName(ctx, catalog.KindMusicalStyles, track["style"]),
		LyricalStyle: g.displayName(ctx, catalog.KindLyricalStyles, track["lyrical_style"]),
		Themes:       g.displayNames(ctx, catalog.KindThemes, track["themes"]),
		Moods:        g.displayNames(ctx, catalog.KindMoods, track["moods"]),
		VocalStyle:   g.displayName(ctx, catalog.KindVocalStyles, track["vocal_style"]),
		Structure:    g.displayName(ctx, catalog.KindSongStructures, track["structure"]),
		Rules:        g.activeRules(ctx, "lyrics"),
	}
	prompt := buildLyricsPrompt(input)

	text, err := g.run(ctx, "lyrics", prompt, lyricsSystemPrompt, trackID)
	if err != nil {
		return "", err
	}

	columns := map[string]string{"lyrics": text}
	if g.texts != nil {
		name := fmt.Sprintf("lyrics_%s.txt", trackID)
		if path, attachErr := g.texts.Attach(media.GeneratedText, name, []byte(text)); attachErr == nil {
			g.logger.Debug("generated text stored", slog.String("path", path))
		} else {
			g.logger.Warn("generated text not stored", slog.String("error", attachErr.Error()))
		}
	}
	if err := g.store.Update(ctx, def.Worksheet(), trackID, columns); err != nil {
		return "", fmt.Errorf("generate lyrics: save: %w", err)
	}
	return text, nil
}

// StyleSuggestion generates a stylistic direction for the artist. The text
// is returned to the caller; only the exchange log is persisted.
func (g *Generator) StyleSuggestion(ctx context.Context, artistID string) (string, error) {
	def := catalog.Get(catalog.KindArtists)
	artist, found, err := g.store.Get(ctx, def.Worksheet(), artistID)
	if err != nil {
		return "", fmt.Errorf("generate style: %w", err)
	}
	if !found {
		return "", fmt.Errorf("generate style: artist %s not found", artistID)
	}

	prompt := buildStylePrompt(artist)
	return g.run(ctx, "style_suggestion", prompt, styleSystemPrompt, artistID)
}

// run calls the provider and logs the exchange whatever the outcome.
// Blocked and failed generations are logged with the literal reason or
// error detail before the error is returned.
func (g *Generator) run(ctx context.Context, generationType, prompt, systemPrompt, entityID string) (string, error) {
	result, genErr := g.provider.Generate(ctx, prompt, llm.Params{
		SystemPrompt: systemPrompt,
		Temperature:  0.7,
	})

	response := result.Text
	var blocked *llm.BlockedError
	switch {
	case genErr == nil:
	case errors.As(genErr, &blocked):
		response = "BLOCKED: " + blocked.Reason
	default:
		response = "ERROR: " + genErr.Error()
	}

	if _, logErr := g.log.Log(ctx, generationType, prompt, response, entityID); logErr != nil {
		g.logger.Warn("generation log write failed",
			slog.String(logging.FieldGenerationType, generationType),
			slog.String("error", logErr.Error()),
		)
	}

	if genErr != nil {
		return "", genErr
	}

	g.logger.Info("generation completed",
		slog.String(logging.FieldGenerationType, generationType),
		slog.String(logging.FieldRecordID, entityID),
	)
	return result.Text, nil
}

func (g *Generator) displayName(ctx context.Context, kind catalog.Kind, id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	def := catalog.Get(kind)
	rec, found, err := g.store.Get(ctx, def.Worksheet(), id)
	if err != nil || !found {
		// Dangling reference: fall back to the raw id rather than failing
		// the whole generation.
		return id
	}
	if name := strings.TrimSpace(rec[def.DisplayColumn]); name != "" {
		return name
	}
	return id
}

func (g *Generator) displayNames(ctx context.Context, kind catalog.Kind, joined string) []string {
	ids := records.SplitList(joined)
	if len(ids) == 0 {
		return nil
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, g.displayName(ctx, kind, id))
	}
	return names
}

func (g *Generator) activeRules(ctx context.Context, appliesTo string) []string {
	def := catalog.Get(catalog.KindGenerationRule)
	rows, err := g.store.List(ctx, def.Worksheet())
	if err != nil {
		g.logger.Warn("generation rules unavailable", slog.String("error", err.Error()))
		return nil
	}
	var rules []string
	for _, row := range rows {
		if !records.IsTrue(row["active"]) {
			continue
		}
		if target := strings.TrimSpace(row["applies_to"]); target != "" && target != appliesTo {
			continue
		}
		if rule := strings.TrimSpace(row["rule_text"]); rule != "" {
			rules = append(rules, rule)
		}
	}
	return rules
}
