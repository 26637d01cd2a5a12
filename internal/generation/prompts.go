package generation

import (
	"fmt"
	"strings"

	"trackdesk/internal/records"
)

const lyricsSystemPrompt = `You are a lyricist collaborating on an original song.
Write complete, structured lyrics only. No commentary, no chord notation.`

const styleSystemPrompt = `You are a music production consultant.
Suggest a concise stylistic direction for the artist described. Plain prose only.`

// lyricsPromptInput carries the resolved display values a lyrics prompt
// is built from. Reference ids have already been converted to names.
type lyricsPromptInput struct {
	Title        string
	Style        string
	LyricalStyle string
	Themes       []string
	Moods        []string
	VocalStyle   string
	Structure    string
	Rules        []string
}

func buildLyricsPrompt(in lyricsPromptInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write lyrics for a song titled %q.\n", in.Title)
	if in.Style != "" {
		fmt.Fprintf(&b, "Musical style: %s.\n", in.Style)
	}
	if in.LyricalStyle != "" {
		fmt.Fprintf(&b, "Lyrical style: %s.\n", in.LyricalStyle)
	}
	if len(in.Themes) > 0 {
		fmt.Fprintf(&b, "Themes: %s.\n", strings.Join(in.Themes, ", "))
	}
	if len(in.Moods) > 0 {
		fmt.Fprintf(&b, "Moods: %s.\n", strings.Join(in.Moods, ", "))
	}
	if in.VocalStyle != "" {
		fmt.Fprintf(&b, "Vocal style: %s.\n", in.VocalStyle)
	}
	if in.Structure != "" {
		fmt.Fprintf(&b, "Song structure: %s.\n", in.Structure)
	}
	if len(in.Rules) > 0 {
		b.WriteString("Follow these rules:\n")
		for _, rule := range in.Rules {
			fmt.Fprintf(&b, "- %s\n", rule)
		}
	}
	return b.String()
}

func buildStylePrompt(artist records.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest a stylistic direction for the artist %q.\n", artist["name"])
	if bio := strings.TrimSpace(artist["bio"]); bio != "" {
		fmt.Fprintf(&b, "Artist bio: %s\n", bio)
	}
	return b.String()
}
