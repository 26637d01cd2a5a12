package main

import (
	"testing"

	"trackdesk/internal/catalog"
)

func TestParseKind(t *testing.T) {
	kind, err := parseKind("  Tracks ")
	if err != nil || kind != catalog.KindTracks {
		t.Fatalf("parseKind = %q, %v", kind, err)
	}
	if _, err := parseKind("playlists"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestParseFieldArgs(t *testing.T) {
	sub, err := parseFieldArgs(catalog.KindTracks, []string{
		"title=First Light",
		"themes=th1,th2",
		"themes=th3",
		"bpm=120",
	})
	if err != nil {
		t.Fatalf("parseFieldArgs: %v", err)
	}
	if sub.Values["title"] != "First Light" || sub.Values["bpm"] != "120" {
		t.Fatalf("values = %#v", sub.Values)
	}
	if got := sub.Multi["themes"]; len(got) != 3 || got[0] != "th1" || got[2] != "th3" {
		t.Fatalf("multi = %#v", sub.Multi)
	}
}

func TestParseFieldArgsRejectsBadInput(t *testing.T) {
	if _, err := parseFieldArgs(catalog.KindTracks, []string{"no-equals"}); err == nil {
		t.Fatal("expected error for missing =")
	}
	if _, err := parseFieldArgs(catalog.KindTracks, []string{"bogus=1"}); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParseFieldArgsKeepsEqualsInValue(t *testing.T) {
	sub, err := parseFieldArgs(catalog.KindTracks, []string{"notes=a=b"})
	if err != nil {
		t.Fatalf("parseFieldArgs: %v", err)
	}
	if sub.Values["notes"] != "a=b" {
		t.Fatalf("notes = %q", sub.Values["notes"])
	}
}

func TestParseAttachArgsValidatesField(t *testing.T) {
	if _, err := parseAttachArgs(catalog.KindTracks, []string{"notes=/tmp/x.txt"}); err == nil {
		t.Fatal("notes is not an attachment field")
	}
	if _, err := parseAttachArgs(catalog.KindTracks, []string{"audio_clip_path=/nonexistent/clip.mp3"}); err == nil {
		t.Fatal("expected error for unreadable file")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("multi\nline", 10); got != "multi line" {
		t.Fatalf("truncate = %q", got)
	}
	got := truncate("abcdefghij", 5)
	if got != "abcd…" {
		t.Fatalf("truncate = %q", got)
	}
}

func TestRenderPlain(t *testing.T) {
	out := renderPlain([]string{"ID", "NAME"}, [][]string{{"a1", "Ambient"}})
	if out != "ID\tNAME\na1\tAmbient" {
		t.Fatalf("renderPlain = %q", out)
	}
}
