package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"trackdesk/internal/catalog"
	"trackdesk/internal/forms"
)

func parseKind(arg string) (catalog.Kind, error) {
	kind := catalog.Kind(strings.ToLower(strings.TrimSpace(arg)))
	if _, ok := catalog.Lookup(kind); !ok {
		return "", fmt.Errorf("unknown entity kind %q (run 'trackdesk kinds' for the list)", arg)
	}
	return kind, nil
}

// parseFieldArgs turns repeated --field name=value flags into a submission.
// Multi-choice fields accept either repeated flags or one comma-joined value.
func parseFieldArgs(kind catalog.Kind, fieldArgs []string) (forms.Submission, error) {
	def := catalog.Get(kind)
	sub := forms.Submission{
		Values: map[string]string{},
		Multi:  map[string][]string{},
	}
	for _, arg := range fieldArgs {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return forms.Submission{}, fmt.Errorf("invalid --field %q, want name=value", arg)
		}
		name = strings.TrimSpace(name)
		field, known := def.Field(name)
		if !known {
			return forms.Submission{}, fmt.Errorf("unknown field %q for %s", name, kind)
		}
		if field.Type == catalog.MultiChoice {
			sub.Multi[name] = append(sub.Multi[name], strings.Split(value, ",")...)
			continue
		}
		sub.Values[name] = value
	}
	return sub, nil
}

// parseAttachArgs loads --attach field=path uploads from disk.
func parseAttachArgs(kind catalog.Kind, attachArgs []string) ([]forms.Attachment, error) {
	def := catalog.Get(kind)
	var attachments []forms.Attachment
	for _, arg := range attachArgs {
		name, path, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --attach %q, want field=path", arg)
		}
		name = strings.TrimSpace(name)
		field, known := def.Field(name)
		if !known || !field.IsAttachment() {
			return nil, fmt.Errorf("field %q is not an attachment field on %s", name, kind)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read attachment %q: %w", path, err)
		}
		attachments = append(attachments, forms.Attachment{
			Field: name,
			Name:  filepath.Base(path),
			Data:  data,
		})
	}
	return attachments, nil
}

// truncate shortens long cell values for table display.
func truncate(value string, limit int) string {
	value = strings.ReplaceAll(value, "\n", " ")
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit-1]) + "…"
}
