package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"trackdesk/internal/config"
)

// Class identifies the content type of an attachment and therefore the
// directory it is stored under.
type Class string

const (
	AudioClip     Class = "audio_clip"
	SongCover     Class = "song_cover"
	AlbumCover    Class = "album_cover"
	GeneratedText Class = "generated_text"
)

// ErrUnsupportedExtension indicates the uploaded file's extension is not
// allowed for its content class.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

var allowedExtensions = map[Class][]string{
	AudioClip:     {".mp3", ".wav", ".flac", ".ogg", ".m4a"},
	SongCover:     {".png", ".jpg", ".jpeg", ".webp"},
	AlbumCover:    {".png", ".jpg", ".jpeg", ".webp"},
	GeneratedText: {".txt", ".md"},
}

// Storage persists uploaded binaries under the configured media root and
// hands back store-ready relative paths.
type Storage struct {
	root string
	dirs map[Class]string
}

// NewStorage builds attachment storage from the configured media layout.
func NewStorage(cfg *config.Config) *Storage {
	return &Storage{
		root: cfg.Paths.MediaDir,
		dirs: map[Class]string{
			AudioClip:     cfg.AudioClipsDir(),
			SongCover:     cfg.SongCoversDir(),
			AlbumCover:    cfg.AlbumCoversDir(),
			GeneratedText: cfg.GeneratedTextsDir(),
		},
	}
}

// Attach writes data into the class directory under a collision-free name
// derived from the original. It returns the path relative to the media root,
// which is what gets persisted in records.
func (s *Storage) Attach(class Class, originalName string, data []byte) (string, error) {
	dir, ok := s.dirs[class]
	if !ok {
		return "", fmt.Errorf("attach: unknown media class %q", class)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !extensionAllowed(class, ext) {
		return "", fmt.Errorf("attach %q: %w", originalName, ErrUnsupportedExtension)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("attach: create directory %q: %w", dir, err)
	}

	name := attachmentName(originalName, ext)
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("attach: write %q: %w", target, err)
	}

	rel, err := filepath.Rel(s.root, target)
	if err != nil {
		return "", fmt.Errorf("attach: relativize %q: %w", target, err)
	}
	return filepath.ToSlash(rel), nil
}

// Resolve maps a stored relative path back to an absolute one under the
// media root.
func (s *Storage) Resolve(relPath string) string {
	return filepath.Join(s.root, filepath.FromSlash(relPath))
}

func extensionAllowed(class Class, ext string) bool {
	for _, allowed := range allowedExtensions[class] {
		if ext == allowed {
			return true
		}
	}
	return false
}

// attachmentName combines a sanitized base name with a timestamp and short
// random suffix so repeated uploads of the same file never collide.
func attachmentName(originalName, ext string) string {
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	base = sanitizeBaseName(base)
	if base == "" {
		base = "upload"
	}
	stamp := time.Now().UTC().Format("20060102T150405")
	suffix := uuid.NewString()
	if idx := strings.IndexByte(suffix, '-'); idx > 0 {
		suffix = suffix[:idx]
	}
	return base + "_" + stamp + "_" + suffix + ext
}

func sanitizeBaseName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.':
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
