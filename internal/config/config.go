package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir  string `toml:"data_dir"`
	LogDir   string `toml:"log_dir"`
	MediaDir string `toml:"media_dir"`
}

// Media contains the per-content-type subdirectories under MediaDir.
// Values are relative names resolved against Paths.MediaDir.
type Media struct {
	AudioClipsDir     string `toml:"audio_clips_dir"`
	SongCoversDir     string `toml:"song_covers_dir"`
	AlbumCoversDir    string `toml:"album_covers_dir"`
	GeneratedTextsDir string `toml:"generated_texts_dir"`
}

// LLM contains connection settings for the text-generation provider.
type LLM struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	Referer        string `toml:"referer"`
	Title          string `toml:"title"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Catalog contains schema-resolution behavior toggles.
type Catalog struct {
	// LegacyNameInference enables the name-based fallback that guesses a
	// reference field's id/display columns from the field name when the
	// schema does not declare them. Off unless explicitly requested.
	LegacyNameInference bool `toml:"legacy_name_inference"`
}

// Config encapsulates all configuration values for trackdesk.
//
// Configuration sections by subsystem:
//   - Paths: data, log, and media root directories
//   - Media: per-content-type subdirectories for attachments
//   - LLM: text-generation provider connection settings
//   - Logging: log format and level
//   - Catalog: schema resolution toggles
type Config struct {
	Paths   Paths   `toml:"paths"`
	Media   Media   `toml:"media"`
	LLM     LLM     `toml:"llm"`
	Logging Logging `toml:"logging"`
	Catalog Catalog `toml:"catalog"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/trackdesk/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("trackdesk.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories required for store and media writes.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.DataDir, c.Paths.LogDir}
	dirs = append(dirs, c.MediaDirs()...)
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// MediaDirs returns the absolute per-content-type attachment directories.
func (c *Config) MediaDirs() []string {
	return []string{
		c.AudioClipsDir(),
		c.SongCoversDir(),
		c.AlbumCoversDir(),
		c.GeneratedTextsDir(),
	}
}

// AudioClipsDir returns the absolute directory for uploaded audio clips.
func (c *Config) AudioClipsDir() string {
	return filepath.Join(c.Paths.MediaDir, c.Media.AudioClipsDir)
}

// SongCoversDir returns the absolute directory for track cover images.
func (c *Config) SongCoversDir() string {
	return filepath.Join(c.Paths.MediaDir, c.Media.SongCoversDir)
}

// AlbumCoversDir returns the absolute directory for album cover images.
func (c *Config) AlbumCoversDir() string {
	return filepath.Join(c.Paths.MediaDir, c.Media.AlbumCoversDir)
}

// GeneratedTextsDir returns the absolute directory for generated text files.
func (c *Config) GeneratedTextsDir() string {
	return filepath.Join(c.Paths.MediaDir, c.Media.GeneratedTextsDir)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// LLMConfig contains the provider connection settings in normalized form.
type LLMConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	Referer        string
	Title          string
	TimeoutSeconds int
}

// GetLLM returns the text-generation provider connection settings.
func (c *Config) GetLLM() LLMConfig {
	return LLMConfig{
		APIKey:         strings.TrimSpace(c.LLM.APIKey),
		BaseURL:        strings.TrimSpace(c.LLM.BaseURL),
		Model:          strings.TrimSpace(c.LLM.Model),
		Referer:        strings.TrimSpace(c.LLM.Referer),
		Title:          strings.TrimSpace(c.LLM.Title),
		TimeoutSeconds: c.LLM.TimeoutSeconds,
	}
}
