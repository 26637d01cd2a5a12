package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMedia()
	c.normalizeLLM()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.MediaDir) == "" {
		c.Paths.MediaDir = defaultMediaDir
	}
	if c.Paths.MediaDir, err = expandPath(c.Paths.MediaDir); err != nil {
		return fmt.Errorf("paths.media_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMedia() {
	if strings.TrimSpace(c.Media.AudioClipsDir) == "" {
		c.Media.AudioClipsDir = defaultAudioClipsDir
	}
	if strings.TrimSpace(c.Media.SongCoversDir) == "" {
		c.Media.SongCoversDir = defaultSongCoversDir
	}
	if strings.TrimSpace(c.Media.AlbumCoversDir) == "" {
		c.Media.AlbumCoversDir = defaultAlbumCoversDir
	}
	if strings.TrimSpace(c.Media.GeneratedTextsDir) == "" {
		c.Media.GeneratedTextsDir = defaultGeneratedTextsDir
	}
}

func (c *Config) normalizeLLM() {
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		if key, ok := os.LookupEnv("TRACKDESK_LLM_API_KEY"); ok {
			c.LLM.APIKey = strings.TrimSpace(key)
		}
	}
	if strings.TrimSpace(c.LLM.BaseURL) == "" {
		c.LLM.BaseURL = defaultLLMBaseURL
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		c.LLM.Model = defaultLLMModel
	}
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = defaultLLMTimeoutSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
