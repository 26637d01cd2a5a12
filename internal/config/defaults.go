package config

const (
	defaultDataDir           = "~/.local/share/trackdesk/data"
	defaultLogDir            = "~/.local/share/trackdesk/logs"
	defaultMediaDir          = "~/.local/share/trackdesk/media"
	defaultAudioClipsDir     = "audio_clips"
	defaultSongCoversDir     = "song_covers"
	defaultAlbumCoversDir    = "album_covers"
	defaultGeneratedTextsDir = "generated_texts"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLLMBaseURL        = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMModel          = "google/gemini-3-flash-preview"
	defaultLLMTitle          = "Trackdesk Generation"
	defaultLLMTimeoutSeconds = 60
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:  defaultDataDir,
			LogDir:   defaultLogDir,
			MediaDir: defaultMediaDir,
		},
		Media: Media{
			AudioClipsDir:     defaultAudioClipsDir,
			SongCoversDir:     defaultSongCoversDir,
			AlbumCoversDir:    defaultAlbumCoversDir,
			GeneratedTextsDir: defaultGeneratedTextsDir,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			Model:          defaultLLMModel,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
