package config

const (
	defaultConfigPath   = "~/.config/ytmeta/config.toml"
	projectConfigName   = "ytmeta.toml"
	defaultYtDlp        = "yt-dlp"
	defaultWhisper      = "whisper"
	defaultFFmpeg       = "ffmpeg"
	defaultModel        = "medium"
	defaultLanguage     = "hi"
	defaultAudioFormat  = "mp3"
	defaultAudioQuality = "0"
	defaultKeepDir      = "/tmp"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			YtDlp:   defaultYtDlp,
			Whisper: defaultWhisper,
			FFmpeg:  defaultFFmpeg,
		},
		Transcription: Transcription{
			Model:    defaultModel,
			Language: defaultLanguage,
		},
		Audio: Audio{
			Format:  defaultAudioFormat,
			Quality: defaultAudioQuality,
		},
		Paths: Paths{
			KeepDir: defaultKeepDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
