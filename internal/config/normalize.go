package config

import (
	"fmt"
	"os"
	"strings"

	"ytmeta/internal/language"
)

func (c *Config) normalize() error {
	c.normalizeTools()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTranscription()
	c.normalizeAudio()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeTools() {
	if value, ok := os.LookupEnv("YTMETA_YTDLP"); ok && strings.TrimSpace(value) != "" {
		c.Tools.YtDlp = value
	}
	if value, ok := os.LookupEnv("YTMETA_WHISPER"); ok && strings.TrimSpace(value) != "" {
		c.Tools.Whisper = value
	}
	if value, ok := os.LookupEnv("YTMETA_FFMPEG"); ok && strings.TrimSpace(value) != "" {
		c.Tools.FFmpeg = value
	}
	c.Tools.YtDlp = strings.TrimSpace(c.Tools.YtDlp)
	if c.Tools.YtDlp == "" {
		c.Tools.YtDlp = defaultYtDlp
	}
	c.Tools.Whisper = strings.TrimSpace(c.Tools.Whisper)
	if c.Tools.Whisper == "" {
		c.Tools.Whisper = defaultWhisper
	}
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = defaultFFmpeg
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.ScratchDir) != "" {
		if c.Paths.ScratchDir, err = expandPath(strings.TrimSpace(c.Paths.ScratchDir)); err != nil {
			return fmt.Errorf("paths.scratch_dir: %w", err)
		}
	} else {
		c.Paths.ScratchDir = ""
	}
	if strings.TrimSpace(c.Paths.KeepDir) == "" {
		c.Paths.KeepDir = defaultKeepDir
	}
	if c.Paths.KeepDir, err = expandPath(strings.TrimSpace(c.Paths.KeepDir)); err != nil {
		return fmt.Errorf("paths.keep_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTranscription() {
	c.Transcription.Model = strings.ToLower(strings.TrimSpace(c.Transcription.Model))
	if c.Transcription.Model == "" {
		c.Transcription.Model = defaultModel
	}
	c.Transcription.Language = language.Canonical(c.Transcription.Language)
}

func (c *Config) normalizeAudio() {
	c.Audio.Format = strings.ToLower(strings.TrimSpace(c.Audio.Format))
	if c.Audio.Format == "" {
		c.Audio.Format = defaultAudioFormat
	}
	c.Audio.Quality = strings.TrimSpace(c.Audio.Quality)
	if c.Audio.Quality == "" {
		c.Audio.Quality = defaultAudioQuality
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch c.Logging.Level {
	case "":
		c.Logging.Level = defaultLogLevel
	case "warning":
		c.Logging.Level = "warn"
	}
}
