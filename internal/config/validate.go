package config

import (
	"errors"
	"fmt"
	"strings"

	"ytmeta/internal/language"
	"ytmeta/internal/services/whisper"
)

var supportedAudioFormats = []string{"best", "aac", "alac", "flac", "m4a", "mp3", "opus", "vorbis", "wav"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateTranscription(); err != nil {
		return err
	}
	if err := c.validateAudio(); err != nil {
		return err
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTools() error {
	if strings.TrimSpace(c.Tools.YtDlp) == "" {
		return errors.New("tools.ytdlp must be set")
	}
	if strings.TrimSpace(c.Tools.Whisper) == "" {
		return errors.New("tools.whisper must be set")
	}
	return nil
}

func (c *Config) validateTranscription() error {
	if _, err := whisper.ParseModel(c.Transcription.Model); err != nil {
		return fmt.Errorf("transcription.model: %w", err)
	}
	if err := language.Validate(c.Transcription.Language); err != nil {
		return fmt.Errorf("transcription.language: %w", err)
	}
	return nil
}

func (c *Config) validateAudio() error {
	for _, format := range supportedAudioFormats {
		if c.Audio.Format == format {
			if c.Audio.Quality == "" {
				return errors.New("audio.quality must be set")
			}
			return nil
		}
	}
	return fmt.Errorf("audio.format must be one of %s (got %q)", strings.Join(supportedAudioFormats, ", "), c.Audio.Format)
}

func (c *Config) validatePaths() error {
	if c.Paths.KeepDir == "" {
		return errors.New("paths.keep_dir must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error (got %q)", c.Logging.Level)
	}
	return nil
}
