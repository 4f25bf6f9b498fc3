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

	"ytmeta/internal/services/whisper"
	"ytmeta/internal/services/ytdlp"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools contains the external executables the pipeline invokes.
type Tools struct {
	YtDlp   string `toml:"ytdlp"`
	Whisper string `toml:"whisper"`
	FFmpeg  string `toml:"ffmpeg"`
}

// Transcription contains the defaults for the --model and --language flags.
type Transcription struct {
	Model    string `toml:"model"`
	Language string `toml:"language"`
}

// Audio contains yt-dlp audio extraction settings.
type Audio struct {
	Format  string `toml:"format"`
	Quality string `toml:"quality"`
}

// Paths contains directory configuration.
type Paths struct {
	// ScratchDir is the parent of per-run scratch directories. Empty means the
	// operating system temp directory.
	ScratchDir string `toml:"scratch_dir"`
	// KeepDir receives audio retained with --keep-audio.
	KeepDir string `toml:"keep_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for ytmeta.
//
// Configuration sections by subsystem:
//   - Tools: yt-dlp, whisper and ffmpeg executables
//   - Transcription: default model size and language hint
//   - Audio: extraction format and quality
//   - Paths: scratch and keep directories
//   - Logging: log format and level
type Config struct {
	Tools         Tools         `toml:"tools"`
	Transcription Transcription `toml:"transcription"`
	Audio         Audio         `toml:"audio"`
	Paths         Paths         `toml:"paths"`
	Logging       Logging       `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
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
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
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

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
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

// ScratchParent returns the directory under which per-run scratch
// directories are created.
func (c *Config) ScratchParent() string {
	if strings.TrimSpace(c.Paths.ScratchDir) == "" {
		return os.TempDir()
	}
	return c.Paths.ScratchDir
}

// EnsureScratchDir creates the configured scratch parent. The keep directory
// is left alone; it is only created by a run that keeps audio.
func (c *Config) EnsureScratchDir() error {
	dir := strings.TrimSpace(c.Paths.ScratchDir)
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
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

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// YtDlpConfig returns the yt-dlp client settings derived from the config.
func (c *Config) YtDlpConfig() ytdlp.Config {
	cfg := ytdlp.Config{
		Binary:       c.Tools.YtDlp,
		AudioFormat:  c.Audio.Format,
		AudioQuality: c.Audio.Quality,
	}
	if c.Tools.FFmpeg != defaultFFmpeg {
		cfg.FFmpegLocation = c.Tools.FFmpeg
	}
	return cfg
}

// WhisperConfig returns the whisper service settings derived from the config.
func (c *Config) WhisperConfig() whisper.Config {
	return whisper.Config{Binary: c.Tools.Whisper}
}
