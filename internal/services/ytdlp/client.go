package ytdlp

import (
	"strings"

	"ytmeta/internal/services"
)

// Client invokes yt-dlp through a command runner.
type Client struct {
	cfg    Config
	runner services.CommandRunner
}

// NewClient creates a yt-dlp client with the given configuration.
func NewClient(cfg Config) *Client {
	if strings.TrimSpace(cfg.Binary) == "" {
		cfg.Binary = DefaultBinary
	}
	if strings.TrimSpace(cfg.AudioFormat) == "" {
		cfg.AudioFormat = DefaultAudioFormat
	}
	if strings.TrimSpace(cfg.AudioQuality) == "" {
		cfg.AudioQuality = DefaultAudioQuality
	}
	return &Client{
		cfg:    cfg,
		runner: services.ExecRunner{},
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func (c *Client) WithCommandRunner(runner services.CommandRunner) {
	if runner == nil {
		runner = services.ExecRunner{}
	}
	c.runner = runner
}

// Binary returns the configured yt-dlp executable.
func (c *Client) Binary() string {
	return c.cfg.Binary
}
