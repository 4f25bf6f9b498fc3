package ytdlp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"ytmeta/internal/services"
)

// DownloadAudio extracts best-quality audio for url into dir and returns the
// path of the resulting file. dir must already exist.
func (c *Client) DownloadAudio(ctx context.Context, url, dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("download audio: output directory required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("download audio: inspect output directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("download audio: %s is not a directory", dir)
	}

	args := c.buildDownloadArgs(url, dir)
	if _, err := services.RunTool(ctx, c.runner, c.cfg.Binary, args...); err != nil {
		return "", fmt.Errorf("download audio: %w", err)
	}

	path, _, err := FindAudio(dir)
	if err != nil {
		return "", fmt.Errorf("download audio: %w", err)
	}
	return path, nil
}

func (c *Client) buildDownloadArgs(url, dir string) []string {
	args := []string{
		"-x",
		"--audio-format", c.cfg.AudioFormat,
		"--audio-quality", c.cfg.AudioQuality,
		"--no-progress",
		"--no-warnings",
		"--output", filepath.Join(dir, OutputTemplate),
	}
	if location := strings.TrimSpace(c.cfg.FFmpegLocation); location != "" {
		args = append(args, "--ffmpeg-location", location)
	}
	return append(args, "--", url)
}

type audioCandidate struct {
	name    string
	modTime time.Time
}

// FindAudio scans dir for extracted audio files and returns the preferred
// candidate along with the number of candidates seen. When several files
// match, the most recently modified wins and ties fall back to file name order.
func FindAudio(dir string) (string, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", 0, fmt.Errorf("scan %s: %w", dir, err)
	}

	candidates := make([]audioCandidate, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !isAudioFile(name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		candidates = append(candidates, audioCandidate{name: name, modTime: info.ModTime()})
	}
	if len(candidates) == 0 {
		return "", 0, &services.OutputNotFoundError{Path: dir, Pattern: AudioPattern}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].modTime.Equal(candidates[j].modTime) {
			return candidates[i].modTime.After(candidates[j].modTime)
		}
		return candidates[i].name < candidates[j].name
	})

	path, err := filepath.Abs(filepath.Join(dir, candidates[0].name))
	if err != nil {
		return "", 0, fmt.Errorf("resolve audio path: %w", err)
	}
	return path, len(candidates), nil
}

func isAudioFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	_, ok := audioExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}
