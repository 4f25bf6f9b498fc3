package preflight

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"ytmeta/internal/config"
	"ytmeta/internal/deps"
	"ytmeta/internal/services"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// SystemRequirements lists the external binaries the pipeline needs.
func SystemRequirements(cfg *config.Config) []deps.Requirement {
	return []deps.Requirement{
		{
			Name:        "yt-dlp",
			Command:     cfg.Tools.YtDlp,
			Description: "Required for metadata and audio download",
			VersionArgs: []string{"--version"},
		},
		{
			Name:        "FFmpeg",
			Command:     deps.ResolveFFmpegPath(cfg.Tools.FFmpeg, cfg.Tools.YtDlp),
			Description: "Required by yt-dlp for audio extraction",
			VersionArgs: []string{"-version"},
		},
		{
			Name:        "Whisper",
			Command:     cfg.Tools.Whisper,
			Description: "Required for transcription",
		},
	}
}

// CheckSystemDeps evaluates all system-level dependencies for the given
// config and probes versions of the tools that report one. A nil runner
// executes the real binaries.
func CheckSystemDeps(ctx context.Context, cfg *config.Config, runner services.CommandRunner) []deps.Status {
	if cfg == nil {
		return nil
	}
	requirements := SystemRequirements(cfg)
	statuses := deps.CheckBinaries(requirements)
	deps.ProbeVersions(ctx, runner, requirements, statuses)
	return statuses
}
