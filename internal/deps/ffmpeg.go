package deps

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

const defaultFFmpeg = "ffmpeg"

// ResolveFFmpegPath reports the FFmpeg binary yt-dlp will execute.
//
// An explicitly configured ffmpeg (anything other than the bare default
// name) is handed to yt-dlp via --ffmpeg-location and is returned as-is.
// Otherwise yt-dlp prefers an ffmpeg sitting next to its own executable and
// falls back to resolving "ffmpeg" from PATH; this helper mirrors that order.
func ResolveFFmpegPath(ffmpegCommand, ytdlpCommand string) string {
	configured := strings.TrimSpace(ffmpegCommand)
	if configured != "" && configured != defaultFFmpeg {
		return configured
	}

	ytdlpBinary := strings.TrimSpace(ytdlpCommand)
	if ytdlpBinary != "" {
		if resolved, err := exec.LookPath(ytdlpBinary); err == nil {
			candidate := ffmpegSidecarCandidate(resolved)
			if info, statErr := os.Stat(candidate); statErr == nil && isExecutable(info) {
				return candidate
			}
		}
	}

	if ffmpegPath, err := exec.LookPath(defaultFFmpeg); err == nil {
		return ffmpegPath
	}
	return defaultFFmpeg
}

func ffmpegSidecarCandidate(ytdlpPath string) string {
	name := defaultFFmpeg
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(filepath.Dir(ytdlpPath), name)
}

func isExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
