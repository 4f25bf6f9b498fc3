package deps

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"ytmeta/internal/services"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("expected blank command to be reported unconfigured, got %#v", results[2])
	}
}

type versionRunner struct {
	stdout string
	code   int
	calls  int
}

func (r *versionRunner) Run(_ context.Context, _ string, _ ...string) (services.CommandResult, error) {
	r.calls++
	return services.CommandResult{Stdout: r.stdout, ExitCode: r.code}, nil
}

func TestProbeVersionsRecordsFirstLine(t *testing.T) {
	reqs := []Requirement{
		{Name: "yt-dlp", Command: "yt-dlp", VersionArgs: []string{"--version"}},
		{Name: "whisper", Command: "whisper"},
		{Name: "ffmpeg", Command: "ffmpeg", VersionArgs: []string{"-version"}},
	}
	statuses := []Status{
		{Name: "yt-dlp", Command: "yt-dlp", Available: true},
		{Name: "whisper", Command: "whisper", Available: true},
		{Name: "ffmpeg", Command: "ffmpeg", Available: false},
	}
	runner := &versionRunner{stdout: "\n2025.01.15\nextra\n"}

	ProbeVersions(context.Background(), runner, reqs, statuses)

	if statuses[0].Version != "2025.01.15" {
		t.Fatalf("unexpected version: %q", statuses[0].Version)
	}
	if statuses[1].Version != "" || statuses[2].Version != "" {
		t.Fatalf("expected only yt-dlp to be probed, got %#v", statuses)
	}
	if runner.calls != 1 {
		t.Fatalf("expected one probe, got %d", runner.calls)
	}
}

func TestProbeVersionsKeepsAvailabilityOnFailure(t *testing.T) {
	reqs := []Requirement{{Name: "yt-dlp", Command: "yt-dlp", VersionArgs: []string{"--version"}}}
	statuses := []Status{{Name: "yt-dlp", Command: "yt-dlp", Available: true}}

	ProbeVersions(context.Background(), &versionRunner{code: 2}, reqs, statuses)

	if !statuses[0].Available {
		t.Fatal("probe failure must not flip availability")
	}
	if statuses[0].Detail == "" {
		t.Fatal("expected detail describing the probe failure")
	}
}

func TestResolveFFmpegPathPrefersConfigured(t *testing.T) {
	if got := ResolveFFmpegPath("/opt/ffmpeg/bin/ffmpeg", "yt-dlp"); got != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("expected configured path, got %q", got)
	}
}

func TestResolveFFmpegPathSidecar(t *testing.T) {
	tmp := t.TempDir()
	ytdlpPath := filepath.Join(tmp, executableName("yt-dlp"))
	ffmpegPath := filepath.Join(tmp, executableName("ffmpeg"))
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(ytdlpPath, script, 0o755); err != nil {
		t.Fatalf("write yt-dlp stub: %v", err)
	}
	if err := os.WriteFile(ffmpegPath, script, 0o755); err != nil {
		t.Fatalf("write ffmpeg sidecar: %v", err)
	}

	if got := ResolveFFmpegPath("ffmpeg", ytdlpPath); got != ffmpegPath {
		t.Fatalf("expected ffmpeg sidecar %q, got %q", ffmpegPath, got)
	}
}

func TestResolveFFmpegPathPathFallback(t *testing.T) {
	tmp := t.TempDir()
	ytdlpPath := filepath.Join(tmp, executableName("yt-dlp"))
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(ytdlpPath, script, 0o755); err != nil {
		t.Fatalf("write yt-dlp stub: %v", err)
	}

	binDir := filepath.Join(tmp, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin: %v", err)
	}
	ffmpegPath := filepath.Join(binDir, executableName("ffmpeg"))
	if err := os.WriteFile(ffmpegPath, script, 0o755); err != nil {
		t.Fatalf("write ffmpeg stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	if got := ResolveFFmpegPath("", ytdlpPath); got != ffmpegPath {
		t.Fatalf("expected ffmpeg command %q, got %q", ffmpegPath, got)
	}
}

func TestResolveFFmpegPathNotFound(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("PATH", "")
	got := ResolveFFmpegPath("ffmpeg", filepath.Join(tmp, executableName("yt-dlp")))
	if got != "ffmpeg" {
		t.Fatalf("expected bare name when unresolved, got %q", got)
	}
	status := CheckBinaries([]Requirement{{Name: "FFmpeg", Command: got}})[0]
	if status.Available {
		t.Fatal("expected ffmpeg resolution to fail")
	}
}

func executableName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}
