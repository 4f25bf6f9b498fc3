package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ytmeta/internal/services"
	"ytmeta/internal/testsupport"
)

const testURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func whisperArg(tools *testsupport.FakeTools, flag string) string {
	for _, call := range tools.Calls() {
		if call.Name != tools.WhisperBinary {
			continue
		}
		for i := 0; i+1 < len(call.Args); i++ {
			if call.Args[i] == flag {
				return call.Args[i+1]
			}
		}
	}
	return ""
}

func TestRunCommandPrintsRecordToStdout(t *testing.T) {
	env := setupCLITestEnv(t)
	tools := testsupport.NewFakeTools(t)

	stdout, stderr, err := runCLI(t, tools, []string{testURL}, env.configPath)
	if err != nil {
		t.Fatalf("run failed: %v\nstderr: %s", err, stderr)
	}

	var record map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stdout), &record); err != nil {
		t.Fatalf("stdout is not a JSON record: %v\n%s", err, stdout)
	}
	if len(record) != 4 {
		t.Fatalf("expected four top-level keys, got %d", len(record))
	}
	if !strings.Contains(stdout, "नमस्ते दुनिया <live> & more") {
		t.Fatalf("expected verbatim non-ASCII title, got %s", stdout)
	}
	for _, want := range []string{"Extracting video metadata", "Metadata extracted", "Audio downloaded", "Transcription complete"} {
		if !strings.Contains(stderr, want) {
			t.Fatalf("expected %q in stderr logs:\n%s", want, stderr)
		}
	}
	if strings.Contains(stdout, "Extracting") {
		t.Fatal("logs must not leak onto stdout")
	}
}

func TestRunCommandWritesOutputFile(t *testing.T) {
	env := setupCLITestEnv(t)
	tools := testsupport.NewFakeTools(t)
	output := filepath.Join(env.baseDir, "result.json")

	stdout, stderr, err := runCLI(t, tools, []string{testURL, "-o", output}, env.configPath)
	if err != nil {
		t.Fatalf("run failed: %v\nstderr: %s", err, stderr)
	}
	if stdout != "" {
		t.Fatalf("expected empty stdout with --output, got %q", stdout)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `"whisper_model": "medium"`) {
		t.Fatalf("unexpected output file: %s", data)
	}
	if !strings.Contains(stderr, "Results saved") {
		t.Fatalf("expected save log, got %s", stderr)
	}
}

func TestRunCommandFailureWritesNothing(t *testing.T) {
	env := setupCLITestEnv(t)
	tools := testsupport.NewFakeTools(t)
	tools.MetadataExitCode = 1
	tools.MetadataStderr = "ERROR: Unsupported URL: https://example.com"
	output := filepath.Join(env.baseDir, "result.json")

	stdout, _, err := runCLI(t, tools, []string{"https://example.com", "--output", output}, env.configPath)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !errors.Is(err, services.ErrToolExecution) {
		t.Fatalf("expected tool execution error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Unsupported URL") {
		t.Fatalf("expected yt-dlp stderr in error, got %v", err)
	}
	if stdout != "" {
		t.Fatalf("expected no stdout, got %q", stdout)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file, stat err=%v", statErr)
	}
	if tools.CallCount(tools.WhisperBinary, "") != 0 {
		t.Fatal("transcriber must not run")
	}
}

func TestRunCommandRequiresExactlyOneURL(t *testing.T) {
	env := setupCLITestEnv(t)
	tools := testsupport.NewFakeTools(t)

	if _, _, err := runCLI(t, tools, nil, env.configPath); err == nil {
		t.Fatal("expected error without URL")
	}
	if _, _, err := runCLI(t, tools, []string{"a", "b"}, env.configPath); err == nil {
		t.Fatal("expected error with two URLs")
	}
	if len(tools.Calls()) != 0 {
		t.Fatalf("no tool should run, got %v", tools.Calls())
	}
}

func TestRunCommandRejectsInvalidModel(t *testing.T) {
	env := setupCLITestEnv(t)
	tools := testsupport.NewFakeTools(t)

	_, _, err := runCLI(t, tools, []string{testURL, "--model", "huge"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "huge") {
		t.Fatalf("expected invalid model error, got %v", err)
	}
	if len(tools.Calls()) != 0 {
		t.Fatal("no tool should run for invalid model")
	}
}

func TestRunCommandRejectsInvalidLanguage(t *testing.T) {
	env := setupCLITestEnv(t)
	tools := testsupport.NewFakeTools(t)

	if _, _, err := runCLI(t, tools, []string{testURL, "--language", "not a language!"}, env.configPath); err == nil {
		t.Fatal("expected invalid language error")
	}
}

func TestRunCommandAcceptsWhisperLanguageSpellings(t *testing.T) {
	env := setupCLITestEnv(t)
	for hint, want := range map[string]string{"jw": "jw", "Tagalog": "tl", "Haitian Creole": "ht"} {
		tools := testsupport.NewFakeTools(t)
		if _, stderr, err := runCLI(t, tools, []string{testURL, "--language", hint}, env.configPath); err != nil {
			t.Fatalf("--language %q failed: %v\n%s", hint, err, stderr)
		}
		if got := whisperArg(tools, "--language"); got != want {
			t.Fatalf("--language %q reached whisper as %q, want %q", hint, got, want)
		}
	}
}

func TestRunCommandUsesConfigDefaultsAndFlagOverrides(t *testing.T) {
	env := setupCLITestEnv(t)
	writeConfig(t, env, "\n[transcription]\nmodel = \"small\"\nlanguage = \"ur\"\n")

	tools := testsupport.NewFakeTools(t)
	if _, stderr, err := runCLI(t, tools, []string{testURL}, env.configPath); err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr)
	}
	if got := whisperArg(tools, "--model"); got != "small" {
		t.Fatalf("expected config model small, got %q", got)
	}
	if got := whisperArg(tools, "--language"); got != "ur" {
		t.Fatalf("expected config language ur, got %q", got)
	}

	tools = testsupport.NewFakeTools(t)
	if _, stderr, err := runCLI(t, tools, []string{testURL, "--model", "tiny", "--language", "en"}, env.configPath); err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr)
	}
	if got := whisperArg(tools, "--model"); got != "tiny" {
		t.Fatalf("expected flag model tiny, got %q", got)
	}
	if got := whisperArg(tools, "--language"); got != "en" {
		t.Fatalf("expected flag language en, got %q", got)
	}
}

func TestRunCommandKeepAudio(t *testing.T) {
	env := setupCLITestEnv(t)
	tools := testsupport.NewFakeTools(t)

	if _, stderr, err := runCLI(t, tools, []string{testURL, "--keep-audio"}, env.configPath); err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr)
	}
	entries, err := os.ReadDir(env.keepDir)
	if err != nil {
		t.Fatalf("read keep dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != testsupport.VideoID+".mp3" {
		t.Fatalf("expected exactly the retained audio, got %v", entries)
	}
	scratch, err := os.ReadDir(env.scratchDir)
	if err != nil {
		t.Fatalf("read scratch dir: %v", err)
	}
	if len(scratch) != 0 {
		t.Fatalf("expected scratch parent to be empty, got %v", scratch)
	}
}

func TestRunCommandRejectsBadLogLevel(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, testsupport.NewFakeTools(t), []string{"--log-level", "loud", testURL}, env.configPath); err == nil {
		t.Fatal("expected log level error")
	}
}

func TestRunCommandJSONLogs(t *testing.T) {
	env := setupCLITestEnv(t)
	writeConfig(t, env, "format = \"json\"\n")

	_, stderr, err := runCLI(t, testsupport.NewFakeTools(t), []string{testURL}, env.configPath)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	first := strings.SplitN(strings.TrimSpace(stderr), "\n", 2)[0]
	var line map[string]any
	if err := json.Unmarshal([]byte(first), &line); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", first, err)
	}
	if line["run_id"] == nil {
		t.Fatalf("expected run_id on log line: %v", line)
	}
}

type versionRunner struct{}

func (versionRunner) Run(_ context.Context, name string, args ...string) (services.CommandResult, error) {
	return services.CommandResult{Stdout: filepath.Base(name) + " 1.0\n"}, nil
}

func TestCheckCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	stubBinaries(t, "yt-dlp", "whisper", "ffmpeg")

	stdout, _, err := runCLI(t, versionRunner{}, []string{"check", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	var report checkReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, stdout)
	}
	if !report.Ready {
		t.Fatalf("expected ready report: %+v", report)
	}
	if len(report.Dependencies) != 3 || len(report.Directories) != 2 {
		t.Fatalf("unexpected report shape: %+v", report)
	}
	if report.Dependencies[0].Version != "yt-dlp 1.0" {
		t.Fatalf("unexpected yt-dlp version %q", report.Dependencies[0].Version)
	}
}

func TestCheckCommandFailsWhenToolMissing(t *testing.T) {
	env := setupCLITestEnv(t)
	stubBinaries(t, "yt-dlp", "ffmpeg")

	stdout, _, err := runCLI(t, versionRunner{}, []string{"check"}, env.configPath)
	if err == nil {
		t.Fatal("expected failure when whisper is missing")
	}
	if !strings.Contains(stdout, "MISSING") || !strings.Contains(stdout, "Whisper") {
		t.Fatalf("expected missing whisper row, got\n%s", stdout)
	}
	if !strings.Contains(stdout, "1 check(s) failed") {
		t.Fatalf("expected failure caption, got\n%s", stdout)
	}
}

func TestCheckCommandReportsMissingKeepDirectory(t *testing.T) {
	env := setupCLITestEnv(t)
	stubBinaries(t, "yt-dlp", "whisper", "ffmpeg")
	if err := os.Remove(env.keepDir); err != nil {
		t.Fatalf("remove keep dir: %v", err)
	}

	stdout, _, err := runCLI(t, versionRunner{}, []string{"check", "--json"}, env.configPath)
	if err == nil {
		t.Fatal("expected check to fail for a missing keep directory")
	}
	var report checkReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, stdout)
	}
	var keep *directoryReport
	for i := range report.Directories {
		if report.Directories[i].Name == "Keep directory" {
			keep = &report.Directories[i]
		}
	}
	if keep == nil || keep.Passed || !strings.Contains(keep.Detail, "does not exist") {
		t.Fatalf("expected failing keep directory entry, got %+v", report.Directories)
	}
	if _, statErr := os.Stat(env.keepDir); !os.IsNotExist(statErr) {
		t.Fatalf("check must not create the keep directory, stat err=%v", statErr)
	}
}

func TestRunCommandLeavesKeepDirectoryUntouchedWithoutKeepAudio(t *testing.T) {
	env := setupCLITestEnv(t)
	for _, dir := range []string{env.keepDir, env.scratchDir} {
		if err := os.Remove(dir); err != nil {
			t.Fatalf("remove %s: %v", dir, err)
		}
	}

	if _, stderr, err := runCLI(t, testsupport.NewFakeTools(t), []string{testURL}, env.configPath); err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr)
	}
	if _, err := os.Stat(env.keepDir); !os.IsNotExist(err) {
		t.Fatalf("keep directory should not exist, stat err=%v", err)
	}
	if info, err := os.Stat(env.scratchDir); err != nil || !info.IsDir() {
		t.Fatalf("expected scratch parent to be created: %v", err)
	}
}

func TestModelsCommandMarksDefault(t *testing.T) {
	env := setupCLITestEnv(t)
	writeConfig(t, env, "\n[transcription]\nmodel = \"large\"\n")

	stdout, _, err := runCLI(t, nil, []string{"models"}, env.configPath)
	if err != nil {
		t.Fatalf("models failed: %v", err)
	}
	for _, name := range []string{"tiny", "base", "small", "medium", "large", "1550M"} {
		if !strings.Contains(stdout, name) {
			t.Fatalf("expected %q in models table:\n%s", name, stdout)
		}
	}
	var defaultRow string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.Contains(line, "*") && !strings.Contains(line, "default from configuration") {
			defaultRow = line
		}
	}
	if !strings.Contains(defaultRow, "large") {
		t.Fatalf("expected large to be marked default, got %q", defaultRow)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "nested", "config.toml")

	stdout, _, err := runCLI(t, nil, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(stdout, target) {
		t.Fatalf("expected target path in output, got %q", stdout)
	}
	if _, _, err := runCLI(t, nil, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config exists without --overwrite")
	}
	if _, _, err := runCLI(t, nil, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite failed: %v", err)
	}

	stdout, _, err = runCLI(t, nil, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(stdout, "# Loaded from "+env.configPath) {
		t.Fatalf("expected source header, got %q", stdout)
	}
	if !strings.Contains(stdout, "keep_dir = ") || !strings.Contains(stdout, env.keepDir) {
		t.Fatalf("expected keep_dir in TOML output, got\n%s", stdout)
	}
}

func TestFormatFailure(t *testing.T) {
	err := fmt.Errorf("fetch stage: %w", errors.New("boom"))
	if got := formatFailure(err, false); got != "✗ Error: fetch stage: boom" {
		t.Fatalf("unexpected failure line %q", got)
	}
	if got := formatFailure(fmt.Errorf("yt-dlp: %w", context.Canceled), false); got != "✗ Error: interrupted" {
		t.Fatalf("unexpected interrupted line %q", got)
	}
	colored := formatFailure(errors.New("boom"), true)
	if !strings.HasPrefix(colored, ansiRed) || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected red failure line, got %q", colored)
	}
	if shouldColorize(&strings.Builder{}) {
		t.Fatal("non-file writers must not be colorized")
	}
}
