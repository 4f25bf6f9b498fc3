package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"ytmeta/internal/services"
)

type cliEnv struct {
	baseDir    string
	scratchDir string
	keepDir    string
	configPath string
}

func setupCLITestEnv(t *testing.T) cliEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("YTMETA_YTDLP", "")
	t.Setenv("YTMETA_WHISPER", "")
	t.Setenv("YTMETA_FFMPEG", "")

	base := t.TempDir()
	env := cliEnv{
		baseDir:    base,
		scratchDir: filepath.Join(base, "scratch"),
		keepDir:    filepath.Join(base, "keep"),
		configPath: filepath.Join(base, "ytmeta.toml"),
	}
	for _, dir := range []string{env.scratchDir, env.keepDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("create %s: %v", dir, err)
		}
	}
	writeConfig(t, env, "")
	return env
}

// writeConfig writes a config pointing at the env directories; extra is
// appended verbatim.
func writeConfig(t *testing.T, env cliEnv, extra string) {
	t.Helper()
	contents := fmt.Sprintf("[paths]\nscratch_dir = %q\nkeep_dir = %q\n\n[logging]\nlevel = \"info\"\n%s", env.scratchDir, env.keepDir, extra)
	if err := os.WriteFile(env.configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, runner services.CommandRunner, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := buildRootCommand(runner)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func stubBinaries(t *testing.T, names ...string) string {
	t.Helper()
	binDir := t.TempDir()
	script := []byte("#!/bin/sh\nexit 0\n")
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(binDir, name), script, 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}
	t.Setenv("PATH", binDir)
	return binDir
}
