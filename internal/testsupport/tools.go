package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"ytmeta/internal/services"
)

// Call records one command invocation seen by FakeTools.
type Call struct {
	Name string
	Args []string
}

// FakeTools emulates yt-dlp and whisper for tests. It answers metadata dumps
// with MetadataJSON, materialises the audio file an extraction would write and
// writes WhisperJSON where whisper would put its output.
type FakeTools struct {
	t testing.TB

	YtDlpBinary   string
	WhisperBinary string

	MetadataJSON string
	VideoID      string
	WhisperJSON  string

	MetadataExitCode int
	MetadataStderr   string
	DownloadExitCode int
	WhisperExitCode  int

	// SkipAudio makes a successful download produce no audio file.
	SkipAudio bool
	// SkipTranscript makes a successful whisper run produce no JSON file.
	SkipTranscript bool

	mu    sync.Mutex
	calls []Call
}

// NewFakeTools returns fakes answering with the package fixtures.
func NewFakeTools(t testing.TB) *FakeTools {
	t.Helper()
	return &FakeTools{
		t:             t,
		YtDlpBinary:   "yt-dlp",
		WhisperBinary: "whisper",
		MetadataJSON:  MetadataJSON,
		VideoID:       VideoID,
		WhisperJSON:   WhisperJSON,
	}
}

// Run implements services.CommandRunner.
func (f *FakeTools) Run(ctx context.Context, name string, args ...string) (services.CommandResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Name: name, Args: append([]string(nil), args...)})
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return services.CommandResult{ExitCode: -1}, err
	}

	switch {
	case name == f.YtDlpBinary && hasArg(args, "--dump-json"):
		if f.MetadataExitCode != 0 {
			return services.CommandResult{ExitCode: f.MetadataExitCode, Stderr: f.MetadataStderr}, nil
		}
		return services.CommandResult{Stdout: f.MetadataJSON + "\n"}, nil
	case name == f.YtDlpBinary && hasArg(args, "-x"):
		if f.DownloadExitCode != 0 {
			return services.CommandResult{ExitCode: f.DownloadExitCode, Stderr: "ERROR: download failed"}, nil
		}
		if !f.SkipAudio {
			f.writeAudio(args)
		}
		return services.CommandResult{}, nil
	case name == f.WhisperBinary:
		if f.WhisperExitCode != 0 {
			return services.CommandResult{ExitCode: f.WhisperExitCode, Stderr: "RuntimeError: model failed"}, nil
		}
		if !f.SkipTranscript {
			f.writeTranscript(args)
		}
		return services.CommandResult{}, nil
	default:
		return services.CommandResult{ExitCode: 127, Stderr: "unexpected command " + name}, nil
	}
}

// Calls returns a copy of the recorded invocations.
func (f *FakeTools) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallCount reports how many invocations of name used flag.
func (f *FakeTools) CallCount(name, flag string) int {
	count := 0
	for _, call := range f.Calls() {
		if call.Name == name && (flag == "" || hasArg(call.Args, flag)) {
			count++
		}
	}
	return count
}

func (f *FakeTools) writeAudio(args []string) {
	template := argValue(args, "--output")
	format := argValue(args, "--audio-format")
	if template == "" || format == "" {
		f.t.Fatalf("download invoked without --output/--audio-format: %v", args)
	}
	path := strings.ReplaceAll(template, "%(id)s", f.VideoID)
	path = strings.ReplaceAll(path, "%(ext)s", format)
	WriteFile(f.t, path, 2048)
}

func (f *FakeTools) writeTranscript(args []string) {
	if len(args) == 0 {
		f.t.Fatalf("whisper invoked without audio path")
	}
	audio := args[0]
	outputDir := argValue(args, "--output_dir")
	if outputDir == "" {
		outputDir = filepath.Dir(audio)
	}
	stem := strings.TrimSuffix(filepath.Base(audio), filepath.Ext(audio))
	target := filepath.Join(outputDir, stem+".json")
	if err := os.WriteFile(target, []byte(f.WhisperJSON), 0o644); err != nil {
		f.t.Fatalf("write whisper output: %v", err)
	}
}

func hasArg(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}

func argValue(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}
