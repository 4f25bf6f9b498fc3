package whisper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	langpkg "ytmeta/internal/language"
	"ytmeta/internal/services"
)

// Service provides Whisper transcription capabilities.
type Service struct {
	cfg    Config
	runner services.CommandRunner
}

// NewService creates a Whisper service with the given configuration.
func NewService(cfg Config) *Service {
	if strings.TrimSpace(cfg.Binary) == "" {
		cfg.Binary = DefaultBinary
	}
	return &Service{
		cfg:    cfg,
		runner: services.ExecRunner{},
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner services.CommandRunner) {
	if runner == nil {
		runner = services.ExecRunner{}
	}
	s.runner = runner
}

// Binary returns the configured whisper executable.
func (s *Service) Binary() string {
	return s.cfg.Binary
}

// Segment is one timed span of transcribed speech. Start and End are nil when
// whisper did not report them.
type Segment struct {
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
	Text  string   `json:"text"`
}

// Transcript is the decoded Whisper result.
type Transcript struct {
	Text     string    `json:"text"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// Transcribe runs whisper against audioPath and decodes the JSON it writes
// next to the audio file. language is a hint; an empty hint lets whisper
// detect the language itself.
func (s *Service) Transcribe(ctx context.Context, audioPath string, model Model, language string) (Transcript, error) {
	if strings.TrimSpace(audioPath) == "" {
		return Transcript{}, fmt.Errorf("transcribe: audio path required")
	}
	if model == "" {
		model = DefaultModel
	}
	if _, err := ParseModel(string(model)); err != nil {
		return Transcript{}, fmt.Errorf("transcribe: %w", err)
	}

	outputDir := filepath.Dir(audioPath)
	lang := langpkg.Canonical(language)
	args := buildArgs(audioPath, outputDir, model, lang)
	if _, err := services.RunTool(ctx, s.runner, s.cfg.Binary, args...); err != nil {
		return Transcript{}, fmt.Errorf("transcribe: %w", err)
	}

	transcript, err := LoadTranscript(OutputPath(audioPath), lang)
	if err != nil {
		return Transcript{}, fmt.Errorf("transcribe: %w", err)
	}
	return transcript, nil
}

// OutputPath returns where whisper writes its JSON output for audioPath.
func OutputPath(audioPath string) string {
	baseName := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	return filepath.Join(filepath.Dir(audioPath), baseName+OutputExt)
}

// buildArgs constructs the whisper command arguments.
func buildArgs(source, outputDir string, model Model, language string) []string {
	args := make([]string, 0, 12)
	args = append(args,
		source,
		"--model", string(model),
	)
	if language != "" {
		args = append(args, "--language", language)
	}
	args = append(args,
		"--output_format", OutputFormat,
		"--output_dir", outputDir,
		"--verbose", "False",
	)
	return args
}

// LoadTranscript decodes a whisper JSON file. fallbackLanguage is used when
// the file does not report a language.
func LoadTranscript(jsonPath, fallbackLanguage string) (Transcript, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Transcript{}, &services.OutputNotFoundError{Path: jsonPath}
		}
		return Transcript{}, fmt.Errorf("read whisper output: %w", err)
	}
	return ParseTranscript(data, fallbackLanguage)
}

// ParseTranscript decodes whisper JSON output. Segments keep their file order;
// a segment that starts before an earlier timed segment is rejected rather
// than reordered. Members of an unexpected JSON type are treated as missing.
func ParseTranscript(data []byte, fallbackLanguage string) (Transcript, error) {
	fields, err := services.DecodeObject(data)
	if err != nil {
		return Transcript{}, &services.ParseError{Source: "whisper output", Err: err}
	}

	var rawSegments []map[string]json.RawMessage
	if segs := services.OptionalField[[]map[string]json.RawMessage](fields, "segments"); segs != nil {
		rawSegments = *segs
	}

	transcript := Transcript{
		Language: strings.TrimSpace(fallbackLanguage),
		Segments: make([]Segment, 0, len(rawSegments)),
	}
	if text := services.OptionalField[string](fields, "text"); text != nil {
		transcript.Text = *text
	}
	if lang := services.OptionalField[string](fields, "language"); lang != nil && strings.TrimSpace(*lang) != "" {
		transcript.Language = strings.TrimSpace(*lang)
	}

	var lastStart *float64
	lastIndex := -1
	for i, raw := range rawSegments {
		start := services.OptionalField[float64](raw, "start")
		if start != nil {
			if lastStart != nil && *start < *lastStart {
				return Transcript{}, &services.ParseError{
					Source: "whisper output",
					Err:    fmt.Errorf("segment %d starts at %.3fs before segment %d at %.3fs", i, *start, lastIndex, *lastStart),
				}
			}
			lastStart, lastIndex = start, i
		}
		var text string
		if t := services.OptionalField[string](raw, "text"); t != nil {
			text = strings.TrimSpace(*t)
		}
		transcript.Segments = append(transcript.Segments, Segment{
			Start: start,
			End:   services.OptionalField[float64](raw, "end"),
			Text:  text,
		})
	}
	return transcript, nil
}
