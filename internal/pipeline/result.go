package pipeline

import (
	"ytmeta/internal/services/whisper"
	"ytmeta/internal/services/ytdlp"
)

// Params are the per-run options, fixed before the run starts.
type Params struct {
	Model     whisper.Model
	Language  string
	Output    string
	KeepAudio bool
}

// Processing records how the transcript was produced.
type Processing struct {
	WhisperModel     string `json:"whisper_model"`
	DetectedLanguage string `json:"detected_language"`
}

// Result is the record emitted for one URL.
type Result struct {
	URL        string             `json:"url"`
	Metadata   ytdlp.Metadata     `json:"metadata"`
	Transcript whisper.Transcript `json:"transcript"`
	Processing Processing         `json:"processing"`
}

// Assemble composes the emitted record.
func Assemble(url string, meta ytdlp.Metadata, transcript whisper.Transcript, params Params) Result {
	model := params.Model
	if model == "" {
		model = whisper.DefaultModel
	}
	if transcript.Segments == nil {
		transcript.Segments = []whisper.Segment{}
	}
	if meta.Tags == nil {
		meta.Tags = []string{}
	}
	if meta.Categories == nil {
		meta.Categories = []string{}
	}
	return Result{
		URL:        url,
		Metadata:   meta,
		Transcript: transcript,
		Processing: Processing{
			WhisperModel:     model.String(),
			DetectedLanguage: transcript.Language,
		},
	}
}
