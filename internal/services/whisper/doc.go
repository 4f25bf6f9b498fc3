// Package whisper provides Whisper transcription utilities.
//
// This package handles:
//   - The enumerated set of model sizes the CLI accepts
//   - Whisper invocation with JSON output written next to the audio file
//   - Decoding the JSON output into a typed Transcript
//
// Configuration options (binary) are passed via Config; the model size and
// language hint are per-call parameters.
package whisper
