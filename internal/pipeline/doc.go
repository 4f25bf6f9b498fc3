// Package pipeline turns a video URL into a single JSON record.
//
// Runner drives the strictly ordered stages (fetch metadata, download audio,
// transcribe, assemble, optionally retain the audio) inside a per-run scratch
// directory that is always released. The first failing stage ends the run;
// nothing is emitted unless every stage succeeded. Emit writes the encoded
// record to a file or to stdout.
package pipeline
