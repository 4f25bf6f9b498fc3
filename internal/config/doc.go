// Package config loads, normalizes, and validates ytmeta configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides for the
// external tool binaries (YTMETA_YTDLP, YTMETA_WHISPER, YTMETA_FFMPEG). The
// Config type centralizes every knob the CLI needs so tool locations, the
// default model and language, and scratch/keep directories are discovered in
// one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
