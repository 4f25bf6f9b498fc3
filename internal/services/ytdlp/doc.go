// Package ytdlp wraps the yt-dlp command-line tool.
//
// This package handles:
//   - Metadata extraction (--dump-json --no-download) projected onto a fixed
//     allow-list of fields
//   - Best-quality audio extraction into a scratch directory and discovery of
//     the resulting file
//
// All process execution goes through a services.CommandRunner so tests can
// substitute canned tool output.
package ytdlp
