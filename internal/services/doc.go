// Package services defines shared utilities consumed by the pipeline stages and
// the external tool integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and stage names for logging.
//   - Typed failure kinds (tool execution, parse, missing output) with sentinel
//     markers so callers can classify errors with errors.Is / errors.As.
//   - The CommandRunner abstraction that makes every external process
//     invocation swappable with a fake in tests.
//
// Tool wrappers live in sub-packages (ytdlp, whisper) and only talk to the
// outside world through a CommandRunner.
package services
