// Package language normalizes the language hints passed to Whisper.
//
// Hints may be ISO 639-1 or 639-2 codes, BCP 47 tags or English language
// names. Table entries fold to ISO 639-1; codes and names whisper knows keep
// whisper's spelling (Javanese stays "jw"). golang.org/x/text/language
// resolves the remaining tags and supplies display names for logs.
package language
