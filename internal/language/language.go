package language

import (
	"fmt"
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "english")
}

var languages = []entry{
	{"hi", "hin", "", "Hindi", []string{"hindi", "hinglish"}},
	{"en", "eng", "", "English", []string{"english"}},
	{"ur", "urd", "", "Urdu", []string{"urdu"}},
	{"bn", "ben", "", "Bengali", []string{"bengali", "bangla"}},
	{"pa", "pan", "", "Punjabi", []string{"punjabi", "panjabi"}},
	{"mr", "mar", "", "Marathi", []string{"marathi"}},
	{"gu", "guj", "", "Gujarati", []string{"gujarati"}},
	{"ta", "tam", "", "Tamil", []string{"tamil"}},
	{"te", "tel", "", "Telugu", []string{"telugu"}},
	{"kn", "kan", "", "Kannada", []string{"kannada"}},
	{"ml", "mal", "", "Malayalam", []string{"malayalam"}},
	{"ne", "nep", "", "Nepali", []string{"nepali"}},
	{"es", "spa", "", "Spanish", []string{"spanish"}},
	{"fr", "fra", "fre", "French", []string{"french"}},
	{"de", "deu", "ger", "German", []string{"german"}},
	{"it", "ita", "", "Italian", []string{"italian"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}},
	{"ja", "jpn", "", "Japanese", []string{"japanese"}},
	{"ko", "kor", "", "Korean", []string{"korean"}},
	{"zh", "zho", "chi", "Chinese", []string{"chinese"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"ar", "ara", "", "Arabic", []string{"arabic"}},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// parseBase resolves code through x/text and returns its base language.
func parseBase(code string) (xlanguage.Base, bool) {
	tag, err := xlanguage.Parse(code)
	if err != nil {
		return xlanguage.Base{}, false
	}
	base, confidence := tag.Base()
	if confidence == xlanguage.No {
		return xlanguage.Base{}, false
	}
	return base, true
}

// Canonical folds a language hint into the code whisper expects. Entries of
// the built-in table map to their ISO 639-1 code, codes and names whisper
// knows map to whisper's own code, and tags whose base language whisper
// supports (e.g. "pt-BR", "swe") resolve through x/text. Anything else is
// returned trimmed but otherwise unchanged.
func Canonical(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return ""
	}
	if e := lookup(trimmed); e != nil {
		return e.code2
	}
	lowered := strings.ToLower(trimmed)
	if wc, ok := whisperCode(lowered); ok {
		return wc
	}
	if base, ok := parseBase(trimmed); ok {
		if _, known := whisperCodes[base.String()]; known {
			return base.String()
		}
	}
	return trimmed
}

// Validate reports whether code is a hint whisper accepts once canonicalized.
func Validate(code string) error {
	canonical := Canonical(code)
	if canonical == "" {
		return nil
	}
	if _, ok := whisperCodes[canonical]; ok {
		return nil
	}
	return fmt.Errorf("unrecognized language %q", code)
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Auto-detect" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Auto-detect"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	if base, ok := parseBase(strings.TrimSpace(code)); ok {
		if name := display.English.Languages().Name(base); name != "" {
			return name
		}
	}
	if name, ok := whisperCodes[Canonical(code)]; ok {
		return strings.ToUpper(name[:1]) + name[1:]
	}
	return strings.ToUpper(strings.TrimSpace(code))
}
