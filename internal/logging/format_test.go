package logging

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestDisplayValueTruncatesLongStrings(t *testing.T) {
	long := strings.Repeat("ERROR: [youtube] ", 40)
	got := displayValue(slog.StringValue(long))
	if utf8.RuneCountInString(got) != maxConsoleValue {
		t.Fatalf("expected %d runes, got %d", maxConsoleValue, utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}

	hindi := strings.Repeat("न", maxConsoleValue+5)
	if got := displayValue(slog.StringValue(hindi)); !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got)
	}
}

func TestDebugValueQuoting(t *testing.T) {
	cases := []struct {
		value slog.Value
		want  string
	}{
		{slog.StringValue("medium"), "medium"},
		{slog.StringValue("two words"), `"two words"`},
		{slog.StringValue(""), `""`},
		{slog.AnyValue(errors.New("exit status 1")), `"exit status 1"`},
		{slog.IntValue(42), "42"},
		{slog.Float64Value(5.12), "5.12"},
		{slog.DurationValue(1500*time.Millisecond + 400*time.Microsecond), "1.5s"},
	}
	for _, tc := range cases {
		if got := debugValue(tc.value); got != tc.want {
			t.Errorf("debugValue(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
