package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "my landlord locked me out", "my landlord locked me out"},
		{"script block removed", "before<script>alert(1)</script>after", "beforeafter"},
		{"html tags stripped", "<b>bold</b> claim", "bold claim"},
		{"js protocol stripped", "click javascript:alert(1)", "click alert(1)"},
		{"event handler stripped", "a onclick=steal() b", "a steal() b"},
		{"trims whitespace", "  spaced out  ", "spaced out"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeInput(tt.input, MaxGenericInputLength))
		})
	}
}

func TestSanitizeInputTruncates(t *testing.T) {
	long := strings.Repeat("a", 600)
	got := SanitizeInput(long, MaxQueryInputLength)
	assert.Len(t, got, MaxQueryInputLength)
}

func TestSanitizeInputTruncatesOnRuneBoundary(t *testing.T) {
	long := "a" + strings.Repeat("é", 600)
	got := SanitizeInput(long, MaxQueryInputLength)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, MaxQueryInputLength, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "é"))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "abcde...", TruncateText("abcdefgh", 5))
	// Rune-safe: no broken UTF-8 at the cut point.
	got := TruncateText(strings.Repeat("é", 10), 4)
	assert.Equal(t, "éééé...", got)
}
