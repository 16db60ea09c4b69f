package utils

import (
	"regexp"
	"strings"
)

// Input length ceilings applied after tag stripping.
const (
	MaxQueryInputLength   = 500
	MaxGenericInputLength = 1000
)

var (
	scriptBlockRe  = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	htmlTagRe      = regexp.MustCompile(`<[^>]*>`)
	jsProtocolRe   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRe = regexp.MustCompile(`(?i)on\w+=`)
)

// SanitizeInput strips script blocks, HTML tags, javascript: protocol strings
// and inline event handler attributes, then truncates to maxLen runes. It
// never fails; the result may be empty.
func SanitizeInput(input string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = MaxGenericInputLength
	}
	out := scriptBlockRe.ReplaceAllString(input, "")
	out = htmlTagRe.ReplaceAllString(out, "")
	out = jsProtocolRe.ReplaceAllString(out, "")
	out = eventHandlerRe.ReplaceAllString(out, "")
	out = strings.TrimSpace(out)
	if runes := []rune(out); len(runes) > maxLen {
		out = string(runes[:maxLen])
	}
	return out
}

// TruncateText shortens text to maxLen runes, appending an ellipsis when
// anything was cut.
func TruncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
