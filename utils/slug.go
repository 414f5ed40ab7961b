package utils

import (
	"strings"
	"unicode"
)

// Slugify converts a display name into a URL-safe slug: lower-cased, runs of
// non-alphanumerics collapsed to single hyphens, trimmed at both ends.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
