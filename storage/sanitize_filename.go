// Adapted from https://github.com/subosito/gozaru
package storage

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	characterFilter   = `[\x00-\x1F\/\\:\*\?\"<>\|]`
	unicodeWhitespace = `[[:space:]]+`
	maxFilenameLength = 200
)

var (
	fallbackFilename = "key"

	characterFilterRx   = regexp.MustCompile(characterFilter)
	unicodeWhitespaceRx = regexp.MustCompile(unicodeWhitespace)
)

// sanitize turns a history key into something safe to use as a file name.
// n trims that many bytes from the end; the result never exceeds
// maxFilenameLength so the hash suffix still fits in a 255 byte name.
func sanitize(s string, n int, fallback string) string {
	if fallback == "" {
		fallback = fallbackFilename
	}

	sc := clean(s, fallback)
	nc := len(sc)

	if n > nc {
		return sc
	}

	if nc > maxFilenameLength {
		nc = maxFilenameLength
	}

	if n != 0 {
		nc -= n
	}

	for nc > 0 && nc < len(sc) && !utf8.RuneStart(sc[nc]) {
		nc--
	}

	return sc[0:nc]
}

func replace(s string, rx *regexp.Regexp, replacement string) string {
	return strings.TrimSpace(rx.ReplaceAllString(s, replacement))
}

func clean(s string, fallback string) string {
	sc := replace(s, unicodeWhitespaceRx, " ")
	sc = replace(sc, characterFilterRx, "_")
	sc = replace(sc, unicodeWhitespaceRx, " ")
	return filter(sc, fallback)
}

func filter(s string, fallback string) string {
	s = filterBlank(s, fallback)
	s = filterDot(s, fallback)

	return s
}

func filterBlank(s string, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}

func filterDot(s string, fallback string) string {
	if strings.HasPrefix(s, ".") {
		return fmt.Sprintf("%s%s", fallback, s)
	}

	return s
}
