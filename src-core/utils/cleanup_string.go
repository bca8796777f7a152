package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CleanupString normalizes free-form user text into a display summary:
// surrounding whitespace and a trailing period go, the rest is
// title-cased. The caser is built per call since cases.Caser is not
// safe for concurrent use.
func CleanupString(s string) string {
	s = cases.Title(language.English).String(strings.TrimSpace(s))
	return strings.TrimSuffix(s, ".")
}
