// Package format renders level metadata for display: dates, identifiers,
// durations, tag names and counts.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	smm1GroupSize  = 4
	smm1GroupCount = 4
	smm2GroupSize  = 3
	smm2GroupCount = 3

	// SMM2LevelIDLength is the length of a normalised SMM2 course ID.
	SMM2LevelIDLength = smm2GroupSize * smm2GroupCount
)

// ISODate formats t as YYYY-MM-DD in t's location.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// HHMMTime formats t as a 24-hour HH:MM clock time.
func HHMMTime(t time.Time) string {
	return t.Format("15:04")
}

// TitleCase upper-cases the first letter of every space separated word and
// leaves the remaining letters alone.
// Hyphens and apostrophes do not start a new word.
func TitleCase(s string) string {
	upper := cases.Upper(language.English)
	words := strings.Split(s, " ")
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		if size == 0 || r == utf8.RuneError {
			continue
		}
		words[i] = upper.String(word[:size]) + word[size:]
	}
	return strings.Join(words, " ")
}

// TagName turns a snake_case tag or theme identifier into display text.
func TagName(tag string) string {
	return TitleCase(strings.ReplaceAll(tag, "_", " "))
}

// ClearcheckMs renders a clear check duration. Milliseconds are rounded up to
// whole seconds; anything over a minute is shown as "Xm Ys".
func ClearcheckMs(ms int64) string {
	seconds := ms / 1000
	if ms%1000 > 0 {
		seconds++
	}
	if seconds > 60 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%ds", seconds)
}

// SMM1LevelID renders an SMM1 course ID as four upper-cased groups of four.
func SMM1LevelID(id string) string {
	return groupID(id, smm1GroupSize, smm1GroupCount)
}

// SMM2LevelID renders an SMM2 course ID as three upper-cased groups of three.
func SMM2LevelID(id string) string {
	return groupID(id, smm2GroupSize, smm2GroupCount)
}

// groupID always emits count groups; groups past the end of id are empty.
func groupID(id string, size, count int) string {
	runes := []rune(strings.ToUpper(id))
	groups := make([]string, count)
	for i := range groups {
		start := min(i*size, len(runes))
		end := min(start+size, len(runes))
		groups[i] = string(runes[start:end])
	}
	return strings.Join(groups, "-")
}

// NormalizeLevelID strips whitespace and dashes and lower-cases the result,
// giving the form the API stores.
func NormalizeLevelID(raw string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), "-", ""))
}

// ValidSMM2LevelID reports whether raw normalises to a nine character ID.
func ValidSMM2LevelID(raw string) bool {
	return len([]rune(NormalizeLevelID(raw))) == SMM2LevelIDLength
}

// Count renders n with thousands separators.
func Count(n int64) string {
	return humanize.Comma(n)
}

// Ago renders t relative to now, e.g. "3 years ago".
func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
