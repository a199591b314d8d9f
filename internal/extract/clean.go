package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// spaceClass is the ECMAScript \s set. Go's \s only covers ASCII.
const spaceClass = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	whitespaceRun = regexp.MustCompile(`[` + spaceClass + `]+`)
	controlChars  = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	newlineGroups = regexp.MustCompile(`\n[` + spaceClass + `]*\n[` + spaceClass + `]*\n`)
)

const wordsPerMinute = 200

// CleanText flattens text to a single line. Whitespace runs are collapsed
// before anything else, so the newline-group pass never finds a match;
// callers rely on the single-line output.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = controlChars.ReplaceAllString(text, "")
	text = newlineGroups.ReplaceAllString(text, "\n\n")
	return strings.TrimFunc(text, isSpace)
}

// WordCount counts whitespace-separated tokens.
func WordCount(text string) int {
	return len(strings.FieldsFunc(text, isSpace))
}

// CharacterCount counts code points.
func CharacterCount(text string) int {
	return utf8.RuneCountInString(text)
}

// ReadingTime estimates reading time in whole minutes, rounded up.
func ReadingTime(words int) int {
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}
