package extract

import (
	"regexp"
	"strings"
)

// Heuristic language tags.
const (
	LanguageUnknown    = "unknown"
	LanguageAutoDetect = "auto-detect"
	LanguageEnglish    = "english"
	LanguageSpanish    = "spanish"
	LanguageArabic     = "arabic"
	LanguageDari       = "dari"
)

const (
	languageSampleSize = 500
	languageThreshold  = 5
)

var spanishWords = []string{
	"el", "la", "de", "que", "y", "en", "un", "es", "se", "no", "te", "lo", "le", "da", "su",
	"por", "son", "con", "para", "una", "tiene", "más", "este", "ya", "todo", "esta", "muy",
	"hacer", "puede", "tiempo", "si", "él", "dos", "cada", "sobre", "también", "hasta",
	"donde", "mientras", "estado", "país", "parte", "vida", "hombre", "días", "casa",
	"gobierno", "nueva", "trabajo", "año", "años", "mundo", "durante", "sin", "lugar",
	"sólo", "forma", "agua", "poco", "después", "mismo", "tanto", "estos", "todas", "otro",
	"entre", "ser", "poder", "decir", "tomar", "saber", "llegar", "pasar", "bien", "día",
	"dar", "vez", "mujer", "niño", "ojo", "caso", "momento", "nombre", "mano", "cosa",
	"persona",
}

var englishWords = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "i", "it", "for", "not", "on",
	"with", "he", "as", "you", "do", "at", "this", "but", "his", "by", "from", "they", "she",
	"or", "an", "will", "my", "one", "all", "would", "there", "their", "what", "so", "up",
	"out", "if", "about", "who", "get", "which", "go", "me", "when", "make", "can", "like",
	"time", "no", "just", "him", "know", "take", "people", "into", "year", "your", "good",
	"some", "could", "them", "see", "other", "than", "then", "now", "look", "only", "come",
	"its", "over", "think", "also", "back", "after", "use", "two", "how", "our", "work",
	"first", "well", "way", "even", "new", "want", "because", "any", "these", "give", "day",
	"most", "us",
}

func wordPattern(words []string) *regexp.Regexp {
	return regexp.MustCompile(`\b(` + strings.Join(words, "|") + `)\b`)
}

// arabicScript matches the Arabic block, which also covers Dari. The two tags
// always tie and arabic, listed first, wins.
var arabicScript = regexp.MustCompile(`[\x{0600}-\x{06FF}]`)

var languagePatterns = []struct {
	lang string
	re   *regexp.Regexp
}{
	{LanguageSpanish, wordPattern(spanishWords)},
	{LanguageEnglish, wordPattern(englishWords)},
	{LanguageArabic, arabicScript},
	{LanguageDari, arabicScript},
}

// DetectLanguage guesses a language tag by counting keyword and script
// matches in the first 500 characters. It is a frequency heuristic, not
// language identification.
func DetectLanguage(text string) string {
	if isBlank(text) {
		return LanguageUnknown
	}

	sample := []rune(strings.ToLower(text))
	if len(sample) > languageSampleSize {
		sample = sample[:languageSampleSize]
	}
	s := string(sample)

	best, lang := 0, LanguageUnknown
	for _, p := range languagePatterns {
		if n := len(p.re.FindAllStringIndex(s, -1)); n > best {
			best, lang = n, p.lang
		}
	}
	if best > languageThreshold {
		return lang
	}
	return LanguageAutoDetect
}
