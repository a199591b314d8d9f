package extract

import (
	"strings"
	"testing"
)

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		name, text, want string
	}{
		{"empty", "", LanguageUnknown},
		{"blank", "  \n\t ", LanguageUnknown},
		{"no matches", "zzz qqq xxx", LanguageAutoDetect},
		{"below threshold", "the cat and the dog in a", LanguageAutoDetect}, // 5 matches
		{"english over threshold", "The cat and the dog sat in a house with the owner", LanguageEnglish},
		{"spanish", "Solicito asilo en los Estados Unidos por la persecución que sufrí en mi país de origen y el temor de regresar", LanguageSpanish},
		{"arabic beats dari", "مرحبا بالعالم", LanguageArabic},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DetectLanguage(c.text)
			if got != c.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", c.text, got, c.want)
			}
		})
	}
}

func TestDetectLanguageEnglishFunctionWords(t *testing.T) {
	text := strings.Repeat("the of and to in that it with ", 80)
	if got := DetectLanguage(text); got != LanguageEnglish {
		t.Errorf("want english, got %q", got)
	}
}

func TestDetectLanguageOnlySamplesPrefix(t *testing.T) {
	// 500 runes of filler push every English word out of the sample.
	text := strings.Repeat("x", 500) + strings.Repeat(" the", 50)
	if got := DetectLanguage(text); got != LanguageAutoDetect {
		t.Errorf("want auto-detect, got %q", got)
	}
}

func TestDetectLanguageSampleCountsRunes(t *testing.T) {
	// 300 two-byte runes leave the English words inside a 500-rune sample.
	text := strings.Repeat("é", 300) + " the the the the the the the the"
	if got := DetectLanguage(text); got != LanguageEnglish {
		t.Errorf("want english, got %q", got)
	}
}

func TestDetectLanguageIsCaseInsensitive(t *testing.T) {
	if got := DetectLanguage("THE CAT AND THE DOG SAT IN A HOUSE WITH THE OWNER"); got != LanguageEnglish {
		t.Errorf("want english, got %q", got)
	}
}

func TestArabicAndDariNeverDistinguished(t *testing.T) {
	// Dari text uses the same script block and is reported as arabic.
	if got := DetectLanguage("من به مکتب می روم و کتاب می خوانم"); got != LanguageArabic {
		t.Errorf("want arabic, got %q", got)
	}
}
