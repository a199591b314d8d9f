package translate

import "testing"

func TestAssessQuality(t *testing.T) {
	cases := []struct {
		name        string
		source, dst string
		want        Quality
	}{
		{"empty translation", "hello", "", QualityLow},
		{"legal terms similar length", "Solicitud de asilo por persecución", "Application for asylum due to persecution", QualityHigh},
		{"no legal terms", "Buenos días a todos ustedes", "Good morning to all of you", QualityMedium},
		{"too short", "Buenos días a todos", "Hi", QualityLow},
		{"way too long", "Hola", "Hello hello hello hello hello hello", QualityLow},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := AssessQuality(c.source, c.dst); got != c.want {
				t.Errorf("AssessQuality(%q, %q) = %q, want %q", c.source, c.dst, got, c.want)
			}
		})
	}
}

func TestLanguageName(t *testing.T) {
	cases := map[string]string{
		"es":   "Spanish",
		"fa":   "Persian (Dari)",
		"auto": "Auto-detect",
		"xx":   "xx",
	}
	for code, want := range cases {
		if got := LanguageName(code); got != want {
			t.Errorf("LanguageName(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(Request{Text: "hola", SourceLang: "es", TargetLang: "ne"})
	want := "Translate the following text from Spanish to Nepali. Provide only the translation without any additional commentary:\n\nhola"
	if p != want {
		t.Errorf("BuildPrompt() = %q, want %q", p, want)
	}
}
