package translate

import "fmt"

var languageNames = map[string]string{
	"en":   "English",
	"es":   "Spanish",
	"fr":   "French",
	"ar":   "Arabic",
	"fa":   "Persian (Dari)",
	"ps":   "Pashto",
	"so":   "Somali",
	"sw":   "Swahili",
	"am":   "Amharic",
	"ti":   "Tigrinya",
	"de":   "German",
	"it":   "Italian",
	"pt":   "Portuguese",
	"ru":   "Russian",
	"zh":   "Chinese",
	"ne":   "Nepali",
	"hi":   "Hindi",
	"ur":   "Urdu",
	"auto": "Auto-detect",
}

// LanguageName returns the display name for a language code, or the code
// itself when it is not known.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

const legalPromptFormat = `You are a professional legal translator specializing in asylum and immigration law. Translate the following document from %s into %s, preserving all legal terminology and formatting. Do not simplify or omit any phrases. Maintain accuracy for named entities, dates, case numbers, and official titles. Use the tone and structure typical in official government or legal filings.

IMPORTANT: Provide ONLY the translation. Do not include any explanations, notes, or additional commentary.

Document to translate:
%s`

const standardPromptFormat = `Translate the following text from %s to %s. Provide only the translation without any additional commentary:

%s`

// BuildPrompt renders the legal or standard prompt for req.
func BuildPrompt(req Request) string {
	source := "the detected language"
	if req.SourceLang != "" {
		source = LanguageName(req.SourceLang)
	}
	target := LanguageName(req.TargetLang)
	if req.IsLegal {
		return fmt.Sprintf(legalPromptFormat, source, target, req.Text)
	}
	return fmt.Sprintf(standardPromptFormat, source, target, req.Text)
}
