package translate

import (
	"strings"
	"unicode/utf8"
)

// Quality is a coarse grade of a translation.
type Quality string

const (
	QualityHigh   Quality = "high"
	QualityMedium Quality = "medium"
	QualityLow    Quality = "low"
)

var legalTerms = []string{
	"asylum", "persecution", "refugee", "application", "case", "court", "evidence",
	"solicitud", "asilo", "persecución",
	"शरण", "उत्पीडन",
}

// AssessQuality grades translation against source using the length ratio,
// a minimum amount of content, and whether legal vocabulary appears on
// either side.
func AssessQuality(source, translation string) Quality {
	if translation == "" || source == "" {
		return QualityLow
	}

	ratio := float64(utf8.RuneCountInString(translation)) / float64(utf8.RuneCountInString(source))
	hasContent := utf8.RuneCountInString(strings.TrimSpace(translation)) > 10

	src, dst := strings.ToLower(source), strings.ToLower(translation)
	hasLegalTerms := false
	for _, term := range legalTerms {
		if strings.Contains(src, term) || strings.Contains(dst, term) {
			hasLegalTerms = true
			break
		}
	}

	switch {
	case ratio > 0.5 && ratio < 2.0 && hasContent && hasLegalTerms:
		return QualityHigh
	case ratio > 0.3 && ratio < 3.0 && hasContent:
		return QualityMedium
	default:
		return QualityLow
	}
}
