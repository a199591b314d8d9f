package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type pdfStrategy struct {
	parse func(data []byte) (string, int, error)
}

func (pdfStrategy) Method() string { return "pdf" }

func (s pdfStrategy) Extract(data []byte) (text string, pages int, err error) {
	// ledongthuc/pdf panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, pages = "", 0
			err = contentError(KindPDF, fmt.Errorf("malformed pdf: %v", r))
		}
	}()

	text, pages, err = s.parse(data)
	if err != nil {
		return "", 0, contentError(KindPDF, err)
	}
	if isBlank(text) {
		return "", 0, noTextError(KindPDF)
	}
	return text, pages, nil
}

// parsePDF reads the text layer of every page. Pages that fail to decode are
// skipped; the page count still includes them.
func parsePDF(data []byte) (string, int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("parse pdf: %w", err)
	}

	n := r.NumPage()
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String(), n, nil
}
