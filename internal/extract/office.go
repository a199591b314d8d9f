package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type wordStrategy struct {
	parse func(data []byte) (string, error)
}

func (wordStrategy) Method() string { return "word" }

func (s wordStrategy) Extract(data []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, pages = "", 0
			err = contentError(KindWord, fmt.Errorf("malformed document: %v", r))
		}
	}()

	text, err = s.parse(data)
	if err != nil {
		return "", 0, contentError(KindWord, err)
	}
	if isBlank(text) {
		return "", 0, noTextError(KindWord)
	}
	return text, 1, nil
}

// maxDocumentXMLSize caps the decompressed size of word/document.xml.
var maxDocumentXMLSize int64 = 64 << 20

// parseDOCX reads a DOCX file (ZIP+XML) and returns its raw paragraph text.
// Legacy binary .doc files are not ZIP containers and fail here.
func parseDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx zip: %w", err)
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		if f.UncompressedSize64 > uint64(maxDocumentXMLSize) {
			return "", documentTooLarge()
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open word/document.xml: %w", err)
		}
		defer rc.Close()

		// The declared size is not trusted; the reader enforces the cap.
		lr := &io.LimitedReader{R: rc, N: maxDocumentXMLSize + 1}
		text, err := parseDocumentXML(lr)
		if lr.N <= 0 {
			return "", documentTooLarge()
		}
		return text, err
	}
	return "", fmt.Errorf("word/document.xml not found in docx, file may be corrupted")
}

func documentTooLarge() error {
	return fmt.Errorf("word/document.xml exceeds %d MB when decompressed", maxDocumentXMLSize>>20)
}

func parseDocumentXML(r io.Reader) (string, error) {
	var sb strings.Builder
	runs := 0 // depth of enclosing w:r elements
	decoder := xml.NewDecoder(r)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("malformed word/document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "r":
				runs++
			case "t":
				var content struct {
					Text string `xml:",chardata"`
				}
				if err := decoder.DecodeElement(&content, &t); err != nil {
					return "", fmt.Errorf("malformed word/document.xml: %w", err)
				}
				sb.WriteString(content.Text)
			case "tab":
				// w:tabs/w:tab in paragraph properties are tab stops, not text.
				if runs > 0 {
					sb.WriteString("\t")
				}
			case "br", "cr":
				if runs > 0 {
					sb.WriteString("\n")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "r":
				if runs > 0 {
					runs--
				}
			case "p":
				sb.WriteString("\n\n")
			}
		}
	}
	return sb.String(), nil
}
