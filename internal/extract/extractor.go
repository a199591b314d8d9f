package extract

import (
	"errors"
	"time"
)

// Media types accepted by the dispatcher.
const (
	MediaTypeText = "text/plain"
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeDOC  = "application/msword"
)

// File is an uploaded document. The caller owns it; Extract never mutates it.
type File struct {
	Data      []byte
	MediaType string
	Name      string
	Size      int64
}

// Metadata describes where the text came from and what it looks like.
type Metadata struct {
	FileName             string    `json:"fileName"`
	FileSize             int64     `json:"fileSize"`
	FileType             string    `json:"fileType"`
	Pages                int       `json:"pages"`
	Language             string    `json:"language"`
	ProcessingMethod     string    `json:"processingMethod"`
	WordCount            int       `json:"wordCount"`
	CharacterCount       int       `json:"characterCount"`
	EstimatedReadingTime int       `json:"estimatedReadingTime"`
	ExtractionTimestamp  time.Time `json:"extractionTimestamp"`
}

// Result is the outcome of a successful extraction.
type Result struct {
	Text     string   `json:"extractedText"`
	Metadata Metadata `json:"metadata"`
}

// Strategy turns a document buffer into raw text and a page count.
type Strategy interface {
	// Method is the tag reported as Metadata.ProcessingMethod.
	Method() string
	Extract(data []byte) (text string, pages int, err error)
}

// Extractor dispatches files to a Strategy by declared media type.
type Extractor struct {
	strategies map[string]Strategy
	now        func() time.Time
}

// New returns an Extractor with the plain text, PDF and Word strategies.
func New() *Extractor {
	word := wordStrategy{parse: parseDOCX}
	return &Extractor{
		strategies: map[string]Strategy{
			MediaTypeText: textStrategy{},
			MediaTypePDF:  pdfStrategy{parse: parsePDF},
			MediaTypeDOCX: word,
			MediaTypeDOC:  word,
		},
		now: time.Now,
	}
}

var defaultExtractor = New()

// Extract runs f through the default Extractor.
func Extract(f *File) (*Result, error) {
	return defaultExtractor.Extract(f)
}

// Extract selects a strategy for f, runs it and post-processes the text.
// Every failure is returned as an *Error.
func (e *Extractor) Extract(f *File) (*Result, error) {
	if f == nil {
		return nil, noFileError()
	}

	s, ok := e.strategies[f.MediaType]
	if !ok {
		return nil, unsupportedTypeError(f.MediaType)
	}

	raw, pages, err := s.Extract(f.Data)
	if err != nil {
		var xerr *Error
		if errors.As(err, &xerr) {
			return nil, xerr
		}
		return nil, unknownError(err)
	}

	text := CleanText(raw)
	if text == "" {
		return nil, emptyDocumentError()
	}
	if pages < 1 {
		pages = 1
	}

	size := f.Size
	if size == 0 {
		size = int64(len(f.Data))
	}

	words := WordCount(text)
	return &Result{
		Text: text,
		Metadata: Metadata{
			FileName:             f.Name,
			FileSize:             size,
			FileType:             f.MediaType,
			Pages:                pages,
			Language:             DetectLanguage(text),
			ProcessingMethod:     s.Method(),
			WordCount:            words,
			CharacterCount:       CharacterCount(text),
			EstimatedReadingTime: ReadingTime(words),
			ExtractionTimestamp:  e.now().UTC(),
		},
	}, nil
}
