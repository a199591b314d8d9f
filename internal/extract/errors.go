package extract

import (
	"fmt"
	"strings"
)

// Kind is the stable category of an extraction failure.
type Kind string

const (
	KindNoFile          Kind = "NoFileProvided"
	KindUnsupportedType Kind = "UnsupportedFileType"
	KindPDF             Kind = "PdfProcessingFailed"
	KindWord            Kind = "WordProcessingFailed"
	KindEmptyDocument   Kind = "EmptyDocument"
	KindUnknown         Kind = "UnknownProcessingError"
)

// SupportedFormats lists the accepted formats in human-readable form.
var SupportedFormats = []string{"PDF (.pdf)", "Word Document (.docx, .doc)", "Plain Text (.txt)"}

// Error is a structured extraction failure. Title, Details and Suggestions
// are meant for the end user.
type Error struct {
	Kind        Kind
	Title       string
	Details     string
	Suggestions []string

	// Set for KindUnsupportedType only.
	SupportedTypes []string
	ReceivedType   string

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Details)
}

func (e *Error) Unwrap() error { return e.Err }

func noFileError() *Error {
	return &Error{
		Kind:    KindNoFile,
		Title:   "No file provided",
		Details: "The request did not include a file to process",
	}
}

func unsupportedTypeError(mediaType string) *Error {
	return &Error{
		Kind:           KindUnsupportedType,
		Title:          "Unsupported File Type",
		Details:        fmt.Sprintf("File type %s is not supported", mediaType),
		SupportedTypes: clone(SupportedFormats),
		ReceivedType:   mediaType,
	}
}

func emptyDocumentError() *Error {
	return &Error{
		Kind:    KindEmptyDocument,
		Title:   "Empty Document",
		Details: "No readable text content found in the document",
		Suggestions: []string{
			"Check if the document contains actual text content",
			"Ensure the document is not just images or blank pages",
			"Try a different document format",
		},
	}
}

func unknownError(err error) *Error {
	return &Error{
		Kind:    KindUnknown,
		Title:   "Document Processing Failed",
		Details: err.Error(),
		Suggestions: []string{
			"Try uploading a different document",
			"Ensure the document is not corrupted",
			"Contact support if the problem persists",
		},
		Err: err,
	}
}

// parserCause is a best-effort reading of a parser error message. The PDF and
// Word libraries do not promise stable messages, so a miss falls back to
// causeGeneric.
type parserCause int

const (
	causeGeneric parserCause = iota
	causePassword
	causeCorrupted
)

var parserCauses = []struct {
	substr string
	cause  parserCause
}{
	{"password", causePassword},
	{"encrypted", causePassword},
	{"invalid pdf", causeCorrupted},
	{"not a pdf", causeCorrupted},
	{"malformed", causeCorrupted},
	{"corrupt", causeCorrupted},
	{"not a valid zip", causeCorrupted},
}

func classifyParserMessage(msg string) parserCause {
	msg = strings.ToLower(msg)
	for _, c := range parserCauses {
		if strings.Contains(msg, c.substr) {
			return c.cause
		}
	}
	return causeGeneric
}

type failureText struct {
	title       string
	subject     string
	suggestions []string
}

var genericFailures = map[Kind]failureText{
	KindPDF: {
		title:   "PDF Processing Failed",
		subject: "PDF",
		suggestions: []string{
			"Ensure the PDF contains selectable text (not just images)",
			"Try converting the PDF to a Word document first",
			"Check if the PDF is password protected or corrupted",
		},
	},
	KindWord: {
		title:   "Word Document Processing Failed",
		subject: "Word document",
		suggestions: []string{
			"Ensure the document is not corrupted",
			"Try saving the document in a different format",
			"Check if the document is password protected",
		},
	},
}

var corruptedFailures = map[Kind]failureText{
	KindPDF: {
		title: "Invalid PDF File",
		suggestions: []string{
			"Try opening the PDF in a PDF viewer to verify it's not corrupted",
			"Re-save or re-export the PDF from the original source",
			"Convert the document to a different format",
		},
	},
	KindWord: {
		title: "Invalid Word Document",
		suggestions: []string{
			"Try opening the document in a word processor to verify it's not corrupted",
			"Re-save the document as .docx from the original application",
			"Convert the document to a different format",
		},
	},
}

var passwordSuggestions = []string{
	"Remove password protection from the document",
	"Provide the document in an unprotected format",
	"Contact the document owner for an unprotected version",
}

// contentError reports a parser failure for kind (KindPDF or KindWord).
func contentError(kind Kind, err error) *Error {
	generic := genericFailures[kind]
	details := fmt.Sprintf("Failed to extract text from %s: %s", generic.subject, err.Error())

	switch classifyParserMessage(err.Error()) {
	case causePassword:
		return &Error{
			Kind:        kind,
			Title:       "Password Protected Document",
			Details:     details,
			Suggestions: clone(passwordSuggestions),
			Err:         err,
		}
	case causeCorrupted:
		c := corruptedFailures[kind]
		return &Error{
			Kind:        kind,
			Title:       c.title,
			Details:     details,
			Suggestions: clone(c.suggestions),
			Err:         err,
		}
	}
	return &Error{
		Kind:        kind,
		Title:       generic.title,
		Details:     details,
		Suggestions: clone(generic.suggestions),
		Err:         err,
	}
}

// noTextError reports a parser that succeeded but produced nothing usable.
// It is never classified: the message mentions "corrupted" only as a guess.
func noTextError(kind Kind) *Error {
	generic := genericFailures[kind]
	var msg string
	if kind == KindPDF {
		msg = "No text content found in PDF - document may be image-based or corrupted"
	} else {
		msg = "No text content found in Word document"
	}
	return &Error{
		Kind:        kind,
		Title:       generic.title,
		Details:     fmt.Sprintf("Failed to extract text from %s: %s", generic.subject, msg),
		Suggestions: clone(generic.suggestions),
	}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
