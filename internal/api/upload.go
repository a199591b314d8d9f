package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/lexbridge/lexbridge/internal/extract"
)

// extractErrorBody is the JSON shape of a failed extraction.
type extractErrorBody struct {
	Error          string   `json:"error"`
	Details        string   `json:"details"`
	Suggestions    []string `json:"suggestions,omitempty"`
	SupportedTypes []string `json:"supportedTypes,omitempty"`
	ReceivedType   *string  `json:"receivedType,omitempty"`
	FileName       string   `json:"fileName,omitempty"`
	FileType       string   `json:"fileType,omitempty"`
	FileSize       *int64   `json:"fileSize,omitempty"`
}

type extractResponse struct {
	Success bool `json:"success"`
	*extract.Result
}

type uploadResponse struct {
	Success       bool   `json:"success"`
	ExtractedText string `json:"extractedText"`
	FileName      string `json:"fileName"`
	FileSize      int64  `json:"fileSize"`
	FileType      string `json:"fileType"`
}

var extractStatus = map[extract.Kind]int{
	extract.KindNoFile:          http.StatusBadRequest,
	extract.KindUnsupportedType: http.StatusBadRequest,
	extract.KindPDF:             http.StatusUnprocessableEntity,
	extract.KindWord:            http.StatusUnprocessableEntity,
	extract.KindEmptyDocument:   http.StatusUnprocessableEntity,
	extract.KindUnknown:         http.StatusInternalServerError,
}

func (s *Server) extractText(w http.ResponseWriter, r *http.Request) {
	f, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	res, err := s.extractor.Extract(f)
	if err != nil {
		writeExtractError(w, f, err)
		return
	}

	slog.Info("extracted text", "file", f.Name, "type", f.MediaType,
		"words", res.Metadata.WordCount, "language", res.Metadata.Language)
	writeJSON(w, http.StatusOK, extractResponse{Success: true, Result: res})
}

func (s *Server) uploadFile(w http.ResponseWriter, r *http.Request) {
	f, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	res, err := s.extractor.Extract(f)
	if err != nil {
		writeExtractError(w, f, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Success:       true,
		ExtractedText: res.Text,
		FileName:      res.Metadata.FileName,
		FileSize:      res.Metadata.FileSize,
		FileType:      res.Metadata.FileType,
	})
}

// readUpload reads the "file" form field into memory. A missing field yields
// (nil, true) so the extractor reports it; transport failures are written
// here and yield (nil, false).
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*extract.File, bool) {
	maxBytes := s.cfg.Upload.MaxBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusBadRequest, extractErrorBody{
				Error:   "File too large",
				Details: "Uploads are limited to " + uploadLimit(maxBytes),
			})
			return nil, false
		}
		writeJSON(w, http.StatusBadRequest, extractErrorBody{
			Error:   "Invalid upload",
			Details: "The request must be multipart/form-data with a \"file\" field",
		})
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, true
		}
		writeJSON(w, http.StatusBadRequest, extractErrorBody{Error: "Invalid upload", Details: err.Error()})
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("read upload", "file", header.Filename, "err", err)
		writeJSON(w, http.StatusInternalServerError, extractErrorBody{
			Error:   "Server Error",
			Details: "An unexpected error occurred while processing your document",
			Suggestions: []string{
				"Try uploading the document again",
				"Check your internet connection",
				"Contact support if the problem persists",
			},
		})
		return nil, false
	}

	return &extract.File{
		Data:      data,
		MediaType: header.Header.Get("Content-Type"),
		Name:      header.Filename,
		Size:      header.Size,
	}, true
}

// uploadLimit formats n bytes for users, rounding up so a non-zero limit
// never prints as zero.
func uploadLimit(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%d MB", (n+1<<20-1)>>20)
	case n >= 1<<10:
		return fmt.Sprintf("%d KB", (n+1<<10-1)>>10)
	}
	return fmt.Sprintf("%d bytes", n)
}

func writeExtractError(w http.ResponseWriter, f *extract.File, err error) {
	var xerr *extract.Error
	if !errors.As(err, &xerr) {
		slog.Error("extraction failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, extractErrorBody{
			Error:   "Server Error",
			Details: "An unexpected error occurred while processing your document",
		})
		return
	}

	status, ok := extractStatus[xerr.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	body := extractErrorBody{
		Error:       xerr.Title,
		Details:     xerr.Details,
		Suggestions: xerr.Suggestions,
	}
	switch xerr.Kind {
	case extract.KindUnsupportedType:
		body.SupportedTypes = xerr.SupportedTypes
		body.ReceivedType = &xerr.ReceivedType
	case extract.KindUnknown:
		if f != nil {
			body.FileName = f.Name
			body.FileType = f.MediaType
			size := f.Size
			body.FileSize = &size
		}
	}

	if status >= http.StatusInternalServerError {
		slog.Error("extraction failed", "kind", xerr.Kind, "err", err)
	} else {
		slog.Warn("extraction rejected", "kind", xerr.Kind, "err", err)
	}
	writeJSON(w, status, body)
}
