package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lexbridge/lexbridge/internal/translate"
)

type supportInfo struct {
	Email     string    `json:"email,omitempty"`
	ErrorCode string    `json:"errorCode"`
	Timestamp time.Time `json:"timestamp"`
	Reference string    `json:"reference"`
}

type translateErrorBody struct {
	Error           string         `json:"error"`
	Details         string         `json:"details"`
	SupportInfo     *supportInfo   `json:"supportInfo,omitempty"`
	Recommendations []string       `json:"recommendations,omitempty"`
	FallbackOptions []string       `json:"fallbackOptions,omitempty"`
	RetryAfter      int            `json:"retryAfter,omitempty"`
	CurrentLength   int            `json:"currentLength,omitempty"`
	MaxLength       int            `json:"maxLength,omitempty"`
	DebugInfo       map[string]any `json:"debugInfo,omitempty"`
}

type translateResponse struct {
	Success bool `json:"success"`
	*translate.Result
}

var translateStatus = map[translate.Kind]int{
	translate.KindInvalidRequest:   http.StatusBadRequest,
	translate.KindTextTooLong:      http.StatusBadRequest,
	translate.KindAuth:             http.StatusUnauthorized,
	translate.KindRateLimit:        http.StatusTooManyRequests,
	translate.KindModelUnavailable: http.StatusServiceUnavailable,
	translate.KindContentBlocked:   http.StatusBadRequest,
	translate.KindService:          http.StatusInternalServerError,
}

// newSupportInfo stamps an error code with a reference that is also logged,
// so support can find the server-side record.
func (s *Server) newSupportInfo(code string) *supportInfo {
	return &supportInfo{
		Email:     s.cfg.Support.Email,
		ErrorCode: code,
		Timestamp: time.Now().UTC(),
		Reference: uuid.NewString(),
	}
}

func (s *Server) translateText(w http.ResponseWriter, r *http.Request) {
	if s.translator == nil {
		info := s.newSupportInfo("CONFIG_001")
		slog.Error("translation unavailable: no API key configured", "reference", info.Reference)
		writeJSON(w, http.StatusServiceUnavailable, translateErrorBody{
			Error:       "Service Temporarily Unavailable",
			Details:     "The translation service is not properly configured in the deployment environment.",
			SupportInfo: info,
			Recommendations: []string{
				"This is a deployment configuration issue",
				"The service needs a Google AI API key to translate",
				"Please contact support for immediate assistance",
			},
			FallbackOptions: []string{
				"Use the sample text feature to test functionality",
				"Copy and paste text for manual translation",
				"Contact support for urgent translation needs",
			},
		})
		return
	}

	var req translate.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, translateErrorBody{
			Error:   "Invalid request format",
			Details: "Unable to parse request body",
		})
		return
	}

	res, err := s.translator.Translate(r.Context(), req)
	if err != nil {
		s.writeTranslateError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, translateResponse{Success: true, Result: res})
}

func (s *Server) writeTranslateError(w http.ResponseWriter, err error) {
	var terr *translate.Error
	if !errors.As(err, &terr) {
		terr = translate.Classify(err)
	}

	status, ok := translateStatus[terr.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	body := translateErrorBody{
		Error:           terr.Title,
		Details:         terr.Details,
		Recommendations: terr.Recommendations,
		RetryAfter:      terr.RetryAfter,
		CurrentLength:   terr.CurrentLength,
		MaxLength:       terr.MaxLength,
	}

	if terr.Code != "" {
		body.SupportInfo = s.newSupportInfo(terr.Code)
		slog.Error("translation failed", "kind", terr.Kind, "code", terr.Code,
			"reference", body.SupportInfo.Reference, "err", err)
		if s.cfg.Server.Environment == "development" {
			body.DebugInfo = map[string]any{"error": err.Error()}
		}
	}
	if terr.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(terr.RetryAfter))
	}
	writeJSON(w, status, body)
}
