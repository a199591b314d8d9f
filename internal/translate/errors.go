package translate

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorises a translation failure.
type Kind string

const (
	KindInvalidRequest   Kind = "invalid_request"
	KindTextTooLong      Kind = "text_too_long"
	KindAuth             Kind = "auth"
	KindRateLimit        Kind = "rate_limit"
	KindModelUnavailable Kind = "model_unavailable"
	KindContentBlocked   Kind = "content_blocked"
	KindService          Kind = "service"
)

// Error is a translation failure with user-facing guidance.
type Error struct {
	Kind            Kind
	Title           string
	Details         string
	Code            string // support error code, e.g. "AUTH_001"
	Recommendations []string
	RetryAfter      int // seconds; rate limits only

	// Set for KindTextTooLong.
	CurrentLength int
	MaxLength     int

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Details)
}

func (e *Error) Unwrap() error { return e.Err }

// providerRules are matched in order against the lower-cased provider error
// message. The SDK does not promise message formats; unmatched errors fall
// through to KindService.
var providerRules = []struct {
	substrs []string
	kind    Kind
}{
	{[]string{"api key", "api_key", "authentication", "401"}, KindAuth},
	{[]string{"quota", "rate limit", "429"}, KindRateLimit},
	{[]string{"model", "not found", "404"}, KindModelUnavailable},
	{[]string{"blocked", "safety"}, KindContentBlocked},
}

func classifyMessage(msg string) Kind {
	msg = strings.ToLower(msg)
	for _, rule := range providerRules {
		for _, s := range rule.substrs {
			if strings.Contains(msg, s) {
				return rule.kind
			}
		}
	}
	return KindService
}

// Classify converts a provider error into an *Error. Errors that already are
// *Error are returned unchanged.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var terr *Error
	if errors.As(err, &terr) {
		return terr
	}

	var kind Kind
	switch {
	case errors.Is(err, ErrEmptyResponse):
		kind = KindModelUnavailable
	case errors.Is(err, ErrBlocked):
		kind = KindContentBlocked
	default:
		kind = classifyMessage(err.Error())
	}
	e := providerError(kind)
	e.Err = err
	return e
}

func providerError(kind Kind) *Error {
	switch kind {
	case KindAuth:
		return &Error{
			Kind:    kind,
			Title:   "Authentication Error",
			Details: "The API key is invalid or has insufficient permissions.",
			Code:    "AUTH_001",
			Recommendations: []string{
				"API key may be invalid or expired",
				"Check Google AI API permissions",
				"Verify billing is enabled for the API key",
				"Contact support for immediate assistance",
			},
		}
	case KindRateLimit:
		return &Error{
			Kind:       kind,
			Title:      "Service Temporarily Overloaded",
			Details:    "The translation service is currently at capacity. Please try again in a few minutes.",
			Code:       "RATE_LIMIT_001",
			RetryAfter: 60,
			Recommendations: []string{
				"Wait 1-2 minutes before trying again",
				"Try translating smaller text segments",
				"Contact support for priority access",
			},
		}
	case KindModelUnavailable:
		return &Error{
			Kind:    kind,
			Title:   "Translation Model Unavailable",
			Details: "The AI translation model is temporarily unavailable.",
			Code:    "MODEL_001",
			Recommendations: []string{
				"This is a temporary service issue",
				"Try again in 5-10 minutes",
				"Contact support if issue persists",
			},
		}
	case KindContentBlocked:
		return &Error{
			Kind:    kind,
			Title:   "Content Safety Filter",
			Details: "The content could not be translated due to safety filters.",
			Code:    "CONTENT_001",
			Recommendations: []string{
				"Try rephrasing the content",
				"Remove any potentially sensitive information",
				"Contact support for assistance with legal documents",
			},
		}
	}
	return &Error{
		Kind:    KindService,
		Title:   "Translation Service Error",
		Details: "An unexpected error occurred during translation.",
		Code:    "AI_SERVICE_001",
		Recommendations: []string{
			"Try again in a few minutes",
			"Check your internet connection",
			"Contact support if the problem persists",
		},
	}
}
