// Package translate turns source text into a translation through an
// adkmodel.LLM provider.
package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	adkmodel "google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/lexbridge/lexbridge/internal/model"
)

const (
	defaultMaxTextLength = 50000
	probePrompt          = "Say 'API test successful'"
)

var (
	// ErrEmptyResponse is returned when the provider answers with no text.
	ErrEmptyResponse = errors.New("empty response from AI model")
	// ErrBlocked is returned when the provider refuses on safety grounds.
	ErrBlocked = errors.New("response blocked by safety filters")
)

// Request is a translation request as posted by the client.
type Request struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
	IsLegal    bool   `json:"isLegal"`
}

// Metadata describes a completed translation.
type Metadata struct {
	Timestamp         time.Time `json:"timestamp"`
	TextLength        int       `json:"textLength"`
	TranslationLength int       `json:"translationLength"`
	IsLegal           bool      `json:"isLegal"`
}

// Result is a successful translation.
type Result struct {
	TranslatedText string   `json:"translatedText"`
	Quality        Quality  `json:"quality"`
	SourceLang     string   `json:"sourceLang"`
	TargetLang     string   `json:"targetLang"`
	Metadata       Metadata `json:"metadata"`
}

// Translator sends prompts to a single model.
type Translator struct {
	llm           adkmodel.LLM
	model         string
	maxTextLength int
	now           func() time.Time
}

// Option configures a Translator.
type Option func(*Translator)

// WithMaxTextLength caps the accepted source length in characters.
func WithMaxTextLength(n int) Option {
	return func(t *Translator) {
		if n > 0 {
			t.maxTextLength = n
		}
	}
}

// New creates a Translator that calls modelName on llm.
func New(llm adkmodel.LLM, modelName string, opts ...Option) *Translator {
	t := &Translator{
		llm:           llm,
		model:         modelName,
		maxTextLength: defaultMaxTextLength,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// MaxTextLength returns the configured source length limit.
func (t *Translator) MaxTextLength() int { return t.maxTextLength }

// Validate checks req without contacting the provider.
func (t *Translator) Validate(req Request) error {
	if req.Text == "" || req.TargetLang == "" {
		return &Error{
			Kind:    KindInvalidRequest,
			Title:   "Missing required fields",
			Details: "Both 'text' and 'targetLang' are required",
		}
	}
	if n := utf8.RuneCountInString(req.Text); n > t.maxTextLength {
		return &Error{
			Kind:          KindTextTooLong,
			Title:         "Text too long",
			Details:       fmt.Sprintf("Please limit to %d characters.", t.maxTextLength),
			CurrentLength: n,
			MaxLength:     t.maxTextLength,
		}
	}
	return nil
}

// Translate validates req, calls the provider and grades the result.
// Provider failures are returned as *Error via Classify.
func (t *Translator) Translate(ctx context.Context, req Request) (*Result, error) {
	if err := t.Validate(req); err != nil {
		return nil, err
	}

	prompt := BuildPrompt(req)
	translated, err := t.generate(ctx, prompt)
	if err != nil {
		return nil, Classify(err)
	}
	translated = strings.TrimSpace(translated)

	src := req.SourceLang
	if src == "" {
		src = "auto"
	}
	slog.Info("translation complete",
		"source", src, "target", req.TargetLang, "legal", req.IsLegal,
		"text_length", utf8.RuneCountInString(req.Text), "translation_length", utf8.RuneCountInString(translated))

	return &Result{
		TranslatedText: translated,
		Quality:        AssessQuality(req.Text, translated),
		SourceLang:     src,
		TargetLang:     req.TargetLang,
		Metadata: Metadata{
			Timestamp:         t.now().UTC(),
			TextLength:        utf8.RuneCountInString(req.Text),
			TranslationLength: utf8.RuneCountInString(translated),
			IsLegal:           req.IsLegal,
		},
	}, nil
}

// Probe sends a fixed prompt and returns the trimmed reply. An empty reply
// is not an error; callers decide whether that means degraded service.
func (t *Translator) Probe(ctx context.Context) (string, error) {
	text, err := t.generate(ctx, probePrompt)
	if err != nil && !errors.Is(err, ErrEmptyResponse) {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// blockedFinishReasons end a candidate without text because the provider
// refused the content.
var blockedFinishReasons = map[genai.FinishReason]bool{
	genai.FinishReasonSafety:            true,
	genai.FinishReasonRecitation:        true,
	genai.FinishReasonBlocklist:         true,
	genai.FinishReasonProhibitedContent: true,
	genai.FinishReasonSPII:              true,
}

func (t *Translator) generate(ctx context.Context, prompt string) (string, error) {
	req := &adkmodel.LLMRequest{
		Model: t.model,
		Contents: []*genai.Content{
			genai.NewContentFromText(prompt, genai.RoleUser),
		},
	}

	var sb strings.Builder
	for resp, err := range t.llm.GenerateContent(ctx, req, false) {
		if err != nil {
			return "", err
		}
		if resp != nil && blockedFinishReasons[resp.FinishReason] {
			return "", ErrBlocked
		}
		sb.WriteString(model.ResponseText(resp))
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
