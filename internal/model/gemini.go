// Package model provides translation-provider implementations of the ADK
// model.LLM interface.
package model

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"sync"

	adkmodel "google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/lexbridge/lexbridge/internal/config"
)

var _ adkmodel.LLM = (*GeminiLLM)(nil)

// GeminiLLM calls the Gemini API through the google.golang.org/genai SDK.
// The client is created on first use.
type GeminiLLM struct {
	apiKey  string
	baseURL string
	name    string
	once    sync.Once
	client  *genai.Client
	initErr error
}

// GeminiOption configures a GeminiLLM.
type GeminiOption func(*GeminiLLM)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) GeminiOption {
	return func(g *GeminiLLM) { g.baseURL = url }
}

// NewGeminiLLM creates a Gemini adapter authenticated with apiKey.
func NewGeminiLLM(apiKey string, opts ...GeminiOption) *GeminiLLM {
	g := &GeminiLLM{
		name:   "gemini",
		apiKey: apiKey,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GeminiLLM) Name() string { return g.name }

func (g *GeminiLLM) ensureClient(ctx context.Context) error {
	g.once.Do(func() {
		g.client, g.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      g.apiKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
		})
	})
	return g.initErr
}

func (g *GeminiLLM) GenerateContent(ctx context.Context, req *adkmodel.LLMRequest, stream bool) iter.Seq2[*adkmodel.LLMResponse, error] {
	return func(yield func(*adkmodel.LLMResponse, error) bool) {
		if err := g.ensureClient(ctx); err != nil {
			yield(nil, fmt.Errorf("gemini: client init failed: %w", err))
			return
		}

		cfg := req.Config
		if cfg == nil {
			cfg = &genai.GenerateContentConfig{}
		}

		slog.Debug("gemini: calling model", "model", req.Model, "stream", stream)

		if stream {
			for resp, err := range g.client.Models.GenerateContentStream(ctx, req.Model, req.Contents, cfg) {
				if err != nil {
					yield(nil, fmt.Errorf("gemini: %w", err))
					return
				}
				if !yield(convertGeminiResponse(resp), nil) {
					return
				}
			}
			return
		}

		resp, err := g.client.Models.GenerateContent(ctx, req.Model, req.Contents, cfg)
		if err != nil {
			yield(nil, fmt.Errorf("gemini: %w", err))
			return
		}
		yield(convertGeminiResponse(resp), nil)
	}
}

func init() {
	RegisterProvider("gemini", func(cfg config.TranslationConfig) adkmodel.LLM {
		return NewGeminiLLM(cfg.APIKey)
	})
}

func convertGeminiResponse(resp *genai.GenerateContentResponse) *adkmodel.LLMResponse {
	if resp == nil || len(resp.Candidates) == 0 {
		r := &adkmodel.LLMResponse{TurnComplete: true}
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			r.FinishReason = genai.FinishReasonSafety
		}
		return r
	}
	c := resp.Candidates[0]
	turnComplete := c.FinishReason != "" && c.FinishReason != genai.FinishReasonUnspecified
	r := &adkmodel.LLMResponse{
		Content:      c.Content,
		TurnComplete: turnComplete,
		FinishReason: c.FinishReason,
	}
	if resp.UsageMetadata != nil {
		r.UsageMetadata = resp.UsageMetadata
	}
	return r
}

// ResponseText concatenates the text parts of resp.
func ResponseText(resp *adkmodel.LLMResponse) string {
	if resp == nil || resp.Content == nil {
		return ""
	}
	var text string
	for _, p := range resp.Content.Parts {
		if p != nil && p.Text != "" {
			text += p.Text
		}
	}
	return text
}
