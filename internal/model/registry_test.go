package model_test

import (
	"testing"

	"github.com/lexbridge/lexbridge/internal/config"
	"github.com/lexbridge/lexbridge/internal/model"
	adkmodel "google.golang.org/adk/model"
	"google.golang.org/genai"
)

func TestBuildLLM_Gemini(t *testing.T) {
	llm, ok := model.BuildLLM(config.TranslationConfig{
		Provider: "gemini",
		APIKey:   "test-key",
	})
	if !ok {
		t.Fatal("expected ok=true for gemini")
	}
	if llm == nil {
		t.Fatal("expected non-nil LLM")
	}
	if llm.Name() != "gemini" {
		t.Errorf("Name() = %q, want gemini", llm.Name())
	}
}

func TestBuildLLM_UnknownProvider(t *testing.T) {
	_, ok := model.BuildLLM(config.TranslationConfig{Provider: "totally-unknown"})
	if ok {
		t.Fatal("expected ok=false for unknown provider")
	}
}

func TestResponseText(t *testing.T) {
	if got := model.ResponseText(nil); got != "" {
		t.Errorf("nil response: got %q", got)
	}
	if got := model.ResponseText(&adkmodel.LLMResponse{}); got != "" {
		t.Errorf("nil content: got %q", got)
	}

	resp := &adkmodel.LLMResponse{
		Content: &genai.Content{
			Role: "model",
			Parts: []*genai.Part{
				genai.NewPartFromText("Hola "),
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{1}}},
				genai.NewPartFromText("mundo"),
			},
		},
	}
	if got := model.ResponseText(resp); got != "Hola mundo" {
		t.Errorf("got %q, want %q", got, "Hola mundo")
	}
}
