package model_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adkmodel "google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/lexbridge/lexbridge/internal/model"
)

const candidateJSON = `{"candidates":[{"content":{"role":"model","parts":[{"text":%q}]},"finishReason":%q}]}`

// fakeGemini answers generateContent with one candidate and
// streamGenerateContent with one SSE event per chunk.
func fakeGemini(t *testing.T, chunks ...string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, ":streamGenerateContent"):
			w.Header().Set("Content-Type", "text/event-stream")
			for i, c := range chunks {
				reason := ""
				if i == len(chunks)-1 {
					reason = "STOP"
				}
				fmt.Fprintf(w, "data: "+candidateJSON+"\n\n", c, reason)
			}
		case strings.HasSuffix(r.URL.Path, ":generateContent"):
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, candidateJSON, strings.Join(chunks, ""), "STOP")
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newRequest() *adkmodel.LLMRequest {
	return &adkmodel.LLMRequest{
		Model:    "gemini-test",
		Contents: []*genai.Content{genai.NewContentFromText("Traduce: hola", genai.RoleUser)},
	}
}

func TestGeminiLLM_Unary(t *testing.T) {
	srv := fakeGemini(t, "Hel", "lo")
	llm := model.NewGeminiLLM("test-key", model.WithBaseURL(srv.URL))

	var got []*adkmodel.LLMResponse
	for resp, err := range llm.GenerateContent(context.Background(), newRequest(), false) {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, resp)
	}
	if len(got) != 1 {
		t.Fatalf("got %d responses, want 1", len(got))
	}
	if text := model.ResponseText(got[0]); text != "Hello" {
		t.Errorf("text = %q, want Hello", text)
	}
	if !got[0].TurnComplete || got[0].FinishReason != genai.FinishReasonStop {
		t.Errorf("turnComplete=%v finishReason=%q", got[0].TurnComplete, got[0].FinishReason)
	}
}

func TestGeminiLLM_Stream(t *testing.T) {
	srv := fakeGemini(t, "Hel", "lo")
	llm := model.NewGeminiLLM("test-key", model.WithBaseURL(srv.URL))

	var text strings.Builder
	var last *adkmodel.LLMResponse
	n := 0
	for resp, err := range llm.GenerateContent(context.Background(), newRequest(), true) {
		if err != nil {
			t.Fatal(err)
		}
		n++
		text.WriteString(model.ResponseText(resp))
		last = resp
	}
	if n != 2 {
		t.Fatalf("got %d chunks, want 2", n)
	}
	if text.String() != "Hello" {
		t.Errorf("text = %q, want Hello", text.String())
	}
	if !last.TurnComplete {
		t.Error("last chunk should complete the turn")
	}
}

func TestGeminiLLM_StreamStopsWhenConsumerStops(t *testing.T) {
	srv := fakeGemini(t, "a", "b", "c")
	llm := model.NewGeminiLLM("test-key", model.WithBaseURL(srv.URL))

	n := 0
	for _, err := range llm.GenerateContent(context.Background(), newRequest(), true) {
		if err != nil {
			t.Fatal(err)
		}
		n++
		break
	}
	if n != 1 {
		t.Errorf("got %d chunks, want 1", n)
	}
}

func TestGeminiLLM_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"code":429,"message":"Resource has been exhausted (e.g. check quota).","status":"RESOURCE_EXHAUSTED"}}`)
	}))
	t.Cleanup(srv.Close)
	llm := model.NewGeminiLLM("test-key", model.WithBaseURL(srv.URL))

	for _, stream := range []bool{false, true} {
		var gotErr error
		for _, err := range llm.GenerateContent(context.Background(), newRequest(), stream) {
			gotErr = err
		}
		if gotErr == nil || !strings.Contains(strings.ToLower(gotErr.Error()), "quota") {
			t.Errorf("stream=%v: err = %v, want quota error", stream, gotErr)
		}
	}
}

func TestGeminiLLM_PromptBlocked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"promptFeedback":{"blockReason":"PROHIBITED_CONTENT"}}`)
	}))
	t.Cleanup(srv.Close)
	llm := model.NewGeminiLLM("test-key", model.WithBaseURL(srv.URL))

	for resp, err := range llm.GenerateContent(context.Background(), newRequest(), false) {
		if err != nil {
			t.Fatal(err)
		}
		if resp.FinishReason != genai.FinishReasonSafety {
			t.Errorf("finishReason = %q, want SAFETY", resp.FinishReason)
		}
	}
}
