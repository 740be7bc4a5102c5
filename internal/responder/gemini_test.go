package responder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, genai.Text(p))
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content}},
	}
}

func TestNewGemini_Defaults(t *testing.T) {
	g := NewGemini("  key  ", "")
	if g.APIKey != "key" {
		t.Errorf("APIKey = %q, want trimmed key", g.APIKey)
	}
	if g.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", g.Model, DefaultModel)
	}

	if g := NewGemini("k", " gemini-1.5-pro-latest "); g.Model != "gemini-1.5-pro-latest" {
		t.Errorf("Model = %q", g.Model)
	}
}

func TestAsk_MissingCredential(t *testing.T) {
	g := NewGemini("", "")
	g.generate = func(context.Context, string) (*genai.GenerateContentResponse, error) {
		t.Fatal("model called without a credential")
		return nil, nil
	}

	_, err := g.Ask(context.Background(), "hello")
	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("error = %v, want ErrMissingCredential", err)
	}
}

func TestAsk_Success(t *testing.T) {
	var gotPrompt string
	g := NewGemini("key", "")
	g.generate = func(_ context.Context, prompt string) (*genai.GenerateContentResponse, error) {
		gotPrompt = prompt
		return textResponse("\n  Iron is a metal.  \n"), nil
	}

	got, err := g.Ask(context.Background(), "Please provide detailed information about the element: Iron")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if got != "Iron is a metal." {
		t.Errorf("Ask = %q, want %q", got, "Iron is a metal.")
	}
	if gotPrompt != "Please provide detailed information about the element: Iron" {
		t.Errorf("prompt forwarded as %q", gotPrompt)
	}
}

func TestAsk_JoinsTextParts(t *testing.T) {
	g := NewGemini("key", "")
	g.generate = func(context.Context, string) (*genai.GenerateContentResponse, error) {
		return textResponse("Gold is ", "a noble metal."), nil
	}

	got, err := g.Ask(context.Background(), "p")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if got != "Gold is a noble metal." {
		t.Errorf("Ask = %q", got)
	}
}

func TestAsk_CommunicationError(t *testing.T) {
	cause := errors.New("quota exceeded")
	g := NewGemini("key", "")
	g.generate = func(context.Context, string) (*genai.GenerateContentResponse, error) {
		return nil, cause
	}

	_, err := g.Ask(context.Background(), "p")
	if !errors.Is(err, ErrCommunication) {
		t.Errorf("error = %v, want ErrCommunication", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error = %v, want cause wrapped", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error text %q lacks cause", err.Error())
	}
}

func TestAsk_EmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"whitespace", textResponse("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGemini("key", "")
			g.generate = func(context.Context, string) (*genai.GenerateContentResponse, error) {
				return tt.resp, nil
			}

			_, err := g.Ask(context.Background(), "p")
			if !errors.Is(err, ErrCommunication) {
				t.Errorf("error = %v, want ErrCommunication", err)
			}
		})
	}
}

func TestAsk_BlockedPrompt(t *testing.T) {
	g := NewGemini("key", "")
	g.generate = func(context.Context, string) (*genai.GenerateContentResponse, error) {
		return &genai.GenerateContentResponse{
			PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety},
		}, nil
	}

	_, err := g.Ask(context.Background(), "p")
	if err == nil || !strings.Contains(err.Error(), "blocked") {
		t.Errorf("error = %v, want blocked reason", err)
	}
}
