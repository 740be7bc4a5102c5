package responder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

var (
	// ErrMissingCredential means no API key was configured.
	ErrMissingCredential = errors.New("GOOGLE_API_KEY environment variable not found; set it using a .env file or system settings")

	// ErrCommunication wraps any failure talking to the hosted model.
	ErrCommunication = errors.New("error communicating with Gemini API")
)

// Responder answers a natural-language prompt.
type Responder interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// generateFunc sends one prompt to a model and returns the raw response.
type generateFunc func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)

// Gemini asks Google's hosted Gemini models via generative-ai-go.
type Gemini struct {
	APIKey string
	Model  string

	generate generateFunc
}

// NewGemini returns a Gemini responder. The key is not validated until Ask so
// a process without credentials can still start.
func NewGemini(apiKey, model string) *Gemini {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{
		APIKey: strings.TrimSpace(apiKey),
		Model:  model,
	}
}

// Ask sends prompt to the model in a single synchronous call and returns the
// trimmed text of the first candidate. There is no retry; the only deadline
// is the one carried by ctx.
func (g *Gemini) Ask(ctx context.Context, prompt string) (string, error) {
	if g.APIKey == "" {
		return "", ErrMissingCredential
	}

	generate := g.generate
	if generate == nil {
		generate = g.generateContent
	}

	resp, err := generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCommunication, err)
	}

	txt := strings.TrimSpace(firstText(resp))
	if txt == "" {
		return "", fmt.Errorf("%w: empty response%s", ErrCommunication, blockReason(resp))
	}
	return txt, nil
}

func (g *Gemini) generateContent(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return nil, err
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.Model)
	if m == nil {
		return nil, fmt.Errorf("gemini: model %q is nil", g.Model)
	}
	return m.GenerateContent(ctx, genai.Text(prompt))
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}

func blockReason(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.PromptFeedback == nil {
		return ""
	}
	if r := resp.PromptFeedback.BlockReason; r != genai.BlockReasonUnspecified {
		return fmt.Sprintf(" (blocked: %s)", r)
	}
	return ""
}
