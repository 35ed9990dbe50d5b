package abstractive

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/internal/model"
)

const systemInstruction = "You write faithful, concise summaries of the text you are given. " +
	"Do not add facts that are not in the text. Reply with the summary only, as plain prose."

// generator is the part of *genai.Models the backend uses.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type generatorFactory func(ctx context.Context, apiKey string) (generator, error)

var _ Backend = (*geminiBackend)(nil)

type geminiBackend struct {
	apiKeys    []string
	model      string
	limiter    *rate.Limiter
	logger     logger.Logger
	newClient  generatorFactory
	mu         sync.Mutex
	currentKey int
	clients    map[string]generator
}

func newGeminiClient(ctx context.Context, apiKey string) (generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

func (g *geminiBackend) Name() string { return "gemini" }

// Summarize sends the text to Gemini. API keys rotate on 429 / quota errors.
func (g *geminiBackend) Summarize(ctx context.Context, text string, targetWords int) (string, error) {
	if len(g.apiKeys) == 0 {
		return "", fmt.Errorf("%w: no Gemini API keys configured", model.ErrBackendUnavailable)
	}

	prompt := BuildPrompt(text, targetWords)
	config := BuildConfig(targetWords)

	var lastErr error
	for range len(g.apiKeys) {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}

		keyIdx, client, err := g.client(ctx)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey(keyIdx)
			continue
		}

		result, err := client.GenerateContent(ctx, g.model, genai.Text(prompt), config)
		if err != nil {
			if isQuotaError(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIdx+1)
				g.rotateKey(keyIdx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var sb strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part != nil && part.Text != "" {
					sb.WriteString(part.Text)
				}
			}
			if summary := strings.TrimSpace(sb.String()); summary != "" {
				return summary, nil
			}
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("%w: all API keys exhausted: %v", model.ErrBackendUnavailable, lastErr)
}

// client returns the current key index and its cached client.
func (g *geminiBackend) client(ctx context.Context) (int, generator, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.currentKey
	key := g.apiKeys[idx]
	if c, ok := g.clients[key]; ok {
		return idx, c, nil
	}

	c, err := g.newClient(ctx, key)
	if err != nil {
		return idx, nil, err
	}
	g.clients[key] = c
	return idx, c, nil
}

// rotateKey moves past failed unless another request already rotated.
func (g *geminiBackend) rotateKey(failed int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == failed {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// BuildPrompt builds the user prompt for one summary.
func BuildPrompt(text string, targetWords int) string {
	return fmt.Sprintf("Summarize the following text in about %d words.\n\n<text>\n%s\n</text>", targetWords, text)
}

// BuildConfig returns the generation config. The output budget allows about
// twice the target length.
func BuildConfig(targetWords int) *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature:     &temp,
		MaxOutputTokens: int32(targetWords * 2 * 4 / 3),
	}
}
