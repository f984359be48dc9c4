// Package openai renders structured answers into natural-language prose
// through an OpenAI-compatible chat API. This is a presentation step
// layered on top of the deterministic core: the structured answer is
// authoritative and callers must treat narration as fallible.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/opencamara/actadex/internal/domain"
	"github.com/opencamara/actadex/internal/metrics"
)

const systemPrompt = "Eres un asistente parlamentario. Recibes la pregunta de un usuario " +
	"y datos estructurados extraídos de actas de comisión. Responde en español claro y " +
	"neutral usando exclusivamente los datos entregados. No inventes cifras, nombres ni citas."

// Narrator formats structured answers via chat completions.
type Narrator struct {
	client   *openai.Client
	model    string
	provider string
	logger   *zap.Logger
}

// Config holds the narrative provider settings.
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	Provider string
	Logger   *zap.Logger
}

// NewNarrator creates an OpenAI-compatible narrative formatter.
func NewNarrator(cfg *Config) *Narrator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Narrator{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Narrate renders a structured answer into prose, with transport-level metrics.
func (n *Narrator) Narrate(ctx context.Context, question string, structured any) (string, error) {
	payload, err := json.Marshal(structured)
	if err != nil {
		return "", fmt.Errorf("marshal structured answer: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model:       n.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Pregunta: %s\n\nDatos:\n%s", question, payload),
			},
		},
	}

	start := time.Now()

	resp, err := n.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.NarrativeRequestsTotal.WithLabelValues(n.provider, n.model, "error").Inc()
		metrics.NarrativeErrorsTotal.WithLabelValues(n.provider, n.model, "api_error").Inc()
		return "", parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.NarrativeRequestsTotal.WithLabelValues(n.provider, n.model, "error").Inc()
		metrics.NarrativeErrorsTotal.WithLabelValues(n.provider, n.model, "empty_response").Inc()
		return "", fmt.Errorf("empty narrative response: %w", domain.ErrNarrativeProviderError)
	}

	metrics.NarrativeRequestsTotal.WithLabelValues(n.provider, n.model, "success").Inc()
	metrics.NarrativeRequestDuration.WithLabelValues(n.provider, n.model).Observe(duration.Seconds())

	if resp.Usage.TotalTokens > 0 {
		metrics.NarrativeTokensTotal.WithLabelValues(n.provider, n.model, "prompt").
			Add(float64(resp.Usage.PromptTokens))
		metrics.NarrativeTokensTotal.WithLabelValues(n.provider, n.model, "total").
			Add(float64(resp.Usage.TotalTokens))
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (n *Narrator) HealthCheck(ctx context.Context) error {
	if _, err := n.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrNarrativeProviderError for correct 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrNarrativeProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("narrative API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("narrative API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("narrative request failed: %w", wrap)
}
