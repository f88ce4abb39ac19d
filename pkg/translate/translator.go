// Package translate implements article translation over an OpenAI-compatible chat completion API.
package translate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newswire/pkg/config"
	"github.com/umputun/newswire/pkg/domain"
)

// Translator uses LLM to translate article text
type Translator struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// New creates a new LLM translator
func New(cfg config.LLMConfig) *Translator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Translator{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

const defaultSystemPrompt = `You are a professional news translator.
Translate the article text you are given into the requested language.
Keep the meaning, tone, names, numbers and paragraph structure of the original.
Translate the title on the first line and the body after it.
Respond with the translation only: no notes, no explanations, no quotes around the text.`

// Translate translates text from source to target language.
// Errors wrap domain.ErrRateLimit, domain.ErrTimeout or domain.ErrExternalService.
func (t *Translator) Translate(ctx context.Context, text string, source, target domain.Language) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty text: %w", domain.ErrValidation)
	}
	if !target.IsSupported() {
		return "", fmt.Errorf("unsupported target language %q: %w", target, domain.ErrValidation)
	}
	if source == target {
		return text, nil
	}

	req := openai.ChatCompletionRequest{
		Model:       t.config.Model,
		Temperature: float32(t.config.Temperature),
		MaxTokens:   t.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: t.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(text, source, target)},
		},
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyError(ctx, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm: %w", domain.ErrExternalService)
	}

	res := strings.TrimSpace(resp.Choices[0].Message.Content)
	if res == "" {
		return "", fmt.Errorf("empty translation from llm: %w", domain.ErrExternalService)
	}
	return res, nil
}

func buildPrompt(text string, source, target domain.Language) string {
	var sb strings.Builder
	if source != "" {
		sb.WriteString(fmt.Sprintf("Translate the following %s article into %s.\n\n", source, target))
	} else {
		sb.WriteString(fmt.Sprintf("Translate the following article into %s.\n\n", target))
	}
	sb.WriteString(text)
	return sb.String()
}

// classifyError maps client errors to the domain error taxonomy
func classifyError(ctx context.Context, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("llm request failed: %w: %w", domain.ErrRateLimit, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("llm request failed: %w: %w", domain.ErrRateLimit, err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("llm request timed out: %w: %w", domain.ErrTimeout, err)
	}

	return fmt.Errorf("llm request failed: %w: %w", domain.ErrExternalService, err)
}
