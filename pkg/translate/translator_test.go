package translate

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newswire/pkg/config"
	"github.com/umputun/newswire/pkg/domain"
)

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: content}}},
	}
}

func TestTranslator_Translate(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &gotReq))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatResponse("  El gobierno anuncia nuevas medidas\n\nTexto traducido.  "))
	}))
	defer server.Close()

	tr := New(config.LLMConfig{
		Endpoint:    server.URL + "/v1",
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		Temperature: 0.2,
		MaxTokens:   1000,
	})

	res, err := tr.Translate(context.Background(), "Government announces new measures\n\nSome text.",
		domain.LangEnglish, domain.LangSpanish)
	require.NoError(t, err)
	assert.Equal(t, "El gobierno anuncia nuevas medidas\n\nTexto traducido.", res)

	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	assert.Equal(t, 1000, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, gotReq.Messages[0].Role)
	assert.Equal(t, defaultSystemPrompt, gotReq.Messages[0].Content)
	assert.Contains(t, gotReq.Messages[1].Content, "Translate the following english article into spanish.")
	assert.Contains(t, gotReq.Messages[1].Content, "Government announces new measures")
}

func TestTranslator_CustomSystemPrompt(t *testing.T) {
	tr := New(config.LLMConfig{SystemPrompt: "translate literally"})
	assert.Equal(t, "translate literally", tr.systemMsg)

	tr = New(config.LLMConfig{})
	assert.Equal(t, defaultSystemPrompt, tr.systemMsg)
}

func TestTranslator_NoCallNeeded(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()
	tr := New(config.LLMConfig{Endpoint: server.URL + "/v1", Model: "m"})

	t.Run("same language", func(t *testing.T) {
		res, err := tr.Translate(context.Background(), "hello", domain.LangEnglish, domain.LangEnglish)
		require.NoError(t, err)
		assert.Equal(t, "hello", res)
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := tr.Translate(context.Background(), "  ", domain.LangEnglish, domain.LangFrench)
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unsupported target", func(t *testing.T) {
		_, err := tr.Translate(context.Background(), "hello", domain.LangEnglish, domain.Language("klingon"))
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	assert.Equal(t, 0, calls)
}

func TestTranslator_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		timeout time.Duration
		wantErr error
	}{
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":{"message":"rate limit reached","type":"requests"}}`))
			},
			wantErr: domain.ErrRateLimit,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			},
			wantErr: domain.ErrExternalService,
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
			},
			wantErr: domain.ErrExternalService,
		},
		{
			name: "empty content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(chatResponse("   "))
			},
			wantErr: domain.ErrExternalService,
		},
		{
			name: "slow response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(2 * time.Second):
				case <-r.Context().Done():
				}
			},
			timeout: 50 * time.Millisecond,
			wantErr: domain.ErrTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			tr := New(config.LLMConfig{Endpoint: server.URL + "/v1", APIKey: "k", Model: "m"})
			ctx := context.Background()
			if tt.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tt.timeout)
				defer cancel()
			}

			_, err := tr.Translate(ctx, "some text", domain.LangFrench, domain.LangEnglish)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t, "Translate the following article into japanese.\n\ntext",
		buildPrompt("text", "", domain.LangJapanese))
	assert.Equal(t, "Translate the following arabic article into english.\n\ntext",
		buildPrompt("text", domain.LangArabic, domain.LangEnglish))
}
