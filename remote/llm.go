package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"social_osint/dto"
	"social_osint/shared"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_llm_client.go -package mocks social_osint/remote ILlmClient

// ILlmClient calls an OpenAI-compatible chat completions endpoint.
type ILlmClient interface {
	// Complete returns the first choice's text. temperature < 0 leaves it unset.
	Complete(ctx context.Context, model string, messages []dto.ChatMessage, maxTokens int, temperature float64) (string, error)
}

type llmClient struct {
	cfg    *shared.Config
	client *apiClient
	hdrs   map[string]string
}

func NewLlmClient(cfg *shared.Config, ua shared.IUserAgent) ILlmClient {
	hdrs := bearer(cfg.Secrets.LlmApiKey)
	if hdrs == nil {
		hdrs = map[string]string{}
	}
	if strings.Contains(strings.ToLower(cfg.Llm.ApiBaseUrl), "openrouter.ai") {
		hdrs["HTTP-Referer"] = cfg.Llm.OpenRouterReferer
		hdrs["X-Title"] = cfg.Llm.OpenRouterTitle
	}
	c := &apiClient{
		http:    &http.Client{Timeout: time.Duration(cfg.Llm.TimeoutSec) * time.Second},
		ua:      ua,
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
	return &llmClient{cfg: cfg, client: c, hdrs: hdrs}
}

func (llm *llmClient) Complete(ctx context.Context, model string, messages []dto.ChatMessage,
	maxTokens int, temperature float64) (string, error) {

	req := dto.ChatRequest{
		Model:     model,
		Messages:  messages,
		MaxTokens: maxTokens,
	}
	if temperature >= 0 {
		req.Temperature = &temperature
	}
	u := strings.TrimRight(llm.cfg.Llm.ApiBaseUrl, "/") + "/chat/completions"
	var resp dto.ChatResponse
	if err := llm.client.postJson(ctx, u, llm.hdrs, req, &resp); err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusTooManyRequests {
			return "", shared.NewRateLimit("LLM API")
		}
		return "", fmt.Errorf("LLM request to model %s failed: %w", model, err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("LLM model %s returned an error: %s", model, resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("LLM model %s returned no completion", model)
	}
	return resp.Choices[0].Message.Content, nil
}
