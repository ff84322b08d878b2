package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/awf1337/instantly/config"
	"github.com/awf1337/instantly/pkg/circuitbreaker"
	"github.com/awf1337/instantly/pkg/metrics"
)

const completionsPath = "/chat/completions"

// Client issues chat-completion requests against an OpenAI-compatible API.
// One call per invocation, no retries; the circuit breaker sheds load when
// the upstream keeps failing.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	cb         *circuitbreaker.CircuitBreaker
}

func NewClient(cfg config.OpenAIConfig) *Client {
	cbConfig := circuitbreaker.Config{
		FailureThreshold:    3,
		SuccessThreshold:    2,
		Timeout:             30 * time.Second,
		HalfOpenMaxRequests: 2,
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		cb: circuitbreaker.NewCircuitBreaker(cbConfig),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends one system+user completion request and returns the raw
// message content.
func (c *Client) Complete(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	var content string

	err := c.cb.Execute(func() error {
		start := time.Now()

		b, marshalErr := json.Marshal(chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "system", Content: system},
				{Role: "user", Content: user},
			},
			MaxTokens:   maxTokens,
			Temperature: temperature,
		})
		if marshalErr != nil {
			return marshalErr
		}

		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(b))
		if reqErr != nil {
			return reqErr
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, doErr := c.httpClient.Do(req)
		latency := time.Since(start)

		if doErr != nil {
			metrics.RecordGenerationLatency(completionsPath, "error", latency)
			return doErr
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			metrics.RecordGenerationLatency(completionsPath, fmt.Sprintf("%d", resp.StatusCode), latency)
			return fmt.Errorf("completion API error: %d", resp.StatusCode)
		}

		var decoded chatResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&decoded); decodeErr != nil {
			metrics.RecordGenerationLatency(completionsPath, "decode_error", latency)
			return decodeErr
		}
		if len(decoded.Choices) == 0 {
			metrics.RecordGenerationLatency(completionsPath, "decode_error", latency)
			return fmt.Errorf("completion API returned no choices")
		}

		metrics.RecordGenerationLatency(completionsPath, "success", latency)

		content = decoded.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}

	return content, nil
}
