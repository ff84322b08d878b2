package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/awf1337/instantly/internal/model"
	"github.com/awf1337/instantly/pkg/metrics"
)

const (
	// sized for a short subject+body pair
	generateMaxTokens   = 200
	generateTemperature = 0.7
)

// ErrEmptyPrompt is returned when a generation request carries no prompt.
var ErrEmptyPrompt = errors.New("prompt is required")

// CompletionClient is the capability boundary to the generation model.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error)
}

// Generator produces structured email content for one category. Sales and
// follow-up differ only in their Spec.
type Generator struct {
	spec   Spec
	client CompletionClient
	logger *zap.Logger
}

func NewGenerator(spec Spec, client CompletionClient, logger *zap.Logger) *Generator {
	return &Generator{
		spec:   spec,
		client: client,
		logger: logger,
	}
}

// Generate builds the category prompt, runs one completion and decodes the
// result. A completion that ran but did not match the required shape degrades
// to fallback content instead of failing; only a failed call is an error.
func (g *Generator) Generate(ctx context.Context, req model.GenerationRequest) (model.GeneratedContent, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return model.GeneratedContent{}, ErrEmptyPrompt
	}

	prompt := g.spec.BuildPrompt(req)

	raw, err := g.client.Complete(ctx, prompt.System, prompt.User, generateMaxTokens, generateTemperature)
	if err != nil {
		return model.GeneratedContent{}, fmt.Errorf("generation call failed: %w", err)
	}

	return g.decodeOrFallback(raw), nil
}

// decodeOrFallback attempts to decode raw into {subject, body}. On any decode
// or shape error it substitutes the category default subject and the raw
// model text verbatim.
func (g *Generator) decodeOrFallback(raw string) model.GeneratedContent {
	var out struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}

	if err := json.Unmarshal([]byte(raw), &out); err == nil && out.Subject != "" && out.Body != "" {
		return model.GeneratedContent{
			Subject:    out.Subject,
			Body:       out.Body,
			WellFormed: true,
		}
	}

	metrics.IncrementGenerationFallback(string(g.spec.Category))
	g.logger.Warn("model output not well-formed, substituting fallback content",
		zap.String("category", string(g.spec.Category)),
	)

	return model.GeneratedContent{
		Subject:    g.spec.FallbackSubject,
		Body:       raw,
		WellFormed: false,
	}
}
