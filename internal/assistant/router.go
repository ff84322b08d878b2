package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/awf1337/instantly/internal/model"
)

const (
	// the classifier is expected to emit a single word
	classifyMaxTokens   = 10
	classifyTemperature = 0.1
)

const classifySystemTemplate = `You are an email routing assistant. Analyze the user's request and classify it into one of these categories:
1. "sales" - for sales emails, business proposals, product introductions
2. "followup" - for follow-up emails, checking in, reminders

Respond with ONLY the category name: "sales" or "followup"

User request: %q`

// Router classifies a free-text intent into an assistant category.
type Router struct {
	client CompletionClient
	cache  *ClassifyCache
	logger *zap.Logger
}

// NewRouter creates a router. cache may be nil to disable caching.
func NewRouter(client CompletionClient, cache *ClassifyCache, logger *zap.Logger) *Router {
	return &Router{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// Classify runs one classification call and parses the result into the closed
// category set. The normalized raw model text is returned alongside so
// unrecognized output can be logged; it is never forwarded as a category.
func (r *Router) Classify(ctx context.Context, prompt string) (model.Category, string, error) {
	if r.cache != nil {
		if cached, ok := r.cache.Get(ctx, prompt); ok {
			return model.ParseCategory(cached), cached, nil
		}
	}

	system := fmt.Sprintf(classifySystemTemplate, prompt)

	raw, err := r.client.Complete(ctx, system, prompt, classifyMaxTokens, classifyTemperature)
	if err != nil {
		return model.CategoryUnknown, "", fmt.Errorf("classification call failed: %w", err)
	}

	normalized := strings.ToLower(strings.TrimSpace(raw))

	category := model.ParseCategory(normalized)
	if category == model.CategoryUnknown {
		// never cached: a transient model glitch must not pin the prompt
		// as unclassifiable for the full TTL
		r.logger.Warn("classifier returned unrecognized category",
			zap.String("raw", normalized),
		)
	} else if r.cache != nil {
		r.cache.Put(ctx, prompt, normalized)
	}

	return category, normalized, nil
}
