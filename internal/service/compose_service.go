package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/awf1337/instantly/internal/assistant"
	"github.com/awf1337/instantly/internal/model"
)

// ErrNoGenerator is returned when a request names a category without a
// registered generator.
var ErrNoGenerator = errors.New("no generator available for category")

// ComposeService orchestrates Router -> Generator. No business logic of its
// own beyond dispatch.
type ComposeService struct {
	router     *assistant.Router
	generators map[model.Category]*assistant.Generator
}

func NewComposeService(client assistant.CompletionClient, cache *assistant.ClassifyCache, logger *zap.Logger) *ComposeService {
	generators := make(map[model.Category]*assistant.Generator)
	for _, category := range assistant.Categories() {
		spec, _ := assistant.SpecFor(category)
		generators[category] = assistant.NewGenerator(spec, client, logger)
	}

	return &ComposeService{
		router:     assistant.NewRouter(client, cache, logger),
		generators: generators,
	}
}

// Route classifies the free-text intent. The returned category may be
// CategoryUnknown; the boundary decides how to answer that case.
func (s *ComposeService) Route(ctx context.Context, prompt string) (model.Category, error) {
	category, _, err := s.router.Classify(ctx, prompt)
	return category, err
}

// Generate dispatches to the generator for req.Category.
func (s *ComposeService) Generate(ctx context.Context, req model.GenerationRequest) (model.GeneratedContent, error) {
	generator, ok := s.generators[req.Category]
	if !ok {
		return model.GeneratedContent{}, fmt.Errorf("%w: %s", ErrNoGenerator, req.Category)
	}
	return generator.Generate(ctx, req)
}
