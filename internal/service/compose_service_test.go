package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/awf1337/instantly/internal/model"
	"github.com/awf1337/instantly/internal/service"
)

type completionMock struct {
	CompleteFunc func(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error)
}

func (m *completionMock) Complete(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	return m.CompleteFunc(ctx, system, user, maxTokens, temperature)
}

func TestComposeGenerateDispatchesByCategory(t *testing.T) {
	client := &completionMock{
		CompleteFunc: func(_ context.Context, system, _ string, _ int, _ float64) (string, error) {
			return `{"subject":"s","body":"b"}`, nil
		},
	}

	svc := service.NewComposeService(client, nil, zap.NewNop())

	for _, category := range []model.Category{model.CategorySales, model.CategoryFollowup} {
		content, err := svc.Generate(context.Background(), model.GenerationRequest{
			Category: category,
			Prompt:   "write something",
		})
		require.NoError(t, err)
		assert.True(t, content.WellFormed)
	}
}

func TestComposeGenerateUnknownCategory(t *testing.T) {
	client := &completionMock{
		CompleteFunc: func(_ context.Context, _, _ string, _ int, _ float64) (string, error) {
			t.Fatal("no completion call expected")
			return "", nil
		},
	}

	svc := service.NewComposeService(client, nil, zap.NewNop())

	_, err := svc.Generate(context.Background(), model.GenerationRequest{
		Category: model.CategoryUnknown,
		Prompt:   "write something",
	})
	assert.ErrorIs(t, err, service.ErrNoGenerator)
}

func TestComposeRoute(t *testing.T) {
	client := &completionMock{
		CompleteFunc: func(_ context.Context, _, _ string, _ int, _ float64) (string, error) {
			return "followup", nil
		},
	}

	svc := service.NewComposeService(client, nil, zap.NewNop())

	category, err := svc.Route(context.Background(), "follow up on the proposal")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFollowup, category)
}
