package assistant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/awf1337/instantly/internal/assistant"
	"github.com/awf1337/instantly/internal/model"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name        string
		raw         string
		expected    model.Category
		expectedRaw string
	}{
		{
			name:        "sales",
			raw:         "sales",
			expected:    model.CategorySales,
			expectedRaw: "sales",
		},
		{
			name:        "followup with surrounding noise",
			raw:         "  FOLLOWUP\n",
			expected:    model.CategoryFollowup,
			expectedRaw: "followup",
		},
		{
			name:        "output outside the known set is not forwarded as-is",
			raw:         "marketing",
			expected:    model.CategoryUnknown,
			expectedRaw: "marketing",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &clientMock{
				CompleteFunc: func(_ context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
					assert.Contains(t, system, "email routing assistant")
					assert.Equal(t, "follow up with the client", user)
					assert.Equal(t, 10, maxTokens)
					assert.InDelta(t, 0.1, temperature, 0.001)
					return tc.raw, nil
				},
			}

			r := assistant.NewRouter(client, nil, zap.NewNop())

			category, raw, err := r.Classify(context.Background(), "follow up with the client")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, category)
			assert.Equal(t, tc.expectedRaw, raw)
		})
	}
}

func TestClassifyClientError(t *testing.T) {
	clientErr := errors.New("connection refused")
	client := &clientMock{
		CompleteFunc: func(_ context.Context, _, _ string, _ int, _ float64) (string, error) {
			return "", clientErr
		},
	}

	r := assistant.NewRouter(client, nil, zap.NewNop())

	category, _, err := r.Classify(context.Background(), "follow up with the client")
	assert.ErrorIs(t, err, clientErr)
	assert.Equal(t, model.CategoryUnknown, category)
}
