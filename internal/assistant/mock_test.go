package assistant_test

import "context"

type clientMock struct {
	CompleteFunc func(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error)
}

func (m *clientMock) Complete(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	return m.CompleteFunc(ctx, system, user, maxTokens, temperature)
}
