package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"superclaims/internal/port"
)

// MockLLMClient is a mock implementation of port.LLMClient.
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Complete(ctx context.Context, prompt string, mode port.CompletionMode) (string, error) {
	args := m.Called(ctx, prompt, mode)
	return args.String(0), args.Error(1)
}
