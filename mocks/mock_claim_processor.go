package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"superclaims/internal/domain"
)

// MockClaimProcessor is a mock implementation of pipeline.Processor.
type MockClaimProcessor struct {
	mock.Mock
}

func (m *MockClaimProcessor) Process(ctx context.Context, files []domain.UploadedFile) (*domain.ClaimResult, error) {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimResult), args.Error(1)
}
