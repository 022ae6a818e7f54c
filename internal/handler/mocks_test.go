package handler

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vantagerp/lootcase-api/internal/domain"
)

type mockLootcaseService struct {
	mock.Mock
}

func (m *mockLootcaseService) Open(ctx context.Context, characterID uuid.UUID, requestID, caseID string, quantity int) (json.RawMessage, error) {
	args := m.Called(ctx, characterID, requestID, caseID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *mockLootcaseService) Buy(ctx context.Context, characterID uuid.UUID, caseID string, quantity int) (*domain.BuyResponse, error) {
	args := m.Called(ctx, characterID, caseID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BuyResponse), args.Error(1)
}

func (m *mockLootcaseService) State(ctx context.Context, characterID uuid.UUID) (*domain.CaseState, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseState), args.Error(1)
}

func (m *mockLootcaseService) Share(ctx context.Context, characterID uuid.UUID, historyID int64) (string, error) {
	args := m.Called(ctx, characterID, historyID)
	return args.String(0), args.Error(1)
}
