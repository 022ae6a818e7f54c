package lootcase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vantagerp/lootcase-api/internal/domain"
	"github.com/vantagerp/lootcase-api/internal/repository"
)

// mockRepository is a testify mock for repository.Lootcase
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetCharacter(ctx context.Context, characterID uuid.UUID) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *mockRepository) GetStock(ctx context.Context, characterID uuid.UUID) ([]domain.StockEntry, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockEntry), args.Error(1)
}

func (m *mockRepository) GetHistory(ctx context.Context, characterID uuid.UUID, limit int) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, characterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

func (m *mockRepository) GetHistoryEntry(ctx context.Context, id int64, characterID uuid.UUID) (*domain.HistoryEntry, error) {
	args := m.Called(ctx, id, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryEntry), args.Error(1)
}

func (m *mockRepository) AddCash(ctx context.Context, characterID uuid.UUID, amount int64) (int64, error) {
	args := m.Called(ctx, characterID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) AddChips(ctx context.Context, characterID uuid.UUID, amount int64) (int64, error) {
	args := m.Called(ctx, characterID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) AddCredits(ctx context.Context, characterID uuid.UUID, amount int64) (int64, error) {
	args := m.Called(ctx, characterID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) FindRequest(ctx context.Context, requestID string) ([]byte, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockRepository) BeginTx(ctx context.Context) (repository.LootcaseTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LootcaseTx), args.Error(1)
}

// mockTx is a testify mock for repository.LootcaseTx
type mockTx struct {
	mock.Mock
}

func (m *mockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockTx) DebitCredits(ctx context.Context, characterID uuid.UUID, amount int64) (int64, bool, error) {
	args := m.Called(ctx, characterID, amount)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *mockTx) AddStock(ctx context.Context, characterID uuid.UUID, caseID string, delta int) (int, error) {
	args := m.Called(ctx, characterID, caseID, delta)
	return args.Int(0), args.Error(1)
}

func (m *mockTx) TakeStock(ctx context.Context, characterID uuid.UUID, caseID string, qty int) (int, bool, error) {
	args := m.Called(ctx, characterID, caseID, qty)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *mockTx) GetPity(ctx context.Context, characterID uuid.UUID, caseID string) (int, error) {
	args := m.Called(ctx, characterID, caseID)
	return args.Int(0), args.Error(1)
}

func (m *mockTx) SetPity(ctx context.Context, characterID uuid.UUID, caseID string, streak int) error {
	return m.Called(ctx, characterID, caseID, streak).Error(0)
}

func (m *mockTx) InsertUnlock(ctx context.Context, characterID uuid.UUID, uniqueKey string) (bool, error) {
	args := m.Called(ctx, characterID, uniqueKey)
	return args.Bool(0), args.Error(1)
}

func (m *mockTx) InsertHistory(ctx context.Context, entry *domain.HistoryEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockTx) StoreRequest(ctx context.Context, requestID string, characterID uuid.UUID, payload []byte) error {
	return m.Called(ctx, requestID, characterID, payload).Error(0)
}
