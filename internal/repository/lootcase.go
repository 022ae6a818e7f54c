package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/vantagerp/lootcase-api/internal/domain"
)

// Lootcase defines the interface for data access required by the case service
type Lootcase interface {
	CurrencyLedger

	GetCharacter(ctx context.Context, characterID uuid.UUID) (*domain.Character, error)
	GetStock(ctx context.Context, characterID uuid.UUID) ([]domain.StockEntry, error)
	GetHistory(ctx context.Context, characterID uuid.UUID, limit int) ([]domain.HistoryEntry, error)
	GetHistoryEntry(ctx context.Context, id int64, characterID uuid.UUID) (*domain.HistoryEntry, error)

	// FindRequest returns the stored response payload for a request ID, or
	// nil when the request has never completed.
	FindRequest(ctx context.Context, requestID string) ([]byte, error)

	// Transaction support
	BeginTx(ctx context.Context) (LootcaseTx, error)
}
