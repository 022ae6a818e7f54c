package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/vantagerp/lootcase-api/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// CurrencyLedger mutates character balances. Grants and duplicate refunds run
// through it after the open transaction has committed.
type CurrencyLedger interface {
	AddCash(ctx context.Context, characterID uuid.UUID, amount int64) (int64, error)
	AddChips(ctx context.Context, characterID uuid.UUID, amount int64) (int64, error)
	AddCredits(ctx context.Context, characterID uuid.UUID, amount int64) (int64, error)
}

// LootcaseTx extends Tx with the per-open operations. Everything an open or
// purchase touches runs on one of these so a failure rolls the whole
// operation back.
type LootcaseTx interface {
	Tx

	// DebitCredits subtracts amount only when the balance covers it.
	// Returns the new balance and whether the debit happened.
	DebitCredits(ctx context.Context, characterID uuid.UUID, amount int64) (int64, bool, error)

	// AddStock increments the character's stock of a case and returns the
	// new count.
	AddStock(ctx context.Context, characterID uuid.UUID, caseID string, delta int) (int, error)

	// TakeStock decrements stock only when count covers qty. Returns the new
	// count and whether the take happened.
	TakeStock(ctx context.Context, characterID uuid.UUID, caseID string, qty int) (int, bool, error)

	// GetPity returns the character's miss streak for a case, locking the row
	// for the rest of the transaction. Missing row reads as zero.
	GetPity(ctx context.Context, characterID uuid.UUID, caseID string) (int, error)

	// SetPity upserts the character's miss streak for a case.
	SetPity(ctx context.Context, characterID uuid.UUID, caseID string, streak int) error

	// InsertUnlock records a unique reward key. Returns true when the key was
	// new, false when the character already held it.
	InsertUnlock(ctx context.Context, characterID uuid.UUID, uniqueKey string) (bool, error)

	// InsertHistory appends a history entry and fills in its assigned ID.
	InsertHistory(ctx context.Context, entry *domain.HistoryEntry) error

	// StoreRequest records the response payload served for a request ID.
	StoreRequest(ctx context.Context, requestID string, characterID uuid.UUID, payload []byte) error
}
