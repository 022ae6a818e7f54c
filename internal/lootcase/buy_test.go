package lootcase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vantagerp/lootcase-api/internal/domain"
	"github.com/vantagerp/lootcase-api/internal/grant"
	"github.com/vantagerp/lootcase-api/internal/ratelimit"

	"github.com/vantagerp/lootcase-api/internal/event"
)

func TestBuy_Success(t *testing.T) {
	ts := newTestService(t, simpleCatalog)
	ctx := context.Background()
	charID := uuid.New()

	ts.repo.On("GetCharacter", ctx, charID).Return(&domain.Character{ID: charID, Credits: 500}, nil)
	ts.repo.On("BeginTx", ctx).Return(ts.tx, nil)
	ts.tx.On("DebitCredits", ctx, charID, int64(300)).Return(int64(200), true, nil)
	ts.tx.On("AddStock", ctx, charID, "bronze", 3).Return(3, nil)
	ts.tx.On("Commit", ctx).Return(nil)
	ts.tx.On("Rollback", ctx).Return(nil)

	purchased := false
	ts.bus.Subscribe(event.CasePurchased, func(ctx context.Context, e event.Event) error {
		payload := e.Payload.(event.CasePurchasedPayloadV1)
		assert.Equal(t, int64(300), payload.TotalCost)
		purchased = true
		return nil
	})

	resp, err := ts.svc.Buy(ctx, charID, "bronze", 3)
	require.NoError(t, err)

	assert.Equal(t, "bronze", resp.CaseID)
	assert.Equal(t, 3, resp.Quantity)
	assert.Equal(t, 3, resp.Stock)
	assert.Equal(t, int64(200), resp.Credits)
	assert.True(t, purchased)
	ts.tx.AssertExpectations(t)
}

func TestBuy_InsufficientFunds(t *testing.T) {
	ts := newTestService(t, simpleCatalog)
	ctx := context.Background()
	charID := uuid.New()

	ts.repo.On("GetCharacter", ctx, charID).Return(&domain.Character{ID: charID, Credits: 50}, nil)
	ts.repo.On("BeginTx", ctx).Return(ts.tx, nil)
	ts.tx.On("DebitCredits", ctx, charID, int64(100)).Return(int64(50), false, nil)
	ts.tx.On("Rollback", ctx).Return(nil)

	_, err := ts.svc.Buy(ctx, charID, "bronze", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	ts.tx.AssertNotCalled(t, "AddStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	ts.tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestBuy_ValidationErrors(t *testing.T) {
	ts := newTestService(t, simpleCatalog)
	ctx := context.Background()
	charID := uuid.New()

	_, err := ts.svc.Buy(ctx, charID, "missing", 1)
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)

	_, err = ts.svc.Buy(ctx, charID, "bronze", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = ts.svc.Buy(ctx, charID, "bronze", 6)
	assert.ErrorIs(t, err, domain.ErrBatchTooLarge)

	ts.repo.AssertNotCalled(t, "BeginTx")
}

func TestBuy_RateLimited(t *testing.T) {
	repo := new(mockRepository)
	tx := new(mockTx)
	limiter := ratelimit.NewSlidingWindow(time.Minute, 1)
	svc := NewService(repo, parseCatalog(t, simpleCatalog), grant.NewRegistry(), limiter, event.NewMemoryBus())

	ctx := context.Background()
	charID := uuid.New()

	repo.On("GetCharacter", ctx, charID).Return(&domain.Character{ID: charID, Credits: 1000}, nil)
	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("DebitCredits", ctx, charID, int64(100)).Return(int64(900), true, nil)
	tx.On("AddStock", ctx, charID, "bronze", 1).Return(1, nil)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(nil)

	_, err := svc.Buy(ctx, charID, "bronze", 1)
	require.NoError(t, err)

	_, err = svc.Buy(ctx, charID, "bronze", 1)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestBuy_SharedBudgetWithOpen(t *testing.T) {
	repo := new(mockRepository)
	tx := new(mockTx)
	limiter := ratelimit.NewSlidingWindow(time.Minute, 1)
	svc := NewService(repo, parseCatalog(t, simpleCatalog), grant.NewRegistry(), limiter, event.NewMemoryBus())

	ctx := context.Background()
	charID := uuid.New()

	repo.On("GetCharacter", ctx, charID).Return(&domain.Character{ID: charID, Credits: 1000}, nil)
	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("DebitCredits", ctx, charID, int64(100)).Return(int64(900), true, nil)
	tx.On("AddStock", ctx, charID, "bronze", 1).Return(1, nil)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(nil)

	_, err := svc.Buy(ctx, charID, "bronze", 1)
	require.NoError(t, err)

	// Opens draw from the same per-character budget as purchases.
	repo.On("FindRequest", ctx, "req-b1").Return(nil, nil)
	_, err = svc.Open(ctx, charID, "req-b1", "bronze", 1)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}
