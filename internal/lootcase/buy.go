package lootcase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vantagerp/lootcase-api/internal/domain"
	"github.com/vantagerp/lootcase-api/internal/logger"
	"github.com/vantagerp/lootcase-api/internal/metrics"
	"github.com/vantagerp/lootcase-api/internal/repository"

	"github.com/vantagerp/lootcase-api/internal/event"
)

// Buy purchases quantity units of caseID. The debit is conditional on the
// balance covering the full cost, so a concurrent spender cannot drive the
// balance negative.
func (s *service) Buy(ctx context.Context, characterID uuid.UUID, caseID string, quantity int) (*domain.BuyResponse, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyCalled, "character_id", characterID, "case_id", caseID, "quantity", quantity)

	c, ok := s.catalog.Get(caseID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCaseNotFound, caseID)
	}
	if err := validateQuantity(c, quantity); err != nil {
		return nil, err
	}

	if !s.limiter.Allow(characterID) {
		log.Warn(LogMsgRateLimited, "character_id", characterID)
		metrics.RateLimitRejections.Inc()
		return nil, domain.ErrRateLimited
	}
	s.limiter.Record(characterID)

	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetCharacter, err)
	}

	cost := int64(c.Price) * int64(quantity)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	balance, debited, err := tx.DebitCredits(ctx, characterID, cost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDebitCredits, err)
	}
	if !debited {
		return nil, domain.ErrInsufficientFunds
	}

	stock, err := tx.AddStock(ctx, characterID, caseID, quantity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToAddStock, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	metrics.CasesPurchased.WithLabelValues(c.ID).Add(float64(quantity))
	metrics.CreditsSpent.Add(float64(cost))
	s.publish(ctx, event.NewCasePurchasedEvent(characterID.String(), caseID, quantity, cost))

	return &domain.BuyResponse{
		CaseID:   caseID,
		Quantity: quantity,
		Stock:    stock,
		Credits:  balance,
	}, nil
}
