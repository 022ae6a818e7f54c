package lootcase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vantagerp/lootcase-api/internal/domain"
	"github.com/vantagerp/lootcase-api/internal/logger"
	"github.com/vantagerp/lootcase-api/internal/metrics"
	"github.com/vantagerp/lootcase-api/internal/repository"

	"github.com/vantagerp/lootcase-api/internal/event"
)

// Open opens quantity units of caseID for the character. Stock take, rolls,
// pity bookkeeping, duplicate detection, history, and the request ledger
// entry commit in one transaction; reward grants and duplicate refunds apply
// after commit, with a credits compensation when a grant fails.
//
// Replay lookup happens before the rate limiter so retries of an already
// completed request never burn budget.
func (s *service) Open(ctx context.Context, characterID uuid.UUID, requestID, caseID string, quantity int) (json.RawMessage, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgOpenCalled, "character_id", characterID, "case_id", caseID, "quantity", quantity, "request_id", requestID)

	c, ok := s.catalog.Get(caseID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCaseNotFound, caseID)
	}
	if err := validateQuantity(c, quantity); err != nil {
		return nil, err
	}

	// An empty request ID opts out of idempotency: no replay lookup, no
	// ledger entry.
	if requestID != "" {
		if payload, replayed, err := s.findReplay(ctx, requestID); err != nil {
			return nil, err
		} else if replayed {
			log.Info(LogMsgRequestReplayed, "request_id", requestID)
			metrics.IdempotentReplays.Inc()
			return payload, nil
		}
	}

	if !s.limiter.Allow(characterID) {
		log.Warn(LogMsgRateLimited, "character_id", characterID)
		metrics.RateLimitRejections.Inc()
		return nil, domain.ErrRateLimited
	}
	s.limiter.Record(characterID)

	character, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetCharacter, err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	stock, taken, err := tx.TakeStock(ctx, characterID, caseID, quantity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToTakeStock, err)
	}
	if !taken {
		return nil, domain.ErrInsufficientStock
	}

	streak := 0
	if c.Pity != nil {
		streak, err = tx.GetPity(ctx, characterID, caseID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPity, err)
		}
	}

	resp := &domain.OpenResponse{
		CaseID:   caseID,
		Quantity: quantity,
		Results:  make([]domain.OpenUnitResult, 0, quantity),
		Stock:    stock,
	}
	credits := character.Credits
	pityHits := 0

	for i := 0; i < quantity; i++ {
		var reward domain.Reward
		var forced bool
		reward, forced, streak = s.rollReward(c, streak)
		if forced {
			pityHits++
			log.Info(LogMsgPityTriggered, "case_id", caseID, "rarity", reward.Rarity)
		}

		outcome, err := s.evaluateDuplicate(ctx, tx, characterID, c, reward)
		if err != nil {
			return nil, err
		}
		// Grants settle after commit; the reported balance is what the
		// character holds once they do.
		if outcome.Duplicate {
			credits += int64(outcome.Refund)
		} else if reward.Kind == domain.RewardKindCredits {
			credits += int64(reward.Amount)
		}

		entry := &domain.HistoryEntry{
			CharacterID: characterID,
			CaseID:      c.ID,
			CaseName:    c.Name,
			RewardKind:  reward.Kind,
			RewardName:  reward.Name,
			RewardIcon:  reward.Icon,
			Rarity:      reward.Rarity,
			RarityName:  reward.RarityName,
			RarityColor: reward.RarityColor,
			Amount:      reward.Amount,
			Duplicate:   outcome.Duplicate,
			Refund:      outcome.Refund,
			CreatedAt:   time.Now().UTC(),
		}
		if err := tx.InsertHistory(ctx, entry); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToInsertHistory, err)
		}

		resp.Results = append(resp.Results, domain.OpenUnitResult{Reward: reward, Duplicate: outcome})
		// Newest first, like the stored history reads back.
		resp.History = append([]domain.HistoryEntry{*entry}, resp.History...)
	}

	if c.Pity != nil {
		if err := tx.SetPity(ctx, characterID, caseID, streak); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToSetPity, err)
		}
	}

	resp.Summary = summarize(c, resp.Results)
	resp.Credits = credits
	if quantity == 1 {
		resp.Animation = buildAnimationTape(c, resp.Results[0].Reward.Display())
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToEncodeResult, err)
	}
	if requestID != "" {
		if err := tx.StoreRequest(ctx, requestID, characterID, payload); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToStoreRequest, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	if requestID != "" {
		s.replays.Add(requestID, payload)
	}
	s.applyGrants(ctx, characterID, resp.Results)
	s.recordOpenMetrics(c, resp, pityHits)
	s.publish(ctx, event.NewCaseOpenedEvent(
		characterID.String(), caseID, quantity, topRarity(c, resp.Results), int64(resp.Summary.Refund)))

	return payload, nil
}

// findReplay consults the in-memory cache first, then the durable ledger.
func (s *service) findReplay(ctx context.Context, requestID string) (json.RawMessage, bool, error) {
	if payload, ok := s.replays.Get(requestID); ok {
		return payload, true, nil
	}
	payload, err := s.repo.FindRequest(ctx, requestID)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", ErrContextFailedToFindRequest, err)
	}
	if payload == nil {
		return nil, false, nil
	}
	s.replays.Add(requestID, payload)
	return payload, true, nil
}

// evaluateDuplicate claims a unique reward's key inside the open transaction.
// A key the character already holds marks the reward as a duplicate and
// computes its refund; the credit itself settles after commit.
func (s *service) evaluateDuplicate(ctx context.Context, tx repository.LootcaseTx, characterID uuid.UUID, c *domain.Case, reward domain.Reward) (domain.DuplicateOutcome, error) {
	if reward.UniqueKey == "" {
		return domain.DuplicateOutcome{}, nil
	}

	created, err := tx.InsertUnlock(ctx, characterID, reward.UniqueKey)
	if err != nil {
		return domain.DuplicateOutcome{}, fmt.Errorf("%s: %w", ErrContextFailedToInsertUnlock, err)
	}
	if created {
		return domain.DuplicateOutcome{}, nil
	}

	refund := refundAmount(c, reward.Rarity)
	logger.FromContext(ctx).Info(LogMsgDuplicateRefunded, "unique_key", reward.UniqueKey, "refund", refund)
	return domain.DuplicateOutcome{Duplicate: true, Refund: refund}, nil
}

// applyGrants delivers the committed results: grants for fresh rewards, one
// accumulated credit for duplicate refunds. The ledger entries are already
// committed, so a failed grant is compensated with its credit value instead
// of rolled back.
func (s *service) applyGrants(ctx context.Context, characterID uuid.UUID, results []domain.OpenUnitResult) {
	log := logger.FromContext(ctx)

	refund := 0
	for _, res := range results {
		if res.Duplicate.Duplicate {
			refund += res.Duplicate.Refund
			continue
		}
		if _, err := s.grants.Grant(ctx, s.repo, characterID, res.Reward); err != nil {
			log.Error(LogMsgGrantFailed, "kind", res.Reward.Kind, "amount", res.Reward.Amount, "error", err)
			if _, cerr := s.repo.AddCredits(ctx, characterID, int64(res.Reward.Amount)); cerr != nil {
				log.Error(LogMsgCompensationFailed, "amount", res.Reward.Amount, "error", cerr)
			}
		}
	}

	if refund > 0 {
		if _, err := s.repo.AddCredits(ctx, characterID, int64(refund)); err != nil {
			log.Error(LogMsgRefundFailed, "refund", refund, "error", err)
		}
	}
}

// summarize folds unit results into per-rarity counts in the case's
// configured order, plus the total duplicate refund.
func summarize(c *domain.Case, results []domain.OpenUnitResult) domain.OpenSummary {
	counts := make(map[string]int, len(c.Rarities))
	refund := 0
	for _, res := range results {
		counts[res.Reward.Rarity]++
		refund += res.Duplicate.Refund
	}

	summary := domain.OpenSummary{Refund: refund}
	for _, tier := range c.Rarities {
		if n := counts[tier.ID]; n > 0 {
			summary.Rarities = append(summary.Rarities, domain.RarityCount{
				ID:    tier.ID,
				Name:  tier.Name,
				Color: tier.Color,
				Count: n,
			})
		}
	}
	return summary
}

// topRarity returns the highest-order rarity a batch produced.
func topRarity(c *domain.Case, results []domain.OpenUnitResult) string {
	top := ""
	best := -1
	for _, res := range results {
		if order := c.RarityOrder(res.Reward.Rarity); order > best {
			best = order
			top = res.Reward.Rarity
		}
	}
	return top
}

func (s *service) recordOpenMetrics(c *domain.Case, resp *domain.OpenResponse, pityHits int) {
	metrics.CasesOpened.WithLabelValues(c.ID).Add(float64(resp.Quantity))
	for _, res := range resp.Results {
		metrics.RewardsRolled.WithLabelValues(c.ID, res.Reward.Rarity).Inc()
		if res.Duplicate.Duplicate {
			metrics.DuplicateRewards.WithLabelValues(c.ID, res.Reward.Rarity).Inc()
		}
	}
	if resp.Summary.Refund > 0 {
		metrics.CreditsRefunded.Add(float64(resp.Summary.Refund))
	}
	if pityHits > 0 {
		metrics.PityTriggered.WithLabelValues(c.ID).Add(float64(pityHits))
	}
}

// publish sends an event without failing the operation it reports on.
func (s *service) publish(ctx context.Context, e event.Event) {
	metrics.EventsPublished.WithLabelValues(string(e.Type)).Inc()
	if err := s.bus.Publish(ctx, e); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(e.Type)).Inc()
		logger.FromContext(ctx).Error(LogMsgEventPublishError, "type", e.Type, "error", err)
	}
}
