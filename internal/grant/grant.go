package grant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vantagerp/lootcase-api/internal/domain"
	"github.com/vantagerp/lootcase-api/internal/repository"
)

// Granter delivers one rolled reward to a character through the currency
// ledger, after the open that produced it has committed. Returns the
// resulting balance for the currency it touched.
type Granter interface {
	Grant(ctx context.Context, ledger repository.CurrencyLedger, characterID uuid.UUID, reward domain.Reward) (int64, error)
}

// Registry maps reward kinds to granters. Built at startup; read-only after.
type Registry struct {
	granters map[domain.RewardKind]Granter
}

// NewRegistry builds a registry with the built-in currency granters.
func NewRegistry() *Registry {
	r := &Registry{granters: make(map[domain.RewardKind]Granter)}
	r.Register(domain.RewardKindMoney, moneyGranter{})
	r.Register(domain.RewardKindChips, chipsGranter{})
	r.Register(domain.RewardKindCredits, creditsGranter{})
	return r
}

// Register adds or replaces the granter for a kind.
func (r *Registry) Register(kind domain.RewardKind, g Granter) {
	r.granters[kind] = g
}

// Grant dispatches the reward to the granter for its kind.
func (r *Registry) Grant(ctx context.Context, ledger repository.CurrencyLedger, characterID uuid.UUID, reward domain.Reward) (int64, error) {
	g, ok := r.granters[reward.Kind]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnsupportedRewardKind, reward.Kind)
	}
	return g.Grant(ctx, ledger, characterID, reward)
}

type moneyGranter struct{}

func (moneyGranter) Grant(ctx context.Context, ledger repository.CurrencyLedger, characterID uuid.UUID, reward domain.Reward) (int64, error) {
	return ledger.AddCash(ctx, characterID, int64(reward.Amount))
}

type chipsGranter struct{}

func (chipsGranter) Grant(ctx context.Context, ledger repository.CurrencyLedger, characterID uuid.UUID, reward domain.Reward) (int64, error) {
	return ledger.AddChips(ctx, characterID, int64(reward.Amount))
}

type creditsGranter struct{}

func (creditsGranter) Grant(ctx context.Context, ledger repository.CurrencyLedger, characterID uuid.UUID, reward domain.Reward) (int64, error) {
	return ledger.AddCredits(ctx, characterID, int64(reward.Amount))
}
