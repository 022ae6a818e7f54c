package catalog

import (
	"fmt"
	"sort"

	"github.com/vantagerp/lootcase-api/internal/domain"
)

// previewCap bounds the preview list in the client catalog view.
const previewCap = 12

// previewPerRarity is how many top-weight items each rarity contributes.
const previewPerRarity = 4

// Registry holds the normalized, immutable case catalog. Built once at
// startup, shared read-only afterwards.
type Registry struct {
	cases []*domain.Case
	byID  map[string]*domain.Case
}

// Get returns a case definition by id.
func (r *Registry) Get(id string) (*domain.Case, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// All returns every case in declaration order.
func (r *Registry) All() []*domain.Case {
	return r.cases
}

// ClientView serializes one case for clients: chances and probabilities are
// exposed, pool weights and amount ranges never are.
func (r *Registry) ClientView(c *domain.Case) domain.ClientCase {
	preview := c.Preview
	if len(preview) > previewCap {
		preview = preview[:previewCap]
	}
	return domain.ClientCase{
		ID:           c.ID,
		Name:         c.Name,
		Icon:         c.Icon,
		Price:        c.Price,
		MaxBatchSize: c.MaxBatchSize,
		Rarities:     c.Rarities,
		Pity:         c.Pity,
		Duplicates:   c.Duplicates,
		Preview:      preview,
	}
}

// ClientViews serializes the whole catalog.
func (r *Registry) ClientViews() []domain.ClientCase {
	views := make([]domain.ClientCase, 0, len(r.cases))
	for _, c := range r.cases {
		views = append(views, r.ClientView(c))
	}
	return views
}

// normalizeCase turns a validated config entry into the immutable runtime
// shape: ordered rarities with normalized probabilities, the pool partitioned
// by rarity, and the preview list.
func normalizeCase(cc caseConfig) *domain.Case {
	maxBatch := cc.MaxBatchSize
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatchSize
	}

	var totalChance float64
	for _, r := range cc.Rarities {
		totalChance += r.Chance
	}

	rarities := make([]domain.RarityTier, 0, len(cc.Rarities))
	rarityByID := make(map[string]domain.RarityTier, len(cc.Rarities))
	for i, r := range cc.Rarities {
		tier := domain.RarityTier{
			ID:          r.ID,
			Name:        r.Name,
			Color:       r.Color,
			Chance:      r.Chance,
			Probability: r.Chance / totalChance,
			Order:       i,
		}
		rarities = append(rarities, tier)
		rarityByID[r.ID] = tier
	}

	pool := make([]domain.RewardTemplate, 0, len(cc.Pool))
	poolByRarity := make(map[string][]domain.RewardTemplate)
	for i, item := range cc.Pool {
		tier := rarityByID[item.Rarity]
		name := item.Name
		if name == "" {
			name = tier.Name
		}
		tpl := domain.RewardTemplate{
			ID:        fmt.Sprintf("%s_%d", cc.ID, i),
			Rarity:    item.Rarity,
			Weight:    item.Weight,
			Kind:      domain.RewardKind(item.Kind),
			Name:      name,
			Icon:      item.Icon,
			MinAmount: item.Amount.Min,
			MaxAmount: item.Amount.Max,
			UniqueKey: item.UniqueKey,
		}
		pool = append(pool, tpl)
		poolByRarity[item.Rarity] = append(poolByRarity[item.Rarity], tpl)
	}

	return &domain.Case{
		ID:           cc.ID,
		Name:         cc.Name,
		Icon:         cc.Icon,
		Price:        cc.Price,
		MaxBatchSize: maxBatch,
		Rarities:     rarities,
		Pool:         pool,
		PoolByRarity: poolByRarity,
		RarityByID:   rarityByID,
		Pity:         cc.Pity,
		Duplicates:   cc.Duplicates,
		Preview:      buildPreview(rarities, poolByRarity),
	}
}

// buildPreview takes the top-weight items of each rarity, in rarity order.
func buildPreview(rarities []domain.RarityTier, poolByRarity map[string][]domain.RewardTemplate) []domain.DisplayReward {
	var preview []domain.DisplayReward
	for _, tier := range rarities {
		items := append([]domain.RewardTemplate(nil), poolByRarity[tier.ID]...)
		sort.SliceStable(items, func(i, j int) bool { return items[i].Weight > items[j].Weight })
		if len(items) > previewPerRarity {
			items = items[:previewPerRarity]
		}
		for _, item := range items {
			preview = append(preview, domain.DisplayReward{
				Name:        item.Name,
				Kind:        item.Kind,
				Rarity:      tier.ID,
				RarityName:  tier.Name,
				RarityColor: tier.Color,
				Icon:        item.Icon,
			})
		}
	}
	return preview
}
