package lootcase

import (
	"github.com/vantagerp/lootcase-api/internal/domain"
	"github.com/vantagerp/lootcase-api/internal/utils"
)

// pickRarity walks the roulette wheel over the case's rarity chances.
// roll is a uniform sample in [0, 1). Falls back to the last tier so float
// drift at the top of the range can never miss, and to the first tier when
// the total chance is not positive.
func pickRarity(c *domain.Case, roll float64) domain.RarityTier {
	var total float64
	for _, tier := range c.Rarities {
		total += tier.Chance
	}
	if total <= 0 {
		return c.Rarities[0]
	}

	remaining := roll * total
	for _, tier := range c.Rarities {
		if remaining < tier.Chance {
			return tier
		}
		remaining -= tier.Chance
	}
	return c.Rarities[len(c.Rarities)-1]
}

// pickTemplate walks the roulette wheel over pool item weights.
func pickTemplate(items []domain.RewardTemplate, roll float64) domain.RewardTemplate {
	var total float64
	for _, item := range items {
		total += item.Weight
	}
	if total <= 0 {
		return items[0]
	}

	remaining := roll * total
	for _, item := range items {
		if remaining < item.Weight {
			return item
		}
		remaining -= item.Weight
	}
	return items[len(items)-1]
}

// decideRarity resolves the rarity for one unit: the pity guarantee forces
// the configured minimum rarity when this roll would be the threshold-th
// consecutive miss, otherwise the wheel decides.
func decideRarity(c *domain.Case, streak int, roll float64) (domain.RarityTier, bool) {
	if c.Pity != nil && streak+1 >= c.Pity.Threshold {
		return c.RarityByID[c.Pity.MinRarity], true
	}
	return pickRarity(c, roll), false
}

// meetsGuarantee reports whether a rolled rarity satisfies the pity rule.
// Comparison is by declaration order, so any tier at or above the minimum
// resets the streak.
func meetsGuarantee(c *domain.Case, rarityID string) bool {
	if c.Pity == nil {
		return false
	}
	return c.RarityOrder(rarityID) >= c.RarityOrder(c.Pity.MinRarity)
}

// rollReward draws one reward: rarity first (honoring pity), then a weighted
// item within that rarity, then an amount within the item's range.
func (s *service) rollReward(c *domain.Case, streak int) (domain.Reward, bool, int) {
	tier, forced := decideRarity(c, streak, utils.RandomFloat())
	tpl := pickTemplate(c.PoolByRarity[tier.ID], utils.RandomFloat())
	amount := utils.RandomInt(tpl.MinAmount, tpl.MaxAmount)

	reward := domain.Reward{
		Kind:        tpl.Kind,
		Amount:      amount,
		Name:        tpl.Name,
		Icon:        tpl.Icon,
		Rarity:      tier.ID,
		RarityName:  tier.Name,
		RarityColor: tier.Color,
		UniqueKey:   tpl.UniqueKey,
	}

	if meetsGuarantee(c, tier.ID) {
		streak = 0
	} else {
		streak++
	}
	return reward, forced, streak
}
