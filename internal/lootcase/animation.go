package lootcase

import (
	"github.com/vantagerp/lootcase-api/internal/domain"
	"github.com/vantagerp/lootcase-api/internal/utils"
)

// buildAnimationTape assembles the spin reel for a single open: decoy rewards
// drawn with the same weights as real rolls, with the actual winner placed at
// the focus index.
func buildAnimationTape(c *domain.Case, win domain.DisplayReward) *domain.AnimationTape {
	tape := make([]domain.DisplayReward, AnimationTapeLength)
	for i := range tape {
		if i == AnimationFocusIndex {
			tape[i] = win
			continue
		}
		tier := pickRarity(c, utils.RandomFloat())
		tpl := pickTemplate(c.PoolByRarity[tier.ID], utils.RandomFloat())
		tape[i] = domain.DisplayReward{
			Name:        tpl.Name,
			Kind:        tpl.Kind,
			Rarity:      tier.ID,
			RarityName:  tier.Name,
			RarityColor: tier.Color,
			Icon:        tpl.Icon,
		}
	}
	return &domain.AnimationTape{Tape: tape, FocusIndex: AnimationFocusIndex}
}
