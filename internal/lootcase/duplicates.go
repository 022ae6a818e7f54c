package lootcase

import "github.com/vantagerp/lootcase-api/internal/domain"

// refundPercent resolves the duplicate refund percentage for a rarity:
// rarity-specific first, then the flat fallback, then zero.
func refundPercent(c *domain.Case, rarityID string) int {
	if c.Duplicates == nil {
		return 0
	}
	if pct, ok := c.Duplicates.PercentageByRarity[rarityID]; ok {
		return pct
	}
	return c.Duplicates.FlatPercentage
}

// refundAmount converts a duplicate into credits. Integer division floors,
// matching the credit ledger's whole-unit arithmetic.
func refundAmount(c *domain.Case, rarityID string) int {
	return c.Price * refundPercent(c, rarityID) / 100
}
