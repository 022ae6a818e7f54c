package lootcase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantagerp/lootcase-api/internal/domain"
)

func TestRefundPercent_Precedence(t *testing.T) {
	c := &domain.Case{
		Price: 100,
		Duplicates: &domain.DuplicatePolicy{
			PercentageByRarity: map[string]int{"epic": 30},
			FlatPercentage:     10,
		},
	}

	// Rarity-specific beats flat; flat covers the rest.
	assert.Equal(t, 30, refundPercent(c, "epic"))
	assert.Equal(t, 10, refundPercent(c, "rare"))
}

func TestRefundPercent_NoPolicy(t *testing.T) {
	c := &domain.Case{Price: 100}
	assert.Equal(t, 0, refundPercent(c, "epic"))
	assert.Equal(t, 0, refundAmount(c, "epic"))
}

func TestRefundAmount_Floors(t *testing.T) {
	c := &domain.Case{
		Price:      33,
		Duplicates: &domain.DuplicatePolicy{FlatPercentage: 50},
	}

	// 33 * 50 / 100 = 16.5 floors to 16.
	assert.Equal(t, 16, refundAmount(c, "common"))
}

func TestRefundAmount_FullPercentIsFullPrice(t *testing.T) {
	c := &domain.Case{
		Price:      520,
		Duplicates: &domain.DuplicatePolicy{PercentageByRarity: map[string]int{"legendary": 100}},
	}
	assert.Equal(t, 520, refundAmount(c, "legendary"))
}
