package domain

// RarityTier is a named probability bucket within a case.
// Order is the tier's index in the case's configured rarity list; the pity
// guarantee compares orders, not ids.
type RarityTier struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Chance      float64 `json:"chance"`
	Probability float64 `json:"probability"`
	Order       int     `json:"-"`
}

// RewardTemplate is one entry in a case's reward pool.
// UniqueKey is empty for stackable rewards; a non-empty key marks a
// one-per-character reward subject to the duplicate policy.
type RewardTemplate struct {
	ID        string
	Rarity    string
	Weight    float64
	Kind      RewardKind
	Name      string
	Icon      string
	MinAmount int
	MaxAmount int
	UniqueKey string
}

// PityRule forces a minimum-rarity outcome after Threshold consecutive
// sub-guarantee rolls.
type PityRule struct {
	Threshold int    `json:"threshold"`
	MinRarity string `json:"min_rarity"`
}

// DuplicatePolicy converts repeat claims of unique rewards into a credits
// refund. Rarity-specific percentages take precedence over the flat one.
type DuplicatePolicy struct {
	PercentageByRarity map[string]int `json:"percentage_by_rarity,omitempty"`
	FlatPercentage     int            `json:"flat_percentage,omitempty"`
}

// Case is a fully normalized, immutable case definition. Built once by the
// catalog at startup and shared read-only across requests.
type Case struct {
	ID           string
	Name         string
	Icon         string
	Price        int
	MaxBatchSize int

	Rarities     []RarityTier
	Pool         []RewardTemplate
	PoolByRarity map[string][]RewardTemplate
	RarityByID   map[string]RarityTier

	Pity       *PityRule
	Duplicates *DuplicatePolicy
	Preview    []DisplayReward
}

// RarityOrder returns the guarantee order of a rarity id, or -1 when the id
// is not declared by this case.
func (c *Case) RarityOrder(rarityID string) int {
	tier, ok := c.RarityByID[rarityID]
	if !ok {
		return -1
	}
	return tier.Order
}

// DisplayReward is the public-facing projection of a pool item: display
// metadata only, never weights or amount ranges.
type DisplayReward struct {
	Name        string     `json:"name"`
	Kind        RewardKind `json:"kind"`
	Rarity      string     `json:"rarity"`
	RarityName  string     `json:"rarity_name"`
	RarityColor string     `json:"rarity_color"`
	Icon        string     `json:"icon,omitempty"`
}

// ClientCase is the catalog view served to clients.
type ClientCase struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Icon         string           `json:"icon,omitempty"`
	Price        int              `json:"price"`
	MaxBatchSize int              `json:"max_batch_size"`
	Rarities     []RarityTier     `json:"rarities"`
	Pity         *PityRule        `json:"pity,omitempty"`
	Duplicates   *DuplicatePolicy `json:"duplicates_policy,omitempty"`
	Preview      []DisplayReward  `json:"preview"`
}
