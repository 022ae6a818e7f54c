package domain

// RewardKind discriminates how a rolled reward is delivered.
type RewardKind string

// Supported reward kinds. New kinds are added here and registered with a
// granter in the grant registry; the engine itself never branches on kind.
const (
	RewardKindMoney   RewardKind = "money"
	RewardKindChips   RewardKind = "chips"
	RewardKindCredits RewardKind = "credits"
)

// Reward is one rolled reward before delivery.
type Reward struct {
	Kind        RewardKind `json:"kind"`
	Amount      int        `json:"amount"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon,omitempty"`
	Rarity      string     `json:"rarity"`
	RarityName  string     `json:"rarity_name"`
	RarityColor string     `json:"rarity_color"`
	UniqueKey   string     `json:"-"`
}

// Display projects the reward to its public-facing metadata.
func (r Reward) Display() DisplayReward {
	return DisplayReward{
		Name:        r.Name,
		Kind:        r.Kind,
		Rarity:      r.Rarity,
		RarityName:  r.RarityName,
		RarityColor: r.RarityColor,
		Icon:        r.Icon,
	}
}

// DuplicateOutcome records the duplicate-policy verdict for one reward.
type DuplicateOutcome struct {
	Duplicate bool `json:"duplicate"`
	Refund    int  `json:"refund"`
}

// OpenUnitResult is the outcome of opening a single case unit.
type OpenUnitResult struct {
	Reward    Reward           `json:"reward"`
	Duplicate DuplicateOutcome `json:"duplicate"`
}

// RarityCount aggregates how many rewards of one rarity a batch produced.
type RarityCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// OpenSummary aggregates a batch: per-rarity counts in the case's configured
// rarity order, plus the total duplicate refund.
type OpenSummary struct {
	Rarities []RarityCount `json:"rarities"`
	Refund   int           `json:"refund"`
}

// AnimationTape is the spin-reel hint returned for single opens: a fixed
// strip of display rewards with the winning one at FocusIndex.
type AnimationTape struct {
	Tape       []DisplayReward `json:"tape"`
	FocusIndex int             `json:"focus_index"`
}

// OpenResponse is the full response of one open operation. It is serialized
// into the request ledger verbatim, so replays are bit-identical.
type OpenResponse struct {
	CaseID    string           `json:"case_id"`
	Quantity  int              `json:"quantity"`
	Results   []OpenUnitResult `json:"results"`
	Summary   OpenSummary      `json:"summary"`
	History   []HistoryEntry   `json:"history"`
	Stock     int              `json:"stock"`
	Credits   int64            `json:"credits"`
	Animation *AnimationTape   `json:"animation,omitempty"`
}

// BuyResponse reports the state after a purchase.
type BuyResponse struct {
	CaseID   string `json:"case_id"`
	Quantity int    `json:"quantity"`
	Stock    int    `json:"stock"`
	Credits  int64  `json:"credits"`
}

// StockEntry is the unopened-case count a character holds for one case type.
type StockEntry struct {
	CaseID string `json:"case_id"`
	Count  int    `json:"count"`
}

// CaseState is the combined catalog-and-player payload for the case menu.
type CaseState struct {
	Cases   []ClientCase   `json:"cases"`
	Stock   []StockEntry   `json:"stock"`
	History []HistoryEntry `json:"history"`
	Credits int64          `json:"credits"`
}
