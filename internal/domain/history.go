package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one granted reward, append-only. The core never updates or
// deletes these rows; they are the audit trail and the player-visible history.
type HistoryEntry struct {
	ID          int64      `json:"id"`
	CharacterID uuid.UUID  `json:"-"`
	CaseID      string     `json:"case_id"`
	CaseName    string     `json:"case_name"`
	RewardKind  RewardKind `json:"reward_kind"`
	RewardName  string     `json:"reward_name"`
	RewardIcon  string     `json:"reward_icon,omitempty"`
	Rarity      string     `json:"rarity"`
	RarityName  string     `json:"rarity_name"`
	RarityColor string     `json:"rarity_color"`
	Amount      int        `json:"amount"`
	Duplicate   bool       `json:"duplicate"`
	Refund      int        `json:"refund"`
	CreatedAt   time.Time  `json:"created_at"`
}
