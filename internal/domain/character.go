package domain

import "github.com/google/uuid"

// Character is the persisted player this service keeps a currency ledger
// for. Credits are the premium currency that buys cases and receives
// duplicate refunds; cash and chips are granted by case rewards.
type Character struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Cash    int64     `json:"cash"`
	Chips   int64     `json:"chips"`
	Credits int64     `json:"credits"`
}
