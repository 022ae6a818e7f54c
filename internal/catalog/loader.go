package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vantagerp/lootcase-api/internal/domain"
)

// DefaultMaxBatchSize caps multi-opens for cases that don't configure a limit.
const DefaultMaxBatchSize = 10

// fileConfig is the on-disk shape of the case catalog.
type fileConfig struct {
	Cases []caseConfig `json:"cases"`
}

type caseConfig struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Icon         string                  `json:"icon"`
	Price        int                     `json:"price"`
	MaxBatchSize int                     `json:"max_batch_size"`
	Rarities     []rarityConfig          `json:"rarities"`
	Pool         []poolItemConfig        `json:"pool"`
	Pity         *domain.PityRule        `json:"pity"`
	Duplicates   *domain.DuplicatePolicy `json:"duplicates_policy"`
}

type rarityConfig struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Chance float64 `json:"chance"`
}

type poolItemConfig struct {
	Kind      string      `json:"kind"`
	Rarity    string      `json:"rarity"`
	Weight    float64     `json:"weight"`
	Name      string      `json:"name"`
	Icon      string      `json:"icon"`
	Amount    amountRange `json:"amount"`
	UniqueKey string      `json:"unique_key"`
}

// amountRange accepts either a bare number (fixed amount) or {"min":..,"max":..}.
type amountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (a *amountRange) UnmarshalJSON(data []byte) error {
	var fixed int
	if err := json.Unmarshal(data, &fixed); err == nil {
		a.Min = fixed
		a.Max = fixed
		return nil
	}

	type plain amountRange
	var r plain
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if r.Max == 0 {
		r.Max = r.Min
	}
	*a = amountRange(r)
	return nil
}

// Load reads, validates, and normalizes the case catalog from a JSON file.
// Any violation is a fatal configuration error: no case may be servable with
// a dangling rarity reference or a non-positive weight.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a registry from raw catalog JSON.
func Parse(data []byte) (*Registry, error) {
	var cfg fileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse case catalog: %w", err)
	}

	if len(cfg.Cases) == 0 {
		return nil, fmt.Errorf("case catalog is empty")
	}

	reg := &Registry{byID: make(map[string]*domain.Case, len(cfg.Cases))}
	for _, cc := range cfg.Cases {
		if err := validateCase(cc); err != nil {
			return nil, err
		}
		c := normalizeCase(cc)
		if _, exists := reg.byID[c.ID]; exists {
			return nil, fmt.Errorf("case %q: duplicate case id", c.ID)
		}
		reg.cases = append(reg.cases, c)
		reg.byID[c.ID] = c
	}

	return reg, nil
}

func validateCase(cc caseConfig) error {
	if cc.ID == "" {
		return fmt.Errorf("case with empty id")
	}
	if cc.Price <= 0 {
		return fmt.Errorf("case %q: price must be positive", cc.ID)
	}
	if len(cc.Rarities) == 0 {
		return fmt.Errorf("case %q: no rarities declared", cc.ID)
	}

	declared := make(map[string]bool, len(cc.Rarities))
	for _, r := range cc.Rarities {
		if r.ID == "" {
			return fmt.Errorf("case %q: rarity with empty id", cc.ID)
		}
		if declared[r.ID] {
			return fmt.Errorf("case %q: duplicate rarity %q", cc.ID, r.ID)
		}
		if r.Chance <= 0 {
			return fmt.Errorf("case %q: rarity %q chance must be positive", cc.ID, r.ID)
		}
		declared[r.ID] = true
	}

	if len(cc.Pool) == 0 {
		return fmt.Errorf("case %q: empty reward pool", cc.ID)
	}

	populated := make(map[string]bool, len(cc.Rarities))
	for i, item := range cc.Pool {
		if !declared[item.Rarity] {
			return fmt.Errorf("case %q: pool item %d references unknown rarity %q", cc.ID, i, item.Rarity)
		}
		if item.Weight <= 0 {
			return fmt.Errorf("case %q: pool item %d weight must be positive", cc.ID, i)
		}
		if item.Kind == "" {
			return fmt.Errorf("case %q: pool item %d has no reward kind", cc.ID, i)
		}
		if item.Amount.Min <= 0 || item.Amount.Max < item.Amount.Min {
			return fmt.Errorf("case %q: pool item %d has invalid amount range", cc.ID, i)
		}
		populated[item.Rarity] = true
	}

	// A rarity that can be drawn but has nothing to award would only fail at
	// roll time; reject it up front instead.
	for _, r := range cc.Rarities {
		if !populated[r.ID] {
			return fmt.Errorf("case %q: rarity %q has no pool items", cc.ID, r.ID)
		}
	}

	if cc.Pity != nil {
		if cc.Pity.Threshold <= 0 {
			return fmt.Errorf("case %q: pity threshold must be positive", cc.ID)
		}
		if !declared[cc.Pity.MinRarity] {
			return fmt.Errorf("case %q: pity references unknown rarity %q", cc.ID, cc.Pity.MinRarity)
		}
	}

	if cc.Duplicates != nil {
		for rarity := range cc.Duplicates.PercentageByRarity {
			if !declared[rarity] {
				return fmt.Errorf("case %q: duplicates policy references unknown rarity %q", cc.ID, rarity)
			}
		}
	}

	return nil
}
