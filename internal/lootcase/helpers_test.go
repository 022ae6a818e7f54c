package lootcase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vantagerp/lootcase-api/internal/catalog"
	"github.com/vantagerp/lootcase-api/internal/event"
	"github.com/vantagerp/lootcase-api/internal/grant"
	"github.com/vantagerp/lootcase-api/internal/ratelimit"
)

// simpleCatalog has a single deterministic case: one rarity, one fixed-amount
// money reward. Rolls cannot vary, which keeps open tests exact.
const simpleCatalog = `{
  "cases": [
    {
      "id": "bronze",
      "name": "Bronze Case",
      "price": 100,
      "max_batch_size": 5,
      "rarities": [{"id": "common", "name": "Common", "chance": 1, "color": "#888"}],
      "pool": [{"kind": "money", "rarity": "common", "weight": 1, "amount": 10, "name": "Cash"}]
    }
  ]
}`

// pityCatalog adds a guarantee: epic at a streak of 3. Each rarity holds one
// fixed item so only the rarity draw is random.
const pityCatalog = `{
  "cases": [
    {
      "id": "gold",
      "name": "Gold Case",
      "price": 200,
      "max_batch_size": 10,
      "rarities": [
        {"id": "common", "name": "Common", "chance": 90, "color": "#888"},
        {"id": "epic", "name": "Epic", "chance": 10, "color": "#90f"}
      ],
      "pity": {"threshold": 3, "min_rarity": "epic"},
      "pool": [
        {"kind": "money", "rarity": "common", "weight": 1, "amount": 10, "name": "Cash"},
        {"kind": "credits", "rarity": "epic", "weight": 1, "amount": 50, "name": "Premium Credits"}
      ]
    }
  ]
}`

// uniqueCatalog holds a single one-per-character reward with a duplicate
// refund policy.
const uniqueCatalog = `{
  "cases": [
    {
      "id": "relic",
      "name": "Relic Case",
      "price": 150,
      "max_batch_size": 5,
      "rarities": [{"id": "epic", "name": "Epic", "chance": 1, "color": "#90f"}],
      "duplicates_policy": {"percentage_by_rarity": {"epic": 25}},
      "pool": [{"kind": "credits", "rarity": "epic", "weight": 1, "amount": 30, "name": "Ancient Relic", "unique_key": "relic_ancient"}]
    }
  ]
}`

func parseCatalog(t *testing.T, payload string) *catalog.Registry {
	t.Helper()
	reg, err := catalog.Parse([]byte(payload))
	require.NoError(t, err)
	return reg
}

type testService struct {
	svc     Service
	repo    *mockRepository
	tx      *mockTx
	limiter ratelimit.Limiter
	bus     *event.MemoryBus
}

func newTestService(t *testing.T, catalogJSON string) *testService {
	t.Helper()
	repo := new(mockRepository)
	bus := event.NewMemoryBus()
	limiter := ratelimit.NewSlidingWindow(time.Minute, 1000)
	svc := NewService(repo, parseCatalog(t, catalogJSON), grant.NewRegistry(), limiter, bus)
	return &testService{
		svc:     svc,
		repo:    repo,
		tx:      new(mockTx),
		limiter: limiter,
		bus:     bus,
	}
}
