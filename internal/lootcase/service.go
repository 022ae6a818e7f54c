package lootcase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/vantagerp/lootcase-api/internal/catalog"
	"github.com/vantagerp/lootcase-api/internal/event"
	"github.com/vantagerp/lootcase-api/internal/grant"
	"github.com/vantagerp/lootcase-api/internal/ratelimit"
	"github.com/vantagerp/lootcase-api/internal/repository"

	"github.com/vantagerp/lootcase-api/internal/domain"
)

// Service is the case engine: purchases, opens, state, and share broadcasts.
type Service interface {
	// Open opens quantity units of a case. The returned payload is the JSON
	// body to serve; a replayed request ID returns the original bytes.
	Open(ctx context.Context, characterID uuid.UUID, requestID, caseID string, quantity int) (json.RawMessage, error)

	// Buy purchases quantity units of a case with credits.
	Buy(ctx context.Context, characterID uuid.UUID, caseID string, quantity int) (*domain.BuyResponse, error)

	// State returns the catalog plus the character's stock, history, and
	// credits balance.
	State(ctx context.Context, characterID uuid.UUID) (*domain.CaseState, error)

	// Share broadcasts a history entry and returns the message sent.
	Share(ctx context.Context, characterID uuid.UUID, historyID int64) (string, error)
}

type service struct {
	repo    repository.Lootcase
	catalog *catalog.Registry
	grants  *grant.Registry
	limiter ratelimit.Limiter
	bus     event.Bus
	replays *expirable.LRU[string, []byte]
}

// NewService creates a new case service
func NewService(repo repository.Lootcase, reg *catalog.Registry, grants *grant.Registry, limiter ratelimit.Limiter, bus event.Bus) Service {
	return &service{
		repo:    repo,
		catalog: reg,
		grants:  grants,
		limiter: limiter,
		bus:     bus,
		replays: expirable.NewLRU[string, []byte](ReplayCacheSize, nil, ReplayCacheTTL),
	}
}

// validateQuantity checks the batch size against the case's limit.
func validateQuantity(c *domain.Case, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	if quantity > c.MaxBatchSize {
		return domain.ErrBatchTooLarge
	}
	return nil
}
