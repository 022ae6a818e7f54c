package lootcase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vantagerp/lootcase-api/internal/domain"
	"github.com/vantagerp/lootcase-api/internal/logger"
)

// State returns the client catalog plus the character's stock, recent
// history, and credits balance in one payload.
func (s *service) State(ctx context.Context, characterID uuid.UUID) (*domain.CaseState, error) {
	logger.FromContext(ctx).Debug(LogMsgStateCalled, "character_id", characterID)

	character, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetCharacter, err)
	}

	stock, err := s.repo.GetStock(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetStock, err)
	}

	history, err := s.repo.GetHistory(ctx, characterID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetHistory, err)
	}

	return &domain.CaseState{
		Cases:   s.catalog.ClientViews(),
		Stock:   stock,
		History: history,
		Credits: character.Credits,
	}, nil
}
