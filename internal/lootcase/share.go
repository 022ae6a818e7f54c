package lootcase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vantagerp/lootcase-api/internal/logger"

	"github.com/vantagerp/lootcase-api/internal/event"
)

// Share broadcasts one of the character's own history entries. The entry
// lookup is scoped to the character, so nobody can share another player's
// reward.
func (s *service) Share(ctx context.Context, characterID uuid.UUID, historyID int64) (string, error) {
	logger.FromContext(ctx).Info(LogMsgShareCalled, "character_id", characterID, "history_id", historyID)

	character, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrContextFailedToGetCharacter, err)
	}

	entry, err := s.repo.GetHistoryEntry(ctx, historyID, characterID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrContextFailedToGetHistory, err)
	}

	message := fmt.Sprintf(ShareMessageFormat, character.Name, entry.RewardName, entry.RarityName, entry.CaseName)
	s.publish(ctx, event.NewRewardSharedEvent(characterID.String(), message, entry.Rarity))

	return message, nil
}
