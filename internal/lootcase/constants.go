package lootcase

import "time"

// ============================================================================
// History
// ============================================================================

// HistoryLimit is how many recent rewards the state and open responses carry.
const HistoryLimit = 20

// ============================================================================
// Animation Tape
// ============================================================================

// AnimationTapeLength is the number of display rewards on the spin reel.
const AnimationTapeLength = 20

// AnimationFocusIndex is where the winning reward sits on the reel.
const AnimationFocusIndex = 9

// ============================================================================
// Replay Cache
// ============================================================================

// ReplayCacheSize bounds the in-memory request ledger cache.
const ReplayCacheSize = 1024

// ReplayCacheTTL is how long a served response stays in the cache. The
// database ledger remains authoritative after eviction.
const ReplayCacheTTL = 10 * time.Minute

// ============================================================================
// Share Broadcasts
// ============================================================================

// ShareMessageFormat is the broadcast template: name, reward, rarity, case.
const ShareMessageFormat = "%s got %s (%s) from %s!"

// ============================================================================
// Error Context Messages
// ============================================================================

const (
	ErrContextFailedToBeginTx       = "failed to begin transaction"
	ErrContextFailedToCommitTx      = "failed to commit transaction"
	ErrContextFailedToGetCharacter  = "failed to get character"
	ErrContextFailedToGetStock      = "failed to get stock"
	ErrContextFailedToTakeStock     = "failed to take stock"
	ErrContextFailedToAddStock      = "failed to add stock"
	ErrContextFailedToDebitCredits  = "failed to debit credits"
	ErrContextFailedToGetPity       = "failed to get pity streak"
	ErrContextFailedToSetPity       = "failed to set pity streak"
	ErrContextFailedToInsertUnlock  = "failed to record unlock"
	ErrContextFailedToInsertHistory = "failed to insert history"
	ErrContextFailedToGetHistory    = "failed to get history"
	ErrContextFailedToStoreRequest  = "failed to store request"
	ErrContextFailedToFindRequest   = "failed to look up request"
	ErrContextFailedToEncodeResult  = "failed to encode open result"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgOpenCalled         = "Open case called"
	LogMsgBuyCalled          = "Buy case called"
	LogMsgStateCalled        = "Case state called"
	LogMsgShareCalled        = "Share reward called"
	LogMsgRequestReplayed    = "Open request replayed from ledger"
	LogMsgRateLimited        = "Case operation rate limited"
	LogMsgPityTriggered      = "Pity guarantee forced rarity"
	LogMsgDuplicateRefunded  = "Duplicate reward converted to refund"
	LogMsgGrantFailed        = "Reward grant failed after commit, compensating with credits"
	LogMsgCompensationFailed = "Compensation credit failed, manual intervention required"
	LogMsgRefundFailed       = "Duplicate refund credit failed, manual intervention required"
	LogMsgEventPublishError  = "Failed to publish event"
)
