package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types emitted by the case pipeline
const (
	CaseOpened    Type = "case.opened"
	CasePurchased Type = "case.purchased"
	RewardShared  Type = "reward.shared"
)

// Typed event payloads for type safety

// CaseOpenedPayloadV1 is the typed payload for case opened events
type CaseOpenedPayloadV1 struct {
	CharacterID string `json:"character_id"`
	CaseID      string `json:"case_id"`
	Quantity    int    `json:"quantity"`
	TopRarity   string `json:"top_rarity"`
	Refund      int64  `json:"refund"`
	Timestamp   int64  `json:"timestamp"`
}

// CasePurchasedPayloadV1 is the typed payload for case purchase events
type CasePurchasedPayloadV1 struct {
	CharacterID string `json:"character_id"`
	CaseID      string `json:"case_id"`
	Quantity    int    `json:"quantity"`
	TotalCost   int64  `json:"total_cost"`
	Timestamp   int64  `json:"timestamp"`
}

// RewardSharedPayloadV1 is the typed payload for reward share broadcasts
type RewardSharedPayloadV1 struct {
	CharacterID string `json:"character_id"`
	Message     string `json:"message"`
	Rarity      string `json:"rarity"`
	Timestamp   int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewCaseOpenedEvent creates a new case opened event
func NewCaseOpenedEvent(characterID, caseID string, quantity int, topRarity string, refund int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CaseOpened,
		Payload: CaseOpenedPayloadV1{
			CharacterID: characterID,
			CaseID:      caseID,
			Quantity:    quantity,
			TopRarity:   topRarity,
			Refund:      refund,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCasePurchasedEvent creates a new case purchase event
func NewCasePurchasedEvent(characterID, caseID string, quantity int, totalCost int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CasePurchased,
		Payload: CasePurchasedPayloadV1{
			CharacterID: characterID,
			CaseID:      caseID,
			Quantity:    quantity,
			TotalCost:   totalCost,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewRewardSharedEvent creates a new reward share broadcast event
func NewRewardSharedEvent(characterID, message, rarity string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardShared,
		Payload: RewardSharedPayloadV1{
			CharacterID: characterID,
			Message:     message,
			Rarity:      rarity,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// a failing handler does not stop the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
