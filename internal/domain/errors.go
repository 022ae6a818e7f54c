package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Character errors
	ErrMsgCharacterNotFound = "character not found"

	// Catalog errors
	ErrMsgCaseNotFound = "case not found"

	// Validation errors
	ErrMsgInvalidQuantity = "invalid quantity"
	ErrMsgBatchTooLarge   = "batch size exceeds case limit"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInsufficientStock = "insufficient stock"

	// Rate limiting
	ErrMsgRateLimited = "too many operations"

	// History errors
	ErrMsgHistoryNotFound = "history entry not found"

	// Grant errors
	ErrMsgUnsupportedRewardKind = "unsupported reward kind"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors.
// These are used consistently across all layers; wrap them with
// fmt.Errorf("%w: details", domain.ErrXxx) for additional context.
var (
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)

	ErrCaseNotFound = errors.New(ErrMsgCaseNotFound)

	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)
	ErrBatchTooLarge   = errors.New(ErrMsgBatchTooLarge)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)

	ErrRateLimited = errors.New(ErrMsgRateLimited)

	ErrHistoryNotFound = errors.New(ErrMsgHistoryNotFound)

	ErrUnsupportedRewardKind = errors.New(ErrMsgUnsupportedRewardKind)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
