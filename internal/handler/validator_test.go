package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type validatedRequest struct {
	CharacterID string `json:"character_id" validate:"required,uuid"`
	RequestID   string `json:"request_id" validate:"required,max=10"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
}

func TestValidateStruct(t *testing.T) {
	v := GetValidator()

	t.Run("Valid", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{
			CharacterID: "00000000-0000-0000-0000-000000000001",
			RequestID:   "req-1",
			Quantity:    1,
		})
		assert.NoError(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{
			CharacterID: "not-a-uuid",
			RequestID:   "way-too-long-request-id",
		})
		assert.Error(t, err)
	})
}

func TestFormatValidationError(t *testing.T) {
	t.Run("Nil Error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("Validation Errors", func(t *testing.T) {
		err := GetValidator().ValidateStruct(validatedRequest{
			CharacterID: "not-a-uuid",
			RequestID:   "way-too-long-request-id",
		})
		errs := FormatValidationError(err)

		assert.Equal(t, "Must be a valid UUID", errs["characterid"])
		assert.Equal(t, "Must be at most 10", errs["requestid"])
		assert.Equal(t, "This field is required", errs["quantity"])
	})

	t.Run("Non Validation Error", func(t *testing.T) {
		errs := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", errs["error"])
	})
}
