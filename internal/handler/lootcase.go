package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vantagerp/lootcase-api/internal/logger"
	"github.com/vantagerp/lootcase-api/internal/lootcase"
)

// LootcaseHandler serves the case endpoints
type LootcaseHandler struct {
	service lootcase.Service
}

// NewLootcaseHandler creates a new LootcaseHandler
func NewLootcaseHandler(service lootcase.Service) *LootcaseHandler {
	return &LootcaseHandler{service: service}
}

type OpenCaseRequest struct {
	CharacterID string `json:"character_id" validate:"required,uuid"`
	RequestID   string `json:"request_id" validate:"omitempty,max=100"`
	CaseID      string `json:"case_id" validate:"required,max=50"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
}

// HandleOpenCase opens one or more cases. The response body is served from
// the request ledger, so retries with the same request ID replay verbatim.
func (h *LootcaseHandler) HandleOpenCase(w http.ResponseWriter, r *http.Request) {
	var req OpenCaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Open case"); err != nil {
		return
	}

	characterID, err := uuid.Parse(req.CharacterID)
	if err != nil {
		http.Error(w, ErrMsgInvalidCharacterID, http.StatusBadRequest)
		return
	}

	payload, err := h.service.Open(r.Context(), characterID, req.RequestID, req.CaseID, req.Quantity)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to open case", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondRaw(w, http.StatusOK, payload)
}

type BuyCaseRequest struct {
	CharacterID string `json:"character_id" validate:"required,uuid"`
	CaseID      string `json:"case_id" validate:"required,max=50"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
}

// HandleBuyCase purchases cases with credits
func (h *LootcaseHandler) HandleBuyCase(w http.ResponseWriter, r *http.Request) {
	var req BuyCaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy case"); err != nil {
		return
	}

	characterID, err := uuid.Parse(req.CharacterID)
	if err != nil {
		http.Error(w, ErrMsgInvalidCharacterID, http.StatusBadRequest)
		return
	}

	resp, err := h.service.Buy(r.Context(), characterID, req.CaseID, req.Quantity)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to buy case", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// HandleGetState returns the catalog plus the character's stock, history,
// and credits
func (h *LootcaseHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	characterIDStr, ok := GetQueryParam(r, w, "character_id")
	if !ok {
		return
	}
	characterID, err := uuid.Parse(characterIDStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidCharacterID, http.StatusBadRequest)
		return
	}

	state, err := h.service.State(r.Context(), characterID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get case state", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

type ShareRewardRequest struct {
	CharacterID string `json:"character_id" validate:"required,uuid"`
	HistoryID   int64  `json:"history_id" validate:"required,min=1"`
}

// ShareRewardResponse carries the broadcast message back to the caller
type ShareRewardResponse struct {
	Message string `json:"message"`
}

// HandleShareReward broadcasts one of the character's history entries
func (h *LootcaseHandler) HandleShareReward(w http.ResponseWriter, r *http.Request) {
	var req ShareRewardRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Share reward"); err != nil {
		return
	}

	characterID, err := uuid.Parse(req.CharacterID)
	if err != nil {
		http.Error(w, ErrMsgInvalidCharacterID, http.StatusBadRequest)
		return
	}

	message, err := h.service.Share(r.Context(), characterID, req.HistoryID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to share reward", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, ShareRewardResponse{Message: message})
}
