package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/models"
	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/rates"
)

// Converter runs the conversion pipeline for one deal event.
type Converter interface {
	Convert(ctx context.Context, dealID, inlineRaw string) (models.Conversion, error)
}

// DealWebhookRequest is the Bitrix deal event payload
// swagger:model DealWebhookRequest
type DealWebhookRequest struct {
	// Event data wrapper as sent by the portal
	Data struct {
		// Deal fields; must contain ID, may contain the ruble field
		Fields map[string]any `json:"FIELDS"`
	} `json:"data"`
}

// ConvertResponse reports the outcome of one handled deal event
// swagger:model ConvertResponse
type ConvertResponse struct {
	// Terminal outcome: updated, skipped, rejected or partial
	// example: updated
	Outcome string `json:"outcome"`

	// Human-readable summary with amount and rate when available
	// example: OK: 1250.5 × 5.2 = 6503 KZT
	Message string `json:"message"`

	// Converted amount in the target currency
	// example: 6503
	TargetAmount int64 `json:"target_amount,omitempty"`

	// Effective rate used for the conversion
	// example: 5.2
	Rate float64 `json:"rate,omitempty"`
}

// ConvertErrorResponse is returned for malformed requests and hard failures
// swagger:model ConvertErrorResponse
type ConvertErrorResponse struct {
	// Error message
	// example: missing deal id
	Error string `json:"error"`
}

// NewDealWebhookHandler handles inbound Bitrix deal events.
// @Summary Convert a deal's ruble amount to tenge
// @Description Resolves the RUB amount from the event (falling back to crm.deal.get), applies the current sell rate and writes the converted amount back to the deal.
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body handlers.DealWebhookRequest true "Deal event"
// @Success 200 {object} handlers.ConvertResponse "Conversion handled"
// @Failure 400 {object} handlers.ConvertErrorResponse "Missing deal id"
// @Failure 500 {object} handlers.ConvertErrorResponse "Rate or CRM failure"
// @Router / [post]
func NewDealWebhookHandler(converter Converter, rubleField string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req DealWebhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConvertErrorResponse{Error: "invalid payload"})
			return
		}

		fields := models.Deal(req.Data.Fields)
		dealID := fields.StringField(models.DealFieldID)
		if dealID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConvertErrorResponse{Error: "missing deal id"})
			return
		}

		conv, err := converter.Convert(ctx, dealID, fields.StringField(rubleField))
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ConvertErrorResponse{Error: failureMessage(err)})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConvertResponse{
			Outcome:      string(conv.Outcome),
			Message:      conv.Message,
			TargetAmount: conv.TargetAmount,
			Rate:         conv.Rate,
		})
	}
}

// failureMessage keeps the rate-source failure classes distinguishable: a
// silent parse breakage would stop every conversion, so it must not drown in
// a generic message.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, rates.ErrRateNotFound):
		return "rate source parse failure: " + err.Error()
	case errors.Is(err, rates.ErrRateImplausible):
		return "rate validation failure: " + err.Error()
	default:
		return "remote call failure: " + err.Error()
	}
}
