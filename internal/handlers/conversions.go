package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/models"
)

// ConversionLister reads recent audit rows.
type ConversionLister interface {
	ListRecent(ctx context.Context, limit int) ([]models.ConversionDB, error)
}

// ConversionRecord is one audit entry
// swagger:model ConversionRecord
type ConversionRecord struct {
	// Deal id the conversion ran for
	// example: 101
	DealID string `json:"deal_id"`

	// Terminal outcome
	// example: updated
	Outcome string `json:"outcome"`

	// Human-readable summary
	// example: OK: 1250.5 × 5.2 = 6503 KZT
	Message string `json:"message"`

	// Source amount in rubles
	// example: 1250.5
	SourceAmount float64 `json:"source_amount"`

	// Effective rate
	// example: 5.2
	Rate float64 `json:"rate"`

	// Converted amount
	// example: 6503
	TargetAmount int64 `json:"target_amount"`

	// When the conversion was handled
	CreatedAt string `json:"created_at"`
}

// NewRecentConversionsHandler lists the newest audit entries.
// @Summary Recent conversions
// @Description Returns the newest conversion audit entries, most recent first. Available only when the audit log is enabled.
// @Tags conversions
// @Produce json
// @Param limit query int false "Maximum entries to return" default(20)
// @Success 200 {array} handlers.ConversionRecord "Audit entries"
// @Failure 500 {object} handlers.ConvertErrorResponse "Storage failure"
// @Router /conversions [get]
func NewRecentConversionsHandler(lister ConversionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		limit := 20
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 100 {
				limit = v
			}
		}

		rows, err := lister.ListRecent(ctx, limit)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ConvertErrorResponse{Error: "failed to read conversions"})
			return
		}

		records := make([]ConversionRecord, 0, len(rows))
		for _, row := range rows {
			records = append(records, ConversionRecord{
				DealID:       row.DealID,
				Outcome:      row.Outcome,
				Message:      row.Message,
				SourceAmount: row.SourceAmount,
				Rate:         row.Rate,
				TargetAmount: row.TargetAmount,
				CreatedAt:    row.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(records)
	}
}
