package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/logger"
	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/models"
)

type ConversionWriteRepository struct {
	db *sqlx.DB
}

func NewConversionWriteRepository(db *sqlx.DB) *ConversionWriteRepository {
	return &ConversionWriteRepository{db: db}
}

// Save appends one audit row for a handled webhook.
func (r *ConversionWriteRepository) Save(ctx context.Context, conv models.Conversion) error {
	const query = `
		INSERT INTO conversions (conversion_id, deal_id, outcome, message, source_amount, rate, target_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`

	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(),
		conv.DealID,
		string(conv.Outcome),
		conv.Message,
		conv.SourceAmount,
		conv.Rate,
		conv.TargetAmount,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"deal_id", conv.DealID,
		"outcome", conv.Outcome,
		"error", err,
	)

	return err
}

type ConversionReadRepository struct {
	db *sqlx.DB
}

func NewConversionReadRepository(db *sqlx.DB) *ConversionReadRepository {
	return &ConversionReadRepository{db: db}
}

// ListRecent returns the newest audit rows, most recent first.
func (r *ConversionReadRepository) ListRecent(ctx context.Context, limit int) ([]models.ConversionDB, error) {
	const query = `
		SELECT conversion_id, deal_id, outcome, message, source_amount, rate, target_amount, created_at
		FROM conversions
		ORDER BY created_at DESC
		LIMIT $1
	`

	var rows []models.ConversionDB
	err := r.db.SelectContext(ctx, &rows, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"limit", limit,
		"count", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return rows, nil
}
