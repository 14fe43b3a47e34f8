package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/logger"
	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/models"
)

// RateReader supplies the current validated sell rate.
type RateReader interface {
	GetSellRate(ctx context.Context) (float64, error)
}

// DealReader fetches a deal by id.
type DealReader interface {
	GetDeal(ctx context.Context, id string) (models.Deal, error)
}

// DealWriter writes fields onto a deal.
type DealWriter interface {
	UpdateDeal(ctx context.Context, id string, fields map[string]any) error
}

// ProductRowSyncer reads and replaces the full product row collection of a
// deal.
type ProductRowSyncer interface {
	GetProductRows(ctx context.Context, dealID string) ([]models.ProductRow, error)
	SetProductRows(ctx context.Context, dealID string, rows []models.ProductRow) error
}

// ConversionRecorder persists the audit trail of handled webhooks.
type ConversionRecorder interface {
	Save(ctx context.Context, conv models.Conversion) error
}

// ConversionNotifier publishes a conversion event per handled webhook.
type ConversionNotifier interface {
	Publish(ctx context.Context, event models.ConversionEvent) error
}

// Config holds the per-deployment knobs of the conversion pipeline.
type Config struct {
	RubleField           string  // deal field carrying the RUB amount
	TargetCurrency       string  // e.g. "KZT"
	Markup               float64 // multiplicative margin on the raw sell rate
	SyncProductRows      bool
	ForceIdempotencyRead bool // fetch the deal on the inline path just for the skip check
}

// ConversionService runs the webhook pipeline: resolve the ruble amount, get
// the sell rate, convert, skip when nothing changed, write back.
type ConversionService struct {
	cfg      Config
	rate     RateReader
	reader   DealReader
	writer   DealWriter
	rows     ProductRowSyncer
	recorder ConversionRecorder
	notifier ConversionNotifier
}

// NewConversionService creates the pipeline. recorder and notifier are
// optional; nil disables them.
func NewConversionService(
	cfg Config,
	rate RateReader,
	reader DealReader,
	writer DealWriter,
	rows ProductRowSyncer,
	recorder ConversionRecorder,
	notifier ConversionNotifier,
) *ConversionService {
	if cfg.Markup <= 0 {
		cfg.Markup = 1.0
	}
	return &ConversionService{
		cfg:      cfg,
		rate:     rate,
		reader:   reader,
		writer:   writer,
		rows:     rows,
		recorder: recorder,
		notifier: notifier,
	}
}

// Convert handles one deal event end to end. The returned Conversion always
// carries a terminal outcome; err is non-nil only for hard failures.
func (svc *ConversionService) Convert(ctx context.Context, dealID, inlineRaw string) (models.Conversion, error) {
	conv, err := svc.convert(ctx, dealID, inlineRaw)
	svc.report(ctx, conv)
	return conv, err
}

func (svc *ConversionService) convert(ctx context.Context, dealID, inlineRaw string) (models.Conversion, error) {
	conv := models.Conversion{DealID: dealID}

	amount, deal, err := svc.resolveAmount(ctx, dealID, inlineRaw)
	if err != nil {
		if errors.Is(err, ErrAmountEmpty) {
			conv.Outcome = models.OutcomeRejected
			conv.Message = "ruble field is empty or invalid"
			return conv, nil
		}
		conv.Outcome = models.OutcomeFailed
		conv.Message = err.Error()
		return conv, err
	}
	conv.SourceAmount = amount

	sell, err := svc.rate.GetSellRate(ctx)
	if err != nil {
		conv.Outcome = models.OutcomeFailed
		conv.Message = err.Error()
		return conv, err
	}

	rate := sell * svc.cfg.Markup
	target := roundHalfUp(amount * rate)
	conv.Rate = rate
	conv.TargetAmount = target

	if deal == nil && svc.cfg.ForceIdempotencyRead {
		deal, err = svc.reader.GetDeal(ctx, dealID)
		if err != nil {
			conv.Outcome = models.OutcomeFailed
			conv.Message = err.Error()
			return conv, err
		}
	}

	// The skip check needs the stored state; without a fetched deal the
	// write goes through unconditionally.
	if deal != nil && svc.shouldSkip(deal, target) {
		conv.Outcome = models.OutcomeSkipped
		conv.Message = fmt.Sprintf("SKIP: already %d %s (rate %v)", target, svc.cfg.TargetCurrency, rate)
		return conv, nil
	}

	fields := map[string]any{
		models.DealFieldOpportunity: target,
		models.DealFieldCurrencyID:  svc.cfg.TargetCurrency,
	}
	if err := svc.writer.UpdateDeal(ctx, dealID, fields); err != nil {
		conv.Outcome = models.OutcomeFailed
		conv.Message = err.Error()
		return conv, err
	}

	if svc.cfg.SyncProductRows {
		if err := svc.syncProductRows(ctx, dealID, target); err != nil {
			// The deal update already landed; no rollback exists, so the
			// caller gets a distinct partial outcome.
			logger.Log.Errorw("product row sync failed after deal update",
				"deal_id", dealID,
				"error", err,
			)
			conv.Outcome = models.OutcomePartial
			conv.Message = fmt.Sprintf("deal updated to %d %s, product rows not synced: %v",
				target, svc.cfg.TargetCurrency, err)
			return conv, nil
		}
	}

	conv.Outcome = models.OutcomeUpdated
	conv.Message = fmt.Sprintf("OK: %v × %v = %d %s", amount, rate, target, svc.cfg.TargetCurrency)
	return conv, nil
}

// resolveAmount prefers the inline webhook value and falls back to a
// crm.deal.get. The fetched deal is returned so the skip check can reuse it
// without a second read.
func (svc *ConversionService) resolveAmount(ctx context.Context, dealID, inlineRaw string) (float64, models.Deal, error) {
	if amount, err := ParseAmount(inlineRaw); err == nil {
		return amount, nil, nil
	}

	deal, err := svc.reader.GetDeal(ctx, dealID)
	if err != nil {
		return 0, nil, err
	}

	amount, err := ParseAmount(deal.StringField(svc.cfg.RubleField))
	if err != nil {
		return 0, nil, ErrAmountEmpty
	}
	return amount, deal, nil
}

func (svc *ConversionService) shouldSkip(deal models.Deal, target int64) bool {
	if deal.StringField(models.DealFieldCurrencyID) != svc.cfg.TargetCurrency {
		return false
	}
	stored, err := ParseAmount(deal.StringField(models.DealFieldOpportunity))
	if err != nil {
		return false
	}
	return stored == float64(target)
}

func (svc *ConversionService) syncProductRows(ctx context.Context, dealID string, target int64) error {
	rows, err := svc.rows.GetProductRows(ctx, dealID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		// Every price-bearing field gets the same converted amount.
		row[models.RowFieldPrice] = target
		row[models.RowFieldPriceExclusive] = target
		row[models.RowFieldPriceNetto] = target
		row[models.RowFieldPriceBrutto] = target
		row[models.RowFieldCurrencyID] = svc.cfg.TargetCurrency
	}
	return svc.rows.SetProductRows(ctx, dealID, rows)
}

// report records and publishes the terminal state, best-effort.
func (svc *ConversionService) report(ctx context.Context, conv models.Conversion) {
	if svc.recorder != nil {
		if err := svc.recorder.Save(ctx, conv); err != nil {
			logger.Log.Errorw("conversion audit write failed",
				"deal_id", conv.DealID,
				"error", err,
			)
		}
	}
	if svc.notifier != nil {
		event := models.ConversionEvent{
			DealID:       conv.DealID,
			Outcome:      string(conv.Outcome),
			SourceAmount: conv.SourceAmount,
			Rate:         conv.Rate,
			TargetAmount: conv.TargetAmount,
			OccurredAt:   time.Now(),
		}
		if err := svc.notifier.Publish(ctx, event); err != nil {
			logger.Log.Errorw("conversion event publish failed",
				"deal_id", conv.DealID,
				"error", err,
			)
		}
	}
}
