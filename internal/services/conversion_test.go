package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/models"
)

func defaultConfig() Config {
	return Config{
		RubleField:     "UF_CRM_1753277551304",
		TargetCurrency: "KZT",
		Markup:         1.0,
	}
}

func TestConversionService_Convert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	const dealID = "101"
	const rubleField = "UF_CRM_1753277551304"

	tenge := map[string]any{
		models.DealFieldOpportunity: int64(6503),
		models.DealFieldCurrencyID:  "KZT",
	}

	tests := []struct {
		name            string
		cfg             Config
		inlineRaw       string
		mockSetup       func(rate *MockRateReader, reader *MockDealReader, writer *MockDealWriter, rows *MockProductRowSyncer)
		expectedOutcome models.Outcome
		expectedTarget  int64
		wantErr         bool
	}{
		{
			name:      "inline_amount_updated",
			cfg:       defaultConfig(),
			inlineRaw: "1 250,50",
			mockSetup: func(rate *MockRateReader, reader *MockDealReader, writer *MockDealWriter, rows *MockProductRowSyncer) {
				rate.EXPECT().GetSellRate(ctx).Return(5.2, nil)
				writer.EXPECT().UpdateDeal(ctx, dealID, tenge).Return(nil)
			},
			expectedOutcome: models.OutcomeUpdated,
			expectedTarget:  6503,
		},
		{
			name:      "fallback_amount_updated",
			cfg:       defaultConfig(),
			inlineRaw: "",
			mockSetup: func(rate *MockRateReader, reader *MockDealReader, writer *MockDealWriter, rows *MockProductRowSyncer) {
				reader.EXPECT().GetDeal(ctx, dealID).Return(models.Deal{
					rubleField:                  "980",
					models.DealFieldOpportunity: "100",
					models.DealFieldCurrencyID:  "RUB",
				}, nil)
				rate.EXPECT().GetSellRate(ctx).Return(5.2, nil)
				writer.EXPECT().UpdateDeal(ctx, dealID, map[string]any{
					models.DealFieldOpportunity: int64(5096),
					models.DealFieldCurrencyID:  "KZT",
				}).Return(nil)
			},
			expectedOutcome: models.OutcomeUpdated,
			expectedTarget:  5096,
		},
		{
			name:      "fallback_amount_skipped",
			cfg:       defaultConfig(),
			inlineRaw: "",
			mockSetup: func(rate *MockRateReader, reader *MockDealReader, writer *MockDealWriter, rows *MockProductRowSyncer) {
				reader.EXPECT().GetDeal(ctx, dealID).Return(models.Deal{
					rubleField:                  "980",
					models.DealFieldOpportunity: "5096",
					models.DealFieldCurrencyID:  "KZT",
				}, nil)
				rate.EXPECT().GetSellRate(ctx).Return(5.2, nil)
				// No write calls expected
			},
			expectedOutcome: models.OutcomeSkipped,
			expectedTarget:  5096,
		},
		{
			name:      "rejected_empty_amount",
			cfg:       defaultConfig(),
			inlineRaw: "",
			mockSetup: func(rate *MockRateReader, reader *MockDealReader, writer *MockDealWriter, rows *MockProductRowSyncer) {
				reader.EXPECT().GetDeal(ctx, dealID).Return(models.Deal{
					models.DealFieldOpportunity: "100",
				}, nil)
				// Rate is never fetched for a rejected event
			},
			expectedOutcome: models.OutcomeRejected,
		},
		{
			name:      "rate_failure",
			cfg:       defaultConfig(),
			inlineRaw: "980",
			mockSetup: func(rate *MockRateReader, reader *MockDealReader, writer *MockDealWriter, rows *MockProductRowSyncer) {
				rate.EXPECT().GetSellRate(ctx).Return(0.0, assert.AnError)
			},
			expectedOutcome: models.OutcomeFailed,
			wantErr:         true,
		},
		{
			name:      "deal_update_failure",
			cfg:       defaultConfig(),
			inlineRaw: "1 250,50",
			mockSetup: func(rate *MockRateReader, reader *MockDealReader, writer *MockDealWriter, rows *MockProductRowSyncer) {
				rate.EXPECT().GetSellRate(ctx).Return(5.2, nil)
				writer.EXPECT().UpdateDeal(ctx, dealID, tenge).Return(assert.AnError)
			},
			expectedOutcome: models.OutcomeFailed,
			expectedTarget:  6503,
			wantErr:         true,
		},
		{
			name: "row_sync_failure_is_partial",
			cfg: Config{
				RubleField:      rubleField,
				TargetCurrency:  "KZT",
				Markup:          1.0,
				SyncProductRows: true,
			},
			inlineRaw: "1 250,50",
			mockSetup: func(rate *MockRateReader, reader *MockDealReader, writer *MockDealWriter, rows *MockProductRowSyncer) {
				rate.EXPECT().GetSellRate(ctx).Return(5.2, nil)
				writer.EXPECT().UpdateDeal(ctx, dealID, tenge).Return(nil)
				rows.EXPECT().GetProductRows(ctx, dealID).Return(nil, assert.AnError)
			},
			expectedOutcome: models.OutcomePartial,
			expectedTarget:  6503,
		},
		{
			name: "rows_rewritten_uniformly",
			cfg: Config{
				RubleField:      rubleField,
				TargetCurrency:  "KZT",
				Markup:          1.0,
				SyncProductRows: true,
			},
			inlineRaw: "1 250,50",
			mockSetup: func(rate *MockRateReader, reader *MockDealReader, writer *MockDealWriter, rows *MockProductRowSyncer) {
				rate.EXPECT().GetSellRate(ctx).Return(5.2, nil)
				writer.EXPECT().UpdateDeal(ctx, dealID, tenge).Return(nil)
				rows.EXPECT().GetProductRows(ctx, dealID).Return([]models.ProductRow{
					{"ID": "1", models.RowFieldPrice: "100", models.RowFieldCurrencyID: "RUB"},
				}, nil)
				rows.EXPECT().SetProductRows(ctx, dealID, []models.ProductRow{
					{
						"ID":                          "1",
						models.RowFieldPrice:          int64(6503),
						models.RowFieldPriceExclusive: int64(6503),
						models.RowFieldPriceNetto:     int64(6503),
						models.RowFieldPriceBrutto:    int64(6503),
						models.RowFieldCurrencyID:     "KZT",
					},
				}).Return(nil)
			},
			expectedOutcome: models.OutcomeUpdated,
			expectedTarget:  6503,
		},
		{
			name: "forced_read_skips_inline_path",
			cfg: Config{
				RubleField:           rubleField,
				TargetCurrency:       "KZT",
				Markup:               1.0,
				ForceIdempotencyRead: true,
			},
			inlineRaw: "1 250,50",
			mockSetup: func(rate *MockRateReader, reader *MockDealReader, writer *MockDealWriter, rows *MockProductRowSyncer) {
				rate.EXPECT().GetSellRate(ctx).Return(5.2, nil)
				reader.EXPECT().GetDeal(ctx, dealID).Return(models.Deal{
					models.DealFieldOpportunity: "6503",
					models.DealFieldCurrencyID:  "KZT",
				}, nil)
			},
			expectedOutcome: models.OutcomeSkipped,
			expectedTarget:  6503,
		},
		{
			name:      "markup_applied",
			cfg:       Config{RubleField: rubleField, TargetCurrency: "KZT", Markup: 1.03},
			inlineRaw: "1000",
			mockSetup: func(rate *MockRateReader, reader *MockDealReader, writer *MockDealWriter, rows *MockProductRowSyncer) {
				rate.EXPECT().GetSellRate(ctx).Return(5.0, nil)
				writer.EXPECT().UpdateDeal(ctx, dealID, map[string]any{
					models.DealFieldOpportunity: int64(5150),
					models.DealFieldCurrencyID:  "KZT",
				}).Return(nil)
			},
			expectedOutcome: models.OutcomeUpdated,
			expectedTarget:  5150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := NewMockRateReader(ctrl)
			reader := NewMockDealReader(ctrl)
			writer := NewMockDealWriter(ctrl)
			rows := NewMockProductRowSyncer(ctrl)
			tt.mockSetup(rate, reader, writer, rows)

			svc := NewConversionService(tt.cfg, rate, reader, writer, rows, nil, nil)

			conv, err := svc.Convert(ctx, dealID, tt.inlineRaw)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedOutcome, conv.Outcome)
			assert.Equal(t, tt.expectedTarget, conv.TargetAmount)
			assert.Equal(t, dealID, conv.DealID)
		})
	}
}

func TestConversionService_ReportsTerminalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	rate := NewMockRateReader(ctrl)
	reader := NewMockDealReader(ctrl)
	writer := NewMockDealWriter(ctrl)
	rows := NewMockProductRowSyncer(ctrl)
	recorder := NewMockConversionRecorder(ctrl)
	notifier := NewMockConversionNotifier(ctrl)

	rate.EXPECT().GetSellRate(ctx).Return(5.2, nil)
	writer.EXPECT().UpdateDeal(ctx, "42", gomock.Any()).Return(nil)

	recorder.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, conv models.Conversion) error {
			assert.Equal(t, models.OutcomeUpdated, conv.Outcome)
			assert.Equal(t, int64(5096), conv.TargetAmount)
			return nil
		})
	notifier.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.ConversionEvent) error {
			assert.Equal(t, "updated", event.Outcome)
			assert.Equal(t, "42", event.DealID)
			// Reporting failures never fail the pipeline, exercise the path
			return errors.New("broker down")
		})

	svc := NewConversionService(defaultConfig(), rate, reader, writer, rows, recorder, notifier)

	conv, err := svc.Convert(ctx, "42", "980")
	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeUpdated, conv.Outcome)
}
