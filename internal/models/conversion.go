package models

import "time"

// Outcome classifies how a webhook-triggered conversion ended.
type Outcome string

const (
	// OutcomeUpdated means the deal (and rows, when sync is enabled) was written.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSkipped means the stored amount and currency already matched.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeRejected means the source amount was missing or unparsable.
	OutcomeRejected Outcome = "rejected"
	// OutcomePartial means the deal was written but the product row sync failed.
	OutcomePartial Outcome = "partial"
	// OutcomeFailed means a rate or CRM failure stopped the pipeline.
	OutcomeFailed Outcome = "failed"
)

// Conversion is the terminal state of one handled webhook event.
type Conversion struct {
	DealID       string
	Outcome      Outcome
	Message      string
	SourceAmount float64
	Rate         float64
	TargetAmount int64
}

// ConversionDB mirrors one row of the conversions audit table.
type ConversionDB struct {
	ID           string    `db:"conversion_id"`
	DealID       string    `db:"deal_id"`
	Outcome      string    `db:"outcome"`
	Message      string    `db:"message"`
	SourceAmount float64   `db:"source_amount"`
	Rate         float64   `db:"rate"`
	TargetAmount int64     `db:"target_amount"`
	CreatedAt    time.Time `db:"created_at"`
}

// ConversionEvent is the message published per handled webhook.
type ConversionEvent struct {
	DealID       string    `json:"deal_id"`
	Outcome      string    `json:"outcome"`
	SourceAmount float64   `json:"source_amount"`
	Rate         float64   `json:"rate"`
	TargetAmount int64     `json:"target_amount"`
	OccurredAt   time.Time `json:"occurred_at"`
}
