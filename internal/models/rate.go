package models

import "time"

// RateSnapshot is a single parsed observation of the rate source document.
// A refresh produces a new snapshot; an existing one is never mutated in place.
type RateSnapshot struct {
	Sell      float64   `json:"sell"`
	Buy       float64   `json:"buy"`
	FetchedAt time.Time `json:"fetched_at"`
}
