package services

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrAmountEmpty signals the ruble field was missing or unparsable on both
// resolution paths. Soft failure: the webhook is acknowledged, nothing is
// retried.
var ErrAmountEmpty = errors.New("ruble amount is empty or invalid")

var (
	nonAmountRe = regexp.MustCompile(`[^0-9.,]`)
	amountRe    = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseAmount parses a human-entered money string. Spaces act as thousands
// separators and a comma is the decimal separator when no dot is present,
// so "1 250,50" and "1,250.50" both yield 1250.50. Trailing punctuation left
// over from currency labels is ignored.
func ParseAmount(raw string) (float64, error) {
	cleaned := nonAmountRe.ReplaceAllString(raw, "")
	cleaned = strings.Trim(cleaned, ".,")
	if !strings.Contains(cleaned, ".") {
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	num := amountRe.FindString(cleaned)
	if num == "" {
		return 0, ErrAmountEmpty
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrAmountEmpty
	}
	return v, nil
}

// roundHalfUp rounds to the nearest whole currency unit. Amounts are
// non-negative, so floor(v+0.5) is exact half-up.
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
