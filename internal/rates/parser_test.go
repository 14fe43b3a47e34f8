package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{
			name:     "tags_stripped",
			doc:      `<div class="rate"><span>5.10</span>&nbsp;RUB&nbsp;<span>5.25</span></div>`,
			expected: "5.10 RUB 5.25",
		},
		{
			name:     "script_and_style_dropped",
			doc:      `<style>.r{color:red}</style><script>var RUB=99.9;</script><b>RUB</b> 5.10 5.25`,
			expected: "RUB 5.10 5.25",
		},
		{
			name:     "whitespace_collapsed",
			doc:      "  RUB \n\t 5.10   5.25  ",
			expected: "RUB 5.10 5.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize(tt.doc))
		})
	}
}

func TestExtract(t *testing.T) {
	strategies := newStrategies("RUB")

	tests := []struct {
		name         string
		text         string
		expectedBuy  float64
		expectedSell float64
		labelled     bool
		found        bool
	}{
		{
			name:         "anchor_between_pair",
			text:         "USD 475 478 EUR 515 519 5.10 RUB 5.25",
			expectedBuy:  5.10,
			expectedSell: 5.25,
			found:        true,
		},
		{
			name:         "anchor_before_pair",
			text:         "RUB 5.10 5.25",
			expectedBuy:  5.10,
			expectedSell: 5.25,
			found:        true,
		},
		{
			name:         "anchor_before_pair_with_preceding_currency_row",
			text:         "USD 475.5 478.2 RUB 5.10 5.25",
			expectedBuy:  5.10,
			expectedSell: 5.25,
			found:        true,
		},
		{
			name:         "anchor_before_pair_with_in_band_neighbor",
			text:         "TRY 11.9 12.3 RUB 5.10 5.25",
			expectedBuy:  5.10,
			expectedSell: 5.25,
			found:        true,
		},
		{
			name:         "anchor_after_pair",
			text:         "5.10 5.25 RUB",
			expectedBuy:  5.10,
			expectedSell: 5.25,
			found:        true,
		},
		{
			name:         "comma_decimals",
			text:         "RUB 5,10 5,25",
			expectedBuy:  5.10,
			expectedSell: 5.25,
			found:        true,
		},
		{
			name:         "labelled_russian",
			text:         "RUB покупка 5.10 продажа 5.25",
			expectedBuy:  5.10,
			expectedSell: 5.25,
			labelled:     true,
			found:        true,
		},
		{
			name:         "labelled_sell_first",
			text:         "RUB продажа 5.25 покупка 5.10",
			expectedBuy:  5.10,
			expectedSell: 5.25,
			labelled:     true,
			found:        true,
		},
		{
			name:         "labelled_kazakh",
			text:         "RUB сатып алу 5.10 сату 5.25",
			expectedBuy:  5.10,
			expectedSell: 5.25,
			labelled:     true,
			found:        true,
		},
		{
			name:         "labelled_english",
			text:         "RUB buy: 5.10 sell: 5.25",
			expectedBuy:  5.10,
			expectedSell: 5.25,
			labelled:     true,
			found:        true,
		},
		{
			name:  "no_anchor",
			text:  "USD 475 478 EUR 515 519",
			found: false,
		},
		{
			name:  "anchor_without_numbers",
			text:  "RUB rates unavailable",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := extract(tt.text, strategies)
			assert.Equal(t, tt.found, ok)
			if !tt.found {
				return
			}
			assert.Equal(t, tt.labelled, p.labelled)
			assert.InDelta(t, tt.expectedBuy, p.buy, 1e-9)
			assert.InDelta(t, tt.expectedSell, p.sell, 1e-9)
		})
	}
}

func TestToNum(t *testing.T) {
	v, ok := toNum("5,25")
	assert.True(t, ok)
	assert.InDelta(t, 5.25, v, 1e-9)

	_, ok = toNum("not a number")
	assert.False(t, ok)
}
