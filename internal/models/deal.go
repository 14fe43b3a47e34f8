package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Bitrix deal fields touched by the conversion pipeline.
const (
	DealFieldID          = "ID"
	DealFieldOpportunity = "OPPORTUNITY"
	DealFieldCurrencyID  = "CURRENCY_ID"
)

// Deal is a raw Bitrix24 deal as returned by crm.deal.get. Field codes and
// value types are owned by the portal, so the deal stays an untyped map with
// typed accessors.
type Deal map[string]any

// StringField returns a deal field as a string, tolerating the numeric and
// json.Number representations Bitrix mixes freely. Absent fields yield "".
func (d Deal) StringField(code string) string {
	switch v := d[code].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

// Bitrix product row fields rewritten by the row sync.
const (
	RowFieldPrice          = "PRICE"
	RowFieldPriceExclusive = "PRICE_EXCLUSIVE"
	RowFieldPriceNetto     = "PRICE_NETTO"
	RowFieldPriceBrutto    = "PRICE_BRUTTO"
	RowFieldCurrencyID     = "CURRENCY_ID"
)

// ProductRow is a raw Bitrix24 deal product row. The REST API has no partial
// row update: rows are read, rewritten and replaced as a whole collection.
type ProductRow map[string]any
