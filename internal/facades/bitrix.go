package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/logger"
	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/models"
)

// BitrixFacade talks to a pre-authorized Bitrix24 inbound webhook endpoint.
// Every REST method is a single POST with a JSON body and a common result
// envelope.
type BitrixFacade struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewBitrixFacade creates a facade for the given webhook base URL, e.g.
// "https://example.bitrix24.kz/rest/1/token/".
func NewBitrixFacade(baseURL, userAgent string, timeout time.Duration) *BitrixFacade {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &BitrixFacade{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// envelope is the common Bitrix REST response wrapper. A 200 response can
// still carry an application-level error.
type envelope struct {
	Result           json.RawMessage `json:"result"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
}

func (f *BitrixFacade) call(ctx context.Context, method string, payload any, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+method, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("bitrix %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("bitrix %s: status %d", method, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("bitrix %s: decode response: %w", method, err)
	}
	if env.Error != "" {
		return fmt.Errorf("bitrix %s: %s (%s)", method, env.Error, env.ErrorDescription)
	}
	if result != nil && len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, result); err != nil {
			return fmt.Errorf("bitrix %s: decode result: %w", method, err)
		}
	}

	logger.Log.Infow("bitrix call",
		"method", method,
		"error", nil,
	)
	return nil
}

// GetDeal fetches a deal by id via crm.deal.get.
func (f *BitrixFacade) GetDeal(ctx context.Context, id string) (models.Deal, error) {
	var deal models.Deal
	if err := f.call(ctx, "crm.deal.get", map[string]any{"id": id}, &deal); err != nil {
		return nil, err
	}
	return deal, nil
}

// UpdateDeal writes the given fields onto a deal via crm.deal.update.
func (f *BitrixFacade) UpdateDeal(ctx context.Context, id string, fields map[string]any) error {
	payload := map[string]any{
		"id":     id,
		"fields": fields,
	}
	return f.call(ctx, "crm.deal.update", payload, nil)
}

// GetProductRows reads the full product row collection of a deal.
func (f *BitrixFacade) GetProductRows(ctx context.Context, dealID string) ([]models.ProductRow, error) {
	var rows []models.ProductRow
	if err := f.call(ctx, "crm.deal.productrows.get", map[string]any{"id": dealID}, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// SetProductRows replaces the full product row collection of a deal.
func (f *BitrixFacade) SetProductRows(ctx context.Context, dealID string, rows []models.ProductRow) error {
	payload := map[string]any{
		"id":   dealID,
		"rows": rows,
	}
	return f.call(ctx, "crm.deal.productrows.set", payload, nil)
}
