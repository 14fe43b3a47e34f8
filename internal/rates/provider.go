package rates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/logger"
	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/models"
)

var (
	// ErrRateNotFound means no extraction strategy matched the rate document.
	ErrRateNotFound = errors.New("rate pair not found in document")
	// ErrRateImplausible means a pair was extracted but failed the sanity checks.
	ErrRateImplausible = errors.New("rate pair failed plausibility check")
)

// Config holds the knobs of the rate acquisition pipeline.
type Config struct {
	URL        string
	Anchor     string // currency token the strategies anchor on, e.g. "RUB"
	UserAgent  string
	Timeout    time.Duration
	Retries    int // extra fetch attempts on transport failure
	RetryDelay time.Duration
	SellMin    float64 // plausibility band for the sell rate
	SellMax    float64
}

// Provider fetches, parses, validates and caches the current sell rate.
type Provider struct {
	cfg        Config
	client     *http.Client
	cache      Cache
	strategies []strategy
	group      singleflight.Group
	now        func() time.Time
}

// NewProvider creates a provider over the given cache.
func NewProvider(cache Cache, cfg Config) *Provider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}
	return &Provider{
		cfg:        cfg,
		client:     &http.Client{Timeout: cfg.Timeout},
		cache:      cache,
		strategies: newStrategies(cfg.Anchor),
		now:        time.Now,
	}
}

// GetSellRate returns the cached sell rate when fresh and refreshes it from
// the source document otherwise. Concurrent cold-cache callers coalesce into
// a single upstream fetch.
func (p *Provider) GetSellRate(ctx context.Context) (float64, error) {
	if snap, err := p.cache.Get(ctx); err == nil && snap != nil {
		return snap.Sell, nil
	}

	v, err, _ := p.group.Do("sell", func() (any, error) {
		// A coalesced caller can arrive right after the winner stored a
		// fresh snapshot.
		if snap, err := p.cache.Get(ctx); err == nil && snap != nil {
			return snap.Sell, nil
		}
		snap, err := p.refresh(ctx)
		if err != nil {
			return float64(0), err
		}
		return snap.Sell, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// refresh performs one full fetch-parse-validate-store cycle. On failure the
// previously cached snapshot stays untouched.
func (p *Provider) refresh(ctx context.Context) (*models.RateSnapshot, error) {
	doc, err := p.fetch(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := p.parse(doc)
	if err != nil {
		logger.Log.Errorw("rate document rejected",
			"url", p.cfg.URL,
			"error", err,
		)
		return nil, err
	}

	if err := p.cache.Set(ctx, *snap); err != nil {
		logger.Log.Errorw("rate cache write failed", "error", err)
	}

	logger.Log.Infow("rate refreshed",
		"sell", snap.Sell,
		"buy", snap.Buy,
	)
	return snap, nil
}

// fetch retrieves the raw document, retrying transport failures a fixed
// number of times with a fixed delay. Parse and validation failures are never
// retried: a layout mismatch does not fix itself.
func (p *Provider) fetch(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= p.cfg.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(p.cfg.RetryDelay):
			}
		}
		doc, err := p.fetchOnce(ctx)
		if err == nil {
			return doc, nil
		}
		lastErr = err
		logger.Log.Warnw("rate source fetch failed",
			"url", p.cfg.URL,
			"attempt", attempt+1,
			"error", err,
		)
	}
	return "", lastErr
}

func (p *Provider) fetchOnce(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.URL, nil)
	if err != nil {
		return "", err
	}
	if p.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", p.cfg.UserAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("rate source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// parse runs normalization, the strategy cascade and the sanity checks.
func (p *Provider) parse(doc string) (*models.RateSnapshot, error) {
	text := normalize(doc)

	pr, ok := extract(text, p.strategies)
	if !ok {
		return nil, fmt.Errorf("%w: no %s pair", ErrRateNotFound, p.cfg.Anchor)
	}

	buy, sell := pr.buy, pr.sell
	if !pr.labelled && buy > sell {
		buy, sell = sell, buy
	}
	// Guards against the source changing layout and the cascade grabbing an
	// unrelated number, e.g. a percentage or a date fragment.
	if buy > sell || sell < p.cfg.SellMin || sell > p.cfg.SellMax {
		return nil, fmt.Errorf("%w: buy=%v sell=%v", ErrRateImplausible, buy, sell)
	}

	return &models.RateSnapshot{Sell: sell, Buy: buy, FetchedAt: p.now()}, nil
}
