package finance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// RateProvider fetches INR-base exchange rates from the external rate API
// and caches them. Rates refresh lazily once the cache entry ages out;
// conversion is a straight linear multiplication against the INR base.
type RateProvider struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger

	mu        sync.Mutex
	rates     map[string]float64
	fetchedAt time.Time
}

const ratesMaxAge = time.Hour

func NewRateProvider(baseURL string, log *zap.Logger) *RateProvider {
	return &RateProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// Rate returns the INR->currency rate. Currency codes are upper-case ISO
// 4217; "INR" is always 1.
func (p *RateProvider) Rate(ctx context.Context, currency string) (float64, error) {
	currency = strings.ToUpper(currency)
	if currency == "INR" {
		return 1, nil
	}

	rates, err := p.current(ctx)
	if err != nil {
		return 0, err
	}
	rate, ok := rates[currency]
	if !ok {
		return 0, fmt.Errorf("unknown currency %q", currency)
	}
	return rate, nil
}

func (p *RateProvider) current(ctx context.Context) (map[string]float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rates != nil && time.Since(p.fetchedAt) < ratesMaxAge {
		return p.rates, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/INR", nil)
	if err != nil {
		return nil, fmt.Errorf("build rate request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch exchange rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode exchange rates: %w", err)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("exchange rate API returned no rates")
	}

	p.rates = payload.Rates
	p.fetchedAt = time.Now()
	p.log.Info("exchange rates refreshed", zap.Int("currencies", len(payload.Rates)))
	return p.rates, nil
}
