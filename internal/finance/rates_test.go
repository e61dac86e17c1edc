package finance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
)

func TestRateProviderFetchAndCache(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.URL.Path != "/INR" {
			t.Errorf("rate request path = %q, want /INR", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"INR","rates":{"USD":0.012,"EUR":0.011}}`))
	}))
	defer srv.Close()

	p := NewRateProvider(srv.URL, zap.NewNop())
	ctx := context.Background()

	rate, err := p.Rate(ctx, "usd")
	if err != nil {
		t.Fatalf("Rate(usd) error: %v", err)
	}
	if rate != 0.012 {
		t.Errorf("Rate(usd) = %v, want 0.012", rate)
	}

	// Second lookup is served from cache.
	if _, err := p.Rate(ctx, "EUR"); err != nil {
		t.Fatalf("Rate(EUR) error: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("rate API called %d times, want 1 (cached)", got)
	}

	if _, err := p.Rate(ctx, "XXX"); err == nil {
		t.Error("unknown currency should error")
	}
}

func TestRateProviderINRIsIdentity(t *testing.T) {
	// INR never touches the network.
	p := NewRateProvider("http://127.0.0.1:0", zap.NewNop())
	rate, err := p.Rate(context.Background(), "INR")
	if err != nil {
		t.Fatalf("Rate(INR) error: %v", err)
	}
	if rate != 1 {
		t.Errorf("Rate(INR) = %v, want 1", rate)
	}
}

func TestRateProviderUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewRateProvider(srv.URL, zap.NewNop())
	if _, err := p.Rate(context.Background(), "USD"); err == nil {
		t.Error("expected error on upstream failure")
	}
}
