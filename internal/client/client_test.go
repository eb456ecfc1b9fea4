package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tsxwatch/internal/quote"
)

func quoteHandler(prices map[string]float64, delays map[string]time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/stock" {
			http.NotFound(w, r)
			return
		}

		var req quote.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if d, ok := delays[req.Symbol]; ok {
			time.Sleep(d)
		}

		price, ok := prices[req.Symbol]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"detail": "error fetching stock data: provider error for " + req.Symbol + ".TO: no quote data returned",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(quote.Response{
			Symbol: req.Symbol,
			Data:   quote.Quote{CurrentPrice: &price, Currency: "CAD"},
		})
	}
}

func TestGetQuote(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(quoteHandler(map[string]float64{"SHOP": 110.25}, nil))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	defer c.Close()

	resp, err := c.GetQuote(context.Background(), "SHOP")
	require.NoError(t, err)
	require.Equal(t, "SHOP", resp.Symbol)
	require.NotNil(t, resp.Data.CurrentPrice)
	require.Equal(t, 110.25, *resp.Data.CurrentPrice)
}

func TestGetQuoteServiceErrorIsProviderKind(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(quoteHandler(nil, nil))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	defer c.Close()

	_, err := c.GetQuote(context.Background(), "SHOP")
	require.Error(t, err)

	var qerr *quote.Error
	require.True(t, errors.As(err, &qerr))
	require.Equal(t, quote.KindProvider, qerr.Kind)
	require.Equal(t, "SHOP", qerr.Symbol)
	require.Contains(t, qerr.Error(), "SHOP.TO")
}

func TestGetQuoteEmptySymbolIsValidationKind(t *testing.T) {
	t.Parallel()

	c := New("http://localhost:0", time.Second)
	defer c.Close()

	_, err := c.GetQuote(context.Background(), "")
	require.Error(t, err)

	var qerr *quote.Error
	require.True(t, errors.As(err, &qerr))
	require.Equal(t, quote.KindValidation, qerr.Kind)
}

func TestGetQuoteUnreachableServiceIsTransportKind(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(quoteHandler(nil, nil))
	srv.Close() // connection refused from here on

	c := New(srv.URL, time.Second)
	defer c.Close()

	_, err := c.GetQuote(context.Background(), "SHOP")
	require.Error(t, err)

	var qerr *quote.Error
	require.True(t, errors.As(err, &qerr))
	require.Equal(t, quote.KindTransport, qerr.Kind)
}

func TestGetQuotesPreservesRequestOrder(t *testing.T) {
	t.Parallel()

	// The first symbol answers last; the joined batch must still follow
	// the request order, not the completion order.
	prices := map[string]float64{"A": 1, "B": 2, "C": 3}
	delays := map[string]time.Duration{
		"A": 60 * time.Millisecond,
		"B": 30 * time.Millisecond,
		"C": 0,
	}

	srv := httptest.NewServer(quoteHandler(prices, delays))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	defer c.Close()

	results, err := c.GetQuotes(context.Background(), []string{"A", "B", "C"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, want := range []string{"A", "B", "C"} {
		require.Equal(t, want, results[i].Symbol)
		require.Equal(t, prices[want], *results[i].Data.CurrentPrice)
	}
}

func TestGetQuotesFailsWholeBatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(quoteHandler(map[string]float64{"A": 1}, nil))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	defer c.Close()

	_, err := c.GetQuotes(context.Background(), []string{"A", "MISSING"})
	require.Error(t, err)

	var qerr *quote.Error
	require.True(t, errors.As(err, &qerr))
	require.Equal(t, "MISSING", qerr.Symbol)
}
