// Package provider fetches instrument data from Yahoo Finance and maps it
// into the normalized quote shape.
package provider

import (
	"context"
	"fmt"
	"strings"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/equity"

	"tsxwatch/internal/quote"
)

// Fetcher looks up one instrument and returns its normalized quote.
type Fetcher interface {
	Fetch(ctx context.Context, symbol string) (*quote.Quote, error)
}

// Yahoo fetches quotes from Yahoo Finance. Symbols without the configured
// market suffix get it appended before the lookup; the suffixed form is a
// lookup detail only and never appears in a response.
type Yahoo struct {
	suffix          string
	defaultCurrency string
}

func NewYahoo(suffix string) *Yahoo {
	return &Yahoo{suffix: suffix, defaultCurrency: "CAD"}
}

// Normalize appends the market suffix when the symbol does not already
// carry it.
func (y *Yahoo) Normalize(symbol string) string {
	if strings.HasSuffix(symbol, y.suffix) {
		return symbol
	}
	return symbol + y.suffix
}

// Fetch queries Yahoo Finance for the suffixed symbol. Every lookup is a
// fresh provider call; there is no caching or retry so the adapter stays a
// single call per inbound request.
func (y *Yahoo) Fetch(ctx context.Context, symbol string) (*quote.Quote, error) {
	lookup := y.Normalize(symbol)

	eq, err := equity.Get(lookup)
	if err != nil {
		return nil, quote.NewError(quote.KindProvider, lookup, fmt.Errorf("fetch quote: %w", err))
	}
	if eq == nil {
		return nil, quote.NewError(quote.KindProvider, lookup, fmt.Errorf("no quote data returned"))
	}

	return y.normalize(eq), nil
}

// normalize maps the provider payload onto the fixed field set. Yahoo reports
// missing numeric fields as zero values, which become nil (unknown) here.
func (y *Yahoo) normalize(eq *finance.Equity) *quote.Quote {
	q := &quote.Quote{Currency: y.defaultCurrency}

	if eq.RegularMarketPrice != 0 {
		price := eq.RegularMarketPrice
		q.CurrentPrice = &price
	}
	if eq.RegularMarketVolume != 0 {
		volume := int64(eq.RegularMarketVolume)
		q.Volume = &volume
	}
	if eq.MarketCap != 0 {
		marketCap := eq.MarketCap
		q.MarketCap = &marketCap
	}
	if eq.FiftyDayAverage != 0 {
		avg := eq.FiftyDayAverage
		q.FiftyDayAverage = &avg
	}
	if eq.LongName != "" {
		name := eq.LongName
		q.Name = &name
	}
	if eq.CurrencyID != "" {
		q.Currency = eq.CurrencyID
	}

	return q
}
