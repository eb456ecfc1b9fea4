// Package client is the HTTP client for the quote service.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"

	"tsxwatch/internal/quote"
)

// Client talks to the quote service. One Client is opened per watch or
// analyze invocation and must be closed when the invocation ends, on every
// exit path.
type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New()
	c.SetBaseURL(baseURL)
	c.SetTimeout(timeout)

	return &Client{http: c}
}

// Close releases the underlying connection pool.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

type errorBody struct {
	Detail string `json:"detail"`
}

// GetQuote requests one symbol's quote from the service.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*quote.Response, error) {
	if symbol == "" {
		return nil, quote.NewError(quote.KindValidation, symbol, fmt.Errorf("symbol must not be empty"))
	}

	var out quote.Response
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(quote.Request{Symbol: symbol}).
		SetResult(&out).
		SetError(&errorBody{}).
		Post("/stock")
	if err != nil {
		return nil, quote.NewError(quote.KindTransport, symbol, err)
	}
	if resp.IsError() {
		detail := resp.Status()
		if body, ok := resp.Error().(*errorBody); ok && body.Detail != "" {
			detail = body.Detail
		}
		kind := quote.KindProvider
		if resp.StatusCode() == http.StatusBadRequest {
			kind = quote.KindValidation
		}
		return nil, quote.NewError(kind, symbol, fmt.Errorf("service returned %d: %s", resp.StatusCode(), detail))
	}

	return &out, nil
}

// GetQuotes fans out one request per symbol and joins all of them before
// returning. Results keep the order symbols were given in, regardless of
// which request finishes first. Any failure fails the whole batch.
func (c *Client) GetQuotes(ctx context.Context, symbols []string) ([]quote.Response, error) {
	results := make([]quote.Response, len(symbols))

	g, ctx := errgroup.WithContext(ctx)
	for i, symbol := range symbols {
		i, symbol := i, symbol
		g.Go(func() error {
			resp, err := c.GetQuote(ctx, symbol)
			if err != nil {
				return err
			}
			results[i] = *resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
