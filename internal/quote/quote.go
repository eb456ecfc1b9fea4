// Package quote defines the normalized quote model shared by the service and
// the client, together with the error taxonomy for quote lookups.
package quote

// Quote is the fixed, provider-agnostic field set returned for an instrument.
// Every field except Currency is optional: the provider may omit any of them,
// and a nil pointer means "unknown" (rendered as N/A downstream). Currency
// defaults to CAD when the provider does not report one.
type Quote struct {
	CurrentPrice    *float64 `json:"current_price"`
	Volume          *int64   `json:"volume"`
	MarketCap       *int64   `json:"market_cap"`
	FiftyDayAverage *float64 `json:"fifty_day_average"`
	Name            *string  `json:"name"`
	Currency        string   `json:"currency"`
}

// Request is the body of POST /stock. Symbol is the caller's input, before
// any market-suffix normalization.
type Request struct {
	Symbol string `json:"symbol"`
}

// Response pairs the originally requested symbol with its normalized quote.
// Symbol is always the caller's input, never the suffixed lookup form.
type Response struct {
	Symbol string `json:"symbol"`
	Data   Quote  `json:"data"`
}
