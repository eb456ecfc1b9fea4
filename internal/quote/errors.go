package quote

import "fmt"

// ErrorKind classifies quote lookup failures so callers can tell retryable
// transport problems apart from provider and validation failures.
type ErrorKind int

const (
	// KindValidation covers bad input, e.g. an empty symbol.
	KindValidation ErrorKind = iota
	// KindProvider covers upstream failures: unknown symbol, provider
	// unreachable from the service, malformed provider payload.
	KindProvider
	// KindTransport covers client-side failures reaching the service:
	// connection refused, timeout, malformed response body.
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindProvider:
		return "provider"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is a quote lookup failure carrying the attempted symbol and its kind.
type Error struct {
	Kind   ErrorKind
	Symbol string
	Err    error
}

func NewError(kind ErrorKind, symbol string, err error) *Error {
	return &Error{Kind: kind, Symbol: symbol, Err: err}
}

func (e *Error) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error for %s: %v", e.Kind, e.Symbol, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
