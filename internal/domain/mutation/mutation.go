// Package mutation models the upstream gateway's transaction-mutation feed.
package mutation

import (
	"context"
	"errors"
	"time"
)

var ErrUpstreamUnavailable = errors.New("mutation gateway unavailable")

// Entry is a single settled incoming payment as reported by the gateway.
type Entry struct {
	Date   time.Time
	Brand  string
	Amount int64
}

// Client fetches the recent mutation entries for a merchant. An empty slice
// with a nil error means the merchant has no transactions yet.
type Client interface {
	Mutations(ctx context.Context, merchantID, apiKey string) ([]Entry, error)
}
