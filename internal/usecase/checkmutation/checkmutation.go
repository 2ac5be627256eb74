package checkmutation

import (
	"context"
	"fmt"
	"time"

	"github.com/AllxdDev-Hosting/Rest-Api/internal/domain/mutation"
)

// Response carries the most recent mutation entry. Found is false when the
// merchant has no transactions yet, which is a normal outcome, not an error.
type Response struct {
	Found  bool
	Date   time.Time
	Brand  string
	Amount int64
}

type UseCase struct {
	client     mutation.Client
	merchantID string
	apiKey     string
}

func NewUseCase(client mutation.Client, merchantID, apiKey string) *UseCase {
	return &UseCase{
		client:     client,
		merchantID: merchantID,
		apiKey:     apiKey,
	}
}

func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	entries, err := uc.client.Mutations(ctx, uc.merchantID, uc.apiKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mutation.ErrUpstreamUnavailable, err)
	}
	if len(entries) == 0 {
		return &Response{Found: false}, nil
	}

	// The gateway usually reports newest-first, but that ordering is not
	// contractual; pick by timestamp.
	latest := entries[0]
	for _, e := range entries[1:] {
		if e.Date.After(latest.Date) {
			latest = e
		}
	}

	return &Response{
		Found:  true,
		Date:   latest.Date,
		Brand:  latest.Brand,
		Amount: latest.Amount,
	}, nil
}
