// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

// Package balance drives the background balance lookup: at most one
// request in flight per wallet, results delivered through a single-slot
// channel to a non-blocking poll point, exactly once.
package balance

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/zeweler/sui-pocket/internal/logger"
	"github.com/zeweler/sui-pocket/models"
)

// Fetcher is the external network collaborator: given an address and a
// fullnode endpoint it returns the full balance set or a transport
// error. Implementations run on a background goroutine and must honor
// ctx cancellation.
type Fetcher interface {
	FetchBalances(ctx context.Context, address, endpoint string) ([]models.CoinBalance, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, address, endpoint string) ([]models.CoinBalance, error)

func (f FetcherFunc) FetchBalances(ctx context.Context, address, endpoint string) ([]models.CoinBalance, error) {
	return f(ctx, address, endpoint)
}

// Result is the outcome of one refresh request. Address tags the result
// with the wallet it was requested for, so a consumer can discard
// results that became stale after a logout or re-import. Exactly one of
// Text and Err is meaningful.
type Result struct {
	ID      uuid.UUID
	Address string
	Text    string
	Err     error
}

// Refresher owns the Idle/Pending refresh state machine. One
// synchronous consumer calls Poll once per presentation tick; requests
// issued while a lookup is pending are coalesced into it.
type Refresher struct {
	fetcher Fetcher
	log     *logger.Logger

	mu      sync.Mutex
	pending bool

	// results holds at most one undelivered outcome. Capacity one plus
	// the single-flight guard makes the send in the worker goroutine
	// non-blocking by construction.
	results chan Result
}

// NewRefresher creates an idle Refresher over the given fetcher.
func NewRefresher(fetcher Fetcher, log *logger.Logger) *Refresher {
	return &Refresher{
		fetcher: fetcher,
		log:     log,
		results: make(chan Result, 1),
	}
}

// Request transitions Idle → Pending and dispatches the lookup on a
// background goroutine. While a lookup is pending further requests are
// coalesced: the call returns false and nothing is dispatched. The
// consumer loop is never blocked by this call.
func (r *Refresher) Request(ctx context.Context, address, endpoint string) bool {
	r.mu.Lock()
	if r.pending {
		r.mu.Unlock()
		return false
	}
	r.pending = true
	r.mu.Unlock()

	id := uuid.New()
	r.log.Debug().
		Str("request_id", id.String()).
		Str("address", models.TruncateAddress(address, 6, 4)).
		Msg("balance refresh dispatched")

	go func() {
		balances, err := r.fetcher.FetchBalances(ctx, address, endpoint)

		result := Result{ID: id, Address: address}
		if err != nil {
			result.Err = err
		} else {
			result.Text = models.FormatMist(models.SuiBalance(balances))
		}

		// Single slot, single flight: this send never blocks.
		r.results <- result
	}()

	return true
}

// Poll is the non-blocking consumer entry point, called once per UI
// tick. It returns nil while nothing has arrived; otherwise it
// transitions back to Idle and hands over the result exactly once.
func (r *Refresher) Poll() *Result {
	select {
	case result := <-r.results:
		r.mu.Lock()
		r.pending = false
		r.mu.Unlock()

		if result.Err != nil {
			r.log.Warn().Err(result.Err).Str("request_id", result.ID.String()).Msg("balance refresh failed")
		}
		return &result
	default:
		return nil
	}
}

// Pending reports whether a lookup is currently in flight.
func (r *Refresher) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}
