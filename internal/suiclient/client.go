// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sui-pocket Authors

// Package suiclient talks JSON-RPC to a Sui fullnode. The wallet core
// consumes it only through the balance.Fetcher interface; everything
// here is replaceable transport detail.
package suiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/zeweler/sui-pocket/internal/logger"
	"github.com/zeweler/sui-pocket/models"
)

// ErrTransport wraps any network or protocol failure of a fullnode
// call. Callers retry only on explicit user action, never automatically.
var ErrTransport = errors.New("fullnode request failed")

// Config tunes the fullnode client.
type Config struct {
	// Timeout bounds a single RPC round trip.
	Timeout time.Duration
}

// Client is a minimal Sui fullnode JSON-RPC client.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// NewClient constructs a Client. A timeout of zero or less defaults to
// 15 seconds. The endpoint is passed per call, not fixed at
// construction, because the user can switch networks at runtime.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: cli, log: log}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type balancesResponse struct {
	Result []models.CoinBalance `json:"result"`
	Error  *rpcError            `json:"error"`
}

// FetchBalances implements balance.Fetcher. It calls
// suix_getAllBalances for address against endpoint and returns the full
// (coin type, amount) set. All failure modes — transport, HTTP status,
// JSON-RPC error object, malformed body — surface as ErrTransport with
// the cause preserved.
func (c *Client) FetchBalances(ctx context.Context, address, endpoint string) ([]models.CoinBalance, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(rpcRequest{
			JSONRPC: "2.0",
			ID:      1,
			Method:  "suix_getAllBalances",
			Params:  []any{address},
		}).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode())
	}

	var parsed balancesResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrTransport, err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("%w: rpc error %d: %s", ErrTransport, parsed.Error.Code, parsed.Error.Message)
	}

	c.log.Debug().
		Str("endpoint", endpoint).
		Int("coin_types", len(parsed.Result)).
		Msg("balances fetched")

	return parsed.Result, nil
}
