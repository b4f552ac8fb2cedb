/*
 * Copyright (c) 2024 Bima Kharisma Wicaksana
 * GitHub: https://github.com/bimakw
 *
 * Licensed under MIT License with Attribution Requirement.
 * See LICENSE file for details.
 */

package mempool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bimakw/btc-balance/internal/config"
	"github.com/bimakw/btc-balance/internal/domain/entities"
	"github.com/bimakw/btc-balance/internal/domain/repositories"
)

// Ensure Client implements ExplorerRepository
var _ repositories.ExplorerRepository = (*Client)(nil)

// maxBodySize caps the address response read from the explorer
const maxBodySize = 1 << 20

// Required response keys
const (
	keyChainStats   = "chain_stats"
	keyFundedTxoSum = "chain_stats.funded_txo_sum"
	keySpentTxoSum  = "chain_stats.spent_txo_sum"
	keyTxCount      = "chain_stats.tx_count"
)

// Client talks to an Esplora compatible explorer API such as mempool.space
type Client struct {
	httpClient *http.Client
	endpoints  map[entities.Network]string
	userAgent  string
	logger     *zap.Logger
}

// addressResponse mirrors GET /address/{address}. Pointers distinguish
// absent keys from zero values.
type addressResponse struct {
	ChainStats *struct {
		FundedTxoSum *int64 `json:"funded_txo_sum"`
		SpentTxoSum  *int64 `json:"spent_txo_sum"`
		TxCount      *int64 `json:"tx_count"`
	} `json:"chain_stats"`
}

// NewClient creates a new explorer client
func NewClient(cfg config.ExplorerConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		endpoints: map[entities.Network]string{
			entities.NetworkMainnet: strings.TrimRight(cfg.MainnetURL, "/"),
			entities.NetworkTestnet: strings.TrimRight(cfg.TestnetURL, "/"),
		},
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// BaseURL returns the API base URL for a network
func (c *Client) BaseURL(network entities.Network) string {
	return c.endpoints[network]
}

// GetChainStats fetches the confirmed totals of an address
func (c *Client) GetChainStats(ctx context.Context, network entities.Network, address string) (*entities.ChainStats, error) {
	start := time.Now()
	endpoint := fmt.Sprintf("%s/address/%s", c.BaseURL(network), url.PathEscape(address))

	stats, err := c.getChainStats(ctx, endpoint)

	status := "ok"
	if err != nil {
		status = entities.KindOf(err).String()
	}
	explorerRequestsTotal.WithLabelValues(string(network), status).Inc()
	explorerRequestDuration.WithLabelValues(string(network)).Observe(time.Since(start).Seconds())

	if err != nil {
		c.logger.Warn("Explorer lookup failed",
			zap.String("network", string(network)),
			zap.String("address", address),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug("Explorer lookup succeeded",
		zap.String("network", string(network)),
		zap.String("address", address),
		zap.Int64("tx_count", stats.TxCount),
		zap.Duration("duration", time.Since(start)),
	)
	return stats, nil
}

func (c *Client) getChainStats(ctx context.Context, endpoint string) (*entities.ChainStats, error) {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return parseChainStats(body)
}

// HealthCheck checks that the mainnet explorer answers a tip height query
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.checkTip(ctx, entities.NetworkMainnet)
}

// NetworkHealth checks the explorer of a single network
type NetworkHealth struct {
	client  *Client
	network entities.Network
}

// NetworkHealth returns a health checker bound to one network
func (c *Client) NetworkHealth(network entities.Network) *NetworkHealth {
	return &NetworkHealth{client: c, network: network}
}

func (h *NetworkHealth) HealthCheck(ctx context.Context) error {
	return h.client.checkTip(ctx, h.network)
}

func (c *Client) checkTip(ctx context.Context, network entities.Network) error {
	_, err := c.get(ctx, c.BaseURL(network)+"/blocks/tip/height")
	return err
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, entities.NewUnexpectedError(fmt.Errorf("failed to build request: %w", err))
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, entities.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, entities.NewNetworkError(fmt.Errorf("%s %s: http %d", req.Method, endpoint, resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, entities.NewNetworkError(fmt.Errorf("failed to read response body: %w", err))
	}
	return body, nil
}

func parseChainStats(body []byte) (*entities.ChainStats, error) {
	var ar addressResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, entities.NewResponseFormatError(typeErr.Field, err)
		}
		return nil, entities.NewResponseFormatError(keyChainStats, err)
	}

	if ar.ChainStats == nil {
		return nil, entities.NewResponseFormatError(keyChainStats, nil)
	}
	if ar.ChainStats.FundedTxoSum == nil {
		return nil, entities.NewResponseFormatError(keyFundedTxoSum, nil)
	}
	if ar.ChainStats.SpentTxoSum == nil {
		return nil, entities.NewResponseFormatError(keySpentTxoSum, nil)
	}
	if ar.ChainStats.TxCount == nil {
		return nil, entities.NewResponseFormatError(keyTxCount, nil)
	}

	return &entities.ChainStats{
		FundedTxoSum: *ar.ChainStats.FundedTxoSum,
		SpentTxoSum:  *ar.ChainStats.SpentTxoSum,
		TxCount:      *ar.ChainStats.TxCount,
	}, nil
}
