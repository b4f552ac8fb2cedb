package repositories

import (
	"context"

	"github.com/bimakw/btc-balance/internal/domain/entities"
)

// ExplorerRepository defines the interface for block explorer lookups
type ExplorerRepository interface {
	// BaseURL returns the API base URL serving the given network
	BaseURL(network entities.Network) string

	// GetChainStats retrieves the confirmed totals of an address.
	// Failures are *entities.FetchError of kind network or response format.
	GetChainStats(ctx context.Context, network entities.Network, address string) (*entities.ChainStats, error)
}
