package testutil

import (
	"github.com/bimakw/btc-balance/internal/domain/entities"
)

// Common test addresses
const (
	MainnetAddress = "1ExampleAddr"
	TestnetAddress = "tb1qexample"
	SatoshiAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
)

// Default explorer endpoints
const (
	MainnetBaseURL = "https://mempool.space/api"
	TestnetBaseURL = "https://mempool.space/testnet/api"
)

// ExampleAddressResponse is a trimmed GET /address/{address} body
const ExampleAddressResponse = `{"chain_stats": {"funded_txo_sum": 500000, "spent_txo_sum": 200000, "tx_count": 3}}`

// ExampleChainStats matches ExampleAddressResponse
func ExampleChainStats() entities.ChainStats {
	return entities.ChainStats{
		FundedTxoSum: 500000,
		SpentTxoSum:  200000,
		TxCount:      3,
	}
}

type recordParams struct {
	address string
	network entities.Network
	stats   entities.ChainStats
}

// RecordOption customizes CreateTestRecord
type RecordOption func(*recordParams)

// CreateTestRecord creates a record for MainnetAddress built from ExampleChainStats
func CreateTestRecord(opts ...RecordOption) *entities.BalanceRecord {
	p := recordParams{
		address: MainnetAddress,
		network: entities.NetworkMainnet,
		stats:   ExampleChainStats(),
	}

	for _, opt := range opts {
		opt(&p)
	}

	return entities.NewBalanceRecord(p.address, p.network, p.stats)
}

func WithAddress(address string) RecordOption {
	return func(p *recordParams) {
		p.address = address
		p.network = entities.ClassifyNetwork(address)
	}
}

func WithBalance(funded, spent, txCount int64) RecordOption {
	return func(p *recordParams) {
		p.stats = entities.ChainStats{
			FundedTxoSum: funded,
			SpentTxoSum:  spent,
			TxCount:      txCount,
		}
	}
}
