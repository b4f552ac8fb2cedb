package entities

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

// Network identifies the Bitcoin network an address belongs to
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

// testnetPrefixes mark an address as testnet. This is a prefix heuristic,
// not address validation: checksum, length and encoding are not checked.
var testnetPrefixes = []string{"tb1", "2", "n", "m"}

// ClassifyNetwork returns the network an address belongs to by its prefix
func ClassifyNetwork(address string) Network {
	for _, prefix := range testnetPrefixes {
		if strings.HasPrefix(address, prefix) {
			return NetworkTestnet
		}
	}
	return NetworkMainnet
}

// ChainStats holds the confirmed on-chain totals reported by the explorer
type ChainStats struct {
	FundedTxoSum int64
	SpentTxoSum  int64
	TxCount      int64
}

// BalanceRecord is the balance snapshot of a single address.
// Field order is the key order of the persisted JSON file.
type BalanceRecord struct {
	Address          string  `json:"address"`
	Network          Network `json:"network"`
	BalanceSatoshis  int64   `json:"balance_satoshis"`
	BalanceBTC       float64 `json:"balance_btc"`
	TotalReceived    int64   `json:"total_received"`
	TotalSent        int64   `json:"total_sent"`
	TransactionCount int64   `json:"transaction_count"`
}

// NewBalanceRecord builds a record from the explorer totals.
// A negative balance is only possible with inconsistent upstream data and is kept as is.
func NewBalanceRecord(address string, network Network, stats ChainStats) *BalanceRecord {
	sats := stats.FundedTxoSum - stats.SpentTxoSum

	return &BalanceRecord{
		Address:          address,
		Network:          network,
		BalanceSatoshis:  sats,
		BalanceBTC:       btcutil.Amount(sats).ToBTC(),
		TotalReceived:    stats.FundedTxoSum,
		TotalSent:        stats.SpentTxoSum,
		TransactionCount: stats.TxCount,
	}
}
