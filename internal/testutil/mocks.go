package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/bimakw/btc-balance/internal/domain/entities"
	"github.com/bimakw/btc-balance/internal/domain/repositories"
)

var (
	_ repositories.ExplorerRepository = (*MockExplorerRepository)(nil)
	_ repositories.RecordRepository   = (*MockRecordRepository)(nil)
)

type MockCall struct {
	Method string
	Args   []interface{}
}

// MockExplorerRepository is a mock implementation of ExplorerRepository
type MockExplorerRepository struct {
	mu    sync.RWMutex
	stats map[string]entities.ChainStats

	// Function hooks for custom behavior
	GetChainStatsFunc func(ctx context.Context, network entities.Network, address string) (*entities.ChainStats, error)

	// Call tracking
	Calls []MockCall
}

func NewMockExplorerRepository() *MockExplorerRepository {
	return &MockExplorerRepository{
		stats: make(map[string]entities.ChainStats),
		Calls: make([]MockCall, 0),
	}
}

// BaseURL mirrors the default mempool.space endpoints
func (m *MockExplorerRepository) BaseURL(network entities.Network) string {
	if network == entities.NetworkTestnet {
		return TestnetBaseURL
	}
	return MainnetBaseURL
}

func (m *MockExplorerRepository) GetChainStats(ctx context.Context, network entities.Network, address string) (*entities.ChainStats, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "GetChainStats", Args: []interface{}{network, address}})
	m.mu.Unlock()

	if m.GetChainStatsFunc != nil {
		return m.GetChainStatsFunc(ctx, network, address)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	stats, ok := m.stats[address]
	if !ok {
		return nil, entities.NewNetworkError(errors.New("http 400: invalid Bitcoin address"))
	}
	return &stats, nil
}

// SetChainStats registers the totals returned for an address
func (m *MockExplorerRepository) SetChainStats(address string, stats entities.ChainStats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats[address] = stats
}

// CallCount returns the number of recorded calls
func (m *MockExplorerRepository) CallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Calls)
}

// MockRecordRepository is an in-memory implementation of RecordRepository
type MockRecordRepository struct {
	mu      sync.RWMutex
	records map[string]entities.BalanceRecord

	SaveFunc func(ctx context.Context, record *entities.BalanceRecord) (string, error)

	Calls []MockCall
}

func NewMockRecordRepository() *MockRecordRepository {
	return &MockRecordRepository{
		records: make(map[string]entities.BalanceRecord),
		Calls:   make([]MockCall, 0),
	}
}

func (m *MockRecordRepository) Save(ctx context.Context, record *entities.BalanceRecord) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "Save", Args: []interface{}{record}})
	m.mu.Unlock()

	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.Address] = *record
	return "bitcoin_balance_" + record.Address + ".json", nil
}

// Get returns the saved record for an address
func (m *MockRecordRepository) Get(address string) (entities.BalanceRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.records[address]
	return r, ok
}

// Count returns the number of saved records
func (m *MockRecordRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// MockHealthChecker is a mock implementation of HealthChecker
type MockHealthChecker struct {
	mu sync.RWMutex

	Healthy bool
	Error   error
	Calls   []MockCall
}

func NewMockHealthChecker(healthy bool) *MockHealthChecker {
	var err error
	if !healthy {
		err = errors.New("health check failed")
	}
	return &MockHealthChecker{
		Healthy: healthy,
		Error:   err,
		Calls:   make([]MockCall, 0),
	}
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "HealthCheck", Args: nil})
	m.mu.Unlock()

	return m.Error
}

func (m *MockHealthChecker) SetHealthy(healthy bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Healthy = healthy
	if healthy {
		m.Error = nil
	} else {
		m.Error = errors.New("health check failed")
	}
}
