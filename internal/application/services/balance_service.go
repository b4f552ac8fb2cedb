package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/bimakw/btc-balance/internal/domain/entities"
	"github.com/bimakw/btc-balance/internal/domain/repositories"
)

// BalanceService provides business logic for address balance lookups
type BalanceService struct {
	explorer repositories.ExplorerRepository
	records  repositories.RecordRepository
	logger   *zap.Logger
}

// NewBalanceService creates a new balance service.
// records may be nil when results are not persisted.
func NewBalanceService(
	explorer repositories.ExplorerRepository,
	records repositories.RecordRepository,
	logger *zap.Logger,
) *BalanceService {
	return &BalanceService{
		explorer: explorer,
		records:  records,
		logger:   logger,
	}
}

// Route is the outcome of network classification
type Route struct {
	Network entities.Network
	BaseURL string
}

// SavedBalance is a record together with the file it was written to
type SavedBalance struct {
	Record *entities.BalanceRecord
	Path   string
}

// Classify returns the network of an address and the API base URL serving it
func (s *BalanceService) Classify(address string) Route {
	network := entities.ClassifyNetwork(address)
	return Route{
		Network: network,
		BaseURL: s.explorer.BaseURL(network),
	}
}

// GetBalance fetches the chain totals of an address and builds its record
func (s *BalanceService) GetBalance(ctx context.Context, address string) (*entities.BalanceRecord, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, entities.ErrEmptyAddress
	}

	route := s.Classify(address)

	s.logger.Debug("Fetching balance",
		zap.String("address", address),
		zap.String("network", string(route.Network)),
		zap.String("base_url", route.BaseURL),
	)

	stats, err := s.explorer.GetChainStats(ctx, route.Network, address)
	if err != nil {
		var fe *entities.FetchError
		if !errors.As(err, &fe) {
			return nil, entities.NewUnexpectedError(err)
		}
		return nil, err
	}

	return entities.NewBalanceRecord(address, route.Network, *stats), nil
}

// FetchAndSave fetches the balance of an address and persists the record.
// Nothing is written when the fetch fails.
func (s *BalanceService) FetchAndSave(ctx context.Context, address string) (*SavedBalance, error) {
	record, err := s.GetBalance(ctx, address)
	if err != nil {
		return nil, err
	}

	if s.records == nil {
		return &SavedBalance{Record: record}, nil
	}

	path, err := s.records.Save(ctx, record)
	if err != nil {
		s.logger.Error("Failed to save balance record",
			zap.String("address", record.Address),
			zap.Error(err),
		)
		var fe *entities.FetchError
		if !errors.As(err, &fe) {
			return nil, entities.NewStorageError(err)
		}
		return nil, err
	}

	s.logger.Info("Balance fetched",
		zap.String("address", record.Address),
		zap.String("network", string(record.Network)),
		zap.Int64("balance_satoshis", record.BalanceSatoshis),
		zap.String("path", path),
	)

	return &SavedBalance{Record: record, Path: path}, nil
}
