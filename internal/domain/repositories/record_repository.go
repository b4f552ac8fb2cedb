package repositories

import (
	"context"

	"github.com/bimakw/btc-balance/internal/domain/entities"
)

// RecordRepository defines the interface for persisting balance records
type RecordRepository interface {
	// Save writes the record, replacing any previous one for the address,
	// and returns the location it was written to
	Save(ctx context.Context, record *entities.BalanceRecord) (string, error)
}
