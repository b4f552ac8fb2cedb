package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/bimakw/btc-balance/internal/config"
	"github.com/bimakw/btc-balance/internal/domain/entities"
	"github.com/bimakw/btc-balance/internal/domain/repositories"
)

// Ensure FileStore implements RecordRepository
var _ repositories.RecordRepository = (*FileStore)(nil)

// FileStore writes balance records as indented JSON files, one per address
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a new file store rooted at the configured directory
func NewFileStore(cfg config.OutputConfig, logger *zap.Logger) *FileStore {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	return &FileStore{
		dir:    dir,
		logger: logger,
	}
}

// FileName returns the result file name for an address
func FileName(address string) string {
	return fmt.Sprintf("bitcoin_balance_%s.json", address)
}

// Save writes the record, silently overwriting an existing file
func (s *FileStore) Save(ctx context.Context, record *entities.BalanceRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", entities.NewStorageError(err)
	}

	name := FileName(record.Address)
	if strings.ContainsAny(record.Address, `/\`) || filepath.Base(name) != name {
		return "", entities.NewStorageError(fmt.Errorf("address %q is not usable as a file name", record.Address))
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", entities.NewStorageError(fmt.Errorf("failed to marshal record: %w", err))
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", entities.NewStorageError(fmt.Errorf("failed to write %s: %w", path, err))
	}

	s.logger.Info("Balance record saved",
		zap.String("address", record.Address),
		zap.String("path", path),
	)

	return path, nil
}
