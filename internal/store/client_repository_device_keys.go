package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-chat/internal/logger"
)

type deviceKeyRepository struct {
	*DB
	logger *logger.Logger
}

// NewDeviceKeyRepository returns a [DeviceKeyCache] backed by the
// device_keys table of db.
func NewDeviceKeyRepository(db *DB, logger *logger.Logger) DeviceKeyCache {
	return &deviceKeyRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *deviceKeyRepository) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	if key == "" {
		return ErrEmptyKey
	}

	if _, err := r.DB.ExecContext(ctx, putDeviceKey, key, cloneBytes(value)); err != nil {
		log.Err(err).
			Str("func", "deviceKeyRepository.Put").
			Str("key", key).
			Msg("failed to upsert device key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *deviceKeyRepository) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var value []byte
	err := r.DB.QueryRowContext(ctx, getDeviceKey, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "deviceKeyRepository.Get").
			Str("key", key).
			Msg("failed to read device key")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cloneBytes(value), nil
}

func (r *deviceKeyRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, clearDeviceKeys); err != nil {
		log.Err(err).
			Str("func", "deviceKeyRepository.Clear").
			Msg("failed to clear device keys")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
