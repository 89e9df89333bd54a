package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-chat/internal/config"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
)

// ClientStorages groups the client-side storage of one profile.
type ClientStorages struct {
	// DeviceKeys is the SQLite-backed Device Key Cache of the profile.
	DeviceKeys DeviceKeyCache

	db *DB
}

// NewClientStorages opens (creating if needed) the SQLite file at
// cfg.DB.DSN, applies the schema migrations and wires a [DeviceKeyCache]
// over it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DeviceKeys: NewDeviceKeyRepository(db, logger),
		db:         db,
	}, nil
}

// NewMemoryClientStorages returns storages that are never persisted.
func NewMemoryClientStorages() *ClientStorages {
	return &ClientStorages{DeviceKeys: NewMemoryDeviceKeyCache()}
}

// Close releases the underlying database, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
