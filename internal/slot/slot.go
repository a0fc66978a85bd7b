// Package slot provides the durable key-value slot the todo list lives in.
//
// A slot maps a short key to an opaque byte value. daily keeps the whole
// list under a single key and rewrites it after every change, so backends
// only need whole-value Get and Set.
package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/idilsaglam/daily/internal/config"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("slot: key not found")

// Slot is a durable key-value store.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Open builds the backend selected by cfg.Storage.Backend.
func Open(ctx context.Context, cfg config.Config) (Slot, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile, "":
		f, err := NewFile(cfg.Storage.Dir)
		if err != nil {
			return nil, err
		}
		return f, nil
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendRedis:
		r, err := OpenRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return r, nil
	case config.BackendSQLite:
		s, err := OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
