// Package storage provides the persistence adapter behind the entity store:
// whole-collection snapshots keyed by (user, collection), with a local
// SQLite implementation and a remote document-database implementation.
//
// The backing medium is atomic per key but not transactional across keys.
// Reads that fail recover locally with a caller-supplied default; writes
// that fail are logged and not retried.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mygaadi/mygaadi/internal/common"
	"github.com/mygaadi/mygaadi/internal/logging"
)

// Adapter stores opaque JSON snapshots in a per-user key namespace.
type Adapter interface {
	// Load returns the payload stored under (userID, key). A key that has
	// never been written yields common.ErrNotFound; a medium failure yields
	// an error matching common.ErrStorageRead.
	Load(ctx context.Context, userID, key string) ([]byte, error)

	// Save replaces the payload under (userID, key). Saving an identical
	// payload twice yields identical subsequent reads.
	Save(ctx context.Context, userID, key string, payload []byte) error

	// Delete removes a single key. Deleting an absent key is not an error.
	Delete(ctx context.Context, userID, key string) error

	// DeleteKeys removes several keys of one user in a single call.
	DeleteKeys(ctx context.Context, userID string, keys []string) error

	Close() error
}

// LoadOr reads and decodes the snapshot under (userID, key). Any failure,
// whether a missing key, a read error or an unparseable payload, yields the
// caller-supplied default. Failures other than a missing key are logged.
func LoadOr[T any](ctx context.Context, a Adapter, userID, key string, def T, log logging.Logger) T {
	payload, err := a.Load(ctx, userID, key)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			log.Warn(ctx, "snapshot read failed, using default", "key", key, "err", err)
		}
		return def
	}

	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		log.Warn(ctx, "snapshot payload unparseable, using default", "key", key, "err", err)
		return def
	}
	return v
}

// SaveJSON encodes v and writes it under (userID, key). A write failure is
// logged and returned wrapped in common.ErrStorageWrite; callers are not
// expected to retry.
func SaveJSON(ctx context.Context, a Adapter, userID, key string, v any, log logging.Logger) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", key, err)
	}
	if err := a.Save(ctx, userID, key, payload); err != nil {
		log.Error(ctx, "snapshot write failed", "key", key, "err", err)
		return fmt.Errorf("%w: %s: %w", common.ErrStorageWrite, key, err)
	}
	return nil
}
