package alerts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/mygaadi/mygaadi/internal/dbx"
)

// SetStore persists the notified-set for one user. Implementations differ
// only in lifetime: MemorySetStore lives for the process (session scope),
// SQLiteSetStore survives restarts (device scope, cleared explicitly).
type SetStore interface {
	Load(ctx context.Context, userID string) (map[string]struct{}, error)
	Save(ctx context.Context, userID string, ids map[string]struct{}) error
	Clear(ctx context.Context, userID string) error
}

// MemorySetStore keeps sets in process memory, mirroring the original
// session-only medium that vanishes when the session ends.
type MemorySetStore struct {
	mu   sync.Mutex
	sets map[string]map[string]struct{}
}

func NewMemorySetStore() *MemorySetStore {
	return &MemorySetStore{sets: make(map[string]map[string]struct{})}
}

func (m *MemorySetStore) Load(ctx context.Context, userID string) (map[string]struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]struct{}, len(m.sets[userID]))
	for id := range m.sets[userID] {
		out[id] = struct{}{}
	}
	return out, nil
}

func (m *MemorySetStore) Save(ctx context.Context, userID string, ids map[string]struct{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make(map[string]struct{}, len(ids))
	for id := range ids {
		stored[id] = struct{}{}
	}
	m.sets[userID] = stored
	return nil
}

func (m *MemorySetStore) Clear(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sets, userID)
	return nil
}

// SQLiteSetStore keeps the set in the local database's notified_alerts
// table, one JSON array per user. It shares the handle of the local
// storage adapter.
type SQLiteSetStore struct {
	db dbx.DBTX
}

func NewSQLiteSetStore(db dbx.DBTX) *SQLiteSetStore {
	return &SQLiteSetStore{db: db}
}

func (s *SQLiteSetStore) Load(ctx context.Context, userID string) (map[string]struct{}, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM notified_alerts WHERE user_id = ?`, userID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return map[string]struct{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading notified-set: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(payload, &ids); err != nil {
		return nil, fmt.Errorf("decoding notified-set: %w", err)
	}
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (s *SQLiteSetStore) Save(ctx context.Context, userID string, ids map[string]struct{}) error {
	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	payload, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding notified-set: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO notified_alerts (user_id, payload) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET payload = excluded.payload
	`, userID, payload)
	if err != nil {
		return fmt.Errorf("saving notified-set: %w", err)
	}
	return nil
}

func (s *SQLiteSetStore) Clear(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM notified_alerts WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("clearing notified-set: %w", err)
	}
	return nil
}
