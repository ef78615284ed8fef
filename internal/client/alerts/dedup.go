package alerts

import (
	"context"
	"time"

	"github.com/mygaadi/mygaadi/internal/logging"
)

// NotifiedSet remembers which alert ids have already been surfaced to the
// user. Its lifetime is an explicit session boundary: built at login,
// cleared wholesale at logout (when the user setting asks for it) or when
// the backing SetStore's medium is discarded. Individual ids are never
// removed; within a session the set only grows.
//
// Reads and writes go through the SetStore on every call
// (read-modify-write). Last writer wins, which is acceptable because the
// subsystem is single-writer per session.
type NotifiedSet struct {
	store  SetStore
	userID string
	log    logging.Logger
}

func NewNotifiedSet(store SetStore, userID string, log logging.Logger) *NotifiedSet {
	return &NotifiedSet{store: store, userID: userID, log: log.With("component", "notified-set")}
}

// FilterUnnotified returns the alerts that fall inside the notification
// window (0 <= daysLeft <= leadTime) and have not been surfaced before.
// Calling it twice without an intervening MarkNotified returns the same
// result both times.
func (n *NotifiedSet) FilterUnnotified(ctx context.Context, alerts []Alert, now time.Time, leadTime int) []Alert {
	seen, err := n.store.Load(ctx, n.userID)
	if err != nil {
		n.log.Warn(ctx, "notified-set read failed, treating as empty", "err", err)
		seen = map[string]struct{}{}
	}

	var out []Alert
	for _, a := range alerts {
		dl := a.DaysLeft(now)
		if dl < 0 || dl > leadTime {
			continue
		}
		if _, ok := seen[a.ID]; ok {
			continue
		}
		out = append(out, a)
	}
	return out
}

// MarkNotified unions the surfaced ids into the persisted set.
func (n *NotifiedSet) MarkNotified(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	seen, err := n.store.Load(ctx, n.userID)
	if err != nil {
		n.log.Warn(ctx, "notified-set read failed, treating as empty", "err", err)
		seen = map[string]struct{}{}
	}
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return n.store.Save(ctx, n.userID, seen)
}

// Clear empties the set wholesale.
func (n *NotifiedSet) Clear(ctx context.Context) error {
	return n.store.Clear(ctx, n.userID)
}
