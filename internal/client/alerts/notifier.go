package alerts

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mygaadi/mygaadi/internal/client/models"
	"github.com/mygaadi/mygaadi/internal/logging"
)

// Sink receives the alerts selected for delivery. The CLI prints them; tests
// record them.
type Sink interface {
	Notify(ctx context.Context, alert Alert, urgency Urgency)
}

// DataSource is the slice of the entity store the notifier reads. Snapshots
// are copies; the notifier never mutates store state.
type DataSource interface {
	ServiceRecords() []models.ServiceRecord
	InsurancePolicies() []models.InsurancePolicy
}

// Notifier periodically derives alerts from the store, filters out the ones
// already surfaced, pushes the rest to the sink and marks them notified.
// One notifier runs per session; Stop is called at logout.
type Notifier struct {
	source   DataSource
	set      *NotifiedSet
	sink     Sink
	leadTime int
	enabled  bool
	log      logging.Logger

	cr  *cron.Cron
	now func() time.Time // test seam
}

func NewNotifier(source DataSource, set *NotifiedSet, sink Sink, leadTime int, enabled bool, log logging.Logger) *Notifier {
	return &Notifier{
		source:   source,
		set:      set,
		sink:     sink,
		leadTime: leadTime,
		enabled:  enabled,
		log:      log.With("component", "notifier"),
		now:      time.Now,
	}
}

// Start schedules RunOnce on the given cron spec (e.g. "@every 1m"). It is a
// no-op when notifications are disabled.
func (n *Notifier) Start(spec string) error {
	if !n.enabled {
		return nil
	}
	n.cr = cron.New()
	if _, err := n.cr.AddFunc(spec, func() { n.RunOnce(context.Background()) }); err != nil {
		return err
	}
	n.cr.Start()
	return nil
}

// Stop halts the schedule. Safe to call when Start never ran.
func (n *Notifier) Stop() {
	if n.cr != nil {
		n.cr.Stop()
	}
}

// RunOnce performs a single check and returns how many alerts were
// delivered. Exported so the CLI can trigger an immediate check.
func (n *Notifier) RunOnce(ctx context.Context) int {
	if !n.enabled {
		return 0
	}

	now := n.now()
	derived := Derive(n.source.ServiceRecords(), n.source.InsurancePolicies(), now)
	due := n.set.FilterUnnotified(ctx, derived, now, n.leadTime)
	if len(due) == 0 {
		return 0
	}

	ids := make([]string, 0, len(due))
	for _, a := range due {
		n.sink.Notify(ctx, a, Classify(a.DaysLeft(now), n.leadTime))
		ids = append(ids, a.ID)
	}
	if err := n.set.MarkNotified(ctx, ids); err != nil {
		n.log.Error(ctx, "marking alerts notified failed", "err", err)
	}
	return len(due)
}
