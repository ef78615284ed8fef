// Package alerts derives the upcoming-due view from store snapshots and
// coordinates one-time notification delivery within a session.
package alerts

import (
	"sort"
	"time"

	"github.com/mygaadi/mygaadi/internal/client/models"
	"github.com/mygaadi/mygaadi/internal/timex"
)

type Kind string

const (
	KindService   Kind = "service"
	KindInsurance Kind = "insurance"
)

type Urgency string

const (
	UrgencyUrgent Urgency = "urgent"
	UrgencySoon   Urgency = "soon"
	UrgencyNormal Urgency = "normal"
)

// Alert is a derived, non-persisted view of an upcoming due date. The ID is
// stable across derivations ("service-<id>" / "insurance-<id>") and is what
// the deduplicator tracks.
type Alert struct {
	ID          string
	Kind        Kind
	VehicleName string
	Due         time.Time
	Description string // service alerts only
	Provider    string // insurance alerts only
}

// DaysLeft returns whole days until the due date, on date-only values.
func (a Alert) DaysLeft(now time.Time) int {
	return timex.DaysBetween(now, a.Due)
}

// DueToday reports whether the alert should render as "due/expires today".
// A record due earlier today is not filtered out by Derive (date-only
// comparison) but still yields zero days left.
func (a Alert) DueToday(now time.Time) bool {
	return a.DaysLeft(now) <= 0
}

// Derive computes the upcoming alerts from snapshots of the service-record
// and insurance collections. Entries strictly in the past (date-only) are
// dropped; the rest are merged and stable-sorted ascending by due date, so
// ties keep their original relative order.
func Derive(records []models.ServiceRecord, policies []models.InsurancePolicy, now time.Time) []Alert {
	today := timex.DateOnly(now)

	out := make([]Alert, 0, len(records)+len(policies))
	for _, r := range records {
		if r.NextDueDate == nil || timex.DateOnly(*r.NextDueDate).Before(today) {
			continue
		}
		out = append(out, Alert{
			ID:          "service-" + r.ID,
			Kind:        KindService,
			VehicleName: r.VehicleName,
			Due:         *r.NextDueDate,
			Description: r.Description,
		})
	}
	for _, p := range policies {
		if timex.DateOnly(p.ExpiryDate).Before(today) {
			continue
		}
		out = append(out, Alert{
			ID:          "insurance-" + p.ID,
			Kind:        KindInsurance,
			VehicleName: p.VehicleName,
			Due:         p.ExpiryDate,
			Provider:    p.Provider,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Due.Before(out[j].Due) })
	return out
}

// Classify maps remaining days to a presentation urgency given the
// configured lead time: under half the lead time is urgent, under the full
// lead time is soon, anything further out is normal.
func Classify(daysLeft, leadTime int) Urgency {
	switch {
	// doubled to compare against the exact half for odd lead times
	case daysLeft*2 < leadTime:
		return UrgencyUrgent
	case daysLeft < leadTime:
		return UrgencySoon
	default:
		return UrgencyNormal
	}
}
