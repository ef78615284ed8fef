package store

import (
	"sort"
	"time"

	"github.com/mygaadi/mygaadi/internal/client/models"
)

// ActivityKind tags entries of the merged recent-activity feed.
type ActivityKind string

const (
	ActivityService  ActivityKind = "service"
	ActivityExpense  ActivityKind = "expense"
	ActivityDocument ActivityKind = "document"
)

// ActivityItem is one row of the merged cross-collection feed.
type ActivityItem struct {
	Kind        ActivityKind
	Date        time.Time
	VehicleName string
	Description string
	Amount      float64
}

// RecentActivity merges service records, expenses and documents into one
// reverse-chronological feed. The feed is recomputed on every call and never
// persisted. A limit <= 0 returns everything.
func (s *Store) RecentActivity(limit int) []ActivityItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]ActivityItem, 0, len(s.services)+len(s.expenses)+len(s.documents))
	for _, r := range s.services {
		items = append(items, ActivityItem{
			Kind: ActivityService, Date: r.Date, VehicleName: r.VehicleName,
			Description: r.Description, Amount: r.Cost,
		})
	}
	for _, e := range s.expenses {
		items = append(items, ActivityItem{
			Kind: ActivityExpense, Date: e.Date, VehicleName: e.VehicleName,
			Description: string(e.Category), Amount: e.Amount,
		})
	}
	for _, d := range s.documents {
		items = append(items, ActivityItem{
			Kind: ActivityDocument, Date: d.UploadDate, VehicleName: d.VehicleName,
			Description: d.FileName,
		})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// Stats is the derived dashboard summary.
type Stats struct {
	VehicleCount    int
	ServiceCount    int
	TotalSpent      float64
	SpentByCategory map[models.ExpenseCategory]float64
}

// Stats totals the current snapshot. Derived, never persisted.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		VehicleCount:    len(s.vehicles),
		ServiceCount:    len(s.services),
		SpentByCategory: make(map[models.ExpenseCategory]float64),
	}
	for _, e := range s.expenses {
		st.TotalSpent += e.Amount
		st.SpentByCategory[e.Category] += e.Amount
	}
	return st
}
