package cli

import (
	"context"
	"fmt"

	"github.com/mygaadi/mygaadi/internal/client/assist"
	"github.com/mygaadi/mygaadi/internal/client/models"
)

// Alerts triggers an immediate reminder check instead of waiting for the
// next scheduled run.
func (a *App) Alerts(ctx context.Context) error {
	n := a.session.Notifier()
	if n == nil {
		fmt.Fprintln(a.out, "Notifications are not active.")
		return nil
	}
	if delivered := n.RunOnce(ctx); delivered == 0 {
		fmt.Fprintln(a.out, "Nothing new. You're all caught up.")
	}
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	st := a.session.Store().Stats()
	fmt.Fprintf(a.out, "Vehicles: %d\nServices: %d\nTotal spent: %.2f\n",
		st.VehicleCount, st.ServiceCount, st.TotalSpent)
	for _, c := range []models.ExpenseCategory{
		models.CategoryFuel, models.CategoryRepair, models.CategoryInsurance, models.CategoryOther,
	} {
		if amount, ok := st.SpentByCategory[c]; ok {
			fmt.Fprintf(a.out, "  %s: %.2f\n", c, amount)
		}
	}
	return nil
}

func (a *App) Recent(ctx context.Context) error {
	items := a.session.Store().RecentActivity(10)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No activity yet.")
		return nil
	}
	for _, it := range items {
		fmt.Fprintf(a.out, "%s  [%s] %s: %s", it.Date.Format("2006-01-02"), it.Kind, it.VehicleName, it.Description)
		if it.Amount != 0 {
			fmt.Fprintf(a.out, "  %.2f", it.Amount)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	p := a.session.Store().Profile()
	fmt.Fprintf(a.out, "Name: %s\n", p.Name)
	if p.Phone != "" {
		fmt.Fprintf(a.out, "Phone: %s\n", p.Phone)
	}
	if p.LicenseNumber != "" {
		fmt.Fprintf(a.out, "License: %s (expires %s)\n", p.LicenseNumber, p.LicenseExpiry)
	}
	if p.BloodGroup != "" {
		fmt.Fprintf(a.out, "Blood group: %s\n", p.BloodGroup)
	}
	if p.EmergencyContact != "" {
		fmt.Fprintf(a.out, "Emergency contact: %s\n", p.EmergencyContact)
	}
	return nil
}

func (a *App) EditProfile(ctx context.Context) error {
	var patch models.ProfilePatch
	if name, err := GetSimpleText(a.reader, "Name (empty to keep)", a.out); err != nil {
		return err
	} else if name != "" {
		patch.Name = &name
	}
	if phone, err := GetSimpleText(a.reader, "Phone (empty to keep)", a.out); err != nil {
		return err
	} else if phone != "" {
		patch.Phone = &phone
	}
	if lic, err := GetSimpleText(a.reader, "License number (empty to keep)", a.out); err != nil {
		return err
	} else if lic != "" {
		patch.LicenseNumber = &lic
	}

	if _, err := a.session.Store().UpdateProfile(ctx, patch); err != nil {
		fmt.Fprintf(a.out, "Could not update profile: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// Ask sends a free-form question to the assistant along with the garage
// snapshot and streams the answer as it arrives.
func (a *App) Ask(ctx context.Context) error {
	query, err := GetSimpleText(a.reader, "Ask about your garage", a.out)
	if err != nil {
		return err
	}
	if query == "" {
		return nil
	}

	st := a.session.Store()
	req := assist.Request{
		Query:             query,
		Vehicles:          st.Vehicles(),
		ServiceRecords:    st.ServiceRecords(),
		Expenses:          st.Expenses(),
		InsurancePolicies: st.InsurancePolicies(),
	}

	err = a.assist.AskStream(ctx, req, func(fragment string) {
		fmt.Fprintln(a.out, fragment)
	})
	if err != nil {
		fmt.Fprintf(a.out, "Assistant unavailable: %s\n", err.Error())
		return err
	}
	return nil
}

func (a *App) ClearAll(ctx context.Context) error {
	confirm, err := GetSimpleText(a.reader, "Delete all vehicles and records? Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.session.Store().ClearAllData(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not clear data: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "All data cleared. Your profile is kept.")
	return nil
}
