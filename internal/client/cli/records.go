package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mygaadi/mygaadi/internal/client/config"
	"github.com/mygaadi/mygaadi/internal/client/models"
	"github.com/mygaadi/mygaadi/internal/client/store"
)

func (a *App) AddService(ctx context.Context) error {
	vehicleID, err := GetSimpleText(a.reader, "Vehicle id", a.out)
	if err != nil {
		return err
	}
	desc, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	date, ok, err := GetDate(a.reader, "Service date", a.out)
	if err != nil || !ok {
		fmt.Fprintln(a.out, "A service date is required.")
		return err
	}
	cost, err := GetFloat(a.reader, "Cost", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid cost.")
		return err
	}

	in := store.ServiceRecordInput{VehicleID: vehicleID, Description: desc, Date: date, Cost: cost}
	if due, ok, err := GetDate(a.reader, "Next due date (empty to skip)", a.out); err != nil {
		return err
	} else if ok {
		in.NextDueDate = &due
	}

	r, err := a.session.Store().AddServiceRecord(ctx, in)
	if err != nil {
		fmt.Fprintf(a.out, "Could not add service record: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Recorded %s for %s\n", r.Description, r.VehicleName)
	return nil
}

func (a *App) ListServices(ctx context.Context) error {
	records := a.session.Store().ServiceRecords()
	if a.config.DefaultSortOrder == config.SortOldest {
		records = reversed(records)
	}
	for _, r := range records {
		due := ""
		if r.NextDueDate != nil {
			due = "  next due " + r.NextDueDate.Format("2006-01-02")
		}
		fmt.Fprintf(a.out, "%s  %s: %s  %.2f%s  [%s]\n",
			r.Date.Format("2006-01-02"), r.VehicleName, r.Description, r.Cost, due, r.ID)
	}
	return nil
}

func (a *App) AddExpense(ctx context.Context) error {
	vehicleID, err := GetSimpleText(a.reader, "Vehicle id", a.out)
	if err != nil {
		return err
	}
	rawCat, err := GetSimpleText(a.reader, "Category (Fuel|Repair|Insurance|Other)", a.out)
	if err != nil {
		return err
	}
	cat, err := models.ParseExpenseCategory(rawCat)
	if err != nil {
		fmt.Fprintf(a.out, "Unknown category: %s\n", rawCat)
		return err
	}
	date, ok, err := GetDate(a.reader, "Expense date", a.out)
	if err != nil || !ok {
		fmt.Fprintln(a.out, "An expense date is required.")
		return err
	}
	amount, err := GetFloat(a.reader, "Amount", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid amount.")
		return err
	}
	desc, err := GetSimpleText(a.reader, "Description (empty to skip)", a.out)
	if err != nil {
		return err
	}

	e, err := a.session.Store().AddExpense(ctx, store.ExpenseInput{
		VehicleID: vehicleID, Category: cat, Date: date, Amount: amount, Description: desc,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Could not add expense: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Recorded %.2f on %s for %s\n", e.Amount, e.Category, e.VehicleName)
	return nil
}

func (a *App) ListExpenses(ctx context.Context) error {
	expenses := a.session.Store().Expenses()
	if a.config.DefaultSortOrder == config.SortOldest {
		expenses = reversed(expenses)
	}
	for _, e := range expenses {
		fmt.Fprintf(a.out, "%s  %s: %s %.2f  %s  [%s]\n",
			e.Date.Format("2006-01-02"), e.VehicleName, e.Category, e.Amount, e.Description, e.ID)
	}
	return nil
}

func (a *App) AddPolicy(ctx context.Context) error {
	vehicleID, err := GetSimpleText(a.reader, "Vehicle id", a.out)
	if err != nil {
		return err
	}
	provider, err := GetSimpleText(a.reader, "Provider", a.out)
	if err != nil {
		return err
	}
	number, err := GetSimpleText(a.reader, "Policy number", a.out)
	if err != nil {
		return err
	}
	expiry, ok, err := GetDate(a.reader, "Expiry date", a.out)
	if err != nil || !ok {
		fmt.Fprintln(a.out, "An expiry date is required.")
		return err
	}

	p, err := a.session.Store().AddInsurancePolicy(ctx, store.InsurancePolicyInput{
		VehicleID: vehicleID, Provider: provider, PolicyNumber: number, ExpiryDate: expiry,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Could not add policy: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Added %s policy for %s, expires %s\n",
		p.Provider, p.VehicleName, p.ExpiryDate.Format("2006-01-02"))
	return nil
}

func (a *App) ListPolicies(ctx context.Context) error {
	// policies always render soonest-expiry first regardless of sort setting
	for _, p := range a.session.Store().InsurancePolicies() {
		fmt.Fprintf(a.out, "%s  %s: %s %s  [%s]\n",
			p.ExpiryDate.Format("2006-01-02"), p.VehicleName, p.Provider, p.PolicyNumber, p.ID)
	}
	return nil
}

func (a *App) AddDocument(ctx context.Context) error {
	vehicleID, err := GetSimpleText(a.reader, "Vehicle id", a.out)
	if err != nil {
		return err
	}
	rawType, err := GetSimpleText(a.reader, "Type (Registration|Insurance|Service|Other)", a.out)
	if err != nil {
		return err
	}
	docType, err := models.ParseDocumentType(rawType)
	if err != nil {
		fmt.Fprintf(a.out, "Unknown document type: %s\n", rawType)
		return err
	}
	path, err := GetSimpleText(a.reader, "File path", a.out)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(a.out, "Could not open file: %s\n", err.Error())
		return err
	}
	defer f.Close()

	name := filepath.Base(path)
	url, err := a.files.Put(ctx, name, f)
	if err != nil {
		fmt.Fprintf(a.out, "Upload failed: %s\n", err.Error())
		return err
	}

	d, err := a.session.Store().AddDocument(ctx, store.DocumentInput{
		VehicleID: vehicleID, Type: docType, FileName: name, FileURL: url,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Could not add document: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Uploaded %s for %s\n", d.FileName, d.VehicleName)
	return nil
}

func (a *App) ListDocuments(ctx context.Context) error {
	docs := a.session.Store().Documents()
	if a.config.DefaultSortOrder == config.SortOldest {
		docs = reversed(docs)
	}
	for _, d := range docs {
		fmt.Fprintf(a.out, "%s  %s: %s (%s)  [%s]\n",
			d.UploadDate.Format("2006-01-02"), d.VehicleName, d.FileName, d.Type, d.ID)
	}
	return nil
}

func (a *App) DeleteDocument(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Document id", a.out)
	if err != nil {
		return err
	}

	if err := a.session.Store().DeleteDocument(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Could not delete document: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}
