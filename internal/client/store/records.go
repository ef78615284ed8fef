package store

import (
	"context"
	"sort"
	"time"

	"github.com/mygaadi/mygaadi/internal/client/models"
	"github.com/mygaadi/mygaadi/internal/client/storage"
	"github.com/mygaadi/mygaadi/internal/common"
)

type ServiceRecordInput struct {
	VehicleID   string
	Description string
	Date        time.Time
	Cost        float64
	Notes       string
	NextDueDate *time.Time
}

type ExpenseInput struct {
	VehicleID   string
	Category    models.ExpenseCategory
	Date        time.Time
	Amount      float64
	Description string
}

type InsurancePolicyInput struct {
	VehicleID    string
	Provider     string
	PolicyNumber string
	ExpiryDate   time.Time
}

type DocumentInput struct {
	VehicleID string
	Type      models.DocumentType
	FileName  string
	FileURL   string
}

// ServiceRecords returns a snapshot sorted reverse-chronologically by date.
func (s *Store) ServiceRecords() []models.ServiceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ServiceRecord(nil), s.services...)
}

// Expenses returns a snapshot sorted reverse-chronologically by date.
func (s *Store) Expenses() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Expense(nil), s.expenses...)
}

// InsurancePolicies returns a snapshot sorted ascending by expiry date.
func (s *Store) InsurancePolicies() []models.InsurancePolicy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.InsurancePolicy(nil), s.policies...)
}

// Documents returns a snapshot sorted reverse-chronologically by upload date.
func (s *Store) Documents() []models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Document(nil), s.documents...)
}

// AddServiceRecord snapshots the vehicle name at creation time ("Unknown"
// when the id does not resolve), inserts and persists.
func (s *Store) AddServiceRecord(ctx context.Context, in ServiceRecordInput) (models.ServiceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authed(ctx) {
		return models.ServiceRecord{}, nil
	}

	r := models.ServiceRecord{
		ID:          s.newID(),
		UserID:      s.userID,
		VehicleID:   in.VehicleID,
		VehicleName: s.vehicleNameFor(in.VehicleID),
		Description: in.Description,
		Date:        in.Date,
		Cost:        in.Cost,
		Notes:       in.Notes,
		NextDueDate: in.NextDueDate,
	}
	s.services = append(s.services, r)
	sort.SliceStable(s.services, func(i, j int) bool { return s.services[i].Date.After(s.services[j].Date) })
	_ = storage.SaveJSON(ctx, s.adapter, s.userID, common.KeyServiceRecords, s.services, s.log)
	return r, nil
}

// AddExpense rejects negative amounts and unknown categories before
// inserting.
func (s *Store) AddExpense(ctx context.Context, in ExpenseInput) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authed(ctx) {
		return models.Expense{}, nil
	}
	if in.Amount < 0 {
		return models.Expense{}, common.ErrNegativeAmount
	}
	if _, err := models.ParseExpenseCategory(string(in.Category)); err != nil {
		return models.Expense{}, err
	}

	e := models.Expense{
		ID:          s.newID(),
		UserID:      s.userID,
		VehicleID:   in.VehicleID,
		VehicleName: s.vehicleNameFor(in.VehicleID),
		Category:    in.Category,
		Date:        in.Date,
		Amount:      in.Amount,
		Description: in.Description,
	}
	s.expenses = append(s.expenses, e)
	sort.SliceStable(s.expenses, func(i, j int) bool { return s.expenses[i].Date.After(s.expenses[j].Date) })
	_ = storage.SaveJSON(ctx, s.adapter, s.userID, common.KeyExpenses, s.expenses, s.log)
	return e, nil
}

func (s *Store) AddInsurancePolicy(ctx context.Context, in InsurancePolicyInput) (models.InsurancePolicy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authed(ctx) {
		return models.InsurancePolicy{}, nil
	}

	p := models.InsurancePolicy{
		ID:           s.newID(),
		UserID:       s.userID,
		VehicleID:    in.VehicleID,
		VehicleName:  s.vehicleNameFor(in.VehicleID),
		Provider:     in.Provider,
		PolicyNumber: in.PolicyNumber,
		ExpiryDate:   in.ExpiryDate,
	}
	s.policies = append(s.policies, p)
	sort.SliceStable(s.policies, func(i, j int) bool { return s.policies[i].ExpiryDate.Before(s.policies[j].ExpiryDate) })
	_ = storage.SaveJSON(ctx, s.adapter, s.userID, common.KeyInsurancePolicies, s.policies, s.log)
	return p, nil
}

func (s *Store) AddDocument(ctx context.Context, in DocumentInput) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authed(ctx) {
		return models.Document{}, nil
	}
	if _, err := models.ParseDocumentType(string(in.Type)); err != nil {
		return models.Document{}, err
	}

	d := models.Document{
		ID:          s.newID(),
		UserID:      s.userID,
		VehicleID:   in.VehicleID,
		VehicleName: s.vehicleNameFor(in.VehicleID),
		Type:        in.Type,
		FileName:    in.FileName,
		UploadDate:  s.now(),
		FileURL:     in.FileURL,
	}
	s.documents = append(s.documents, d)
	sort.SliceStable(s.documents, func(i, j int) bool { return s.documents[i].UploadDate.After(s.documents[j].UploadDate) })
	_ = storage.SaveJSON(ctx, s.adapter, s.userID, common.KeyDocuments, s.documents, s.log)
	return d, nil
}

// DeleteDocument removes the matching entry; a missing id is reported as
// common.ErrNotFound but the collection is still re-persisted.
func (s *Store) DeleteDocument(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authed(ctx) {
		return nil
	}

	var err error = common.ErrNotFound
	for i := range s.documents {
		if s.documents[i].ID == id {
			s.documents = append(s.documents[:i], s.documents[i+1:]...)
			err = nil
			break
		}
	}
	_ = storage.SaveJSON(ctx, s.adapter, s.userID, common.KeyDocuments, s.documents, s.log)
	return err
}
