package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mygaadi/mygaadi/internal/client/models"
	"github.com/mygaadi/mygaadi/internal/common"
)

func TestAddServiceRecord_DenormalizesVehicleName(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	v, err := s.AddVehicle(ctx, VehicleInput{Name: "My Swift"})
	require.NoError(t, err)

	r, err := s.AddServiceRecord(ctx, ServiceRecordInput{
		VehicleID: v.ID, Description: "Oil change", Date: time.Now(), Cost: 1200,
	})
	require.NoError(t, err)
	assert.Equal(t, "My Swift", r.VehicleName)
	assert.Equal(t, "u1", r.UserID)
	assert.NotEmpty(t, r.ID)
}

func TestAddServiceRecord_UnknownVehicleFallback(t *testing.T) {
	s, _ := setupStore(t)

	r, err := s.AddServiceRecord(context.Background(), ServiceRecordInput{
		VehicleID: "missing", Description: "Oil change", Date: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.UnknownVehicleName, r.VehicleName)
}

func TestAddServiceRecord_ReverseChronological(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, offset := range []int{0, 20, 10} {
		_, err := s.AddServiceRecord(ctx, ServiceRecordInput{
			VehicleID: "v", Description: "svc", Date: base.AddDate(0, 0, offset),
		})
		require.NoError(t, err)
	}

	got := s.ServiceRecords()
	require.Len(t, got, 3)
	assert.Equal(t, base.AddDate(0, 0, 20), got[0].Date)
	assert.Equal(t, base.AddDate(0, 0, 10), got[1].Date)
	assert.Equal(t, base, got[2].Date)
}

func TestAddExpense_Validation(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	_, err := s.AddExpense(ctx, ExpenseInput{Category: models.CategoryFuel, Amount: -1, Date: time.Now()})
	assert.ErrorIs(t, err, common.ErrNegativeAmount)

	_, err = s.AddExpense(ctx, ExpenseInput{Category: "Groceries", Amount: 10, Date: time.Now()})
	assert.ErrorIs(t, err, common.ErrUnknownCategory)

	assert.Empty(t, s.Expenses())
}

func TestAddExpense_ZeroAmountAllowed(t *testing.T) {
	s, _ := setupStore(t)

	e, err := s.AddExpense(context.Background(), ExpenseInput{
		Category: models.CategoryOther, Amount: 0, Date: time.Now(), Description: "free checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.Amount)
}

func TestAddInsurancePolicy_InsertsIntoSortedMiddle(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()
	now := time.Now()

	v, err := s.AddVehicle(ctx, VehicleInput{Name: "My Swift"})
	require.NoError(t, err)

	_, err = s.AddInsurancePolicy(ctx, InsurancePolicyInput{
		VehicleID: v.ID, Provider: "Acko", PolicyNumber: "ACK-1", ExpiryDate: now.AddDate(0, 0, 25),
	})
	require.NoError(t, err)
	_, err = s.AddInsurancePolicy(ctx, InsurancePolicyInput{
		VehicleID: v.ID, Provider: "HDFC Ergo", PolicyNumber: "HDF-1", ExpiryDate: now.AddDate(0, 0, 150),
	})
	require.NoError(t, err)

	p, err := s.AddInsurancePolicy(ctx, InsurancePolicyInput{
		VehicleID: v.ID, Provider: "Go Digit", PolicyNumber: "GDI-1", ExpiryDate: now.AddDate(0, 0, 65),
	})
	require.NoError(t, err)
	assert.Equal(t, "My Swift", p.VehicleName)

	got := s.InsurancePolicies()
	require.Len(t, got, 3)
	assert.Equal(t, "ACK-1", got[0].PolicyNumber)
	assert.Equal(t, "GDI-1", got[1].PolicyNumber)
	assert.Equal(t, "HDF-1", got[2].PolicyNumber)
}

func TestAddDocument_AndDelete(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	d, err := s.AddDocument(ctx, DocumentInput{
		VehicleID: "v", Type: models.DocRegistration, FileName: "rc.pdf", FileURL: "s3://bucket/rc.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UnknownVehicleName, d.VehicleName)
	assert.False(t, d.UploadDate.IsZero())

	require.NoError(t, s.DeleteDocument(ctx, d.ID))
	assert.Empty(t, s.Documents())

	assert.ErrorIs(t, s.DeleteDocument(ctx, d.ID), common.ErrNotFound)
}

func TestAddDocument_RejectsUnknownType(t *testing.T) {
	s, _ := setupStore(t)

	_, err := s.AddDocument(context.Background(), DocumentInput{Type: "Receipt", FileName: "x.pdf"})
	assert.ErrorIs(t, err, common.ErrUnknownDocType)
}
