package models

import (
	"time"

	"github.com/mygaadi/mygaadi/internal/common"
)

// ExpenseCategory is a closed enumeration.
type ExpenseCategory string

const (
	CategoryFuel      ExpenseCategory = "Fuel"
	CategoryRepair    ExpenseCategory = "Repair"
	CategoryInsurance ExpenseCategory = "Insurance"
	CategoryOther     ExpenseCategory = "Other"
)

// ParseExpenseCategory validates a raw category string.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch ExpenseCategory(s) {
	case CategoryFuel, CategoryRepair, CategoryInsurance, CategoryOther:
		return ExpenseCategory(s), nil
	default:
		return "", common.ErrUnknownCategory
	}
}

// Expense is a single spend entry against a vehicle.
type Expense struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	VehicleID   string          `json:"vehicleId"`
	VehicleName string          `json:"vehicleName"`
	Category    ExpenseCategory `json:"category"`
	Date        time.Time       `json:"date"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description,omitempty"`
}
