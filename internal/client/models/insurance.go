package models

import "time"

// InsurancePolicy covers one vehicle until ExpiryDate.
type InsurancePolicy struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	VehicleID    string    `json:"vehicleId"`
	VehicleName  string    `json:"vehicleName"`
	Provider     string    `json:"provider"`
	PolicyNumber string    `json:"policyNumber"`
	ExpiryDate   time.Time `json:"expiryDate"`
}
