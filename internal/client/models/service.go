package models

import "time"

// ServiceRecord is a completed workshop visit. VehicleName is a snapshot of
// the vehicle's name at creation time; renaming the vehicle later does not
// rewrite existing records.
type ServiceRecord struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	VehicleID   string     `json:"vehicleId"`
	VehicleName string     `json:"vehicleName"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	Cost        float64    `json:"cost"`
	Notes       string     `json:"notes,omitempty"`
	NextDueDate *time.Time `json:"nextDueDate,omitempty"`
}
