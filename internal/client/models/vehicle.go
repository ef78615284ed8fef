// Package models defines the client-side domain entities of myGaadi.
package models

// Vehicle is a user-owned vehicle. The id is globally unique and immutable
// after creation. Name uniqueness is not enforced; denormalized references
// to a duplicated name may become ambiguous.
type Vehicle struct {
	ID                 string `json:"id"`
	UserID             string `json:"userId"`
	Name               string `json:"name"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               int    `json:"year"`
	RegistrationNumber string `json:"registrationNumber"`
	ImageURL           string `json:"imageUrl,omitempty"`
}

// VehiclePatch carries a partial update. Nil fields are left unchanged.
type VehiclePatch struct {
	Name               *string
	Make               *string
	Model              *string
	Year               *int
	RegistrationNumber *string
	ImageURL           *string
}

// Apply merges the patch into v.
func (p VehiclePatch) Apply(v *Vehicle) {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Make != nil {
		v.Make = *p.Make
	}
	if p.Model != nil {
		v.Model = *p.Model
	}
	if p.Year != nil {
		v.Year = *p.Year
	}
	if p.RegistrationNumber != nil {
		v.RegistrationNumber = *p.RegistrationNumber
	}
	if p.ImageURL != nil {
		v.ImageURL = *p.ImageURL
	}
}

// UnknownVehicleName is the denormalized fallback when a record references a
// vehicle id that no longer resolves at creation time.
const UnknownVehicleName = "Unknown"
