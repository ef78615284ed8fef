package store

import (
	"context"
	"sort"

	"github.com/mygaadi/mygaadi/internal/client/models"
	"github.com/mygaadi/mygaadi/internal/client/storage"
	"github.com/mygaadi/mygaadi/internal/common"
)

// VehicleInput carries the user-supplied fields of a new vehicle.
type VehicleInput struct {
	Name               string
	Make               string
	Model              string
	Year               int
	RegistrationNumber string
	ImageURL           string
}

// Vehicles returns a snapshot of the vehicle collection, sorted ascending by
// name.
func (s *Store) Vehicles() []models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Vehicle(nil), s.vehicles...)
}

// AddVehicle assigns a fresh id, inserts, re-sorts by name and persists the
// collection. With no active user it is a silent no-op returning a zero
// Vehicle.
func (s *Store) AddVehicle(ctx context.Context, in VehicleInput) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authed(ctx) {
		return models.Vehicle{}, nil
	}

	v := models.Vehicle{
		ID:                 s.newID(),
		UserID:             s.userID,
		Name:               in.Name,
		Make:               in.Make,
		Model:              in.Model,
		Year:               in.Year,
		RegistrationNumber: in.RegistrationNumber,
		ImageURL:           in.ImageURL,
	}
	s.vehicles = append(s.vehicles, v)
	sortVehicles(s.vehicles)
	s.persistVehicles(ctx)
	return v, nil
}

// UpdateVehicle merges the patch into the matching vehicle. A missing id is
// reported as common.ErrNotFound, but the collection is still re-persisted,
// preserving the original write-through shape. Existing records keep their
// denormalized vehicleName; a rename is not propagated.
func (s *Store) UpdateVehicle(ctx context.Context, id string, patch models.VehiclePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authed(ctx) {
		return nil
	}

	var err error = common.ErrNotFound
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			patch.Apply(&s.vehicles[i])
			err = nil
			break
		}
	}
	sortVehicles(s.vehicles)
	s.persistVehicles(ctx)
	return err
}

// DeleteVehicle removes the matching vehicle. Records referencing it keep
// their denormalized name; future adds against the stale id fall back to
// "Unknown".
func (s *Store) DeleteVehicle(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authed(ctx) {
		return nil
	}

	var err error = common.ErrNotFound
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			err = nil
			break
		}
	}
	s.persistVehicles(ctx)
	return err
}

// vehicleNameFor resolves a denormalized name at creation time. Callers hold
// s.mu.
func (s *Store) vehicleNameFor(vehicleID string) string {
	for _, v := range s.vehicles {
		if v.ID == vehicleID {
			return v.Name
		}
	}
	return models.UnknownVehicleName
}

// case-sensitive lexical ascending, stable
func sortVehicles(vs []models.Vehicle) {
	sort.SliceStable(vs, func(i, j int) bool { return vs[i].Name < vs[j].Name })
}

func (s *Store) persistVehicles(ctx context.Context) {
	_ = storage.SaveJSON(ctx, s.adapter, s.userID, common.KeyVehicles, s.vehicles, s.log)
}
