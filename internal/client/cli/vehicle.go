package cli

import (
	"context"
	"fmt"

	"github.com/mygaadi/mygaadi/internal/client/config"
	"github.com/mygaadi/mygaadi/internal/client/models"
	"github.com/mygaadi/mygaadi/internal/client/store"
)

func (a *App) AddVehicle(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Vehicle name", a.out)
	if err != nil {
		return err
	}
	make_, err := GetSimpleText(a.reader, "Make", a.out)
	if err != nil {
		return err
	}
	model, err := GetSimpleText(a.reader, "Model", a.out)
	if err != nil {
		return err
	}
	year, err := GetInt(a.reader, "Year", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid year.")
		return err
	}
	reg, err := GetSimpleText(a.reader, "Registration number", a.out)
	if err != nil {
		return err
	}

	v, err := a.session.Store().AddVehicle(ctx, store.VehicleInput{
		Name:               name,
		Make:               make_,
		Model:              model,
		Year:               year,
		RegistrationNumber: reg,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Could not add vehicle: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Added %s (%s)\n", v.Name, v.ID)
	return nil
}

func (a *App) ListVehicles(ctx context.Context) error {
	vehicles := a.session.Store().Vehicles()
	if a.config.DefaultSortOrder == config.SortOldest {
		// store keeps name-asc; "oldest" flips the display only
		vehicles = reversed(vehicles)
	}

	if len(vehicles) == 0 {
		fmt.Fprintln(a.out, "No vehicles yet. Use 'addvehicle' to add one.")
		return nil
	}
	for _, v := range vehicles {
		fmt.Fprintf(a.out, "%s  %s %s %d  reg %s  [%s]\n", v.Name, v.Make, v.Model, v.Year, v.RegistrationNumber, v.ID)
	}
	return nil
}

func (a *App) UpdateVehicle(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Vehicle id", a.out)
	if err != nil {
		return err
	}

	var patch models.VehiclePatch
	if name, err := GetSimpleText(a.reader, "New name (empty to keep)", a.out); err != nil {
		return err
	} else if name != "" {
		patch.Name = &name
	}
	if reg, err := GetSimpleText(a.reader, "New registration number (empty to keep)", a.out); err != nil {
		return err
	} else if reg != "" {
		patch.RegistrationNumber = &reg
	}

	if err := a.session.Store().UpdateVehicle(ctx, id, patch); err != nil {
		fmt.Fprintf(a.out, "Could not update vehicle: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Updated.")
	return nil
}

func (a *App) DeleteVehicle(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Vehicle id", a.out)
	if err != nil {
		return err
	}

	if err := a.session.Store().DeleteVehicle(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Could not delete vehicle: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Deleted. Existing records keep the old vehicle name.")
	return nil
}

func reversed[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
