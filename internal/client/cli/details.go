package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sunvoyage/portal/internal/client/models"
	"github.com/sunvoyage/portal/internal/client/state"
)

// Details renders the selected hotel snapshot. An empty slot redirects the
// user to the results screen rather than rendering a blank page.
func (a *App) Details(ctx context.Context) error {
	hotel, err := a.searchService.SelectedHotel(ctx)
	if err != nil {
		if errors.Is(err, state.ErrNoSelection) {
			printlnFn("No hotel selected. Use 'results' and 'open <n>'.")
			return nil
		}
		a.logger.Warn(ctx, "failed to load hotel snapshot", "error", err.Error())
		return err
	}
	a.renderHotel(hotel)
	return nil
}

func (a *App) renderHotel(h models.Hotel) {
	printlnFn("Hotel:", h.Name)
	printlnFn("  Country:", h.CountryName)
	printlnFn("  Region:", h.RegionName)
	printlnFn("  Type:", h.TypeName)
	if h.DistanceName != "" {
		printlnFn("  Distance:", h.DistanceName)
	}
	if h.AgencyName != "" {
		printlnFn("  Agency:", h.AgencyName)
	}
	if h.Description != "" {
		printlnFn("  ", h.Description)
	}
}

// Agencies lists agency profiles and lets the user open one; the chosen
// snapshot is persisted so the profile survives a restart.
func (a *App) Agencies(ctx context.Context) error {
	agencies, err := a.catalogService.Agencies(ctx)
	if err != nil {
		printlnFn("Failed to load agencies:", err.Error())
		return err
	}
	if len(agencies) == 0 {
		printlnFn("No agencies available.")
		return nil
	}

	options := make([]string, 0, len(agencies))
	for _, ag := range agencies {
		options = append(options, ag.Name)
	}
	idx, err := GetChoice(a.reader, "Agencies:", options, os.Stdout)
	if err != nil {
		return err
	}
	if idx < 0 {
		return nil
	}

	agency := agencies[idx]
	if err := a.searchService.SelectAgency(ctx, agency); err != nil {
		a.logger.Warn(ctx, "failed to save agency snapshot", "error", err.Error())
		return err
	}
	a.renderAgency(agency)
	return nil
}

func (a *App) renderAgency(ag models.Agency) {
	printlnFn("Agency:", ag.Name)
	if ag.Phone != "" {
		printlnFn("  Phone:", ag.Phone)
	}
	if ag.Email != "" {
		printlnFn("  Email:", ag.Email)
	}
	if ag.Address != "" {
		printlnFn("  Address:", ag.Address)
	}
	if ag.Website != "" {
		printlnFn("  Website:", ag.Website)
	}
	if ag.WorkingHours != "" {
		printlnFn("  Working hours:", ag.WorkingHours)
	}
	if ag.Description != "" {
		printlnFn("  ", ag.Description)
	}
}

// EuroTrips lists Euro-trip packages and renders the chosen one leg by leg.
func (a *App) EuroTrips(ctx context.Context) error {
	trips, err := a.catalogService.EuroTrips(ctx)
	if err != nil {
		printlnFn("Failed to load Euro trips:", err.Error())
		return err
	}
	if len(trips) == 0 {
		printlnFn("No Euro trips available.")
		return nil
	}

	options := make([]string, 0, len(trips))
	for _, tr := range trips {
		options = append(options, tr.CountryName)
	}
	idx, err := GetChoice(a.reader, "Euro trips:", options, os.Stdout)
	if err != nil {
		return err
	}
	if idx < 0 {
		return nil
	}

	trip := trips[idx]
	if err := a.searchService.SelectEuroTrip(ctx, trip); err != nil {
		a.logger.Warn(ctx, "failed to save eurotrip snapshot", "error", err.Error())
		return err
	}
	a.renderEuroTrip(trip)
	return nil
}

func (a *App) renderEuroTrip(tr models.EuroTrip) {
	printlnFn("Euro trip:", tr.CountryName)
	for i, leg := range tr.Legs {
		printlnFn(fmt.Sprintf("  Leg %d: %s (%s, %s days)", i+1, leg.Name, leg.TransportationType, leg.NumberOfDays))
	}
}
