package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sunvoyage/portal/internal/client/models"
	"github.com/sunvoyage/portal/internal/client/state"
)

// Search walks the user through the search form: free-text name, one choice
// each of country, region, and hotel type, one distance filter, and any
// number of regular filters ("all" selects every one). The search runs at
// page 1 and its state is persisted for the results screen.
func (a *App) Search(ctx context.Context) error {
	criteria, err := a.promptCriteria(ctx)
	if err != nil {
		a.logger.Warn(ctx, "search input error", "error", err.Error())
		return err
	}

	saved, err := a.searchService.Search(ctx, criteria, 1, a.config.PageSize)
	if err != nil {
		printlnFn("Search failed:", err.Error())
		return err
	}

	a.renderResults(saved)
	return nil
}

func (a *App) promptCriteria(ctx context.Context) (models.SearchCriteria, error) {
	var criteria models.SearchCriteria

	name, err := getSimpleText(a.reader, "Hotel name (empty for any)", os.Stdout)
	if err != nil {
		return criteria, err
	}
	criteria.Name = name

	criteria.CountryID, err = a.promptCategory(ctx, "Country", a.catalogService.Countries)
	if err != nil {
		return criteria, err
	}
	criteria.RegionID, err = a.promptCategory(ctx, "Region", a.catalogService.Regions)
	if err != nil {
		return criteria, err
	}
	criteria.ResidenceTypeID, err = a.promptCategory(ctx, "Hotel type", a.catalogService.HotelTypes)
	if err != nil {
		return criteria, err
	}

	filters, err := a.catalogService.Filters(ctx)
	if err != nil {
		// lookups are optional: a failed fetch leaves the groups empty
		a.logger.Warn(ctx, "failed to load filters", "error", err.Error())
		return criteria, nil
	}

	criteria.DistanceName, err = a.promptDistance(filters.Distance)
	if err != nil {
		return criteria, err
	}
	criteria.SelectedFilters, err = a.promptFilters(filters.Regular)
	if err != nil {
		return criteria, err
	}
	return criteria, nil
}

// promptCategory shows one lookup list and returns the chosen category id,
// empty when skipped.
func (a *App) promptCategory(ctx context.Context, label string, fetch func(context.Context) ([]models.Category, error)) (string, error) {
	categories, err := fetch(ctx)
	if err != nil {
		a.logger.Warn(ctx, "failed to load categories", "label", label, "error", err.Error())
		return "", nil
	}
	if len(categories) == 0 {
		return "", nil
	}

	options := make([]string, 0, len(categories))
	for _, c := range categories {
		options = append(options, c.Name)
	}
	idx, err := GetChoice(a.reader, label+":", options, os.Stdout)
	if err != nil {
		return "", err
	}
	if idx < 0 {
		return "", nil
	}
	return categories[idx].ID, nil
}

func (a *App) promptDistance(distance []models.Filter) (string, error) {
	if len(distance) == 0 {
		return "", nil
	}
	options := make([]string, 0, len(distance))
	for _, f := range distance {
		options = append(options, f.Name)
	}
	idx, err := GetChoice(a.reader, "Distance:", options, os.Stdout)
	if err != nil {
		return "", err
	}
	if idx < 0 {
		return "", nil
	}
	return distance[idx].Name, nil
}

// promptFilters reads a comma-separated list of filter numbers; "all" selects
// every filter and an empty line selects none.
func (a *App) promptFilters(regular []models.Filter) ([]string, error) {
	if len(regular) == 0 {
		return nil, nil
	}

	printlnFn("Filters:")
	for i, f := range regular {
		printlnFn(fmt.Sprintf("  %d. %s", i+1, f.Name))
	}
	line, err := getSimpleText(a.reader, "Numbers, comma-separated ('all' for every filter, empty for none)", os.Stdout)
	if err != nil {
		return nil, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	if strings.EqualFold(line, "all") {
		names := make([]string, 0, len(regular))
		for _, f := range regular {
			names = append(names, f.Name)
		}
		return names, nil
	}

	var names []string
	for _, token := range strings.Split(line, ",") {
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(token), "%d", &n); err != nil || n < 1 || n > len(regular) {
			printlnFn("Skipping invalid filter:", token)
			continue
		}
		names = append(names, regular[n-1].Name)
	}
	return names, nil
}

func (a *App) renderResults(saved state.SavedSearch) {
	if len(saved.Results) == 0 {
		printlnFn("No hotels found.")
		return
	}
	printlnFn(fmt.Sprintf("Page %d of %d (%d hotels):",
		saved.Pagination.Current, saved.Pagination.PageCount(), saved.Pagination.Total))
	for i, h := range saved.Results {
		printlnFn(fmt.Sprintf("  %d. %s — %s, %s (%s)", i+1, h.Name, h.CountryName, h.RegionName, h.TypeName))
	}
	printlnFn("Commands: next, prev, open <n>")
}
