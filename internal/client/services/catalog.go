package services

import (
	"context"
	"strings"

	"github.com/sunvoyage/portal/internal/client/api"
	"github.com/sunvoyage/portal/internal/client/models"
)

// Category type constants as the portal backend spells them.
const (
	CategoryCountry   = "COUNTRY"
	CategoryRegion    = "REGION"
	CategoryHotelType = "HOTEL TYPE"
)

// FilterSet is the search screen's view of the available filters: distance
// filters form a single-choice group, the rest are free multi-choice.
type FilterSet struct {
	Regular  []models.Filter
	Distance []models.Filter
}

// CatalogService serves the lookup data behind the search form and the
// browsable profile lists.
type CatalogService interface {
	Countries(ctx context.Context) ([]models.Category, error)
	Regions(ctx context.Context) ([]models.Category, error)
	HotelTypes(ctx context.Context) ([]models.Category, error)
	Filters(ctx context.Context) (FilterSet, error)
	Agencies(ctx context.Context) ([]models.Agency, error)
	EuroTrips(ctx context.Context) ([]models.EuroTrip, error)
}

type catalogService struct {
	client api.Client
}

func NewCatalogService(client api.Client) CatalogService {
	return &catalogService{client: client}
}

func (c *catalogService) Countries(ctx context.Context) ([]models.Category, error) {
	return c.client.CategoriesByType(ctx, CategoryCountry)
}

func (c *catalogService) Regions(ctx context.Context) ([]models.Category, error) {
	return c.client.CategoriesByType(ctx, CategoryRegion)
}

func (c *catalogService) HotelTypes(ctx context.Context) ([]models.Category, error) {
	return c.client.CategoriesByType(ctx, CategoryHotelType)
}

// Filters fetches every searchable attribute and partitions it by name:
// anything containing "Distance" belongs to the distance group.
func (c *catalogService) Filters(ctx context.Context) (FilterSet, error) {
	all, err := c.client.AvailableFilters(ctx)
	if err != nil {
		return FilterSet{}, err
	}
	var set FilterSet
	for _, f := range all {
		if strings.Contains(f.Name, "Distance") {
			set.Distance = append(set.Distance, f)
		} else {
			set.Regular = append(set.Regular, f)
		}
	}
	return set, nil
}

func (c *catalogService) Agencies(ctx context.Context) ([]models.Agency, error) {
	return c.client.Agencies(ctx)
}

func (c *catalogService) EuroTrips(ctx context.Context) ([]models.EuroTrip, error) {
	return c.client.EuroTrips(ctx)
}
