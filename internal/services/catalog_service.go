package services

import (
	"strings"

	"wanderly/internal/catalog"
	"wanderly/internal/models/request_models"
)

type CatalogServiceInterface interface {
	Hotels(query request_models.CatalogQuery) []catalog.Hotel
	Places(query request_models.CatalogQuery) []catalog.Place
	Restaurants(query request_models.CatalogQuery) []catalog.Restaurant
}

type CatalogService struct {
	catalog catalog.Catalog
	ranker  *catalog.Ranker
}

func NewCatalogService(c catalog.Catalog, ranker *catalog.Ranker) CatalogServiceInterface {
	return &CatalogService{
		catalog: c,
		ranker:  ranker,
	}
}

func (s *CatalogService) Hotels(query request_models.CatalogQuery) []catalog.Hotel {
	return s.ranker.RankHotels(s.catalog.Hotels(query.Destination), query.Budget)
}

func (s *CatalogService) Places(query request_models.CatalogQuery) []catalog.Place {
	return s.ranker.RankPlaces(s.catalog.Places(query.Destination), preferenceFor(query))
}

func (s *CatalogService) Restaurants(query request_models.CatalogQuery) []catalog.Restaurant {
	return s.ranker.RankRestaurants(
		s.catalog.Restaurants(query.Destination),
		preferenceFor(query),
		dietConstraints(query.Constraints),
	)
}

func preferenceFor(query request_models.CatalogQuery) string {
	parts := append([]string{query.Style, query.TravelType}, query.Constraints...)
	return catalog.PreferenceText(parts...)
}

// SplitConstraints accepts both repeated and comma separated query values.
func SplitConstraints(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
