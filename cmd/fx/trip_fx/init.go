package trip_fx

import (
	"go.uber.org/fx"
	"wanderly/internal/catalog"
	"wanderly/internal/repositories"
	"wanderly/internal/services"
)

var Module = fx.Provide(
	provideCatalog, catalog.NewRanker, provideCatalogService, provideTripPlannerService)

func provideCatalog() catalog.Catalog {
	return catalog.NewStaticCatalog()
}

func provideCatalogService(c catalog.Catalog, ranker *catalog.Ranker) services.CatalogServiceInterface {
	return services.NewCatalogService(c, ranker)
}

func provideTripPlannerService(c catalog.Catalog, itineraryRepo repositories.ItineraryRepository) services.TripPlannerServiceInterface {
	return services.NewTripPlannerService(c, itineraryRepo)
}
