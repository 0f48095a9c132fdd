package catalog

import (
	"context"
	"fmt"

	"ecoclean/models"

	"go.uber.org/zap"
)

// Fetcher lists available services. It is satisfied by *backend.Client.
type Fetcher interface {
	ListServices(ctx context.Context, token string) ([]models.CatalogService, error)
}

// CatalogService serves the browse-services page.
type CatalogService struct {
	Backend Fetcher
	Logger  *zap.Logger
}

// fallbackServices keeps the services page from ever rendering empty when
// the core backend is unreachable. No retry of the real endpoint follows.
var fallbackServices = []models.CatalogService{
	{
		ID:           "fallback-home-cleaning",
		Name:         "Home Cleaning",
		Description:  "Full home cleaning by a vetted EcoClean crew.",
		Price:        79,
		Availability: true,
	},
	{
		ID:           "fallback-waste-pickup",
		Name:         "Waste Pickup",
		Description:  "Scheduled doorstep pickup for household waste.",
		Price:        25,
		Availability: true,
	},
	{
		ID:           "fallback-garden-clearance",
		Name:         "Garden Clearance",
		Description:  "Green waste removal and garden tidy-up.",
		Price:        59,
		Availability: true,
	},
}

// ListAvailable returns the catalog filtered to available services, each
// annotated with its display price. Any fetch failure substitutes the
// static fallback list.
func (s *CatalogService) ListAvailable(ctx context.Context, token string) []models.CatalogService {
	services, err := s.Backend.ListServices(ctx, token)
	if err != nil {
		s.Logger.Warn("catalog fetch failed, serving fallback list", zap.Error(err))
		services = fallbackServices
	}

	available := make([]models.CatalogService, 0, len(services))
	for _, svc := range services {
		if !svc.Availability {
			continue
		}
		svc.DisplayPrice = DisplayPrice(svc.Price, svc.Discount)
		available = append(available, svc)
	}
	return available
}

// DisplayPrice formats the discounted price as a currency string, with a
// discount annotation when one applies.
func DisplayPrice(price, discount float64) string {
	if discount > 0 {
		final := price - price*discount/100
		return fmt.Sprintf("$%.2f (%.0f%% off)", final, discount)
	}
	return fmt.Sprintf("$%.2f", price)
}
