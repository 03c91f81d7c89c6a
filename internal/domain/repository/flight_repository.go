package repository

import (
	"context"

	"farewatch-service/internal/domain/entity"
)

// FlightRepository defines the interface to the fare search provider.
type FlightRepository interface {
	// SearchDepartures issues one search request for flights leaving origin
	// on departureDate (YYYY-MM-DD) and returns the candidate offers.
	SearchDepartures(ctx context.Context, departureDate string, settings entity.SearchSettings) ([]entity.Offer, error)
}
