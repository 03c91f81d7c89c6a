package templates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/internal/domain/repository"
	"farewatch-service/pkg/logger"
	"farewatch-service/pkg/utils"
)

// DigestBuilder renders passing offers into one Telegram digest message
type DigestBuilder struct {
	places repository.PlaceRepository
	logger logger.Logger
}

// NewDigestBuilder creates a new digest builder
func NewDigestBuilder(places repository.PlaceRepository, logger logger.Logger) *DigestBuilder {
	return &DigestBuilder{
		places: places,
		logger: logger,
	}
}

// Build renders the whole digest: a header with the deal count, then one
// block per offer separated by blank lines. Offers arrive already sorted.
func (b *DigestBuilder) Build(ctx context.Context, offers []entity.Offer) string {
	header := fmt.Sprintf("🔥 %d new cheap flight(s)!\n\n", len(offers))

	blocks := make([]string, 0, len(offers))
	for _, offer := range offers {
		blocks = append(blocks, b.FormatOffer(ctx, offer))
	}

	return header + strings.Join(blocks, "\n\n")
}

// FormatOffer renders one deal block. The destination code is enriched with
// a readable city name when the place directory knows it.
func (b *DigestBuilder) FormatOffer(ctx context.Context, offer entity.Offer) string {
	destination := offer.Destination
	if destination == "" {
		destination = "???"
	} else if place, err := b.places.GetByCode(ctx, destination); err == nil {
		if place.CityName != "" {
			destination = fmt.Sprintf("%s (%s)", destination, place.CityName)
		}
	} else if !errors.Is(err, repository.ErrPlaceNotFound) {
		b.logger.Debug("Place lookup failed", "code", destination, "error", err)
	}

	var link string
	if offer.Link != "" {
		link = "\nhttps://www.aviasales.com" + offer.Link
	}

	return fmt.Sprintf("✈️ %s → %s\n   %s | %s | %s\n   💰 %s %s (limit %.0f %s)\n   %s %s%s",
		offer.Origin,
		destination,
		utils.FormatDeparture(offer.DepartureAt),
		utils.FormatFlightDuration(offer.DurationMin),
		utils.FormatStops(offer.Transfers),
		utils.FormatPrice(offer.Price),
		offer.Currency,
		offer.Threshold,
		offer.Currency,
		offer.Airline,
		offer.FlightNumber,
		link,
	)
}
