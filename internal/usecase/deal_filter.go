package usecase

import (
	"farewatch-service/internal/domain/entity"
)

// FilterOffers keeps the offers priced at or below their duration-scaled
// ceiling. Offers without a usable duration are dropped. When the settings
// ask for direct flights only, offers with stops are dropped even if the
// upstream search already filtered on that. Kept offers carry the threshold
// they were measured against.
func FilterOffers(offers []entity.Offer, settings entity.SearchSettings) []entity.Offer {
	deals := make([]entity.Offer, 0)
	for _, offer := range offers {
		if offer.DurationMin <= 0 {
			continue
		}
		if settings.DirectOnly && offer.Transfers != 0 {
			continue
		}
		threshold := MaxPriceForDuration(offer.DurationMin, settings)
		if offer.Price <= threshold {
			offer.Threshold = threshold
			deals = append(deals, offer)
		}
	}
	return deals
}
