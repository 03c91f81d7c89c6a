package usecase

import (
	"math"

	"farewatch-service/internal/domain/entity"
)

// MaxPriceForDuration computes the price ceiling for a flight of the given
// duration: the base price, plus one increment for every started step beyond
// the base duration. A flight at or under the base duration gets the base
// price alone; the boundary belongs to the lower tier.
func MaxPriceForDuration(durationMinutes int, settings entity.SearchSettings) float64 {
	if durationMinutes <= settings.BaseDurationMinutes {
		return settings.BasePriceEUR
	}
	extraSteps := math.Ceil(float64(durationMinutes-settings.BaseDurationMinutes) / float64(settings.IncrementMinutes))
	return settings.BasePriceEUR + extraSteps*settings.PriceIncrementEUR
}
