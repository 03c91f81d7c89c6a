package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/internal/domain/repository"
	"farewatch-service/pkg/logger"
	"farewatch-service/pkg/metrics"
	"farewatch-service/templates"
)

// DealFinder runs the per-user flight searches and delivers one digest per
// user covering the deals they have not seen yet.
type DealFinder struct {
	flightRepo repository.FlightRepository
	messenger  repository.MessengerRepository
	digest     *templates.DigestBuilder
	defaults   entity.SearchSettings
	metrics    *metrics.Metrics
	logger     logger.Logger
	now        func() time.Time
}

// NewDealFinder creates a new deal finder
func NewDealFinder(flightRepo repository.FlightRepository, messenger repository.MessengerRepository, digest *templates.DigestBuilder, defaults entity.SearchSettings, m *metrics.Metrics, logger logger.Logger) *DealFinder {
	return &DealFinder{
		flightRepo: flightRepo,
		messenger:  messenger,
		digest:     digest,
		defaults:   defaults,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

// SearchAll runs the search for every subscribed user. One user's failure
// does not stop the others; all failures come back joined so the runner can
// report a bad exit.
func (f *DealFinder) SearchAll(ctx context.Context, state *entity.State) error {
	state.Normalize()

	chatIDs := make([]string, 0, len(state.Users))
	for id := range state.Users {
		chatIDs = append(chatIDs, id)
	}
	sort.Strings(chatIDs)

	f.logger.Info("Searching flights", "users", len(chatIDs))

	var errs []error
	for _, chatID := range chatIDs {
		if err := f.SearchForUser(ctx, chatID, state.Users[chatID]); err != nil {
			f.metrics.ErrorsCount.WithLabelValues("search").Inc()
			f.logger.Error("Search failed", "chatId", chatID, "error", err)
			errs = append(errs, fmt.Errorf("user %s: %w", chatID, err))
		}
	}
	return errors.Join(errs...)
}

// SearchForUser queries each day of the user's look-ahead window, filters the
// offers against their thresholds, and sends one digest of the deals they
// have not been told about. A failed search aborts before anything goes out,
// so the user never receives a digest built from half the window. The deal
// history only grows after a successful delivery; an undelivered digest is
// retried wholesale on the next run.
func (f *DealFinder) SearchForUser(ctx context.Context, chatID string, user *entity.User) error {
	settings := user.Settings.Apply(f.defaults)
	seen := user.SeenDeals()

	start := f.now()
	today := start.UTC()

	var newDeals []entity.Offer
	for delta := 0; delta < settings.DaysAhead; delta++ {
		day := today.AddDate(0, 0, delta).Format("2006-01-02")

		offers, err := f.flightRepo.SearchDepartures(ctx, day, settings)
		if err != nil {
			return err
		}
		f.metrics.OffersFetched.Add(float64(len(offers)))

		for _, deal := range FilterOffers(offers, settings) {
			hash := deal.Hash()
			if _, ok := seen[hash]; ok {
				continue
			}
			seen[hash] = struct{}{}
			newDeals = append(newDeals, deal)
		}
	}
	f.metrics.SearchTime.Observe(f.now().Sub(start).Seconds())

	name := user.Name
	if name == "" {
		name = chatID
	}
	f.logger.Info("Search completed",
		"user", name,
		"chatId", chatID,
		"daysAhead", settings.DaysAhead,
		"newDeals", len(newDeals))

	if len(newDeals) == 0 {
		return nil
	}
	f.metrics.DealsFound.Add(float64(len(newDeals)))

	sort.SliceStable(newDeals, func(i, j int) bool {
		return newDeals[i].Price < newDeals[j].Price
	})

	text := f.digest.Build(ctx, newDeals)
	if err := f.messenger.SendMessage(ctx, chatID, text); err != nil {
		return err
	}
	f.metrics.MessagesSent.Inc()

	hashes := make([]string, len(newDeals))
	for i, deal := range newDeals {
		hashes[i] = deal.Hash()
	}
	user.RememberDeals(hashes)

	return nil
}
