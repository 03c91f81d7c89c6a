package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/internal/domain/repository"
	"farewatch-service/pkg/logger"
)

// AviasalesRepository queries the Aviasales prices-for-dates API
type AviasalesRepository struct {
	logger  logger.Logger
	baseURL string
	token   string
	client  *http.Client
}

// NewAviasalesRepository creates a new Aviasales repository
func NewAviasalesRepository(baseURL, token string, timeout time.Duration, logger logger.Logger) repository.FlightRepository {
	return &AviasalesRepository{
		logger:  logger,
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// SearchDepartures fetches one-way offers leaving origin on departureDate.
// An unsuccessful search reported by the API yields an empty result, not an
// error; transport failures and malformed bodies are fatal for the run.
func (r *AviasalesRepository) SearchDepartures(ctx context.Context, departureDate string, settings entity.SearchSettings) ([]entity.Offer, error) {
	params := url.Values{}
	params.Set("origin", settings.Origin)
	params.Set("departure_at", departureDate)
	params.Set("one_way", "true")
	params.Set("currency", settings.Currency)
	params.Set("market", settings.Market)
	params.Set("limit", strconv.Itoa(settings.Limit))
	params.Set("sorting", "price")
	params.Set("token", r.token)
	if settings.DirectOnly {
		params.Set("direct", "true")
	}

	searchURL := fmt.Sprintf("%s/aviasales/v3/prices_for_dates?%s", r.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return nil, &entity.RequestError{Op: "build flight search request", Err: err}
	}

	r.logger.Debug("Searching flights",
		"origin", settings.Origin,
		"departureAt", departureDate,
		"directOnly", settings.DirectOnly)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &entity.RequestError{Op: "flight search", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &entity.RequestError{
			Op:  "flight search",
			Err: fmt.Errorf("aviasales returned status %d", resp.StatusCode),
		}
	}

	var response struct {
		Success bool `json:"success"`
		Data    []struct {
			Origin       string  `json:"origin"`
			Destination  string  `json:"destination"`
			DepartureAt  string  `json:"departure_at"`
			Price        float64 `json:"price"`
			Airline      string  `json:"airline"`
			FlightNumber string  `json:"flight_number"`
			Transfers    int     `json:"transfers"`
			Duration     int     `json:"duration"`
			DurationTo   int     `json:"duration_to"`
			Link         string  `json:"link"`
		} `json:"data"`
		Error string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, &entity.RequestError{Op: "decode flight search response", Err: err}
	}

	if !response.Success {
		r.logger.Warn("Aviasales reported an unsuccessful search",
			"departureAt", departureDate,
			"error", response.Error)
		return []entity.Offer{}, nil
	}

	offers := make([]entity.Offer, 0, len(response.Data))
	for _, item := range response.Data {
		// Round trips report the outbound leg separately
		duration := item.DurationTo
		if duration <= 0 {
			duration = item.Duration
		}
		origin := item.Origin
		if origin == "" {
			origin = settings.Origin
		}
		offers = append(offers, entity.Offer{
			Origin:       origin,
			Destination:  item.Destination,
			DepartureAt:  item.DepartureAt,
			Price:        item.Price,
			Currency:     strings.ToUpper(settings.Currency),
			DurationMin:  duration,
			Transfers:    item.Transfers,
			Airline:      item.Airline,
			FlightNumber: item.FlightNumber,
			Link:         item.Link,
		})
	}

	r.logger.Debug("Flight search completed",
		"departureAt", departureDate,
		"offers", len(offers))

	return offers, nil
}
