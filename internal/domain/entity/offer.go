package entity

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
)

// Offer represents a single one-way flight search result.
type Offer struct {
	Origin       string  `json:"origin" bson:"origin"`
	Destination  string  `json:"destination" bson:"destination"`
	DepartureAt  string  `json:"departure_at" bson:"departureAt"`
	Price        float64 `json:"price" bson:"price"`
	Currency     string  `json:"currency" bson:"currency"`
	DurationMin  int     `json:"duration_min" bson:"durationMin"`
	Transfers    int     `json:"transfers" bson:"transfers"`
	Airline      string  `json:"airline" bson:"airline"`
	FlightNumber string  `json:"flight_number" bson:"flightNumber"`
	Link         string  `json:"link" bson:"link"`

	// Threshold is the maximum acceptable price for this offer's duration,
	// recorded by the price filter when the offer passes.
	Threshold float64 `json:"threshold" bson:"threshold"`
}

// Hash returns the deduplication key for an offer. Offers with the same
// route, departure timestamp and price collapse to the same key across runs.
func (o Offer) Hash() string {
	key := fmt.Sprintf("%s-%s-%s-%s",
		o.Origin,
		o.Destination,
		o.DepartureAt,
		strconv.FormatFloat(o.Price, 'f', -1, 64),
	)
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])[:12]
}
