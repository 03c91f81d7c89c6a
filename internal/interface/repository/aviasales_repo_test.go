package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/pkg/logger"
)

const successBody = `{
	"success": true,
	"data": [
		{
			"origin": "BUD",
			"destination": "BCN",
			"departure_at": "2025-09-10T06:25:00+02:00",
			"price": 25,
			"airline": "W6",
			"flight_number": "2375",
			"transfers": 0,
			"duration": 310,
			"duration_to": 155,
			"link": "/search/BUDBCN1009"
		}
	]
}`

func newAviasalesServer(t *testing.T, status int, body string) (*httptest.Server, *url.URL) {
	t.Helper()
	var captured url.URL
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r.URL
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestSearchDeparturesBuildsQuery(t *testing.T) {
	srv, captured := newAviasalesServer(t, http.StatusOK, successBody)
	repo := NewAviasalesRepository(srv.URL, "test-token", 2*time.Second, logger.NewNop())

	if _, err := repo.SearchDepartures(context.Background(), "2025-09-10", entity.DefaultSearchSettings()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.Path != "/aviasales/v3/prices_for_dates" {
		t.Errorf("unexpected path: %s", captured.Path)
	}

	query := captured.Query()
	want := map[string]string{
		"origin":       "BUD",
		"departure_at": "2025-09-10",
		"one_way":      "true",
		"currency":     "eur",
		"market":       "hu",
		"limit":        "100",
		"sorting":      "price",
		"token":        "test-token",
	}
	for key, value := range want {
		if got := query.Get(key); got != value {
			t.Errorf("query %s: got %q, want %q", key, got, value)
		}
	}
	if query.Has("direct") {
		t.Errorf("direct param must be absent unless direct-only is on")
	}
}

func TestSearchDeparturesDirectOnlyParam(t *testing.T) {
	srv, captured := newAviasalesServer(t, http.StatusOK, successBody)
	repo := NewAviasalesRepository(srv.URL, "test-token", 2*time.Second, logger.NewNop())

	settings := entity.DefaultSearchSettings()
	settings.DirectOnly = true

	if _, err := repo.SearchDepartures(context.Background(), "2025-09-10", settings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := captured.Query().Get("direct"); got != "true" {
		t.Errorf("expected direct=true, got %q", got)
	}
}

func TestSearchDeparturesMapsResponse(t *testing.T) {
	body := `{
		"success": true,
		"data": [
			{
				"destination": "BCN",
				"departure_at": "2025-09-10T06:25:00+02:00",
				"price": 25.5,
				"airline": "W6",
				"flight_number": "2375",
				"transfers": 1,
				"duration": 310,
				"duration_to": 155,
				"link": "/search/BUDBCN1009"
			},
			{
				"origin": "BUD",
				"destination": "VIE",
				"departure_at": "2025-09-10T09:00:00+02:00",
				"price": 14,
				"duration": 45
			}
		]
	}`
	srv, _ := newAviasalesServer(t, http.StatusOK, body)
	repo := NewAviasalesRepository(srv.URL, "test-token", 2*time.Second, logger.NewNop())

	offers, err := repo.SearchDepartures(context.Background(), "2025-09-10", entity.DefaultSearchSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(offers))
	}

	first := offers[0]
	if first.Origin != "BUD" {
		t.Errorf("missing origin must fall back to the searched one, got %q", first.Origin)
	}
	if first.DurationMin != 155 {
		t.Errorf("outbound duration must win over the round-trip total, got %d", first.DurationMin)
	}
	if first.Currency != "EUR" {
		t.Errorf("currency must be upper-cased, got %q", first.Currency)
	}
	if first.Price != 25.5 || first.Transfers != 1 || first.Airline != "W6" || first.FlightNumber != "2375" {
		t.Errorf("unexpected offer mapping: %+v", first)
	}
	if first.Link != "/search/BUDBCN1009" {
		t.Errorf("unexpected link: %q", first.Link)
	}

	second := offers[1]
	if second.DurationMin != 45 {
		t.Errorf("duration must be used when duration_to is absent, got %d", second.DurationMin)
	}
}

func TestSearchDeparturesUnsuccessfulSearch(t *testing.T) {
	srv, _ := newAviasalesServer(t, http.StatusOK, `{"success": false, "error": "date out of range"}`)
	repo := NewAviasalesRepository(srv.URL, "test-token", 2*time.Second, logger.NewNop())

	offers, err := repo.SearchDepartures(context.Background(), "2030-01-01", entity.DefaultSearchSettings())
	if err != nil {
		t.Fatalf("an unsuccessful search is not an error, got: %v", err)
	}
	if len(offers) != 0 {
		t.Fatalf("expected no offers, got %d", len(offers))
	}
}

func TestSearchDeparturesServerError(t *testing.T) {
	srv, _ := newAviasalesServer(t, http.StatusInternalServerError, `{}`)
	repo := NewAviasalesRepository(srv.URL, "test-token", 2*time.Second, logger.NewNop())

	_, err := repo.SearchDepartures(context.Background(), "2025-09-10", entity.DefaultSearchSettings())
	if err == nil {
		t.Fatalf("expected an error")
	}
	var reqErr *entity.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected a request error, got %T: %v", err, err)
	}
}

func TestSearchDeparturesMalformedBody(t *testing.T) {
	srv, _ := newAviasalesServer(t, http.StatusOK, `{not json`)
	repo := NewAviasalesRepository(srv.URL, "test-token", 2*time.Second, logger.NewNop())

	_, err := repo.SearchDepartures(context.Background(), "2025-09-10", entity.DefaultSearchSettings())
	if err == nil {
		t.Fatalf("expected an error")
	}
	var reqErr *entity.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected a request error, got %T: %v", err, err)
	}
}
