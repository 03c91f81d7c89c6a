package entity

import "testing"

func TestOfferHash(t *testing.T) {
	tests := []struct {
		name  string
		offer Offer
		want  string
	}{
		{
			name: "IntegerPrice",
			offer: Offer{
				Origin:      "BUD",
				Destination: "BCN",
				DepartureAt: "2025-09-10T06:25:00+02:00",
				Price:       25,
			},
			want: "d767c06adfda",
		},
		{
			name: "FractionalPrice",
			offer: Offer{
				Origin:      "BUD",
				Destination: "BCN",
				DepartureAt: "2025-09-10T06:25:00+02:00",
				Price:       25.5,
			},
			want: "67710270c03e",
		},
		{
			name: "OtherRoute",
			offer: Offer{
				Origin:      "BUD",
				Destination: "LIS",
				DepartureAt: "2025-10-02T11:40:00+01:00",
				Price:       37.5,
			},
			want: "4e01537292e3",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.offer.Hash(); got != tc.want {
				t.Fatalf("expected hash %s, got %s", tc.want, got)
			}
		})
	}
}

func TestOfferHashIgnoresNonKeyFields(t *testing.T) {
	a := Offer{
		Origin:      "BUD",
		Destination: "BCN",
		DepartureAt: "2025-09-10T06:25:00+02:00",
		Price:       25,
	}
	b := a
	b.Airline = "W6"
	b.FlightNumber = "2375"
	b.DurationMin = 155
	b.Threshold = 40

	if a.Hash() != b.Hash() {
		t.Fatalf("hash changed with non-key fields: %s vs %s", a.Hash(), b.Hash())
	}
}

func TestOfferHashDistinguishesPrice(t *testing.T) {
	a := Offer{Origin: "BUD", Destination: "BCN", DepartureAt: "2025-09-10T06:25:00+02:00", Price: 25}
	b := a
	b.Price = 26

	if a.Hash() == b.Hash() {
		t.Fatalf("offers with different prices collapsed to the same hash %s", a.Hash())
	}
}
