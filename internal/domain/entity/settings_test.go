package entity

import "testing"

func TestSettingsOverrideApplyEmpty(t *testing.T) {
	base := DefaultSearchSettings()

	got := SettingsOverride{}.Apply(base)

	if got != base {
		t.Fatalf("empty override changed settings: got %+v, want %+v", got, base)
	}
}

func TestSettingsOverrideApplyPartial(t *testing.T) {
	base := DefaultSearchSettings()

	origin := "VIE"
	days := 7
	direct := true
	override := SettingsOverride{
		Origin:     &origin,
		DaysAhead:  &days,
		DirectOnly: &direct,
	}

	got := override.Apply(base)

	if got.Origin != "VIE" {
		t.Fatalf("expected origin VIE, got %s", got.Origin)
	}
	if got.DaysAhead != 7 {
		t.Fatalf("expected 7 days ahead, got %d", got.DaysAhead)
	}
	if !got.DirectOnly {
		t.Fatalf("expected direct-only to be set")
	}

	// Unset fields must fall through to the base values.
	if got.BasePriceEUR != base.BasePriceEUR {
		t.Fatalf("base price changed: %v", got.BasePriceEUR)
	}
	if got.BaseDurationMinutes != base.BaseDurationMinutes {
		t.Fatalf("base duration changed: %v", got.BaseDurationMinutes)
	}
	if got.Currency != base.Currency || got.Market != base.Market || got.Limit != base.Limit {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	if base.Origin != "BUD" || base.DaysAhead != 3 || base.DirectOnly {
		t.Fatalf("base settings mutated by Apply: %+v", base)
	}
}

func TestSettingsOverrideApplyAll(t *testing.T) {
	base := DefaultSearchSettings()

	origin := "WAW"
	days := 10
	basePrice := 35.0
	baseDuration := 120
	increment := 15.0
	step := 45
	currency := "usd"
	market := "pl"
	limit := 50
	direct := true

	override := SettingsOverride{
		Origin:              &origin,
		DaysAhead:           &days,
		BasePriceEUR:        &basePrice,
		BaseDurationMinutes: &baseDuration,
		PriceIncrementEUR:   &increment,
		IncrementMinutes:    &step,
		Currency:            &currency,
		Market:              &market,
		Limit:               &limit,
		DirectOnly:          &direct,
	}

	got := override.Apply(base)

	want := SearchSettings{
		Origin:              "WAW",
		DaysAhead:           10,
		BasePriceEUR:        35,
		BaseDurationMinutes: 120,
		PriceIncrementEUR:   15,
		IncrementMinutes:    45,
		Currency:            "usd",
		Market:              "pl",
		Limit:               50,
		DirectOnly:          true,
	}
	if got != want {
		t.Fatalf("full override mismatch: got %+v, want %+v", got, want)
	}
}
