package entity

// SearchSettings controls one flight search: where to depart from, how far
// ahead to look, and the price ceiling parameters.
type SearchSettings struct {
	Origin              string  `yaml:"origin" json:"origin" bson:"origin"`
	DaysAhead           int     `yaml:"days_ahead" json:"days_ahead" bson:"daysAhead"`
	BasePriceEUR        float64 `yaml:"base_price_eur" json:"base_price_eur" bson:"basePriceEur"`
	BaseDurationMinutes int     `yaml:"base_duration_minutes" json:"base_duration_minutes" bson:"baseDurationMinutes"`
	PriceIncrementEUR   float64 `yaml:"price_increment_eur" json:"price_increment_eur" bson:"priceIncrementEur"`
	IncrementMinutes    int     `yaml:"increment_minutes" json:"increment_minutes" bson:"incrementMinutes"`
	Currency            string  `yaml:"currency" json:"currency" bson:"currency"`
	Market              string  `yaml:"market" json:"market" bson:"market"`
	Limit               int     `yaml:"limit" json:"limit" bson:"limit"`
	DirectOnly          bool    `yaml:"direct_only" json:"direct_only" bson:"directOnly"`
}

// DefaultSearchSettings returns the out-of-the-box search parameters.
func DefaultSearchSettings() SearchSettings {
	return SearchSettings{
		Origin:              "BUD",
		DaysAhead:           3,
		BasePriceEUR:        20,
		BaseDurationMinutes: 90,
		PriceIncrementEUR:   10,
		IncrementMinutes:    30,
		Currency:            "eur",
		Market:              "hu",
		Limit:               100,
		DirectOnly:          false,
	}
}

// SettingsOverride holds the sparse per-user deviations from the resolved
// default settings. Unset fields fall through to the defaults on Apply.
type SettingsOverride struct {
	Origin              *string  `json:"origin,omitempty" bson:"origin,omitempty"`
	DaysAhead           *int     `json:"days_ahead,omitempty" bson:"daysAhead,omitempty"`
	BasePriceEUR        *float64 `json:"base_price_eur,omitempty" bson:"basePriceEur,omitempty"`
	BaseDurationMinutes *int     `json:"base_duration_minutes,omitempty" bson:"baseDurationMinutes,omitempty"`
	PriceIncrementEUR   *float64 `json:"price_increment_eur,omitempty" bson:"priceIncrementEur,omitempty"`
	IncrementMinutes    *int     `json:"increment_minutes,omitempty" bson:"incrementMinutes,omitempty"`
	Currency            *string  `json:"currency,omitempty" bson:"currency,omitempty"`
	Market              *string  `json:"market,omitempty" bson:"market,omitempty"`
	Limit               *int     `json:"limit,omitempty" bson:"limit,omitempty"`
	DirectOnly          *bool    `json:"direct_only,omitempty" bson:"directOnly,omitempty"`
}

// Apply overlays the override on a base settings value and returns the
// effective settings. The base is not modified.
func (ov SettingsOverride) Apply(base SearchSettings) SearchSettings {
	out := base
	if ov.Origin != nil {
		out.Origin = *ov.Origin
	}
	if ov.DaysAhead != nil {
		out.DaysAhead = *ov.DaysAhead
	}
	if ov.BasePriceEUR != nil {
		out.BasePriceEUR = *ov.BasePriceEUR
	}
	if ov.BaseDurationMinutes != nil {
		out.BaseDurationMinutes = *ov.BaseDurationMinutes
	}
	if ov.PriceIncrementEUR != nil {
		out.PriceIncrementEUR = *ov.PriceIncrementEUR
	}
	if ov.IncrementMinutes != nil {
		out.IncrementMinutes = *ov.IncrementMinutes
	}
	if ov.Currency != nil {
		out.Currency = *ov.Currency
	}
	if ov.Market != nil {
		out.Market = *ov.Market
	}
	if ov.Limit != nil {
		out.Limit = *ov.Limit
	}
	if ov.DirectOnly != nil {
		out.DirectOnly = *ov.DirectOnly
	}
	return out
}
