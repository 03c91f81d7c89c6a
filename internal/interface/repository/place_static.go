package repository

import (
	"context"
	"strings"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/internal/domain/repository"
)

// staticPlaces covers the airports that show up most in searches from
// central Europe, so digests stay readable without a master-data database.
var staticPlaces = map[string]entity.Place{
	"BUD": {Code: "BUD", AirportName: "Budapest Liszt Ferenc", CityName: "Budapest"},
	"VIE": {Code: "VIE", AirportName: "Vienna International", CityName: "Vienna"},
	"PRG": {Code: "PRG", AirportName: "Vaclav Havel Prague", CityName: "Prague"},
	"BTS": {Code: "BTS", AirportName: "Bratislava M. R. Stefanik", CityName: "Bratislava"},
	"WAW": {Code: "WAW", AirportName: "Warsaw Chopin", CityName: "Warsaw"},
	"KRK": {Code: "KRK", AirportName: "Krakow John Paul II", CityName: "Krakow"},
	"BER": {Code: "BER", AirportName: "Berlin Brandenburg", CityName: "Berlin"},
	"MUC": {Code: "MUC", AirportName: "Munich Franz Josef Strauss", CityName: "Munich"},
	"FRA": {Code: "FRA", AirportName: "Frankfurt am Main", CityName: "Frankfurt"},
	"HHN": {Code: "HHN", AirportName: "Frankfurt-Hahn", CityName: "Frankfurt"},
	"CGN": {Code: "CGN", AirportName: "Cologne Bonn", CityName: "Cologne"},
	"HAM": {Code: "HAM", AirportName: "Hamburg", CityName: "Hamburg"},
	"DUS": {Code: "DUS", AirportName: "Dusseldorf", CityName: "Dusseldorf"},
	"AMS": {Code: "AMS", AirportName: "Amsterdam Schiphol", CityName: "Amsterdam"},
	"EIN": {Code: "EIN", AirportName: "Eindhoven", CityName: "Eindhoven"},
	"BRU": {Code: "BRU", AirportName: "Brussels", CityName: "Brussels"},
	"CRL": {Code: "CRL", AirportName: "Brussels South Charleroi", CityName: "Charleroi"},
	"CDG": {Code: "CDG", AirportName: "Paris Charles de Gaulle", CityName: "Paris"},
	"ORY": {Code: "ORY", AirportName: "Paris Orly", CityName: "Paris"},
	"BVA": {Code: "BVA", AirportName: "Paris Beauvais", CityName: "Beauvais"},
	"LHR": {Code: "LHR", AirportName: "London Heathrow", CityName: "London"},
	"LGW": {Code: "LGW", AirportName: "London Gatwick", CityName: "London"},
	"STN": {Code: "STN", AirportName: "London Stansted", CityName: "London"},
	"LTN": {Code: "LTN", AirportName: "London Luton", CityName: "London"},
	"DUB": {Code: "DUB", AirportName: "Dublin", CityName: "Dublin"},
	"EDI": {Code: "EDI", AirportName: "Edinburgh", CityName: "Edinburgh"},
	"MAD": {Code: "MAD", AirportName: "Madrid Barajas", CityName: "Madrid"},
	"BCN": {Code: "BCN", AirportName: "Barcelona El Prat", CityName: "Barcelona"},
	"PMI": {Code: "PMI", AirportName: "Palma de Mallorca", CityName: "Palma"},
	"AGP": {Code: "AGP", AirportName: "Malaga Costa del Sol", CityName: "Malaga"},
	"ALC": {Code: "ALC", AirportName: "Alicante-Elche", CityName: "Alicante"},
	"LIS": {Code: "LIS", AirportName: "Lisbon Humberto Delgado", CityName: "Lisbon"},
	"OPO": {Code: "OPO", AirportName: "Porto Francisco Sa Carneiro", CityName: "Porto"},
	"FCO": {Code: "FCO", AirportName: "Rome Fiumicino", CityName: "Rome"},
	"CIA": {Code: "CIA", AirportName: "Rome Ciampino", CityName: "Rome"},
	"MXP": {Code: "MXP", AirportName: "Milan Malpensa", CityName: "Milan"},
	"BGY": {Code: "BGY", AirportName: "Milan Bergamo", CityName: "Bergamo"},
	"VCE": {Code: "VCE", AirportName: "Venice Marco Polo", CityName: "Venice"},
	"NAP": {Code: "NAP", AirportName: "Naples", CityName: "Naples"},
	"ATH": {Code: "ATH", AirportName: "Athens Eleftherios Venizelos", CityName: "Athens"},
	"SKG": {Code: "SKG", AirportName: "Thessaloniki Makedonia", CityName: "Thessaloniki"},
	"SOF": {Code: "SOF", AirportName: "Sofia", CityName: "Sofia"},
	"OTP": {Code: "OTP", AirportName: "Bucharest Henri Coanda", CityName: "Bucharest"},
	"CLJ": {Code: "CLJ", AirportName: "Cluj Avram Iancu", CityName: "Cluj-Napoca"},
	"BEG": {Code: "BEG", AirportName: "Belgrade Nikola Tesla", CityName: "Belgrade"},
	"ZAG": {Code: "ZAG", AirportName: "Zagreb Franjo Tudman", CityName: "Zagreb"},
	"SPU": {Code: "SPU", AirportName: "Split", CityName: "Split"},
	"LJU": {Code: "LJU", AirportName: "Ljubljana Joze Pucnik", CityName: "Ljubljana"},
	"TIA": {Code: "TIA", AirportName: "Tirana Nene Tereza", CityName: "Tirana"},
	"SKP": {Code: "SKP", AirportName: "Skopje", CityName: "Skopje"},
	"CPH": {Code: "CPH", AirportName: "Copenhagen Kastrup", CityName: "Copenhagen"},
	"ARN": {Code: "ARN", AirportName: "Stockholm Arlanda", CityName: "Stockholm"},
	"OSL": {Code: "OSL", AirportName: "Oslo Gardermoen", CityName: "Oslo"},
	"HEL": {Code: "HEL", AirportName: "Helsinki Vantaa", CityName: "Helsinki"},
	"RIX": {Code: "RIX", AirportName: "Riga", CityName: "Riga"},
	"VNO": {Code: "VNO", AirportName: "Vilnius", CityName: "Vilnius"},
	"TLL": {Code: "TLL", AirportName: "Tallinn Lennart Meri", CityName: "Tallinn"},
	"ZRH": {Code: "ZRH", AirportName: "Zurich", CityName: "Zurich"},
	"GVA": {Code: "GVA", AirportName: "Geneva", CityName: "Geneva"},
	"IST": {Code: "IST", AirportName: "Istanbul", CityName: "Istanbul"},
	"SAW": {Code: "SAW", AirportName: "Istanbul Sabiha Gokcen", CityName: "Istanbul"},
	"KEF": {Code: "KEF", AirportName: "Keflavik", CityName: "Reykjavik"},
	"MLA": {Code: "MLA", AirportName: "Malta", CityName: "Valletta"},
	"LCA": {Code: "LCA", AirportName: "Larnaca Glafcos Clerides", CityName: "Larnaca"},
	"TLV": {Code: "TLV", AirportName: "Tel Aviv Ben Gurion", CityName: "Tel Aviv"},
	"DXB": {Code: "DXB", AirportName: "Dubai International", CityName: "Dubai"},
}

// StaticPlaceRepository serves the built-in airport directory. It backs the
// digest formatter when no master-data database is configured.
type StaticPlaceRepository struct{}

// NewStaticPlaceRepository creates a new static place repository
func NewStaticPlaceRepository() repository.PlaceRepository {
	return &StaticPlaceRepository{}
}

// GetByCode finds an airport by IATA code
func (r *StaticPlaceRepository) GetByCode(ctx context.Context, code string) (*entity.Place, error) {
	if place, ok := staticPlaces[strings.ToUpper(code)]; ok {
		return &place, nil
	}
	return nil, repository.ErrPlaceNotFound
}
