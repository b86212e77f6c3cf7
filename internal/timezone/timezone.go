package timezone

import (
	"strings"
	"time"
)

var (
	BRT *time.Location // UTC-3 - Brasília time (most of the country)
	AMT *time.Location // UTC-4 - Amazon time (Manaus, Cuiabá)
	ACT *time.Location // UTC-5 - Acre time (Rio Branco)
)

func init() {
	BRT = time.FixedZone("BRT", -3*60*60)
	AMT = time.FixedZone("AMT", -4*60*60)
	ACT = time.FixedZone("ACT", -5*60*60)
}

var airportTimezones = map[string]string{
	// BRT (UTC-3)
	"GRU": "BRT", // São Paulo - Guarulhos
	"CGH": "BRT", // São Paulo - Congonhas
	"VCP": "BRT", // Campinas - Viracopos
	"GIG": "BRT", // Rio de Janeiro - Galeão
	"SDU": "BRT", // Rio de Janeiro - Santos Dumont
	"BSB": "BRT", // Brasília
	"CNF": "BRT", // Belo Horizonte - Confins
	"SSA": "BRT", // Salvador
	"REC": "BRT", // Recife
	"FOR": "BRT", // Fortaleza
	"CWB": "BRT", // Curitiba - Afonso Pena
	"POA": "BRT", // Porto Alegre - Salgado Filho
	"BEL": "BRT", // Belém - Val de Cans
	"GYN": "BRT", // Goiânia
	"FLN": "BRT", // Florianópolis
	"NAT": "BRT", // Natal
	"MCZ": "BRT", // Maceió
	"SLZ": "BRT", // São Luís
	"VIX": "BRT", // Vitória
	"JPA": "BRT", // João Pessoa
	"THE": "BRT", // Teresina
	"AJU": "BRT", // Aracaju

	// AMT (UTC-4)
	"MAO": "AMT", // Manaus - Eduardo Gomes
	"CGB": "AMT", // Cuiabá - Marechal Rondon
	"CGR": "AMT", // Campo Grande
	"PVH": "AMT", // Porto Velho
	"BVB": "AMT", // Boa Vista

	// ACT (UTC-5)
	"RBR": "ACT", // Rio Branco
	"CZS": "ACT", // Cruzeiro do Sul
}

func GetTimezoneByAirport(code string) string {
	code = strings.ToUpper(code)
	if tz, ok := airportTimezones[code]; ok {
		return tz
	}
	return "BRT"
}

func GetLocationByAirport(code string) *time.Location {
	switch GetTimezoneByAirport(code) {
	case "AMT":
		return AMT
	case "ACT":
		return ACT
	default:
		return BRT
	}
}

// ParseLocal parses a timestamp the flight provider reports in airport-local
// time. Offset-carrying formats are honored as given; bare local formats are
// anchored to the airport's zone so cross-zone durations come out right.
func ParseLocal(timeStr, airportCode string) (time.Time, error) {
	offsetFormats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05-07:00",
		"2006-01-02T15:04:05-0700",
		"2006-01-02T15:04:05Z",
	}
	for _, format := range offsetFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t, nil
		}
	}

	loc := GetLocationByAirport(airportCode)
	localFormats := []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
	}
	for _, format := range localFormats {
		if t, err := time.ParseInLocation(format, timeStr, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &time.ParseError{
		Value:   timeStr,
		Message: "unable to parse time string",
	}
}
