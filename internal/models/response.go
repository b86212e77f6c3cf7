package models

type SearchMetadata struct {
	TotalResults    int    `json:"total_results"`
	UnfilteredCount int    `json:"unfiltered_count"`
	SearchTimeMs    int64  `json:"search_time_ms"`
	CacheHit        bool   `json:"cache_hit"`
	Currency        string `json:"currency,omitempty"`
}

type FlightSearchResponse struct {
	SearchID       string              `json:"search_id"`
	SearchCriteria FlightSearchRequest `json:"search_criteria"`
	Metadata       SearchMetadata      `json:"metadata"`
	Flights        []FlightOffer       `json:"flights"`
	ReturnFlights  []FlightOffer       `json:"return_flights,omitempty"`
}

type HotelSearchResponse struct {
	SearchID       string             `json:"search_id"`
	SearchCriteria HotelSearchRequest `json:"search_criteria"`
	Metadata       SearchMetadata     `json:"metadata"`
	Hotels         []HotelListing     `json:"hotels"`
}

type RefineFlightsResponse struct {
	SearchID string         `json:"search_id"`
	Metadata SearchMetadata `json:"metadata"`
	Flights  []FlightOffer  `json:"flights"`
}

type RefineHotelsResponse struct {
	SearchID string         `json:"search_id"`
	Metadata SearchMetadata `json:"metadata"`
	Hotels   []HotelListing `json:"hotels"`
}

type SuggestionResponse struct {
	Query       string       `json:"query"`
	Suggestions []Suggestion `json:"suggestions"`
}

type Suggestion struct {
	Name    string `json:"name"`
	Code    string `json:"code,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
