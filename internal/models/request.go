package models

// FlightFilter is the complete filter configuration for one flight result
// set. Price bounds are inclusive; a nil bound is inactive. A category
// selection is active iff it is non-empty, and an active selection admits a
// record iff the record's bucket label is a member.
type FlightFilter struct {
	PriceMin  *float64 `json:"price_min,omitempty"`
	PriceMax  *float64 `json:"price_max,omitempty"`
	Airlines  []string `json:"airlines,omitempty"`
	Stops     []string `json:"stops,omitempty"`
	Times     []string `json:"times,omitempty"`
	Durations []string `json:"durations,omitempty"`
}

// Reset restores the default configuration: no price bounds, no category
// selections. Applying a reset filter yields the full stored set.
func (f *FlightFilter) Reset() {
	*f = FlightFilter{}
}

// HotelFilter mirrors FlightFilter for hotel listings. Stars holds floored
// star-class selections (1-5). Amenities is conjunctive: every selected
// amenity must hold for a listing to pass.
type HotelFilter struct {
	PriceMin  *float64 `json:"price_min,omitempty"`
	PriceMax  *float64 `json:"price_max,omitempty"`
	Stars     []int    `json:"stars,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

func (f *HotelFilter) Reset() {
	*f = HotelFilter{}
}

type FlightSearchRequest struct {
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	DepartureDate string        `json:"departure_date"`
	ReturnDate    *string       `json:"return_date,omitempty"`
	Passengers    int           `json:"passengers"`
	CabinClass    string        `json:"cabin_class"`
	Currency      string        `json:"currency"`
	Filters       *FlightFilter `json:"filters,omitempty"`
	SortBy        string        `json:"sort_by,omitempty"`
}

func (r *FlightSearchRequest) Validate() error {
	if r.Origin == "" {
		return ErrMissingOrigin
	}
	if r.Destination == "" {
		return ErrMissingDestination
	}
	if r.DepartureDate == "" {
		return ErrMissingDepartureDate
	}
	if r.Passengers <= 0 {
		r.Passengers = 1
	}
	if r.CabinClass == "" {
		r.CabinClass = "ECONOMY"
	}
	if r.Currency == "" {
		r.Currency = "BRL"
	}
	return nil
}

type HotelSearchRequest struct {
	Location     string       `json:"location"`
	CheckIn      string       `json:"check_in"`
	CheckOut     string       `json:"check_out"`
	Rooms        int          `json:"rooms"`
	Guests       int          `json:"guests"`
	Children     int          `json:"children,omitempty"`
	ChildrenAges []int        `json:"children_ages,omitempty"`
	Currency     string       `json:"currency"`
	Filters      *HotelFilter `json:"filters,omitempty"`
	SortBy       string       `json:"sort_by,omitempty"`
}

func (r *HotelSearchRequest) Validate() error {
	if r.Location == "" {
		return ErrMissingLocation
	}
	if r.CheckIn == "" {
		return ErrMissingCheckIn
	}
	if r.CheckOut == "" {
		return ErrMissingCheckOut
	}
	if r.Rooms <= 0 {
		r.Rooms = 1
	}
	if r.Guests <= 0 {
		r.Guests = 1
	}
	if r.Children < 0 {
		r.Children = 0
	}
	if r.Currency == "" {
		r.Currency = "BRL"
	}
	if r.SortBy == "" {
		r.SortBy = "popularity"
	}
	return nil
}

// RefineFlightsRequest re-runs the filter/sort engine against a stored
// result set without touching the upstream provider.
type RefineFlightsRequest struct {
	SearchID string        `json:"search_id"`
	Filters  *FlightFilter `json:"filters,omitempty"`
	SortBy   string        `json:"sort_by,omitempty"`
}

func (r *RefineFlightsRequest) Validate() error {
	if r.SearchID == "" {
		return ErrMissingSearchID
	}
	return nil
}

type RefineHotelsRequest struct {
	SearchID string       `json:"search_id"`
	Filters  *HotelFilter `json:"filters,omitempty"`
	SortBy   string       `json:"sort_by,omitempty"`
}

func (r *RefineHotelsRequest) Validate() error {
	if r.SearchID == "" {
		return ErrMissingSearchID
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin        ValidationError = "origin is required"
	ErrMissingDestination   ValidationError = "destination is required"
	ErrMissingDepartureDate ValidationError = "departure_date is required"
	ErrMissingLocation      ValidationError = "location is required"
	ErrMissingCheckIn       ValidationError = "check_in is required"
	ErrMissingCheckOut      ValidationError = "check_out is required"
	ErrMissingSearchID      ValidationError = "search_id is required"
)
