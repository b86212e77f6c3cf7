package models

type FlightOffer struct {
	ID                    string      `json:"id"`
	Itineraries           []Itinerary `json:"itineraries"`
	Price                 Price       `json:"price"`
	NumberOfBookableSeats int         `json:"numberOfBookableSeats,omitempty"`
	CabinClass            string      `json:"class,omitempty"`
	BestValueScore        float64     `json:"best_value_score,omitempty"`
}

type Itinerary struct {
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   SegmentStop `json:"departure"`
	Arrival     SegmentStop `json:"arrival"`
	CarrierCode string      `json:"carrierCode"`
	Number      string      `json:"number"`
	Aircraft    Aircraft    `json:"aircraft"`
}

type SegmentStop struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Aircraft struct {
	Code string `json:"code"`
}

type Price struct {
	Total     float64 `json:"total,string"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted,omitempty"`
}

// Segments returns the legs of the first itinerary, which is the one the
// filter pipeline evaluates. Outbound and return journeys arrive as
// separate offer lists, each with a single itinerary.
func (f FlightOffer) Segments() []Segment {
	if len(f.Itineraries) == 0 {
		return nil
	}
	return f.Itineraries[0].Segments
}

func (f FlightOffer) Stops() int {
	segs := f.Segments()
	if len(segs) == 0 {
		return 0
	}
	return len(segs) - 1
}

func (f FlightOffer) CarrierCode() string {
	segs := f.Segments()
	if len(segs) == 0 {
		return ""
	}
	return segs[0].CarrierCode
}
