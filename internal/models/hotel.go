package models

type HotelListing struct {
	ID               int64   `json:"hotel_id"`
	Name             string  `json:"name"`
	City             string  `json:"city,omitempty"`
	District         string  `json:"district,omitempty"`
	PhotoURL         string  `json:"main_photo_url,omitempty"`
	StarClass        float64 `json:"class"`
	ClassEstimated   bool    `json:"class_is_estimated"`
	ReviewScore      float64 `json:"review_score"`
	ReviewScoreWord  string  `json:"review_score_word,omitempty"`
	ReviewCount      int     `json:"review_nr"`
	MinTotalPrice    float64 `json:"min_total_price"`
	Currency         string  `json:"currencycode"`
	Formatted        string  `json:"formatted_price,omitempty"`
	Breakfast        bool    `json:"breakfast_included"`
	FreeCancellation bool    `json:"free_cancellation"`
	Preferred        bool    `json:"preferred"`
	PreferredPlus    bool    `json:"preferred_plus"`

	// DistanceToCenter is kept as the localized string the hotel provider
	// returns ("1,2 km"). Parsing happens at sort time with a strict
	// contract, see filter.ParseDistanceKm.
	DistanceToCenter string `json:"distance_to_cc"`

	Timezone string `json:"timezone,omitempty"`
	URL      string `json:"url,omitempty"`
}
