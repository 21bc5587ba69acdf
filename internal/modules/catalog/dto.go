package catalog

import "nilinki/internal/domain"

// BandSummary is a catalog row: the band plus the aggregates the listing
// page sorts and filters on.
type BandSummary struct {
	domain.Band
	AverageRating float64  `json:"average_rating"`
	ReviewCount   int64    `json:"review_count"`
	StartingRate  *float64 `json:"starting_rate,omitempty"`
}

// BandProfile is everything the profile page shows in one response.
type BandProfile struct {
	BandSummary
	RateCards []domain.RateCard  `json:"rate_cards"`
	Videos    []domain.Video     `json:"videos"`
	Events    []domain.BandEvent `json:"upcoming_events"`
	Reviews   []domain.Review    `json:"reviews"`
}
