package domain

import (
	"math"
	"time"
)

// RatingStat is the raw material for a band's derived rating aggregate.
type RatingStat struct {
	Sum   int64
	Count int64
}

// AverageRating rounds the mean rating to one decimal place; zero when the
// band has no reviews.
func (s RatingStat) AverageRating() float64 {
	if s.Count == 0 {
		return 0
	}
	return math.Round(float64(s.Sum)/float64(s.Count)*10) / 10
}

type Review struct {
	ID        string    `json:"id"`
	BandID    string    `json:"band_id"`
	AuthorID  string    `json:"author_id"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content,omitempty"`
	EventType string    `json:"event_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
