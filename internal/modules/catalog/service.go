package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"nilinki/internal/domain"
)

var ErrBandNotFound = errors.New("band not found")

// BandStore is the read surface the catalog needs from band storage.
type BandStore interface {
	List(ctx context.Context) ([]domain.Band, error)
	GetByID(ctx context.Context, id string) (*domain.Band, error)
	GetRateCards(ctx context.Context, bandID string) ([]domain.RateCard, error)
	MinRateCardPrices(ctx context.Context) (map[string]float64, error)
	GetVideos(ctx context.Context, bandID string) ([]domain.Video, error)
	GetUpcomingEvents(ctx context.Context, bandID string) ([]domain.BandEvent, error)
}

// ReviewStore supplies the rating aggregates and profile reviews.
type ReviewStore interface {
	GetByBandID(ctx context.Context, bandID string) ([]domain.Review, error)
	RatingStats(ctx context.Context) (map[string]domain.RatingStat, error)
}

type Service struct {
	bands   BandStore
	reviews ReviewStore
}

func NewService(bands BandStore, reviews ReviewStore) *Service {
	return &Service{bands: bands, reviews: reviews}
}

// ListBands returns the catalog, optionally narrowed by genre and location
// (case-insensitive substring match on location, exact on genre). Bands with
// no reviews report a zero rating, not an absent field.
func (s *Service) ListBands(ctx context.Context, genre, location string) ([]BandSummary, error) {
	bands, err := s.bands.List(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.reviews.RatingStats(ctx)
	if err != nil {
		return nil, err
	}
	minPrices, err := s.bands.MinRateCardPrices(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]BandSummary, 0, len(bands))
	for _, b := range bands {
		if genre != "" && !strings.EqualFold(b.Genre, genre) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(b.Location), strings.ToLower(location)) {
			continue
		}

		sum := BandSummary{Band: b}
		if st, ok := stats[b.ID]; ok {
			sum.AverageRating = st.AverageRating()
			sum.ReviewCount = st.Count
		}
		if price, ok := minPrices[b.ID]; ok {
			sum.StartingRate = &price
		}
		out = append(out, sum)
	}
	return out, nil
}

// GetBandProfile assembles the full profile page payload for one band.
func (s *Service) GetBandProfile(ctx context.Context, bandID string) (*BandProfile, error) {
	band, err := s.bands.GetByID(ctx, bandID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBandNotFound
	}
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.GetByBandID(ctx, bandID)
	if err != nil {
		return nil, err
	}
	cards, err := s.bands.GetRateCards(ctx, bandID)
	if err != nil {
		return nil, err
	}
	videos, err := s.bands.GetVideos(ctx, bandID)
	if err != nil {
		return nil, err
	}
	events, err := s.bands.GetUpcomingEvents(ctx, bandID)
	if err != nil {
		return nil, err
	}

	profile := &BandProfile{
		BandSummary: BandSummary{Band: *band},
		RateCards:   cards,
		Videos:      videos,
		Events:      events,
		Reviews:     reviews,
	}

	var stat domain.RatingStat
	for _, rv := range reviews {
		stat.Sum += int64(rv.Rating)
		stat.Count++
	}
	profile.AverageRating = stat.AverageRating()
	profile.ReviewCount = stat.Count

	for _, card := range cards {
		if profile.StartingRate == nil || card.Price < *profile.StartingRate {
			price := card.Price
			profile.StartingRate = &price
		}
	}

	return profile, nil
}
