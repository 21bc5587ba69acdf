package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nilinki/internal/domain"
	"nilinki/internal/repository"
)

var ErrBandNotFound = errors.New("band not found")

// BandLookup verifies a band exists before it can be favorited, and loads
// band details for the favorites list.
type BandLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Band, error)
}

type Service struct {
	favorites *repository.FavoriteRepository
	bands     BandLookup
}

func NewService(favorites *repository.FavoriteRepository, bands BandLookup) *Service {
	return &Service{favorites: favorites, bands: bands}
}

func (s *Service) Add(ctx context.Context, userID, bandID string) (*domain.Favorite, error) {
	if _, err := s.bands.GetByID(ctx, bandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBandNotFound
		}
		return nil, err
	}
	return s.favorites.Add(ctx, userID, bandID)
}

func (s *Service) Remove(ctx context.Context, userID, bandID string) error {
	return s.favorites.Remove(ctx, userID, bandID)
}

// List returns the user's favorites with the band attached. Favorites whose
// band disappeared are dropped from the list rather than failing the call.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	favs, err := s.favorites.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Favorite, 0, len(favs))
	for _, f := range favs {
		band, err := s.bands.GetByID(ctx, f.BandID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		f.Band = band
		out = append(out, f)
	}
	return out, nil
}
