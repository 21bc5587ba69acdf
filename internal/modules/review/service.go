package review

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"nilinki/internal/domain"
)

const minContentLength = 10

// BookingGate answers whether a client has a completed booking with a band.
type BookingGate interface {
	HasCompletedForClient(ctx context.Context, clientID, bandID string) (bool, error)
}

// Store is the review persistence surface.
type Store interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByBandID(ctx context.Context, bandID string) ([]domain.Review, error)
	ExistsByAuthor(ctx context.Context, authorID, bandID string) (bool, error)
}

type Service struct {
	bookings BookingGate
	store    Store
}

func NewService(bookings BookingGate, store Store) *Service {
	return &Service{bookings: bookings, store: store}
}

// CheckEligibility computes the review gate for one author and band. An
// empty authorID means an anonymous visitor: everything is false, never an
// error.
func (s *Service) CheckEligibility(ctx context.Context, authorID, bandID string) (Eligibility, error) {
	if authorID == "" {
		return Eligibility{}, nil
	}

	completed, err := s.bookings.HasCompletedForClient(ctx, authorID, bandID)
	if err != nil {
		return Eligibility{}, err
	}
	reviewed, err := s.store.ExistsByAuthor(ctx, authorID, bandID)
	if err != nil {
		return Eligibility{}, err
	}

	return Eligibility{
		HasCompletedBooking: completed,
		HasReviewed:         reviewed,
		CanReview:           completed && !reviewed,
	}, nil
}

// Create records a review after re-checking eligibility. The unique index
// on (band_id, author_id) backstops the pre-check under concurrency.
func (s *Service) Create(ctx context.Context, authorID string, req CreateRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	content := strings.TrimSpace(req.Content)
	if len(content) < minContentLength {
		return nil, ErrContentTooShort
	}

	elig, err := s.CheckEligibility(ctx, authorID, req.BandID)
	if err != nil {
		return nil, err
	}
	if elig.HasReviewed {
		return nil, ErrAlreadyExists
	}
	if !elig.HasCompletedBooking {
		return nil, ErrNotEligible
	}

	rv := &domain.Review{
		BandID:    req.BandID,
		AuthorID:  authorID,
		Rating:    req.Rating,
		Content:   content,
		EventType: strings.TrimSpace(req.EventType),
	}
	if err := s.store.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return rv, nil
}

// ListByBand returns a band's reviews, newest first.
func (s *Service) ListByBand(ctx context.Context, bandID string) ([]domain.Review, error) {
	return s.store.GetByBandID(ctx, bandID)
}

// isUniqueViolation detects a duplicate-key insert on both backends:
// pgconn exposes SQLSTATE 23505, the sqlite driver only a message.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
