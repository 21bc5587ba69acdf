package inquiry

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nilinki/internal/domain"
)

// BandResolver maps an authenticated band account to its band.
type BandResolver interface {
	GetByOwnerID(ctx context.Context, ownerID string) (*domain.Band, error)
}

// Store is the inquiry persistence surface the dashboard needs.
type Store interface {
	GetByID(ctx context.Context, id string) (*domain.BookingInquiry, error)
	GetByBandID(ctx context.Context, bandID string, status *domain.InquiryStatus) ([]domain.BookingInquiry, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.BookingInquiry, error)
	UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) error
	CountByStatus(ctx context.Context, bandID string) (map[domain.InquiryStatus]int64, error)
}

type Service struct {
	bands BandResolver
	store Store
}

func NewService(bands BandResolver, store Store) *Service {
	return &Service{bands: bands, store: store}
}

func (s *Service) resolveBand(ctx context.Context, ownerID string) (*domain.Band, error) {
	band, err := s.bands.GetByOwnerID(ctx, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoBand
	}
	if err != nil {
		return nil, err
	}
	return band, nil
}

// ListForOwner returns the owner's band inquiries, newest first. statusFilter
// is optional; an unknown value is rejected rather than silently ignored.
func (s *Service) ListForOwner(ctx context.Context, ownerID, statusFilter string) ([]domain.BookingInquiry, error) {
	band, err := s.resolveBand(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var status *domain.InquiryStatus
	if statusFilter != "" {
		st := domain.InquiryStatus(statusFilter)
		if !domain.ValidInquiryStatus(st) {
			return nil, ErrInvalidStatus
		}
		status = &st
	}

	return s.store.GetByBandID(ctx, band.ID, status)
}

// StatsForOwner returns per-status counts for the owner's band.
func (s *Service) StatsForOwner(ctx context.Context, ownerID string) (Stats, error) {
	band, err := s.resolveBand(ctx, ownerID)
	if err != nil {
		return Stats{}, err
	}

	counts, err := s.store.CountByStatus(ctx, band.ID)
	if err != nil {
		return Stats{}, err
	}
	return statsFromCounts(counts), nil
}

// UpdateStatus moves one of the owner's inquiries along the status graph.
// Only the band that received the inquiry may change it, and only along
// allowed edges: pending may be accepted or declined, accepted may be
// completed, and declined and completed are final.
func (s *Service) UpdateStatus(ctx context.Context, ownerID, inquiryID, newStatus string) (*domain.BookingInquiry, error) {
	status := domain.InquiryStatus(newStatus)
	if !domain.ValidInquiryStatus(status) {
		return nil, ErrInvalidStatus
	}

	band, err := s.resolveBand(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	inq, err := s.store.GetByID(ctx, inquiryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInquiryNotFound
	}
	if err != nil {
		return nil, err
	}
	if inq.BandID != band.ID {
		return nil, ErrNotOwner
	}
	if !domain.CanTransition(inq.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.store.UpdateStatus(ctx, inquiryID, status); err != nil {
		return nil, err
	}
	inq.Status = status
	return inq, nil
}

// ListForClient returns the client's own quote requests, newest first.
func (s *Service) ListForClient(ctx context.Context, clientID string) ([]domain.BookingInquiry, error) {
	return s.store.GetByClientID(ctx, clientID)
}
