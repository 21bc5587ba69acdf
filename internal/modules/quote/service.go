package quote

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"nilinki/internal/domain"
	"nilinki/internal/pkg/logger"
	"nilinki/internal/pkg/task"
)

// BandLookup resolves the band a quote request is addressed to.
type BandLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Band, error)
}

// InquiryStore persists submitted quote requests.
type InquiryStore interface {
	Create(ctx context.Context, inq *domain.BookingInquiry) error
}

// OwnerLookup resolves the account behind a band so the inquiry alert can
// be addressed to the owner's email.
type OwnerLookup interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Notifier delivers emails for a submitted quote request. Implementations
// must tolerate being called off the request path; delivery failures are
// logged but never surfaced to the submitting client.
type Notifier interface {
	NotifyBandInquiry(ctx context.Context, n domain.InquiryNotification) error
	NotifyClientConfirmation(ctx context.Context, n domain.ClientConfirmation) error
}

type Service struct {
	bands     BandLookup
	owners    OwnerLookup
	inquiries InquiryStore
	notifier  Notifier
	tasks     *task.Runner
}

func NewService(bands BandLookup, owners OwnerLookup, inquiries InquiryStore, notifier Notifier, tasks *task.Runner) *Service {
	return &Service{bands: bands, owners: owners, inquiries: inquiries, notifier: notifier, tasks: tasks}
}

// Submit records a validated quote request against a band and kicks off
// email notifications in the background. clientID is empty only in theory;
// the handler rejects unauthenticated requests before calling Submit.
func (s *Service) Submit(ctx context.Context, clientID string, req QuoteRequest) (*SubmitResult, error) {
	band, err := s.bands.GetByID(ctx, req.BandID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBandNotFound
	}
	if err != nil {
		logger.Get().Error("failed to look up band for quote request",
			zap.String("band_id", req.BandID),
			zap.Error(err))
		return nil, ErrPersistFailure
	}

	inq := &domain.BookingInquiry{
		BandID:        band.ID,
		ClientID:      clientID,
		EventDate:     req.Date,
		EventType:     req.EventType,
		EventLocation: req.Location,
		Message:       synthesizeMessage(req),
		Status:        domain.InquiryPending,
	}
	if err := s.inquiries.Create(ctx, inq); err != nil {
		logger.Get().Error("failed to persist quote request",
			zap.String("band_id", band.ID),
			zap.Error(err))
		return nil, ErrPersistFailure
	}

	s.dispatchNotifications(band, req)

	return &SubmitResult{BandName: band.Name}, nil
}

// dispatchNotifications fires the band alert and the client confirmation
// off the request path. The inquiry is already saved; a failure here is an
// operational problem, not the client's.
func (s *Service) dispatchNotifications(band *domain.Band, req QuoteRequest) {
	bandNote := domain.InquiryNotification{
		BandName:      band.Name,
		ClientName:    req.Name,
		ClientEmail:   req.Email,
		ClientPhone:   req.Phone,
		EventType:     req.EventType,
		EventDate:     req.Date,
		EventLocation: req.Location,
		Message:       req.Details,
	}
	ownerID := band.OwnerID
	s.tasks.Go("notify-band-inquiry", func(ctx context.Context) error {
		owner, err := s.owners.GetByID(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("resolve band owner: %w", err)
		}
		bandNote.BandEmail = owner.Email
		return s.notifier.NotifyBandInquiry(ctx, bandNote)
	})

	confirm := domain.ClientConfirmation{
		ClientName:    req.Name,
		ClientEmail:   req.Email,
		BandName:      band.Name,
		EventType:     req.EventType,
		EventDate:     req.Date,
		EventLocation: req.Location,
	}
	s.tasks.Go("notify-client-confirmation", func(ctx context.Context) error {
		return s.notifier.NotifyClientConfirmation(ctx, confirm)
	})
}

// synthesizeMessage folds the contact fields into the stored message body so
// the band sees who asked even if the client account is later removed.
func synthesizeMessage(req QuoteRequest) string {
	contact := fmt.Sprintf("From: %s (%s)", req.Name, req.Email)
	if req.Phone != "" {
		contact += fmt.Sprintf(", Phone: %s", req.Phone)
	}
	return contact + "\n\n" + req.Details
}
