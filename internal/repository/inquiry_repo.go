package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nilinki/internal/domain"
)

type InquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

type inquiryModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	BandID        string    `gorm:"column:band_id;index"`
	ClientID      string    `gorm:"column:client_id;index"`
	EventDate     string    `gorm:"column:event_date"`
	EventType     string    `gorm:"column:event_type"`
	EventLocation *string   `gorm:"column:event_location"`
	GuestCount    *int      `gorm:"column:guest_count"`
	Message       *string   `gorm:"column:message"`
	Status        string    `gorm:"column:status;index"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (inquiryModel) TableName() string { return "booking_inquiries" }

func toDomainInquiry(m inquiryModel) *domain.BookingInquiry {
	return &domain.BookingInquiry{
		ID:            m.ID,
		BandID:        m.BandID,
		ClientID:      m.ClientID,
		EventDate:     m.EventDate,
		EventType:     m.EventType,
		EventLocation: strVal(m.EventLocation),
		GuestCount:    m.GuestCount,
		Message:       strVal(m.Message),
		Status:        domain.InquiryStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toInquiryModel(q *domain.BookingInquiry) inquiryModel {
	return inquiryModel{
		ID:            q.ID,
		BandID:        q.BandID,
		ClientID:      q.ClientID,
		EventDate:     q.EventDate,
		EventType:     q.EventType,
		EventLocation: strPtr(q.EventLocation),
		GuestCount:    q.GuestCount,
		Message:       strPtr(q.Message),
		Status:        string(q.Status),
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func (r *InquiryRepository) Create(ctx context.Context, q *domain.BookingInquiry) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Status == "" {
		q.Status = domain.InquiryPending
	}
	m := toInquiryModel(q)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*q = *toDomainInquiry(m)
	return nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*domain.BookingInquiry, error) {
	var m inquiryModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainInquiry(m), nil
}

// GetByBandID returns a band's inquiries, newest first, optionally filtered
// by status.
func (r *InquiryRepository) GetByBandID(ctx context.Context, bandID string, status *domain.InquiryStatus) ([]domain.BookingInquiry, error) {
	q := r.db.WithContext(ctx).Where("band_id = ?", bandID)
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var rows []inquiryModel
	tx := q.Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.BookingInquiry, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainInquiry(m))
	}
	return out, nil
}

func (r *InquiryRepository) GetByClientID(ctx context.Context, clientID string) ([]domain.BookingInquiry, error) {
	var rows []inquiryModel
	tx := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.BookingInquiry, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainInquiry(m))
	}
	return out, nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&inquiryModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus returns inquiry counts per status for one band.
func (r *InquiryRepository) CountByStatus(ctx context.Context, bandID string) (map[domain.InquiryStatus]int64, error) {
	type row struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}
	var rows []row
	tx := r.db.WithContext(ctx).
		Model(&inquiryModel{}).
		Select("status, COUNT(1) AS count").
		Where("band_id = ?", bandID).
		Group("status").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make(map[domain.InquiryStatus]int64, len(rows))
	for _, r := range rows {
		out[domain.InquiryStatus(r.Status)] = r.Count
	}
	return out, nil
}

// HasCompletedForClient reports whether the client has at least one
// completed inquiry against the band.
func (r *InquiryRepository) HasCompletedForClient(ctx context.Context, clientID, bandID string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&inquiryModel{}).
		Where("band_id = ? AND client_id = ? AND status = ?", bandID, clientID, string(domain.InquiryCompleted)).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
