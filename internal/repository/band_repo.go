package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nilinki/internal/domain"
)

type BandRepository struct {
	db *gorm.DB
}

func NewBandRepository(db *gorm.DB) *BandRepository {
	return &BandRepository{db: db}
}

type bandModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	OwnerID     string    `gorm:"column:user_id;index"`
	Name        string    `gorm:"column:name"`
	Genre       string    `gorm:"column:genre"`
	Location    string    `gorm:"column:location"`
	Bio         *string   `gorm:"column:bio"`
	LongBio     *string   `gorm:"column:long_bio"`
	ImageURL    *string   `gorm:"column:image_url"`
	CoverURL    *string   `gorm:"column:cover_url"`
	Featured    bool      `gorm:"column:featured"`
	YearsActive *int      `gorm:"column:years_active"`
	Members     *int      `gorm:"column:members"`
	Instagram   *string   `gorm:"column:instagram"`
	Facebook    *string   `gorm:"column:facebook"`
	YouTube     *string   `gorm:"column:youtube"`
	Spotify     *string   `gorm:"column:spotify"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (bandModel) TableName() string { return "bands" }

type rateCardModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	BandID      string    `gorm:"column:band_id;index"`
	EventType   string    `gorm:"column:event_type"`
	Price       float64   `gorm:"column:price"`
	Duration    *string   `gorm:"column:duration"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (rateCardModel) TableName() string { return "band_rate_cards" }

type videoModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	BandID       string    `gorm:"column:band_id;index"`
	Title        string    `gorm:"column:title"`
	VideoURL     string    `gorm:"column:video_url"`
	ThumbnailURL *string   `gorm:"column:thumbnail_url"`
	Platform     string    `gorm:"column:platform"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (videoModel) TableName() string { return "band_videos" }

type bandEventModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	BandID    string    `gorm:"column:band_id;index"`
	Name      string    `gorm:"column:name"`
	Venue     string    `gorm:"column:venue"`
	EventDate string    `gorm:"column:event_date"`
	EventTime string    `gorm:"column:event_time"`
	TicketURL *string   `gorm:"column:ticket_url"`
	ImageURL  *string   `gorm:"column:image_url"`
	IsVisible bool      `gorm:"column:is_visible"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (bandEventModel) TableName() string { return "band_events" }

func strVal(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

func strPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func intVal(p *int) int {
	if p != nil {
		return *p
	}
	return 0
}

func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func toDomainBand(m bandModel) *domain.Band {
	return &domain.Band{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Genre:       m.Genre,
		Location:    m.Location,
		Bio:         strVal(m.Bio),
		LongBio:     strVal(m.LongBio),
		ImageURL:    strVal(m.ImageURL),
		CoverURL:    strVal(m.CoverURL),
		Featured:    m.Featured,
		YearsActive: intVal(m.YearsActive),
		Members:     intVal(m.Members),
		Instagram:   strVal(m.Instagram),
		Facebook:    strVal(m.Facebook),
		YouTube:     strVal(m.YouTube),
		Spotify:     strVal(m.Spotify),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toBandModel(b *domain.Band) bandModel {
	return bandModel{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Genre:       b.Genre,
		Location:    b.Location,
		Bio:         strPtr(b.Bio),
		LongBio:     strPtr(b.LongBio),
		ImageURL:    strPtr(b.ImageURL),
		CoverURL:    strPtr(b.CoverURL),
		Featured:    b.Featured,
		YearsActive: intPtr(b.YearsActive),
		Members:     intPtr(b.Members),
		Instagram:   strPtr(b.Instagram),
		Facebook:    strPtr(b.Facebook),
		YouTube:     strPtr(b.YouTube),
		Spotify:     strPtr(b.Spotify),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *BandRepository) Create(ctx context.Context, b *domain.Band) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	m := toBandModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBand(m)
	return nil
}

func (r *BandRepository) GetByID(ctx context.Context, id string) (*domain.Band, error) {
	var m bandModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBand(m), nil
}

func (r *BandRepository) GetByOwnerID(ctx context.Context, ownerID string) (*domain.Band, error) {
	var m bandModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", ownerID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBand(m), nil
}

// List returns all bands, featured first, then by name.
func (r *BandRepository) List(ctx context.Context) ([]domain.Band, error) {
	var rows []bandModel
	tx := r.db.WithContext(ctx).
		Order("featured DESC").
		Order("name ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Band, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBand(m))
	}
	return out, nil
}

func (r *BandRepository) GetRateCards(ctx context.Context, bandID string) ([]domain.RateCard, error) {
	var rows []rateCardModel
	tx := r.db.WithContext(ctx).Where("band_id = ?", bandID).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.RateCard, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.RateCard{
			ID:          m.ID,
			BandID:      m.BandID,
			EventType:   m.EventType,
			Price:       m.Price,
			Duration:    strVal(m.Duration),
			Description: strVal(m.Description),
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}

// MinRateCardPrices returns the lowest rate-card price per band across all
// bands, for the catalog's "starting rate" column.
func (r *BandRepository) MinRateCardPrices(ctx context.Context) (map[string]float64, error) {
	type row struct {
		BandID string  `gorm:"column:band_id"`
		Min    float64 `gorm:"column:min_price"`
	}
	var rows []row
	tx := r.db.WithContext(ctx).
		Model(&rateCardModel{}).
		Select("band_id, MIN(price) AS min_price").
		Group("band_id").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.BandID] = r.Min
	}
	return out, nil
}

func (r *BandRepository) GetVideos(ctx context.Context, bandID string) ([]domain.Video, error) {
	var rows []videoModel
	tx := r.db.WithContext(ctx).Where("band_id = ?", bandID).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Video, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Video{
			ID:           m.ID,
			BandID:       m.BandID,
			Title:        m.Title,
			VideoURL:     m.VideoURL,
			ThumbnailURL: strVal(m.ThumbnailURL),
			Platform:     m.Platform,
			CreatedAt:    m.CreatedAt,
		})
	}
	return out, nil
}

// GetUpcomingEvents returns visible events ordered soonest first.
func (r *BandRepository) GetUpcomingEvents(ctx context.Context, bandID string) ([]domain.BandEvent, error) {
	var rows []bandEventModel
	tx := r.db.WithContext(ctx).
		Where("band_id = ? AND is_visible = ?", bandID, true).
		Order("event_date ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.BandEvent, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.BandEvent{
			ID:        m.ID,
			BandID:    m.BandID,
			Name:      m.Name,
			Venue:     m.Venue,
			EventDate: m.EventDate,
			EventTime: m.EventTime,
			TicketURL: strVal(m.TicketURL),
			ImageURL:  strVal(m.ImageURL),
			IsVisible: m.IsVisible,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
