package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nilinki/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	BandID    string    `gorm:"column:band_id;uniqueIndex:idx_reviews_band_author"`
	AuthorID  string    `gorm:"column:author_id;uniqueIndex:idx_reviews_band_author"`
	Rating    int       `gorm:"column:rating"`
	Content   *string   `gorm:"column:content"`
	EventType *string   `gorm:"column:event_type"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:        m.ID,
		BandID:    m.BandID,
		AuthorID:  m.AuthorID,
		Rating:    m.Rating,
		Content:   strVal(m.Content),
		EventType: strVal(m.EventType),
		CreatedAt: m.CreatedAt,
	}
}

// Create inserts a review. The unique index on (band_id, author_id) is the
// authoritative "one review per author per band" check; callers map the
// duplicate-key error to a conflict.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	m := reviewModel{
		ID:        rv.ID,
		BandID:    rv.BandID,
		AuthorID:  rv.AuthorID,
		Rating:    rv.Rating,
		Content:   strPtr(rv.Content),
		EventType: strPtr(rv.EventType),
		CreatedAt: rv.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByBandID(ctx context.Context, bandID string) ([]domain.Review, error) {
	var rows []reviewModel
	tx := r.db.WithContext(ctx).
		Where("band_id = ?", bandID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}

func (r *ReviewRepository) ExistsByAuthor(ctx context.Context, authorID, bandID string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("band_id = ? AND author_id = ?", bandID, authorID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// RatingStats returns (sum, count) of ratings per band for every band that
// has at least one review.
func (r *ReviewRepository) RatingStats(ctx context.Context) (map[string]domain.RatingStat, error) {
	type row struct {
		BandID string `gorm:"column:band_id"`
		Sum    int64  `gorm:"column:rating_sum"`
		Count  int64  `gorm:"column:rating_count"`
	}
	var rows []row
	tx := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Select("band_id, SUM(rating) AS rating_sum, COUNT(1) AS rating_count").
		Group("band_id").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make(map[string]domain.RatingStat, len(rows))
	for _, r := range rows {
		out[r.BandID] = domain.RatingStat{Sum: r.Sum, Count: r.Count}
	}
	return out, nil
}
