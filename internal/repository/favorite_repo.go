package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nilinki/internal/domain"
)

var ErrAlreadyFavorite = errors.New("band already in favorites")
var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

type favoriteModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	UserID    string    `gorm:"column:user_id;uniqueIndex:idx_favorites_user_band"`
	BandID    string    `gorm:"column:band_id;uniqueIndex:idx_favorites_user_band"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (favoriteModel) TableName() string { return "favorites" }

func (r *FavoriteRepository) Add(ctx context.Context, userID, bandID string) (*domain.Favorite, error) {
	exists, err := r.Exists(ctx, userID, bandID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorite
	}

	m := favoriteModel{
		ID:     uuid.NewString(),
		UserID: userID,
		BandID: bandID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}

	return &domain.Favorite{
		ID:        m.ID,
		UserID:    m.UserID,
		BandID:    m.BandID,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, bandID string) error {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND band_id = ?", userID, bandID).
		Delete(&favoriteModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, bandID string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&favoriteModel{}).
		Where("user_id = ? AND band_id = ?", userID, bandID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *FavoriteRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Favorite, error) {
	var rows []favoriteModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Favorite, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Favorite{
			ID:        m.ID,
			UserID:    m.UserID,
			BandID:    m.BandID,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
