package repository

import (
	"errors"
	"time"

	"github.com/user/cinelog/internal/model"
	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create inserts a favorite unconditionally. Duplicate (user, movie)
// rows are possible under concurrent requests.
func (r *FavoriteRepository) Create(favorite *model.Favorite) error {
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now()
	}
	return r.db.Create(favorite).Error
}

// ListByUser returns all favorites for a user.
func (r *FavoriteRepository) ListByUser(userID int) ([]*model.Favorite, error) {
	var favorites []*model.Favorite
	err := r.db.Where("user_id = ?", userID).Find(&favorites).Error
	return favorites, err
}

// Find returns the first favorite for (user, movie), nil when absent.
func (r *FavoriteRepository) Find(userID int, movieID string) (*model.Favorite, error) {
	var favorite model.Favorite
	err := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &favorite, nil
}

// DeleteByUserAndMovie removes every matching row and reports the count.
func (r *FavoriteRepository) DeleteByUserAndMovie(userID int, movieID string) (int64, error) {
	result := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(&model.Favorite{})
	return result.RowsAffected, result.Error
}

// RecentByUser returns the user's newest favorites for the home and
// profile recents strips.
func (r *FavoriteRepository) RecentByUser(userID int) ([]*model.Favorite, error) {
	var favorites []*model.Favorite
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&favorites).Error
	return favorites, err
}
