package repository

import (
	"errors"
	"time"

	"github.com/user/cinelog/internal/model"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review. Reviews are append-only per user+movie, so
// no conflict clause is needed.
func (r *ReviewRepository) Create(review *model.Review) error {
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	return r.db.Create(review).Error
}

// ListByMovie returns every review referencing an external movie id.
func (r *ReviewRepository) ListByMovie(movieID string) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.Where("movie_id = ?", movieID).Find(&reviews).Error
	return reviews, err
}

// ListByUser returns every review owned by a user.
func (r *ReviewRepository) ListByUser(userID int) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.Where("user_id = ?", userID).Find(&reviews).Error
	return reviews, err
}

// Update overwrites the three mutable fields by primary key.
func (r *ReviewRepository) Update(id int, title string, score int, body string) (*model.Review, error) {
	var review model.Review
	err := r.db.First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	review.Title = title
	review.Score = score
	review.Body = body
	if err := r.db.Model(&model.Review{}).Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "score": score, "body": body}).Error; err != nil {
		return nil, err
	}

	return &review, nil
}

// Delete removes a review by primary key. Deletion is physical.
func (r *ReviewRepository) Delete(id int) (*model.Review, error) {
	var review model.Review
	err := r.db.First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.db.Delete(&model.Review{}, id).Error; err != nil {
		return nil, err
	}

	return &review, nil
}

// Recent returns the newest reviews for the anonymous landing page.
func (r *ReviewRepository) Recent() ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.Order("created_at DESC").Limit(recentLimit).Find(&reviews).Error
	return reviews, err
}
