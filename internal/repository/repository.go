package repository

import (
	"github.com/user/cinelog/internal/model"
	"gorm.io/gorm"
)

// recentLimit caps the "recent" queries backing the landing page and
// the profile recents strip.
const recentLimit = 3

// UserStore persists users. Find lookups return (nil, nil) when no row
// matches.
type UserStore interface {
	Create(user *model.User) error
	FindByAuthID(authID string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
}

// ReviewStore persists reviews.
type ReviewStore interface {
	Create(review *model.Review) error
	ListByMovie(movieID string) ([]*model.Review, error)
	ListByUser(userID int) ([]*model.Review, error)
	// Update overwrites title, score and body by primary key and
	// returns the updated row, or (nil, nil) if the id does not exist.
	Update(id int, title string, score int, body string) (*model.Review, error)
	// Delete removes a review by primary key and returns the deleted
	// row, or (nil, nil) if the id does not exist.
	Delete(id int) (*model.Review, error)
	Recent() ([]*model.Review, error)
}

// FavoriteStore persists favorites.
type FavoriteStore interface {
	Create(favorite *model.Favorite) error
	ListByUser(userID int) ([]*model.Favorite, error)
	// Find returns the first favorite for (user, movie), or (nil, nil)
	// when the user has not favorited the movie.
	Find(userID int, movieID string) (*model.Favorite, error)
	// DeleteByUserAndMovie removes every row matching (user, movie)
	// and reports how many were deleted.
	DeleteByUserAndMovie(userID int, movieID string) (int64, error)
	RecentByUser(userID int) ([]*model.Favorite, error)
}

// Repositories bundles the stores handed to the handler layer.
type Repositories struct {
	User     UserStore
	Review   ReviewStore
	Favorite FavoriteStore
}

// NewRepositories wires the gorm-backed stores.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Review:   NewReviewRepository(db),
		Favorite: NewFavoriteRepository(db),
	}
}
