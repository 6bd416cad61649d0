package viewdata

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/user/cinelog/internal/client"
	"github.com/user/cinelog/internal/model"
)

var validate = validator.New()

// ReviewForm is the review submission form. The server does not
// re-validate lengths or the score range, so the form checks them
// before submitting.
type ReviewForm struct {
	Username  string `validate:"required"`
	Title     string `validate:"required,min=1,max=255"`
	Body      string `validate:"required,min=1,max=255"`
	Score     string `validate:"required"`
	MovieID   string `validate:"required"`
	MovieName string
}

// Validate checks the form the way the submitting view does: title and
// body within 1-255 characters, score a valid integer in [0, 10].
func (f *ReviewForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return err
	}

	score, err := strconv.Atoi(f.Score)
	if err != nil || score < 0 || score > 10 {
		return errors.New("score must be a valid integer between 0 and 10")
	}

	return nil
}

// SubmitReview validates the form and posts it to the backend.
func (l *Loader) SubmitReview(form ReviewForm) (*model.Review, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	return l.api.CreateReview(client.CreateReviewInput{
		Username:  form.Username,
		Title:     form.Title,
		Body:      form.Body,
		MovieID:   form.MovieID,
		Score:     form.Score,
		MovieName: form.MovieName,
	})
}

// AddFavorite bookmarks a movie for the session user.
func (l *Loader) AddFavorite(movieID string) (*model.Favorite, error) {
	return l.api.CreateFavorite(l.username, movieID)
}
