package viewdata_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/cinelog/internal/viewdata"
)

func validForm() viewdata.ReviewForm {
	return viewdata.ReviewForm{
		Username:  "casey",
		Title:     "Tense and lean",
		Body:      "Every scene earns its place.",
		Score:     "8",
		MovieID:   "42",
		MovieName: "Movie 42",
	}
}

func TestReviewFormValidates(t *testing.T) {
	form := validForm()
	assert.NoError(t, form.Validate())
}

func TestReviewFormRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*viewdata.ReviewForm)
	}{
		{"missing title", func(f *viewdata.ReviewForm) { f.Title = "" }},
		{"title too long", func(f *viewdata.ReviewForm) { f.Title = strings.Repeat("x", 256) }},
		{"missing body", func(f *viewdata.ReviewForm) { f.Body = "" }},
		{"body too long", func(f *viewdata.ReviewForm) { f.Body = strings.Repeat("x", 256) }},
		{"missing movie", func(f *viewdata.ReviewForm) { f.MovieID = "" }},
		{"score not a number", func(f *viewdata.ReviewForm) { f.Score = "great" }},
		{"score below range", func(f *viewdata.ReviewForm) { f.Score = "-1" }},
		{"score above range", func(f *viewdata.ReviewForm) { f.Score = "11" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			assert.Error(t, form.Validate())
		})
	}
}

func TestSubmitReviewRoundTrip(t *testing.T) {
	f := newFixture(t)
	loader := viewdata.NewLoader(f.api, f.catalog, "casey")

	review, err := loader.SubmitReview(validForm())
	require.NoError(t, err)
	assert.Equal(t, "Tense and lean", review.Title)
	assert.Equal(t, 8, review.Score)
	assert.Equal(t, "casey", review.Username)

	stored, err := f.repos.Review.ListByMovie("42")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestSubmitReviewRejectsInvalidFormWithoutCalling(t *testing.T) {
	f := newFixture(t)
	loader := viewdata.NewLoader(f.api, f.catalog, "casey")

	form := validForm()
	form.Score = "eleven"
	_, err := loader.SubmitReview(form)
	assert.Error(t, err)

	stored, err := f.repos.Review.ListByMovie("42")
	require.NoError(t, err)
	assert.Empty(t, stored, "invalid form never reaches the backend")
}

func TestAddFavoriteRoundTrip(t *testing.T) {
	f := newFixture(t)
	loader := viewdata.NewLoader(f.api, f.catalog, "casey")

	favorite, err := loader.AddFavorite("42")
	require.NoError(t, err)
	assert.Equal(t, "42", favorite.MovieID)

	stored, err := f.repos.Favorite.ListByUser(f.user.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
