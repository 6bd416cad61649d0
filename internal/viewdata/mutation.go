package viewdata

import (
	"strconv"
	"sync"

	"github.com/user/cinelog/internal/catalog"
	"github.com/user/cinelog/internal/client"
	"github.com/user/cinelog/internal/model"
)

// MutationState tracks an optimistic write: the view state changes
// while the request is in flight (pending), then the mutation either
// commits or fails and rolls the view state back.
type MutationState int

const (
	StatePending MutationState = iota
	StateCommitted
	StateFailed
)

func (s MutationState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCommitted:
		return "committed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Mutation is the outcome of one optimistic write.
type Mutation struct {
	State MutationState
	Err   error
}

// FavoritesView holds the edit-mode favorites list: catalog records of
// the user's favorites with optimistic removal.
type FavoritesView struct {
	mu       sync.Mutex
	api      *client.Client
	username string
	movies   []*catalog.MovieDetails
}

// NewFavoritesView wraps an enriched favorites list for editing.
func NewFavoritesView(api *client.Client, username string, movies []*catalog.MovieDetails) *FavoritesView {
	return &FavoritesView{
		api:      api,
		username: username,
		movies:   movies,
	}
}

// Movies returns the current view state.
func (v *FavoritesView) Movies() []*catalog.MovieDetails {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]*catalog.MovieDetails, len(v.movies))
	copy(out, v.movies)
	return out
}

// RemoveFavorite drops the movie from view state before the delete
// request completes; a failed delete restores it.
func (v *FavoritesView) RemoveFavorite(movieID int) *Mutation {
	m := &Mutation{State: StatePending}

	index, removed := v.removeLocal(movieID)
	if removed == nil {
		m.State = StateFailed
		m.Err = client.ErrNotFound
		return m
	}

	if err := v.api.DeleteFavorite(v.username, strconv.Itoa(movieID)); err != nil {
		v.restoreLocal(index, removed)
		m.State = StateFailed
		m.Err = err
		return m
	}

	m.State = StateCommitted
	return m
}

func (v *FavoritesView) removeLocal(movieID int) (int, *catalog.MovieDetails) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, movie := range v.movies {
		if movie.ID == movieID {
			v.movies = append(v.movies[:i:i], v.movies[i+1:]...)
			return i, movie
		}
	}
	return -1, nil
}

func (v *FavoritesView) restoreLocal(index int, movie *catalog.MovieDetails) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if index < 0 || index > len(v.movies) {
		index = len(v.movies)
	}
	v.movies = append(v.movies[:index], append([]*catalog.MovieDetails{movie}, v.movies[index:]...)...)
}

// ReviewListView holds the profile's review list with optimistic edit.
type ReviewListView struct {
	mu      sync.Mutex
	api     *client.Client
	reviews []*model.Review
}

// NewReviewListView wraps a review list for editing.
func NewReviewListView(api *client.Client, reviews []*model.Review) *ReviewListView {
	return &ReviewListView{
		api:     api,
		reviews: reviews,
	}
}

// Reviews returns the current view state.
func (v *ReviewListView) Reviews() []*model.Review {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]*model.Review, len(v.reviews))
	copy(out, v.reviews)
	return out
}

// UpdateReview replaces the review in view state before the update
// request completes; a failed update restores the previous version.
func (v *ReviewListView) UpdateReview(id int, input client.UpdateReviewInput) *Mutation {
	m := &Mutation{State: StatePending}

	previous := v.replaceLocal(id, input)
	if previous == nil {
		m.State = StateFailed
		m.Err = client.ErrNotFound
		return m
	}

	if _, err := v.api.UpdateReview(id, input); err != nil {
		v.putBackLocal(previous)
		m.State = StateFailed
		m.Err = err
		return m
	}

	m.State = StateCommitted
	return m
}

// DeleteReview removes a review. The view state only changes after the
// server confirms, matching the delete flow's non-optimistic contract.
func (v *ReviewListView) DeleteReview(id int) error {
	if _, err := v.api.DeleteReview(id); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	for i, review := range v.reviews {
		if review.ID == id {
			v.reviews = append(v.reviews[:i:i], v.reviews[i+1:]...)
			break
		}
	}
	return nil
}

func (v *ReviewListView) replaceLocal(id int, input client.UpdateReviewInput) *model.Review {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, review := range v.reviews {
		if review.ID == id {
			previous := *review
			updated := previous
			updated.Title = input.Title
			updated.Body = input.Body
			if score, err := strconv.Atoi(input.Score); err == nil {
				updated.Score = score
			}
			v.reviews[i] = &updated
			return &previous
		}
	}
	return nil
}

func (v *ReviewListView) putBackLocal(previous *model.Review) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, review := range v.reviews {
		if review.ID == previous.ID {
			v.reviews[i] = previous
			return
		}
	}
}
