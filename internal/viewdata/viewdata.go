// Package viewdata assembles per-view state for the frontend: each
// loader mirrors one view's mount-time fetches, combining backend rows
// with live catalog metadata.
package viewdata

import (
	"errors"

	"github.com/user/cinelog/internal/catalog"
	"github.com/user/cinelog/internal/client"
	"github.com/user/cinelog/internal/model"
)

// Loader issues the per-view network calls.
type Loader struct {
	api      *client.Client
	catalog  *catalog.Client
	username string
}

// NewLoader creates a loader for one session. username is "" for
// anonymous visitors.
func NewLoader(api *client.Client, cat *catalog.Client, username string) *Loader {
	return &Loader{
		api:      api,
		catalog:  cat,
		username: username,
	}
}

// EnrichedReview is a review joined with its catalog poster. A failed
// enrichment call marks only this item; the rest of the batch is
// unaffected.
type EnrichedReview struct {
	Review     *model.Review
	PosterPath string
	Err        error
}

// EnrichedFavorite is a favorite joined with its catalog record.
type EnrichedFavorite struct {
	Favorite *model.Favorite
	Details  *catalog.MovieDetails
	Err      error
}

// EnrichedMovie is a listing entry joined with its full details.
type EnrichedMovie struct {
	ID      int
	Details *catalog.MovieDetails
	Err     error
}

// HomeView backs the landing page: recent reviews for anonymous
// visitors, recent favorites for authenticated ones.
type HomeView struct {
	RecentReviews   []EnrichedReview
	RecentFavorites []EnrichedFavorite
}

// Home loads the landing page state.
func (l *Loader) Home(authenticated bool) (*HomeView, error) {
	view := &HomeView{}

	if !authenticated {
		reviews, err := l.api.RecentReviews()
		if err != nil {
			return nil, err
		}
		view.RecentReviews = l.enrichReviews(reviews)
		return view, nil
	}

	favorites, err := l.api.RecentFavorites(l.username)
	if err != nil {
		return nil, err
	}
	view.RecentFavorites = l.enrichFavorites(favorites)
	return view, nil
}

// MovieDetailsView backs the details page.
type MovieDetailsView struct {
	Details    *catalog.MovieDetails
	Reviews    []*model.Review
	IsFavorite bool
}

// MovieDetails loads the details page: the catalog record, the movie's
// reviews, and (for authenticated sessions) whether it is favorited.
func (l *Loader) MovieDetails(movieID string, authenticated bool) (*MovieDetailsView, error) {
	details, err := l.catalog.MovieDetails(movieID)
	if err != nil {
		return nil, err
	}

	reviews, err := l.api.ReviewsByMovie(movieID)
	if err != nil {
		return nil, err
	}

	view := &MovieDetailsView{
		Details: details,
		Reviews: reviews,
	}

	if authenticated {
		favorite, err := l.api.Favorite(l.username, movieID)
		if err != nil && !errors.Is(err, client.ErrNotFound) {
			return nil, err
		}
		view.IsFavorite = favorite != nil
	}

	return view, nil
}

// ProfileView backs the profile page.
type ProfileView struct {
	Favorites []EnrichedFavorite
	// Recents is the first three favorites, for the recents strip.
	Recents []EnrichedFavorite
	Reviews []*model.Review
}

// Profile loads the authenticated user's favorites (catalog-enriched)
// and reviews.
func (l *Loader) Profile() (*ProfileView, error) {
	favorites, err := l.api.Favorites(l.username)
	if err != nil {
		return nil, err
	}

	reviews, err := l.api.ReviewsByUser(l.username)
	if err != nil {
		return nil, err
	}

	enriched := l.enrichFavorites(favorites)
	recents := enriched
	if len(recents) > 3 {
		recents = recents[:3]
	}

	return &ProfileView{
		Favorites: enriched,
		Recents:   recents,
		Reviews:   reviews,
	}, nil
}

// SearchResults enriches one listing page (search, popular or
// top-rated) with full details and credits per entry.
func (l *Loader) SearchResults(page *catalog.MovieListPage) []EnrichedMovie {
	return l.enrichSummaries(page.Results)
}
