package viewdata

import (
	"strconv"

	"github.com/user/cinelog/internal/catalog"
	"github.com/user/cinelog/internal/model"
	"golang.org/x/sync/errgroup"
)

// enrichConcurrency bounds the parallel catalog calls per batch.
const enrichConcurrency = 8

// The enrichment joins below are per-item failure-tolerant: each item
// records its own error and the batch always completes. The errgroup
// only bounds concurrency; no goroutine returns an error through it.

func (l *Loader) enrichReviews(reviews []*model.Review) []EnrichedReview {
	out := make([]EnrichedReview, len(reviews))

	var g errgroup.Group
	g.SetLimit(enrichConcurrency)
	for i, review := range reviews {
		g.Go(func() error {
			out[i].Review = review
			details, err := l.catalog.MovieDetails(review.MovieID)
			if err != nil {
				out[i].Err = err
				return nil
			}
			out[i].PosterPath = details.PosterPath
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (l *Loader) enrichFavorites(favorites []*model.Favorite) []EnrichedFavorite {
	out := make([]EnrichedFavorite, len(favorites))

	var g errgroup.Group
	g.SetLimit(enrichConcurrency)
	for i, favorite := range favorites {
		g.Go(func() error {
			out[i].Favorite = favorite
			details, err := l.catalog.MovieDetails(favorite.MovieID)
			if err != nil {
				out[i].Err = err
				return nil
			}
			out[i].Details = details
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (l *Loader) enrichSummaries(summaries []catalog.MovieSummary) []EnrichedMovie {
	out := make([]EnrichedMovie, len(summaries))

	var g errgroup.Group
	g.SetLimit(enrichConcurrency)
	for i, summary := range summaries {
		g.Go(func() error {
			out[i].ID = summary.ID
			details, err := l.catalog.MovieDetails(strconv.Itoa(summary.ID))
			if err != nil {
				out[i].Err = err
				return nil
			}
			out[i].Details = details
			return nil
		})
	}
	_ = g.Wait()

	return out
}
