package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/movie/popular", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(w).Encode(MovieListPage{
			Page: 1,
			Results: []MovieSummary{
				{ID: 1, Title: "First", PosterPath: "/p1.jpg"},
				{ID: 2, Title: "Second", PosterPath: "/p2.jpg"},
			},
			TotalPages:   1,
			TotalResults: 2,
		})
	})
	mux.HandleFunc("/search/movie", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		query := r.URL.Query().Get("query")
		_ = json.NewEncoder(w).Encode(MovieListPage{
			Page:         1,
			Results:      []MovieSummary{{ID: 3, Title: query}},
			TotalResults: 1,
		})
	})
	mux.HandleFunc("/movie/", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Query().Get("api_key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(MovieDetails{
			ID:          42,
			Title:       "The Answer",
			PosterPath:  "/answer.jpg",
			ReleaseDate: "2020-01-01",
			Runtime:     120,
			Credits: Credits{
				Crew: []CrewMember{
					{Name: "Someone Else", Job: "Producer"},
					{Name: "Pat Doe", Job: "Director"},
				},
			},
		})
	})
	return httptest.NewServer(mux)
}

func TestMovieDetailsFetchAndDirector(t *testing.T) {
	var hits atomic.Int64
	srv := newCatalogServer(t, &hits)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")

	details, err := c.MovieDetails("42")
	require.NoError(t, err)
	assert.Equal(t, "The Answer", details.Title)
	assert.Equal(t, "Pat Doe", details.Director())
}

func TestMovieDetailsCached(t *testing.T) {
	var hits atomic.Int64
	srv := newCatalogServer(t, &hits)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")

	_, err := c.MovieDetails("42")
	require.NoError(t, err)
	_, err = c.MovieDetails("42")
	require.NoError(t, err)

	assert.Equal(t, int64(1), hits.Load(), "second lookup should be served from cache")
}

func TestMovieDetailsConcurrentLookupsCoalesce(t *testing.T) {
	var hits atomic.Int64
	srv := newCatalogServer(t, &hits)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			details, err := c.MovieDetails("42")
			assert.NoError(t, err)
			assert.Equal(t, "The Answer", details.Title)
		}()
	}
	wg.Wait()

	// singleflight plus the detail cache keep this well under one
	// request per caller.
	assert.LessOrEqual(t, hits.Load(), int64(2))
}

func TestListingsCachedPerKey(t *testing.T) {
	var hits atomic.Int64
	srv := newCatalogServer(t, &hits)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")

	page, err := c.Popular()
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "First", page.Results[0].Title)

	_, err = c.Popular()
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())

	search, err := c.SearchMovies("blade runner")
	require.NoError(t, err)
	require.Len(t, search.Results, 1)
	assert.Equal(t, "blade runner", search.Results[0].Title)
	assert.Equal(t, int64(2), hits.Load())
}

func TestMovieDetailsErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")

	_, err := c.MovieDetails("42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("fetch movie %s", "42"))
}
