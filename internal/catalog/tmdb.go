// Package catalog is the client for the external movie metadata API.
// Movies are identified only by the catalog's own ids; nothing beyond
// that id is mirrored locally.
package catalog

import (
	"fmt"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/user/cinelog/internal/utils"
	"golang.org/x/sync/singleflight"
)

const (
	detailCacheTTL = 5 * time.Minute
	listCacheSize  = 256
	listCacheTTL   = 10 * time.Minute
)

// Client talks to the TMDB-shaped catalog API. Detail responses are
// cached for a short TTL and concurrent identical fetches are
// coalesced, since list views request the same movies repeatedly.
type Client struct {
	baseURL string
	apiKey  string
	http    *utils.HTTPClient
	details *cache.Cache
	lists   *utils.LRUCache[*MovieListPage]
	group   singleflight.Group
}

// NewClient creates a catalog client. baseURL carries no trailing
// slash, e.g. "https://api.themoviedb.org/3".
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    utils.NewHTTPClient(),
		details: cache.New(detailCacheTTL, 10*time.Minute),
		lists:   utils.NewLRUCache[*MovieListPage](listCacheSize, listCacheTTL),
	}
}

// MovieSummary is one entry of a search or listing page.
type MovieSummary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
}

// MovieListPage is one page of search, popular or top-rated results.
type MovieListPage struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// MovieDetails is the full record for one movie, credits appended.
type MovieDetails struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Tagline       string   `json:"tagline"`
	Genres        []Genre  `json:"genres"`
	OriginCountry []string `json:"origin_country"`
	ReleaseDate   string   `json:"release_date"`
	PosterPath    string   `json:"poster_path"`
	Overview      string   `json:"overview"`
	Budget        int64    `json:"budget"`
	Runtime       int      `json:"runtime"`
	Credits       Credits  `json:"credits"`
}

// Director returns the crew member with the Director job, or "N/A".
func (d *MovieDetails) Director() string {
	for _, member := range d.Credits.Crew {
		if member.Job == "Director" {
			return member.Name
		}
	}
	return "N/A"
}

// SearchMovies runs a title search.
func (c *Client) SearchMovies(query string) (*MovieListPage, error) {
	u := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s&language=en-US&page=1",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(query))
	return c.fetchList("search:"+query, u)
}

// Popular returns the first page of the popular listing.
func (c *Client) Popular() (*MovieListPage, error) {
	u := fmt.Sprintf("%s/movie/popular?api_key=%s&language=en-US&page=1",
		c.baseURL, url.QueryEscape(c.apiKey))
	return c.fetchList("popular", u)
}

// TopRated returns the first page of the top-rated listing.
func (c *Client) TopRated() (*MovieListPage, error) {
	u := fmt.Sprintf("%s/movie/top_rated?api_key=%s&language=en-US&page=1",
		c.baseURL, url.QueryEscape(c.apiKey))
	return c.fetchList("top_rated", u)
}

// MovieDetails fetches one movie with credits appended.
func (c *Client) MovieDetails(movieID string) (*MovieDetails, error) {
	if cached, ok := c.details.Get(movieID); ok {
		return cached.(*MovieDetails), nil
	}

	// singleflight: N concurrent enrichment calls for the same movie
	// collapse into one request.
	val, err, _ := c.group.Do("movie:"+movieID, func() (interface{}, error) {
		u := fmt.Sprintf("%s/movie/%s?api_key=%s&append_to_response=credits",
			c.baseURL, url.PathEscape(movieID), url.QueryEscape(c.apiKey))
		var details MovieDetails
		if err := c.http.GetJSON(u, &details); err != nil {
			return nil, fmt.Errorf("fetch movie %s: %w", movieID, err)
		}
		c.details.Set(movieID, &details, cache.DefaultExpiration)
		return &details, nil
	})
	if err != nil {
		return nil, err
	}
	return val.(*MovieDetails), nil
}

func (c *Client) fetchList(cacheKey, u string) (*MovieListPage, error) {
	if cached, ok := c.lists.Get(cacheKey); ok {
		return cached, nil
	}

	val, err, _ := c.group.Do("list:"+cacheKey, func() (interface{}, error) {
		var page MovieListPage
		if err := c.http.GetJSON(u, &page); err != nil {
			return nil, err
		}
		c.lists.Set(cacheKey, &page)
		return &page, nil
	})
	if err != nil {
		return nil, err
	}
	return val.(*MovieListPage), nil
}
