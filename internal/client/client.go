// Package client is the typed HTTP client for the review/favorites
// backend, used by the view-data layer.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/user/cinelog/internal/model"
)

// ErrNotFound maps the backend's 404 responses.
var ErrNotFound = errors.New("not found")

// APIError carries a non-2xx backend response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// TokenSource supplies the current bearer token; it returns "" for
// anonymous sessions.
type TokenSource func() string

// Client calls the backend REST surface.
type Client struct {
	baseURL    string
	token      TokenSource
	httpClient *http.Client
}

// New constructs a backend client.
func New(baseURL string, token TokenSource) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateReviewInput is the create/review request body.
type CreateReviewInput struct {
	Username  string `json:"username"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	MovieID   string `json:"movieId"`
	Score     string `json:"score"`
	MovieName string `json:"moviename"`
}

// UpdateReviewInput is the PUT /reviews/:id request body.
type UpdateReviewInput struct {
	Title string `json:"title"`
	Score string `json:"score"`
	Body  string `json:"body"`
}

// VerifyUser upserts and returns the authenticated user.
func (c *Client) VerifyUser() (*model.User, error) {
	var user model.User
	if err := c.do(http.MethodPost, "/verify-user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateReview persists a new review.
func (c *Client) CreateReview(input CreateReviewInput) (*model.Review, error) {
	var review model.Review
	if err := c.do(http.MethodPost, "/create/review", input, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// ReviewsByMovie lists reviews for an external movie id. Public.
func (c *Client) ReviewsByMovie(movieID string) ([]*model.Review, error) {
	var reviews []*model.Review
	if err := c.do(http.MethodGet, "/reviews/"+movieID, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ReviewsByUser lists the named user's reviews.
func (c *Client) ReviewsByUser(username string) ([]*model.Review, error) {
	var reviews []*model.Review
	if err := c.do(http.MethodGet, "/reviews/"+username+"/profile", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// UpdateReview overwrites a review's mutable fields.
func (c *Client) UpdateReview(id int, input UpdateReviewInput) (*model.Review, error) {
	var review model.Review
	if err := c.do(http.MethodPut, fmt.Sprintf("/reviews/%d", id), input, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview deletes a review by id and returns the deleted row.
func (c *Client) DeleteReview(id int) (*model.Review, error) {
	var review model.Review
	if err := c.do(http.MethodDelete, fmt.Sprintf("/reviews/%d", id), nil, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// RecentReviews returns the newest reviews. Public.
func (c *Client) RecentReviews() ([]*model.Review, error) {
	var reviews []*model.Review
	if err := c.do(http.MethodGet, "/recent/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateFavorite bookmarks a movie for the named user.
func (c *Client) CreateFavorite(username, movieID string) (*model.Favorite, error) {
	body := map[string]string{"username": username, "movieId": movieID}
	var wrapper struct {
		NewFavorite *model.Favorite `json:"newFavorite"`
	}
	if err := c.do(http.MethodPost, "/favorites", body, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.NewFavorite, nil
}

// Favorites lists all of the user's favorites.
func (c *Client) Favorites(username string) ([]*model.Favorite, error) {
	var favorites []*model.Favorite
	if err := c.do(http.MethodGet, "/favorites/"+username, nil, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// Favorite returns the (user, movie) favorite, or nil when the movie is
// not favorited.
func (c *Client) Favorite(username, movieID string) (*model.Favorite, error) {
	var favorite *model.Favorite
	if err := c.do(http.MethodGet, "/favorite/"+username+"/"+movieID, nil, &favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

// DeleteFavorite removes every favorite for (user, movie).
func (c *Client) DeleteFavorite(username, movieID string) error {
	return c.do(http.MethodDelete, "/favorites/"+username+"/"+movieID, nil, nil)
}

// RecentFavorites returns the user's newest favorites.
func (c *Client) RecentFavorites(username string) ([]*model.Favorite, error) {
	var favorites []*model.Favorite
	if err := c.do(http.MethodGet, "/user/"+username+"/favorites", nil, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequest(method, c.baseURL+path, reqBody)
	} else {
		req, err = http.NewRequest(method, c.baseURL+path, nil)
	}
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		msg := errResp.Error
		if msg == "" {
			msg = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
