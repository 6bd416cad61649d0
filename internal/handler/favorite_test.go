package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/cinelog/internal/model"
)

func TestCreateFavorite(t *testing.T) {
	app := newTestApp(defaultClaims())
	app.seedUser(t, "auth0|abc123", "casey")

	body := map[string]interface{}{"username": "casey", "movieId": 42}
	rr := app.request(t, http.MethodPost, "/favorites", body, true)
	require.Equal(t, http.StatusCreated, rr.Code)

	var wrapper struct {
		NewFavorite model.Favorite `json:"newFavorite"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &wrapper))
	assert.Equal(t, "42", wrapper.NewFavorite.MovieID)
	assert.NotZero(t, wrapper.NewFavorite.ID)
}

func TestCreateFavoriteUnknownUserInsertsNothing(t *testing.T) {
	app := newTestApp(defaultClaims())
	app.seedUser(t, "auth0|abc123", "casey")

	body := map[string]interface{}{"username": "ghost", "movieId": "42"}
	rr := app.request(t, http.MethodPost, "/favorites", body, true)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	user, err := app.repos.User.FindByUsername("casey")
	require.NoError(t, err)
	favorites, err := app.repos.Favorite.ListByUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestDuplicateFavoritesBothSucceed(t *testing.T) {
	app := newTestApp(defaultClaims())
	user := app.seedUser(t, "auth0|abc123", "casey")

	// No uniqueness constraint on (user, movie): two creates for the
	// same pair both insert. Documents current behavior.
	body := map[string]interface{}{"username": "casey", "movieId": "42"}
	first := app.request(t, http.MethodPost, "/favorites", body, true)
	second := app.request(t, http.MethodPost, "/favorites", body, true)
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)

	favorites, err := app.repos.Favorite.ListByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)
}

func TestListFavoritesByUser(t *testing.T) {
	app := newTestApp(defaultClaims())
	user := app.seedUser(t, "auth0|abc123", "casey")

	require.NoError(t, app.repos.Favorite.Create(&model.Favorite{MovieID: "1", UserID: user.ID}))
	require.NoError(t, app.repos.Favorite.Create(&model.Favorite{MovieID: "2", UserID: user.ID}))

	rr := app.request(t, http.MethodGet, "/favorites/casey", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)

	var favorites []model.Favorite
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &favorites))
	assert.Len(t, favorites, 2)
}

func TestGetFavoriteReturnsNullWhenAbsent(t *testing.T) {
	app := newTestApp(defaultClaims())
	app.seedUser(t, "auth0|abc123", "casey")

	// The details page uses this probe; absence answers null, not 404.
	rr := app.request(t, http.MethodGet, "/favorite/casey/42", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "null", rr.Body.String())
}

func TestGetFavoriteReturnsRow(t *testing.T) {
	app := newTestApp(defaultClaims())
	user := app.seedUser(t, "auth0|abc123", "casey")
	require.NoError(t, app.repos.Favorite.Create(&model.Favorite{MovieID: "42", UserID: user.ID}))

	rr := app.request(t, http.MethodGet, "/favorite/casey/42", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)

	var favorite model.Favorite
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &favorite))
	assert.Equal(t, "42", favorite.MovieID)
}

func TestDeleteFavoriteRemovesAllMatches(t *testing.T) {
	app := newTestApp(defaultClaims())
	user := app.seedUser(t, "auth0|abc123", "casey")
	require.NoError(t, app.repos.Favorite.Create(&model.Favorite{MovieID: "42", UserID: user.ID}))
	require.NoError(t, app.repos.Favorite.Create(&model.Favorite{MovieID: "42", UserID: user.ID}))

	rr := app.request(t, http.MethodDelete, "/favorites/casey/42", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Favorite deletion successful."}`, rr.Body.String())

	favorites, err := app.repos.Favorite.ListByUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestDeleteFavoriteNotFound(t *testing.T) {
	app := newTestApp(defaultClaims())
	app.seedUser(t, "auth0|abc123", "casey")

	rr := app.request(t, http.MethodDelete, "/favorites/casey/42", nil, true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Favorite not found."}`, rr.Body.String())
}

func TestRecentFavoritesCapsAtThreeNewestFirst(t *testing.T) {
	app := newTestApp(defaultClaims())
	user := app.seedUser(t, "auth0|abc123", "casey")

	for _, movieID := range []string{"1", "2", "3", "4"} {
		require.NoError(t, app.repos.Favorite.Create(&model.Favorite{
			MovieID: movieID, UserID: user.ID, CreatedAt: nextTimestamp(),
		}))
	}

	rr := app.request(t, http.MethodGet, "/user/casey/favorites", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)

	var favorites []model.Favorite
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &favorites))
	require.Len(t, favorites, 3)
	assert.Equal(t, "4", favorites[0].MovieID)
	assert.Equal(t, "3", favorites[1].MovieID)
	assert.Equal(t, "2", favorites[2].MovieID)
}
