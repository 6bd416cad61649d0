package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/cinelog/internal/model"
)

func at(offset int) time.Time {
	return time.Unix(1700000000, 0).Add(time.Duration(offset) * time.Minute)
}

func TestMemoryUserStoreFindSemantics(t *testing.T) {
	s := NewMemoryUserStore()

	missing, err := s.FindByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, missing, "miss returns (nil, nil)")

	user := &model.User{AuthID: "auth0|1", Username: "casey", Email: "c@example.com"}
	require.NoError(t, s.Create(user))
	assert.NotZero(t, user.ID)

	byAuth, err := s.FindByAuthID("auth0|1")
	require.NoError(t, err)
	require.NotNil(t, byAuth)
	assert.Equal(t, user.ID, byAuth.ID)

	byName, err := s.FindByUsername("casey")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, user.ID, byName.ID)
}

func TestMemoryReviewStoreUpdateAndDelete(t *testing.T) {
	s := NewMemoryReviewStore()

	require.NoError(t, s.Create(&model.Review{Title: "t", Body: "b", Score: 5, MovieID: "1", UserID: 1}))

	updated, err := s.Update(1, "t2", 9, "b2")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "t2", updated.Title)
	assert.Equal(t, 9, updated.Score)

	gone, err := s.Update(99, "x", 1, "y")
	require.NoError(t, err)
	assert.Nil(t, gone)

	deleted, err := s.Delete(1)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "t2", deleted.Title)

	again, err := s.Delete(1)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestMemoryReviewStoreRecentOrderAndLimit(t *testing.T) {
	s := NewMemoryReviewStore()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Create(&model.Review{
			Title: string(rune('a' + i)), Body: "b", MovieID: "1", UserID: 1,
			CreatedAt: at(i),
		}))
	}

	recent, err := s.Recent()
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "e", recent[0].Title)
	assert.Equal(t, "d", recent[1].Title)
	assert.Equal(t, "c", recent[2].Title)
}

func TestMemoryFavoriteStoreDuplicatesAndDeleteCount(t *testing.T) {
	s := NewMemoryFavoriteStore()

	// Duplicates allowed: no uniqueness on (user, movie).
	require.NoError(t, s.Create(&model.Favorite{MovieID: "42", UserID: 1}))
	require.NoError(t, s.Create(&model.Favorite{MovieID: "42", UserID: 1}))
	require.NoError(t, s.Create(&model.Favorite{MovieID: "7", UserID: 1}))

	found, err := s.Find(1, "42")
	require.NoError(t, err)
	require.NotNil(t, found)

	missing, err := s.Find(2, "42")
	require.NoError(t, err)
	assert.Nil(t, missing)

	count, err := s.DeleteByUserAndMovie(1, "42")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = s.DeleteByUserAndMovie(1, "42")
	require.NoError(t, err)
	assert.Zero(t, count)

	remaining, err := s.ListByUser(1)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestMemoryFavoriteStoreRecentByUser(t *testing.T) {
	s := NewMemoryFavoriteStore()

	for i := 0; i < 4; i++ {
		require.NoError(t, s.Create(&model.Favorite{
			MovieID: string(rune('1' + i)), UserID: 1, CreatedAt: at(i),
		}))
	}
	require.NoError(t, s.Create(&model.Favorite{MovieID: "99", UserID: 2, CreatedAt: at(10)}))

	recent, err := s.RecentByUser(1)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "4", recent[0].MovieID)
	assert.Equal(t, "3", recent[1].MovieID)
	assert.Equal(t, "2", recent[2].MovieID)
}
