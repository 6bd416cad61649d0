package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/user/cinelog/internal/model"
)

// In-memory stores with the same miss and ordering semantics as the
// gorm-backed ones. Handler tests run against these instead of a live
// database.

type MemoryUserStore struct {
	mu     sync.Mutex
	nextID int
	users  []*model.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{nextID: 1}
}

func (s *MemoryUserStore) Create(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextID
	s.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	clone := *user
	s.users = append(s.users, &clone)
	return nil
}

func (s *MemoryUserStore) FindByAuthID(authID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.AuthID == authID {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStore) FindByUsername(username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

type MemoryReviewStore struct {
	mu      sync.Mutex
	nextID  int
	reviews []*model.Review
}

func NewMemoryReviewStore() *MemoryReviewStore {
	return &MemoryReviewStore{nextID: 1}
}

func (s *MemoryReviewStore) Create(review *model.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	review.ID = s.nextID
	s.nextID++
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	clone := *review
	s.reviews = append(s.reviews, &clone)
	return nil
}

func (s *MemoryReviewStore) ListByMovie(movieID string) ([]*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Review, 0)
	for _, r := range s.reviews {
		if r.MovieID == movieID {
			clone := *r
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *MemoryReviewStore) ListByUser(userID int) ([]*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Review, 0)
	for _, r := range s.reviews {
		if r.UserID == userID {
			clone := *r
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *MemoryReviewStore) Update(id int, title string, score int, body string) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reviews {
		if r.ID == id {
			r.Title = title
			r.Score = score
			r.Body = body
			clone := *r
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *MemoryReviewStore) Delete(id int) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.reviews {
		if r.ID == id {
			clone := *r
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *MemoryReviewStore) Recent() ([]*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sorted := make([]*model.Review, len(s.reviews))
	copy(sorted, s.reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	out := make([]*model.Review, 0, len(sorted))
	for _, r := range sorted {
		clone := *r
		out = append(out, &clone)
	}
	return out, nil
}

type MemoryFavoriteStore struct {
	mu        sync.Mutex
	nextID    int
	favorites []*model.Favorite
}

func NewMemoryFavoriteStore() *MemoryFavoriteStore {
	return &MemoryFavoriteStore{nextID: 1}
}

func (s *MemoryFavoriteStore) Create(favorite *model.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	favorite.ID = s.nextID
	s.nextID++
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now()
	}
	clone := *favorite
	s.favorites = append(s.favorites, &clone)
	return nil
}

func (s *MemoryFavoriteStore) ListByUser(userID int) ([]*model.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Favorite, 0)
	for _, f := range s.favorites {
		if f.UserID == userID {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *MemoryFavoriteStore) Find(userID int, movieID string) (*model.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.favorites {
		if f.UserID == userID && f.MovieID == movieID {
			clone := *f
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *MemoryFavoriteStore) DeleteByUserAndMovie(userID int, movieID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []*model.Favorite
	var removed int64
	for _, f := range s.favorites {
		if f.UserID == userID && f.MovieID == movieID {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	s.favorites = kept
	return removed, nil
}

func (s *MemoryFavoriteStore) RecentByUser(userID int) ([]*model.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var mine []*model.Favorite
	for _, f := range s.favorites {
		if f.UserID == userID {
			mine = append(mine, f)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})
	if len(mine) > recentLimit {
		mine = mine[:recentLimit]
	}
	out := make([]*model.Favorite, 0, len(mine))
	for _, f := range mine {
		clone := *f
		out = append(out, &clone)
	}
	return out, nil
}

// NewMemoryRepositories bundles in-memory stores, mirroring
// NewRepositories for tests.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		User:     NewMemoryUserStore(),
		Review:   NewMemoryReviewStore(),
		Favorite: NewMemoryFavoriteStore(),
	}
}
