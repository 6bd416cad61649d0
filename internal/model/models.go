package model

import (
	"time"
)

// User is created lazily on first successful token verification.
// AuthID is the identity provider's subject and never changes after
// creation; Username is the public lookup key used by every other
// handler.
type User struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	AuthID    string    `json:"authId" gorm:"column:auth_id;unique;not null"`
	Email     string    `json:"email"`
	Username  string    `json:"username" gorm:"unique;not null"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Review of one external catalog movie. Username and MovieName are
// denormalized at creation so lists render without a join; they drift
// on rename and are not kept in sync.
type Review struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Body      string    `json:"body" gorm:"size:255;not null"`
	Score     int       `json:"score" gorm:"not null"`
	MovieID   string    `json:"movieId" gorm:"index;not null"`
	UserID    int       `json:"userId" gorm:"index;not null"`
	Username  string    `json:"username"`
	MovieName string    `json:"moviename"`
	CreatedAt time.Time `json:"createdAt"`
}

// Favorite bookmarks one external movie id for a user. There is no
// uniqueness constraint on (user_id, movie_id); concurrent creates can
// produce duplicate rows.
type Favorite struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	MovieID   string    `json:"movieId" gorm:"index;not null"`
	UserID    int       `json:"userId" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
