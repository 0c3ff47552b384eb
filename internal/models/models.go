package models

import (
	"time"
)

type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         *string   `json:"name" db:"name"`
	PasswordHash *string   `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

type AuthorSummary struct {
	ID    string  `json:"id" db:"id"`
	Name  *string `json:"name" db:"name"`
	Email string  `json:"email" db:"email"`
}

type UserSummary struct {
	ID   string  `json:"id" db:"id"`
	Name *string `json:"name" db:"name"`
}

type Post struct {
	ID        string         `json:"id" db:"id"`
	Title     string         `json:"title" db:"title"`
	Content   string         `json:"content" db:"content"`
	AuthorID  string         `json:"authorId" db:"author_id"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at"`
	Author    *AuthorSummary `json:"author,omitempty" db:"-"`
	Likes     []Like         `json:"likes" db:"-"`
}

type Like struct {
	ID        string       `json:"id" db:"id"`
	UserID    string       `json:"userId" db:"user_id"`
	PostID    string       `json:"postId" db:"post_id"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
	User      *UserSummary `json:"user,omitempty" db:"-"`
}

type PostListParams struct {
	Page     int
	Limit    int
	Search   string
	AuthorID string
}

func (p PostListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type PostPage struct {
	Posts      []Post `json:"posts"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}

type UserStats struct {
	TotalPosts int `json:"totalPosts" db:"total_posts"`
	TotalLikes int `json:"totalLikes" db:"total_likes"`
}
