package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog article. The published flag gates default visibility:
// unpublished posts exist only for callers with the admin verdict.
type Post struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	Category      string    `json:"category"`
	Tags          string    `json:"tags"`
	FeaturedImage string    `json:"featured_image"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CategoryCount is one row of the category index: a category name and the
// number of visible posts in it.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
