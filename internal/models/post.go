package models

import (
	"time"
)

// Post represents a generated blog post
type Post struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	Genre       []string  `json:"genre" db:"-"` // Stored as JSON string in DB
	Topic       string    `json:"topic" db:"topic"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	ReadingTime int       `json:"readingTime" db:"reading_time"`
}

// Draft is generator output before the service stamps identity and
// request metadata onto it
type Draft struct {
	Title       string
	Content     string
	Genre       []string
	ReadingTime int
}

// GenerateRequest is the create-post request body
type GenerateRequest struct {
	Topic string `json:"topic"`
}
