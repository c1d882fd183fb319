package store

import (
	"context"
	"errors"

	"github.com/ai-blog-api/internal/models"
)

// ErrNotFound is returned by Get when no post has the requested id
var ErrNotFound = errors.New("post not found")

// PostStore defines the interface for post persistence.
// Implementations must keep posts in newest-first order: Insert places
// the post at the head of the collection.
type PostStore interface {
	List(ctx context.Context) ([]*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Insert(ctx context.Context, post *models.Post) error
	// Delete removes at most one post. Deleting an absent id is not
	// an error.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Close() error
}
