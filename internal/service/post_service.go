package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ai-blog-api/internal/generator"
	"github.com/ai-blog-api/internal/models"
	"github.com/ai-blog-api/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrTopicRequired is returned by Create when the topic is empty
var ErrTopicRequired = errors.New("topic is required")

// PostService defines the interface for post operations
type PostService interface {
	List(ctx context.Context) ([]*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, topic string) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Post PostService
}

// NewServices creates all services
func NewServices(posts store.PostStore, gen generator.Generator, log zerolog.Logger) *Services {
	return &Services{
		Post: newPostService(posts, gen, log),
	}
}

// postService is the concrete implementation of PostService
type postService struct {
	store store.PostStore
	gen   generator.Generator
	log   zerolog.Logger
}

func newPostService(posts store.PostStore, gen generator.Generator, log zerolog.Logger) PostService {
	return &postService{
		store: posts,
		gen:   gen,
		log:   log.With().Str("service", "post").Logger(),
	}
}

// List returns all posts, newest first
func (s *postService) List(ctx context.Context) ([]*models.Post, error) {
	return s.store.List(ctx)
}

// Get returns a single post, or store.ErrNotFound
func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.store.Get(ctx, id)
}

// Create generates a post for the topic, stamps identity and request
// metadata, and inserts it at the head of the collection
func (s *postService) Create(ctx context.Context, topic string) (*models.Post, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrTopicRequired
	}

	draft, err := s.gen.Generate(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	genre := draft.Genre
	if genre == nil {
		genre = []string{}
	}

	post := &models.Post{
		ID:          uuid.New().String(),
		Title:       draft.Title,
		Content:     draft.Content,
		Genre:       genre,
		Topic:       topic,
		CreatedAt:   time.Now().UTC(),
		ReadingTime: draft.ReadingTime,
	}

	if err := s.store.Insert(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to store post: %w", err)
	}

	s.log.Info().
		Str("post_id", post.ID).
		Str("topic", topic).
		Int("reading_time", post.ReadingTime).
		Msg("Post created")

	return post, nil
}

// Delete removes the post with the given id. Deleting an absent id
// succeeds without effect.
func (s *postService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	s.log.Info().Str("post_id", id).Msg("Post deleted")
	return nil
}

// Count returns the number of stored posts
func (s *postService) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

var _ PostService = (*postService)(nil)
