package store

import (
	"context"
	"sync"
	"time"

	"github.com/ai-blog-api/internal/models"
	"github.com/google/uuid"
)

// memoryStore keeps posts in process memory only
type memoryStore struct {
	mu    sync.RWMutex
	posts []*models.Post
}

// NewMemoryStore creates an in-memory post store seeded with two sample
// posts so a fresh process serves a non-empty list
func NewMemoryStore() PostStore {
	return &memoryStore{posts: seedPosts()}
}

// NewEmptyMemoryStore creates an in-memory post store with no seed data
func NewEmptyMemoryStore() PostStore {
	return &memoryStore{}
}

func seedPosts() []*models.Post {
	return []*models.Post{
		{
			ID:          uuid.New().String(),
			Title:       "The Future of Artificial Intelligence",
			Content:     "AI is transforming how we live and work. From autonomous vehicles to smart assistants, artificial intelligence is becoming increasingly integrated into our daily lives. As we look to the future, the potential applications of AI seem limitless. Machine learning algorithms are getting more sophisticated, neural networks are becoming more complex, and the processing power available to train these systems continues to grow exponentially. However, with these advancements come important ethical considerations and challenges that we must address as a society.",
			Genre:       []string{},
			Topic:       "Technology",
			CreatedAt:   time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
			ReadingTime: 5,
		},
		{
			ID:          uuid.New().String(),
			Title:       "Sustainable Living in Modern Cities",
			Content:     "Urban sustainability is becoming increasingly important as cities continue to grow and expand. Modern urban planning focuses on creating environmentally friendly spaces that promote both ecological health and human wellbeing. From green buildings to public transportation systems, cities are implementing various initiatives to reduce their carbon footprint and create more livable spaces for their residents. Community gardens, renewable energy projects, and waste reduction programs are just a few examples of how cities are working towards a more sustainable future.",
			Genre:       []string{},
			Topic:       "Environment",
			CreatedAt:   time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC),
			ReadingTime: 4,
		},
	}
}

func (s *memoryStore) List(ctx context.Context) ([]*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Post, len(s.posts))
	for i, p := range s.posts {
		clone := *p
		out[i] = &clone
	}
	return out, nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) Insert(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *post
	s.posts = append([]*models.Post{&clone}, s.posts...)
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts), nil
}

func (s *memoryStore) Close() error {
	return nil
}
