package mocks

import (
	"context"
	"sync"

	"github.com/ai-blog-api/internal/generator"
	"github.com/ai-blog-api/internal/models"
	"github.com/ai-blog-api/internal/store"
)

// MockPostStore is an in-memory mock implementation of store.PostStore
// with per-method overrides
type MockPostStore struct {
	mu    sync.Mutex
	Posts []*models.Post

	ListFunc   func(ctx context.Context) ([]*models.Post, error)
	GetFunc    func(ctx context.Context, id string) (*models.Post, error)
	InsertFunc func(ctx context.Context, post *models.Post) error
	DeleteFunc func(ctx context.Context, id string) error

	Deleted []string
}

// Verify interface compliance
var _ store.PostStore = (*MockPostStore)(nil)

func NewMockPostStore() *MockPostStore {
	return &MockPostStore{
		Posts:   make([]*models.Post, 0),
		Deleted: make([]string, 0),
	}
}

func (m *MockPostStore) List(ctx context.Context) ([]*models.Post, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Post, len(m.Posts))
	copy(out, m.Posts)
	return out, nil
}

func (m *MockPostStore) Get(ctx context.Context, id string) (*models.Post, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.Posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MockPostStore) Insert(ctx context.Context, post *models.Post) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, post)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Posts = append([]*models.Post{post}, m.Posts...)
	return nil
}

func (m *MockPostStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, id)
	for i, p := range m.Posts {
		if p.ID == id {
			m.Posts = append(m.Posts[:i], m.Posts[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockPostStore) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Posts), nil
}

func (m *MockPostStore) Close() error {
	return nil
}

// MockGenerator is a mock implementation of generator.Generator
type MockGenerator struct {
	GenerateFunc func(ctx context.Context, topic string) (*models.Draft, error)
	Topics       []string
}

// Verify interface compliance
var _ generator.Generator = (*MockGenerator)(nil)

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{Topics: make([]string, 0)}
}

func (m *MockGenerator) Generate(ctx context.Context, topic string) (*models.Draft, error) {
	m.Topics = append(m.Topics, topic)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, topic)
	}
	return &models.Draft{
		Title:       "Test Post",
		Content:     "test content body",
		Genre:       []string{"Test"},
		ReadingTime: 1,
	}, nil
}
