package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ai-blog-api/internal/models"
)

// fileStore persists posts as a pretty-printed JSON array in a single
// file. Every read hits the file, so external edits between requests are
// picked up. Writes go through a temp file and an atomic rename so a
// crash mid-write cannot truncate the array.
type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed post store, creating the backing
// file with an empty array if it does not exist
func NewFileStore(path string) (PostStore, error) {
	s := &fileStore{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create posts directory: %w", err)
			}
		}
		if err := s.write([]*models.Post{}); err != nil {
			return nil, fmt.Errorf("failed to initialize posts file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat posts file: %w", err)
	}

	return s, nil
}

func (s *fileStore) read() ([]*models.Post, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read posts file: %w", err)
	}

	var posts []*models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("posts file is malformed: %w", err)
	}
	return posts, nil
}

func (s *fileStore) write(posts []*models.Post) error {
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode posts: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".posts-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write posts file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace posts file: %w", err)
	}
	return nil
}

func (s *fileStore) List(ctx context.Context) ([]*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *fileStore) Get(ctx context.Context, id string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.read()
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fileStore) Insert(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.read()
	if err != nil {
		return err
	}

	clone := *post
	posts = append([]*models.Post{&clone}, posts...)
	return s.write(posts)
}

func (s *fileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.read()
	if err != nil {
		return err
	}

	for i, p := range posts {
		if p.ID == id {
			posts = append(posts[:i], posts[i+1:]...)
			return s.write(posts)
		}
	}
	return nil
}

func (s *fileStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.read()
	if err != nil {
		return 0, err
	}
	return len(posts), nil
}

func (s *fileStore) Close() error {
	return nil
}
