package feed

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/ai-blog-api/internal/models"
)

// ErrBusy is returned when a generate or delete call is already in
// flight; the UI issues at most one of each at a time
var ErrBusy = errors.New("operation already in flight")

// Feed holds a locally cached copy of the post collection together with
// the search and genre filter state. The cache is reconciled after each
// confirmed create or delete; a failed call leaves it untouched.
type Feed struct {
	client *Client

	mu         sync.Mutex
	posts      []models.Post
	search     string
	genres     []string
	generating bool
	deleting   bool
}

// New creates a feed over the given API client
func New(client *Client) *Feed {
	return &Feed{client: client}
}

// Refresh replaces the cache with the server's current collection
func (f *Feed) Refresh(ctx context.Context) error {
	posts, err := f.client.ListPosts(ctx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.posts = posts
	f.mu.Unlock()
	return nil
}

// Posts returns the cached collection
func (f *Feed) Posts() []models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Post, len(f.posts))
	copy(out, f.posts)
	return out
}

// Genres returns the distinct genres present in the cached collection,
// in first-seen order. Derived locally, never fetched.
func (f *Feed) Genres() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	seen := make(map[string]bool)
	var out []string
	for _, post := range f.posts {
		for _, g := range post.Genre {
			if !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	}
	return out
}

// SetSearch sets the search string applied by Visible
func (f *Feed) SetSearch(query string) {
	f.mu.Lock()
	f.search = query
	f.mu.Unlock()
}

// ToggleGenre adds the genre to the active filters, or removes it when
// already selected
func (f *Feed) ToggleGenre(genre string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, g := range f.genres {
		if g == genre {
			f.genres = append(f.genres[:i], f.genres[i+1:]...)
			return
		}
	}
	f.genres = append(f.genres, genre)
}

// SelectedGenres returns the active genre filters
func (f *Feed) SelectedGenres() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.genres))
	copy(out, f.genres)
	return out
}

// ClearGenres removes all genre filters
func (f *Feed) ClearGenres() {
	f.mu.Lock()
	f.genres = nil
	f.mu.Unlock()
}

// Visible returns the cached posts that pass the current filters: the
// title or topic must contain the search string case-insensitively, and
// when genre filters are active at least one selected genre must appear
// in the post's genre list.
func (f *Feed) Visible() []models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()

	query := strings.ToLower(f.search)
	var out []models.Post
	for _, post := range f.posts {
		if !matchesSearch(post, query) {
			continue
		}
		if !matchesGenres(post, f.genres) {
			continue
		}
		out = append(out, post)
	}
	return out
}

func matchesSearch(post models.Post, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(post.Title), query) ||
		strings.Contains(strings.ToLower(post.Topic), query)
}

func matchesGenres(post models.Post, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		for _, have := range post.Genre {
			if want == have {
				return true
			}
		}
	}
	return false
}

// Generate requests a new post and prepends it to the cache once the
// server confirms. Only one generate call may be in flight at a time.
func (f *Feed) Generate(ctx context.Context, topic string) (*models.Post, error) {
	f.mu.Lock()
	if f.generating {
		f.mu.Unlock()
		return nil, ErrBusy
	}
	f.generating = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.generating = false
		f.mu.Unlock()
	}()

	post, err := f.client.GeneratePost(ctx, topic)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.posts = append([]models.Post{*post}, f.posts...)
	f.mu.Unlock()
	return post, nil
}

// Remove deletes a post and drops it from the cache once the server
// confirms. Only one delete call may be in flight at a time.
func (f *Feed) Remove(ctx context.Context, id string) error {
	f.mu.Lock()
	if f.deleting {
		f.mu.Unlock()
		return ErrBusy
	}
	f.deleting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.deleting = false
		f.mu.Unlock()
	}()

	if err := f.client.DeletePost(ctx, id); err != nil {
		return err
	}

	f.mu.Lock()
	for i, post := range f.posts {
		if post.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			break
		}
	}
	f.mu.Unlock()
	return nil
}
