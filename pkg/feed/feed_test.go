package feed_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ai-blog-api/internal/api"
	"github.com/ai-blog-api/internal/config"
	"github.com/ai-blog-api/internal/mocks"
	"github.com/ai-blog-api/internal/models"
	"github.com/ai-blog-api/internal/service"
	"github.com/ai-blog-api/pkg/feed"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T) (*httptest.Server, *mocks.MockPostStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storeMock := mocks.NewMockPostStore()
	genMock := mocks.NewMockGenerator()
	services := service.NewServices(storeMock, genMock, zerolog.Nop())
	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}

	router := api.NewRouter(services, cfg, zerolog.Nop())
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server, storeMock
}

func cachedFeed(posts ...models.Post) *feed.Feed {
	// A feed whose cache is primed through a fake list endpoint
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(posts)
	}))
	defer server.Close()

	f := feed.New(feed.NewClient(server.URL))
	if err := f.Refresh(context.Background()); err != nil {
		panic(err)
	}
	return f
}

func TestGenres_DistinctInFirstSeenOrder(t *testing.T) {
	f := cachedFeed(
		models.Post{ID: "1", Genre: []string{"Action", "Drama"}},
		models.Post{ID: "2", Genre: []string{"Drama", "Fantasy"}},
		models.Post{ID: "3", Genre: nil},
	)

	genres := f.Genres()
	expected := []string{"Action", "Drama", "Fantasy"}
	if len(genres) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, genres)
	}
	for i := range expected {
		if genres[i] != expected[i] {
			t.Errorf("Expected genre %q at index %d, got %q", expected[i], i, genres[i])
		}
	}
}

func TestVisible_GenreFilter(t *testing.T) {
	action := models.Post{ID: "a", Title: "Action Post", Topic: "fights", Genre: []string{"Action"}}
	drama := models.Post{ID: "d", Title: "Drama Post", Topic: "feelings", Genre: []string{"Drama"}}
	f := cachedFeed(action, drama)

	f.ToggleGenre("Action")

	visible := f.Visible()
	if len(visible) != 1 {
		t.Fatalf("Expected 1 visible post, got %d", len(visible))
	}
	if visible[0].ID != "a" {
		t.Errorf("Expected the Action post, got %s", visible[0].ID)
	}
}

func TestVisible_SearchAndGenreConjunction(t *testing.T) {
	action := models.Post{ID: "a", Title: "Action Post", Topic: "fights", Genre: []string{"Action"}}
	drama := models.Post{ID: "d", Title: "Drama Post", Topic: "feelings", Genre: []string{"Drama"}}
	f := cachedFeed(action, drama)

	f.ToggleGenre("Action")
	f.SetSearch("matches nothing at all")

	if visible := f.Visible(); len(visible) != 0 {
		t.Errorf("Expected empty result, got %d posts", len(visible))
	}
}

func TestVisible_SearchMatchesTitleOrTopic(t *testing.T) {
	posts := []models.Post{
		{ID: "1", Title: "The Future of AI", Topic: "Technology"},
		{ID: "2", Title: "Sustainable Cities", Topic: "Environment"},
	}
	f := cachedFeed(posts...)

	tests := []struct {
		query    string
		expected []string
	}{
		{"future", []string{"1"}},          // title, case-insensitive
		{"ENVIRONMENT", []string{"2"}},     // topic, case-insensitive
		{"", []string{"1", "2"}},           // no filter
		{"zzz", nil},                       // no match
	}

	for _, tt := range tests {
		f.SetSearch(tt.query)
		visible := f.Visible()
		if len(visible) != len(tt.expected) {
			t.Errorf("Query %q: expected %d posts, got %d", tt.query, len(tt.expected), len(visible))
			continue
		}
		for i, id := range tt.expected {
			if visible[i].ID != id {
				t.Errorf("Query %q: expected post %s at index %d, got %s", tt.query, id, i, visible[i].ID)
			}
		}
	}
}

func TestToggleGenre_SecondToggleRemoves(t *testing.T) {
	f := cachedFeed(models.Post{ID: "1", Genre: []string{"Action"}})

	f.ToggleGenre("Action")
	if got := f.SelectedGenres(); len(got) != 1 {
		t.Fatalf("Expected 1 selected genre, got %v", got)
	}

	f.ToggleGenre("Action")
	if got := f.SelectedGenres(); len(got) != 0 {
		t.Errorf("Expected toggle to deselect, got %v", got)
	}
}

func TestGenerate_PrependsAfterConfirmation(t *testing.T) {
	server, storeMock := newTestServer(t)
	seedServerPost(storeMock, "existing", "old topic")

	f := feed.New(feed.NewClient(server.URL))
	if err := f.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	post, err := f.Generate(context.Background(), "space travel")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	posts := f.Posts()
	if len(posts) != 2 {
		t.Fatalf("Expected 2 cached posts, got %d", len(posts))
	}
	if posts[0].ID != post.ID {
		t.Error("Expected new post at the head of the cache")
	}
}

func TestGenerate_FailureLeavesCacheUnchanged(t *testing.T) {
	server, storeMock := newTestServer(t)
	seedServerPost(storeMock, "existing", "old topic")

	f := feed.New(feed.NewClient(server.URL))
	if err := f.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	// Empty topic is rejected server-side with 400
	if _, err := f.Generate(context.Background(), ""); err == nil {
		t.Fatal("Expected error for rejected generation")
	}

	if posts := f.Posts(); len(posts) != 1 {
		t.Errorf("Expected cache unchanged after failure, got %d posts", len(posts))
	}
}

func TestRemove_DropsFromCacheAfterConfirmation(t *testing.T) {
	server, storeMock := newTestServer(t)
	seedServerPost(storeMock, "doomed", "topic")
	seedServerPost(storeMock, "keeper", "topic")

	f := feed.New(feed.NewClient(server.URL))
	if err := f.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if err := f.Remove(context.Background(), "doomed"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	posts := f.Posts()
	if len(posts) != 1 {
		t.Fatalf("Expected 1 cached post, got %d", len(posts))
	}
	if posts[0].ID != "keeper" {
		t.Errorf("Wrong post removed from cache")
	}
}

func seedServerPost(storeMock *mocks.MockPostStore, id, topic string) {
	storeMock.Posts = append([]*models.Post{{
		ID:          id,
		Title:       "Post about " + topic,
		Content:     "body",
		Genre:       []string{},
		Topic:       topic,
		CreatedAt:   time.Now().UTC(),
		ReadingTime: 1,
	}}, storeMock.Posts...)
}
