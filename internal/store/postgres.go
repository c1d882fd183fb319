package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/ai-blog-api/internal/database"
	"github.com/ai-blog-api/internal/models"
)

// postgresStore persists posts in a posts table. Ordering is by
// created_at descending so newest-first holds across restarts.
type postgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a database-backed post store
func NewPostgresStore(db *database.DB) PostStore {
	return &postgresStore{db: db}
}

func (s *postgresStore) List(ctx context.Context) ([]*models.Post, error) {
	query := `
		SELECT id, title, content, genre, topic, created_at, reading_time
		FROM posts ORDER BY created_at DESC, id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (s *postgresStore) Get(ctx context.Context, id string) (*models.Post, error) {
	query := `
		SELECT id, title, content, genre, topic, created_at, reading_time
		FROM posts WHERE id = $1
	`

	var post models.Post
	var genreJSON []byte

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Content, &genreJSON,
		&post.Topic, &post.CreatedAt, &post.ReadingTime,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal(genreJSON, &post.Genre)
	return &post, nil
}

func (s *postgresStore) Insert(ctx context.Context, post *models.Post) error {
	genreJSON, _ := json.Marshal(post.Genre)
	if post.Genre == nil {
		genreJSON = []byte("[]")
	}

	query := `
		INSERT INTO posts (id, title, content, genre, topic, created_at, reading_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, string(genreJSON),
		post.Topic, post.CreatedAt, post.ReadingTime,
	)
	return err
}

func (s *postgresStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}

func (s *postgresStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count)
	return count, err
}

func (s *postgresStore) Close() error {
	return s.db.Close()
}

func scanPost(rows *sql.Rows) (*models.Post, error) {
	var post models.Post
	var genreJSON []byte

	err := rows.Scan(
		&post.ID, &post.Title, &post.Content, &genreJSON,
		&post.Topic, &post.CreatedAt, &post.ReadingTime,
	)
	if err != nil {
		return nil, err
	}

	json.Unmarshal(genreJSON, &post.Genre)
	return &post, nil
}
