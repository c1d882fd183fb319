// Package generator produces blog post drafts from a topic, either via a
// text-generation API or from the mock corpus.
package generator

import (
	"context"
	"strings"
	"unicode"

	"github.com/ai-blog-api/internal/models"
)

// Generator defines the interface for post generation strategies
type Generator interface {
	Generate(ctx context.Context, topic string) (*models.Draft, error)
}

// wordsPerMinute is the assumed reading speed
const wordsPerMinute = 200

// ReadingTime estimates reading duration in minutes: word count divided
// by 200, rounded up, never below 1
func ReadingTime(body string) int {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// TitleFromTopic derives a display title by capitalizing the first rune
// of the topic
func TitleFromTopic(topic string) string {
	r := []rune(topic)
	if len(r) == 0 {
		return topic
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
