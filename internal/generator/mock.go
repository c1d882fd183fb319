package generator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/ai-blog-api/internal/corpus"
	"github.com/ai-blog-api/internal/models"
	"github.com/rs/zerolog"
)

// mockGenerator picks a random corpus entry instead of calling a
// text-generation API. A configurable delay simulates generation
// latency for UI loading states; zero disables it.
type mockGenerator struct {
	corpus *corpus.Corpus
	delay  time.Duration
	log    zerolog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMock creates a generator that serves canned posts from the corpus
func NewMock(c *corpus.Corpus, delay time.Duration, log zerolog.Logger) Generator {
	return NewMockWithRand(c, delay, rand.New(rand.NewSource(time.Now().UnixNano())), log)
}

// NewMockWithRand creates a mock generator with an injected random
// source, for deterministic tests
func NewMockWithRand(c *corpus.Corpus, delay time.Duration, rng *rand.Rand, log zerolog.Logger) Generator {
	return &mockGenerator{
		corpus: c,
		delay:  delay,
		rng:    rng,
		log:    log.With().Str("component", "generator.mock").Logger(),
	}
}

// Generate returns a uniformly random corpus entry with its reading time
// recomputed from the body. It fails only when the simulated delay is
// cut short by context cancellation.
func (g *mockGenerator) Generate(ctx context.Context, topic string) (*models.Draft, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	g.mu.Lock()
	entry := g.corpus.Pick(g.rng)
	g.mu.Unlock()

	g.log.Debug().Str("topic", topic).Str("entry", entry.Title).Msg("Picked corpus entry")

	return &models.Draft{
		Title:       entry.Title,
		Content:     entry.Content,
		Genre:       entry.Genre,
		ReadingTime: ReadingTime(entry.Content),
	}, nil
}

var _ Generator = (*mockGenerator)(nil)
