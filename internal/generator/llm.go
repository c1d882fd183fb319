package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ai-blog-api/internal/models"
	"github.com/rs/zerolog"
)

const systemPrompt = "You are a professional blog writer. Write a comprehensive blog post about the given topic."

// LLMConfig holds settings for the text-generation API
type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// llmGenerator calls an OpenAI-compatible chat-completions API.
// The upstream call is not retried; failures surface to the caller.
type llmGenerator struct {
	cfg    LLMConfig
	client *http.Client
	log    zerolog.Logger
}

// NewLLM creates a generator backed by a text-generation API
func NewLLM(cfg LLMConfig, log zerolog.Logger) Generator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-3.5-turbo"
	}
	return &llmGenerator{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.With().Str("component", "generator.llm").Logger(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate produces a draft by asking the text-generation API to write a
// post about the topic. The draft carries no genres; the upstream call
// returns prose, not taxonomy.
func (g *llmGenerator) Generate(ctx context.Context, topic string) (*models.Draft, error) {
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	content, err := g.complete(ctx, topic)
	if err != nil {
		g.log.Error().Err(err).Str("topic", topic).Msg("Text generation failed")
		return nil, fmt.Errorf("failed to generate post: %w", err)
	}

	return &models.Draft{
		Title:       TitleFromTopic(topic),
		Content:     content,
		Genre:       []string{},
		ReadingTime: ReadingTime(content),
	}, nil
}

func (g *llmGenerator) complete(ctx context.Context, topic string) (string, error) {
	reqBody := chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Write a blog post about: %s", topic)},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.BaseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	g.log.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Completion request finished")

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion response contains no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

var _ Generator = (*llmGenerator)(nil)
