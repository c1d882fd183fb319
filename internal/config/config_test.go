package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Store.Backend != BackendFile {
		t.Errorf("Expected default file backend, got %s", cfg.Store.Backend)
	}
	if cfg.Generator.Strategy != GeneratorMock {
		t.Errorf("Expected default mock generator, got %s", cfg.Generator.Strategy)
	}
	if cfg.Generator.MockDelay != 2*time.Second {
		t.Errorf("Expected default 2s mock delay, got %v", cfg.Generator.MockDelay)
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		t.Error("Expected a default CORS allow-list")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("GENERATOR_MOCK_DELAY", "0s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Store.Backend != BackendMemory {
		t.Errorf("Expected memory backend, got %s", cfg.Store.Backend)
	}
	if cfg.Generator.MockDelay != 0 {
		t.Errorf("Expected zero mock delay, got %v", cfg.Generator.MockDelay)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "http://b.example" {
		t.Errorf("Expected trimmed origin list, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"unknown backend", func(c *Config) { c.Store.Backend = "redis" }, true},
		{"file backend without path", func(c *Config) {
			c.Store.Backend = BackendFile
			c.Store.PostsFile = ""
		}, true},
		{"unknown generator", func(c *Config) { c.Generator.Strategy = "markov" }, true},
		{"llm without key", func(c *Config) {
			c.Generator.Strategy = GeneratorLLM
			c.Generator.APIKey = ""
		}, true},
		{"llm with key", func(c *Config) {
			c.Generator.Strategy = GeneratorLLM
			c.Generator.APIKey = "sk-test"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Store:     StoreConfig{Backend: BackendFile, PostsFile: "./posts.json"},
				Generator: GeneratorConfig{Strategy: GeneratorMock},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}
