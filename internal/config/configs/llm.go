package configs

import "time"

// LLM selects and configures the generative language model provider.
type LLM struct {
	// Provider is "gemini" (default) or "anthropic".
	Provider string `env:"PROVIDER" envDefault:"gemini"`
	APIKey   string `env:"API_KEY"`
	// Model overrides the provider's default model.
	Model string `env:"MODEL"`
	// BaseURL overrides the provider endpoint, mostly for tests and proxies.
	BaseURL string        `env:"BASE_URL"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
	// RPS throttles outbound calls. Zero disables throttling.
	RPS       float64 `env:"RPS"        envDefault:"5"`
	MaxTokens int     `env:"MAX_TOKENS" envDefault:"1024"`
}
