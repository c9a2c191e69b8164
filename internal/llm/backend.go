package llm

import (
	"fmt"
	"strings"
)

type Provider string

const (
	ProviderOpenAI     Provider = "openai"
	ProviderOpenRouter Provider = "openrouter"
)

const (
	openAIBaseURL     = "https://api.openai.com/v1"
	openRouterBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is used when no model is configured.
	DefaultModel = "o3-mini"

	openRouterReferer = "https://github.com/nbenliogludev/go-wordle-agent"
	openRouterTitle   = "Wordle Bot"
)

// Backend is everything needed to address one chat-completion endpoint.
type Backend struct {
	Provider Provider
	BaseURL  string
	APIKey   string
	Model    string
	// Headers are sent on every request in addition to the bearer token.
	Headers map[string]string
}

// Credentials holds the per-backend API keys.
type Credentials struct {
	OpenAI     string
	OpenRouter string
}

// ParseProvider maps a configured selector to a Provider; empty means openai.
func ParseProvider(s string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case "", ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderOpenRouter:
		return ProviderOpenRouter, nil
	default:
		return "", fmt.Errorf("unknown LLM provider %q (want openai or openrouter)", s)
	}
}

// ResolveModel applies the provider's model naming rule: OpenAI takes the
// bare model id, OpenRouter needs "vendor/model" and gets "openai/<model>"
// when the configured name has no vendor.
func ResolveModel(p Provider, model string) string {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}
	if p == ProviderOpenRouter && !strings.Contains(model, "/") {
		return "openai/" + model
	}
	return model
}

// ResolveBackend builds the backend for provider p.
func ResolveBackend(p Provider, model string, creds Credentials) (Backend, error) {
	switch p {
	case ProviderOpenAI:
		if creds.OpenAI == "" {
			return Backend{}, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		return Backend{
			Provider: p,
			BaseURL:  openAIBaseURL,
			APIKey:   creds.OpenAI,
			Model:    ResolveModel(p, model),
		}, nil
	case ProviderOpenRouter:
		if creds.OpenRouter == "" {
			return Backend{}, fmt.Errorf("OPENROUTER_API_KEY is not set")
		}
		return Backend{
			Provider: p,
			BaseURL:  openRouterBaseURL,
			APIKey:   creds.OpenRouter,
			Model:    ResolveModel(p, model),
			Headers: map[string]string{
				"HTTP-Referer": openRouterReferer,
				"X-Title":      openRouterTitle,
			},
		}, nil
	default:
		return Backend{}, fmt.Errorf("unknown LLM provider %q", p)
	}
}
