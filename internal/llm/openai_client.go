package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

const requestTimeout = 2 * time.Minute

// OpenAIClient talks to any OpenAI-compatible chat-completion endpoint.
type OpenAIClient struct {
	client  *openai.Client
	backend Backend
}

// NewOpenAIClient builds a client for backend. httpClient may be nil.
func NewOpenAIClient(backend Backend, httpClient *http.Client) (*OpenAIClient, error) {
	if backend.APIKey == "" {
		return nil, errors.New("API key is not set")
	}
	if backend.Model == "" {
		return nil, errors.New("model is not set")
	}

	cfg := openai.DefaultConfig(backend.APIKey)
	if backend.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(backend.BaseURL, "/")
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	if len(backend.Headers) > 0 {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		wrapped := *httpClient
		wrapped.Transport = &headerTransport{base: base, headers: backend.Headers}
		httpClient = &wrapped
	}
	cfg.HTTPClient = httpClient

	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), backend: backend}, nil
}

// Complete sends the conversation and returns the raw content of the first
// choice.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.backend.Model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	log.Debug().
		Str("provider", string(c.backend.Provider)).
		Str("model", c.backend.Model).
		Int("messages", len(messages)).
		Msg("sending chat completion request")

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", c.classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", &MalformedResponseError{Provider: c.backend.Provider, Reason: "no choices"}
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &MalformedResponseError{Provider: c.backend.Provider, Reason: "empty message content"}
	}

	log.Debug().
		Str("provider", string(c.backend.Provider)).
		Str("content", content).
		Msg("response received")

	return content, nil
}

// classify maps go-openai failures onto the oracle error taxonomy.
func (c *OpenAIClient) classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &TransportError{Provider: c.backend.Provider, StatusCode: apiErr.HTTPStatusCode, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &TransportError{Provider: c.backend.Provider, StatusCode: reqErr.HTTPStatusCode, Err: err}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &MalformedResponseError{Provider: c.backend.Provider, Reason: "undecodable body", Err: err}
	}

	return &TransportError{Provider: c.backend.Provider, Err: err}
}

type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	for k, v := range t.headers {
		r.Header.Set(k, v)
	}
	return t.base.RoundTrip(r)
}
