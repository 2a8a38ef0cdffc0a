package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// AnthropicBaseURL is the Anthropic Messages API base URL.
	AnthropicBaseURL = "https://api.anthropic.com"

	// DefaultAnthropicModel is used when no model is configured.
	DefaultAnthropicModel = "claude-haiku-4-5"

	// anthropicAPIVersion is the Anthropic API version header value.
	anthropicAPIVersion = "2023-06-01"

	// anthropicMaxTokens bounds the response; located sections can be
	// several pages of text.
	anthropicMaxTokens = 8192

	// anthropicRateLimit caps requests per second across a batch of papers.
	anthropicRateLimit = 2.0

	// anthropicTimeout is generous: locating a section in a full paper
	// is a long-input request.
	anthropicTimeout = 3 * time.Minute

	apiPathMessages = "/v1/messages"
)

// AnthropicClient calls the Anthropic Messages API over HTTP.
type AnthropicClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
	model      string
}

// AnthropicOption configures an AnthropicClient.
type AnthropicOption func(*AnthropicClient)

// WithAPIKey sets the API key for authenticated requests.
func WithAPIKey(key string) AnthropicOption {
	return func(c *AnthropicClient) {
		c.apiKey = key
	}
}

// WithAnthropicModel sets the model identifier.
func WithAnthropicModel(model string) AnthropicOption {
	return func(c *AnthropicClient) {
		c.model = model
	}
}

// WithAnthropicBaseURL sets a custom base URL (for testing).
func WithAnthropicBaseURL(url string) AnthropicOption {
	return func(c *AnthropicClient) {
		c.baseURL = url
	}
}

// WithAnthropicHTTPClient sets a custom HTTP client.
func WithAnthropicHTTPClient(hc *http.Client) AnthropicOption {
	return func(c *AnthropicClient) {
		c.httpClient = hc
	}
}

// NewAnthropicClient creates a new Anthropic Messages API client.
func NewAnthropicClient(opts ...AnthropicOption) *AnthropicClient {
	c := &AnthropicClient{
		httpClient: &http.Client{Timeout: anthropicTimeout},
		limiter:    rate.NewLimiter(rate.Limit(anthropicRateLimit), 1),
		baseURL:    AnthropicBaseURL,
		model:      DefaultAnthropicModel,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// messagesRequest is the request body for the Anthropic Messages API.
type messagesRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

// anthropicMessage represents a single message in the Messages API.
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// contentBlock represents a content block in the Messages API response.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// messagesResponse is the response body from the Messages API.
type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

// anthropicErrorDetail is the nested error object in an API error response.
type anthropicErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// anthropicErrorResponse wraps the error payload from the API.
type anthropicErrorResponse struct {
	Error anthropicErrorDetail `json:"error"`
}

// Complete sends the prompt as a single user message and returns the
// text of the first content block in the response.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("ANTHROPIC_API_KEY not set")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for rate limiter: %w", err)
	}

	reqBody := messagesRequest{
		Model:     c.model,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPathMessages, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicAPIVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", anthropicError(resp)
	}

	var result messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	for _, block := range result.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("response contained no text content")
}

// Name returns the provider name.
func (c *AnthropicClient) Name() string {
	return "anthropic"
}

// Model returns the configured model identifier.
func (c *AnthropicClient) Model() string {
	return c.model
}

// anthropicError extracts a useful message from a non-200 response.
func anthropicError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("anthropic returned status %d", resp.StatusCode)
	}

	var apiErr anthropicErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("anthropic returned status %d: %s", resp.StatusCode, apiErr.Error.Message)
	}

	return fmt.Errorf("anthropic returned status %d: %s", resp.StatusCode, string(body))
}
