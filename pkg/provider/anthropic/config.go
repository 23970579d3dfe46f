package anthropic

import (
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
)

const DefaultModel = "claude-3-5-haiku-latest"

type Config struct {
	url string

	token string
	model string

	retries int
	timeout time.Duration

	client *http.Client
}

type Option func(*Config)

func WithURL(url string) Option {
	return func(c *Config) {
		c.url = url
	}
}

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

// WithRetries lets the SDK retry throttled or failed requests. Requests are
// not retried by default.
func WithRetries(retries int) Option {
	return func(c *Config) {
		c.retries = retries
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.timeout = timeout
	}
}

func (cfg *Config) Options() []option.RequestOption {
	url := strings.TrimRight(cfg.url, "/")

	if url == "" {
		url = "https://api.anthropic.com"
	}

	options := []option.RequestOption{
		option.WithBaseURL(url + "/"),
		option.WithMaxRetries(max(cfg.retries, 0)),
	}

	client := cfg.client

	if client == nil && cfg.timeout > 0 {
		client = &http.Client{Timeout: cfg.timeout}
	}

	if client != nil {
		options = append(options, option.WithHTTPClient(client))
	}

	if cfg.token != "" {
		options = append(options, option.WithAPIKey(cfg.token))
	}

	return options
}
