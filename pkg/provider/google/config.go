package google

import (
	"context"
	"net/http"

	"google.golang.org/genai"
)

type Config struct {
	url string

	token string
	model string

	// set to use Vertex AI with application default credentials
	project  string
	location string

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

func WithVertex(project, location string) Option {
	return func(c *Config) {
		c.project = project
		c.location = location
	}
}

func (c *Config) newClient(ctx context.Context) (*genai.Client, error) {
	config := &genai.ClientConfig{
		HTTPClient: c.client,
	}

	if c.project != "" {
		config.Backend = genai.BackendVertexAI
		config.Project = c.project
		config.Location = c.location

		if config.Location == "" {
			config.Location = "us-central1"
		}
	} else {
		config.Backend = genai.BackendGeminiAPI
		config.APIKey = c.token
	}

	if c.url != "" {
		config.HTTPOptions = genai.HTTPOptions{
			BaseURL: c.url,
		}
	}

	return genai.NewClient(ctx, config)
}
