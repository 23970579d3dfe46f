package bedrock

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
)

type Config struct {
	model string

	config *aws.Config
	api    API
}

type Option func(*Config)

func WithConfig(config aws.Config) Option {
	return func(c *Config) {
		c.config = &config
	}
}

func WithAPI(api API) Option {
	return func(c *Config) {
		c.api = api
	}
}

func isClaudeModel(model string) bool {
	model = strings.ToLower(model)

	return strings.Contains(model, "anthropic") || strings.Contains(model, "claude")
}
