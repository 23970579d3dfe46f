package polly

import (
	"github.com/aws/aws-sdk-go-v2/aws"
)

type Config struct {
	voice string

	config *aws.Config
	api    API
}

type Option func(*Config)

func WithConfig(config aws.Config) Option {
	return func(c *Config) {
		c.config = &config
	}
}

func WithVoice(voice string) Option {
	return func(c *Config) {
		c.voice = voice
	}
}

func WithAPI(api API) Option {
	return func(c *Config) {
		c.api = api
	}
}
