package s3

import (
	"github.com/aws/aws-sdk-go-v2/aws"
)

type Option func(*Client)

func WithConfig(config aws.Config) Option {
	return func(c *Client) {
		c.config = &config
	}
}

// WithEndpoint targets an S3 compatible endpoint using path style addressing.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		c.endpoint = url
	}
}

func WithPrefix(prefix string) Option {
	return func(c *Client) {
		c.prefix = prefix
	}
}

func WithAPI(api API) Option {
	return func(c *Client) {
		c.api = api
	}
}
