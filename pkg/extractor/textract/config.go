package textract

import (
	"github.com/MMansij/New-Int/pkg/extractor"

	"github.com/aws/aws-sdk-go-v2/aws"
)

type Option func(*Client)

func WithConfig(config aws.Config) Option {
	return func(c *Client) {
		c.config = &config
	}
}

func WithPoller(poller extractor.Poller) Option {
	return func(c *Client) {
		c.poller = poller
	}
}

func WithAPI(api API) Option {
	return func(c *Client) {
		c.api = api
	}
}
