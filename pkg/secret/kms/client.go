package kms

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MMansij/New-Int/pkg/awsutil"
	"github.com/MMansij/New-Int/pkg/secret"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kms"
)

var _ secret.Decrypter = (*Client)(nil)

var ErrNoPlaintext = errors.New("decryption returned no plaintext")

type API interface {
	Decrypt(ctx context.Context, params *kms.DecryptInput, optFns ...func(*kms.Options)) (*kms.DecryptOutput, error)
}

type Client struct {
	config *aws.Config
	api    API
}

type Option func(*Client)

func WithConfig(config aws.Config) Option {
	return func(c *Client) {
		c.config = &config
	}
}

func WithAPI(api API) Option {
	return func(c *Client) {
		c.api = api
	}
}

func New(options ...Option) (*Client, error) {
	c := &Client{}

	for _, option := range options {
		option(c)
	}

	if c.api == nil {
		if c.config == nil {
			config, err := config.LoadDefaultConfig(context.Background())

			if err != nil {
				return nil, err
			}

			c.config = &config
		}

		c.api = kms.NewFromConfig(*c.config)
	}

	return c, nil
}

func (c *Client) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)

	if err != nil {
		return "", fmt.Errorf("invalid ciphertext: %w", err)
	}

	resp, err := c.api.Decrypt(ctx, &kms.DecryptInput{
		CiphertextBlob: blob,
	})

	if err != nil {
		return "", awsutil.ConvertError(err)
	}

	if len(resp.Plaintext) == 0 {
		return "", ErrNoPlaintext
	}

	return string(resp.Plaintext), nil
}
