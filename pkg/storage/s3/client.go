package s3

import (
	"bytes"
	"context"
	"errors"

	"github.com/MMansij/New-Int/pkg/awsutil"
	"github.com/MMansij/New-Int/pkg/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var _ storage.Provider = (*Client)(nil)

type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Client struct {
	api API

	config   *aws.Config
	endpoint string

	bucket string
	prefix string
}

func New(bucket string, options ...Option) (*Client, error) {
	if bucket == "" {
		return nil, errors.New("invalid bucket")
	}

	c := &Client{
		bucket: bucket,
		prefix: "uploads",
	}

	for _, option := range options {
		option(c)
	}

	if c.api == nil {
		if c.config == nil {
			cfg, err := config.LoadDefaultConfig(context.Background())

			if err != nil {
				return nil, err
			}

			c.config = &cfg
		}

		c.api = s3.NewFromConfig(*c.config, func(o *s3.Options) {
			if c.endpoint != "" {
				o.BaseEndpoint = aws.String(c.endpoint)
				o.UsePathStyle = true
			}
		})
	}

	return c, nil
}

func (c *Client) Store(ctx context.Context, file storage.File) (*storage.Locator, error) {
	key := storage.ObjectKey(c.prefix, file.Name)

	_, err := c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),

		Body:          bytes.NewReader(file.Content),
		ContentLength: aws.Int64(int64(len(file.Content))),
		ContentType:   aws.String(storage.ContentType(file)),
	})

	if err != nil {
		return nil, &storage.Error{Err: awsutil.ConvertError(err)}
	}

	return &storage.Locator{
		Scheme: "s3",
		Bucket: c.bucket,
		Key:    key,
	}, nil
}
