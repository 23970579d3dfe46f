package textract

import (
	"context"
	"errors"
	"fmt"

	"github.com/MMansij/New-Int/pkg/awsutil"
	"github.com/MMansij/New-Int/pkg/extractor"
	"github.com/MMansij/New-Int/pkg/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

var _ extractor.Provider = (*Client)(nil)

type API interface {
	StartDocumentTextDetection(ctx context.Context, params *textract.StartDocumentTextDetectionInput, optFns ...func(*textract.Options)) (*textract.StartDocumentTextDetectionOutput, error)
	GetDocumentTextDetection(ctx context.Context, params *textract.GetDocumentTextDetectionInput, optFns ...func(*textract.Options)) (*textract.GetDocumentTextDetectionOutput, error)
}

type Client struct {
	api    API
	config *aws.Config

	poller extractor.Poller
}

func New(options ...Option) (*Client, error) {
	c := &Client{
		poller: extractor.DefaultPoller(),
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

		c.api = textract.NewFromConfig(*c.config)
	}

	return c, nil
}

func (c *Client) Extract(ctx context.Context, locator string) (string, error) {
	id, err := c.Start(ctx, locator)

	if err != nil {
		return "", err
	}

	return c.poller.Poll(ctx, id, c.Status)
}

// Start submits an asynchronous text detection job for an s3:// locator.
func (c *Client) Start(ctx context.Context, locator string) (string, error) {
	l, err := storage.ParseLocator(locator)

	if err != nil {
		return "", &extractor.StartError{Locator: locator, Err: err}
	}

	if l.Scheme != "s3" {
		return "", &extractor.StartError{Locator: locator, Err: fmt.Errorf("%w: unsupported scheme %q", storage.ErrInvalidLocator, l.Scheme)}
	}

	resp, err := c.api.StartDocumentTextDetection(ctx, &textract.StartDocumentTextDetectionInput{
		DocumentLocation: &types.DocumentLocation{
			S3Object: &types.S3Object{
				Bucket: aws.String(l.Bucket),
				Name:   aws.String(l.Key),
			},
		},
	})

	if err != nil {
		return "", &extractor.StartError{Locator: locator, Err: awsutil.ConvertError(err)}
	}

	id := aws.ToString(resp.JobId)

	if id == "" {
		return "", &extractor.StartError{Locator: locator, Err: errors.New("missing job id")}
	}

	return id, nil
}

// Status performs one status query. Result pages of a finished job are
// collected before returning.
func (c *Client) Status(ctx context.Context, id string) (*extractor.Job, error) {
	resp, err := c.api.GetDocumentTextDetection(ctx, &textract.GetDocumentTextDetectionInput{
		JobId: aws.String(id),
	})

	if err != nil {
		return nil, awsutil.ConvertError(err)
	}

	job := &extractor.Job{
		ID:     id,
		Status: toStatus(resp.JobStatus),

		Message: aws.ToString(resp.StatusMessage),
	}

	if job.Status != extractor.StatusSucceeded {
		return job, nil
	}

	job.Lines = appendLines(job.Lines, resp.Blocks)

	for token := resp.NextToken; aws.ToString(token) != ""; {
		page, err := c.api.GetDocumentTextDetection(ctx, &textract.GetDocumentTextDetectionInput{
			JobId:     aws.String(id),
			NextToken: token,
		})

		if err != nil {
			return nil, awsutil.ConvertError(err)
		}

		job.Lines = appendLines(job.Lines, page.Blocks)
		token = page.NextToken
	}

	return job, nil
}

func toStatus(status types.JobStatus) extractor.Status {
	switch status {
	case types.JobStatusSucceeded, types.JobStatusPartialSuccess:
		return extractor.StatusSucceeded

	case types.JobStatusFailed:
		return extractor.StatusFailed

	default:
		return extractor.StatusRunning
	}
}

func appendLines(lines []string, blocks []types.Block) []string {
	for _, b := range blocks {
		if b.BlockType != types.BlockTypeLine {
			continue
		}

		text := aws.ToString(b.Text)

		if text == "" {
			continue
		}

		lines = append(lines, text)
	}

	return lines
}
