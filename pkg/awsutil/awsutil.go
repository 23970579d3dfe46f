package awsutil

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/smithy-go"
)

type Options struct {
	Region string

	// shared config profile, used when no static pair is set
	Profile string

	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

func (o Options) HasCredentials() bool {
	return o.AccessKeyID != "" && o.SecretAccessKey != ""
}

// LoadConfig uses the static credential pair when present, then the named
// shared config profile, and falls back to the default credential chain.
func LoadConfig(ctx context.Context, o Options) (aws.Config, error) {
	var options []func(*config.LoadOptions) error

	if o.Region != "" {
		options = append(options, config.WithRegion(o.Region))
	}

	if o.HasCredentials() {
		provider := credentials.NewStaticCredentialsProvider(o.AccessKeyID, o.SecretAccessKey, o.SessionToken)
		options = append(options, config.WithCredentialsProvider(provider))
	} else if o.Profile != "" {
		options = append(options, config.WithSharedConfigProfile(o.Profile))
	}

	return config.LoadDefaultConfig(ctx, options...)
}

type apiError struct {
	code    string
	message string

	err error
}

func (e *apiError) Error() string {
	if e.message == "" {
		return e.code
	}

	return e.code + ": " + e.message
}

func (e *apiError) Unwrap() error {
	return e.err
}

// ConvertError shortens AWS API errors to "code: message".
func ConvertError(err error) error {
	var apierr smithy.APIError

	if errors.As(err, &apierr) {
		return &apiError{
			code:    apierr.ErrorCode(),
			message: apierr.ErrorMessage(),

			err: err,
		}
	}

	return err
}
