package config

import (
	"context"

	"github.com/MMansij/New-Int/pkg/awsutil"
	"github.com/MMansij/New-Int/pkg/secret"
	"github.com/MMansij/New-Int/pkg/secret/kms"

	"github.com/aws/aws-sdk-go-v2/aws"
)

type awsConfig struct {
	Region string `yaml:"region"`

	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	SessionToken    string `yaml:"session_token"`

	Endpoint string `yaml:"endpoint"`
}

type awsContext struct {
	Config aws.Config

	Endpoint string

	// Credentials reports whether an explicit key pair was configured.
	Credentials bool

	decrypter secret.Decrypter
}

func (cfg *Config) loadAWS(ctx context.Context, c awsConfig) (*awsContext, error) {
	region := cleanValue(c.Region)

	if region == "" {
		region = defaultRegion
	}

	result := &awsContext{
		Endpoint: cleanValue(c.Endpoint),
	}

	base, err := awsutil.LoadConfig(ctx, awsutil.Options{
		Region: region,
	})

	if err != nil {
		return nil, err
	}

	result.Config = base

	options := awsutil.Options{
		Region: region,
	}

	if options.AccessKeyID, err = result.resolve(ctx, c.AccessKeyID); err != nil {
		return nil, err
	}

	if options.SecretAccessKey, err = result.resolve(ctx, c.SecretAccessKey); err != nil {
		return nil, err
	}

	if options.SessionToken, err = result.resolve(ctx, c.SessionToken); err != nil {
		return nil, err
	}

	if !options.HasCredentials() {
		return result, nil
	}

	config, err := awsutil.LoadConfig(ctx, options)

	if err != nil {
		return nil, err
	}

	result.Config = config
	result.Credentials = true

	return result, nil
}

// resolve cleans a configured secret and decrypts it when it carries the
// kms: prefix. The KMS client uses the default credential chain.
func (a *awsContext) resolve(ctx context.Context, value string) (string, error) {
	value = cleanValue(value)

	if !secret.IsEncrypted(value) {
		return value, nil
	}

	if a.decrypter == nil {
		d, err := kms.New(kms.WithConfig(a.Config))

		if err != nil {
			return "", err
		}

		a.decrypter = d
	}

	value, err := secret.Resolve(ctx, a.decrypter, value)

	if err != nil {
		return "", err
	}

	return cleanValue(value), nil
}
