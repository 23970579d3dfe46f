package config

import (
	"errors"
	"strings"

	"github.com/MMansij/New-Int/pkg/limiter"
	"github.com/MMansij/New-Int/pkg/otel"
	"github.com/MMansij/New-Int/pkg/storage"
	"github.com/MMansij/New-Int/pkg/storage/memory"
	"github.com/MMansij/New-Int/pkg/storage/s3"
)

func (cfg *Config) RegisterStorage(p storage.Provider) {
	cfg.storage = p
}

func (cfg *Config) Storage() (storage.Provider, error) {
	if cfg.storage == nil {
		return nil, errors.New("storage not configured")
	}

	return cfg.storage, nil
}

type storageConfig struct {
	Type string `yaml:"type"`

	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerStorage(f *configFile, aws *awsContext) error {
	config := f.Storage

	if f.Mock {
		config.Type = "memory"
	}

	p, err := createStorage(config, aws)

	if err != nil {
		return err
	}

	p = limiter.NewStorage(createLimiter(config.Limit), p)
	p = otel.NewStorage(strings.ToLower(config.Type), p)

	cfg.RegisterStorage(p)

	return nil
}

func createStorage(cfg storageConfig, aws *awsContext) (storage.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "s3":
		return s3Storage(cfg, aws)

	case "memory":
		return memory.New(cfg.Bucket), nil

	default:
		return nil, errors.New("invalid storage type: " + cfg.Type)
	}
}

func s3Storage(cfg storageConfig, aws *awsContext) (storage.Provider, error) {
	bucket := cleanValue(cfg.Bucket)

	if bucket == "" {
		bucket = defaultBucket
	}

	options := []s3.Option{
		s3.WithConfig(aws.Config),
	}

	if aws.Endpoint != "" {
		options = append(options, s3.WithEndpoint(aws.Endpoint))
	}

	if cfg.Prefix != "" {
		options = append(options, s3.WithPrefix(cfg.Prefix))
	}

	return s3.New(bucket, options...)
}
