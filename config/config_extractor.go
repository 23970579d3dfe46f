package config

import (
	"errors"
	"strings"
	"time"

	"github.com/MMansij/New-Int/pkg/extractor"
	"github.com/MMansij/New-Int/pkg/extractor/static"
	"github.com/MMansij/New-Int/pkg/extractor/textract"
	"github.com/MMansij/New-Int/pkg/limiter"
	"github.com/MMansij/New-Int/pkg/otel"
)

func (cfg *Config) RegisterExtractor(p extractor.Provider) {
	cfg.extractor = p
}

func (cfg *Config) Extractor() (extractor.Provider, error) {
	if cfg.extractor == nil {
		return nil, errors.New("extractor not configured")
	}

	return cfg.extractor, nil
}

type extractorConfig struct {
	Type string `yaml:"type"`

	Text string `yaml:"text"`

	Test     bool          `yaml:"test"`
	Interval time.Duration `yaml:"interval"`
	Attempts int           `yaml:"attempts"`
	Fallback bool          `yaml:"fallback"`

	Limit *int `yaml:"limit"`
}

func (c extractorConfig) poller() extractor.Poller {
	poller := extractor.DefaultPoller()

	if c.Test {
		poller = extractor.FastPoller()
	}

	if c.Interval > 0 {
		poller.Interval = c.Interval
	}

	if c.Attempts > 0 {
		poller.Attempts = c.Attempts
	}

	poller.AllowFallback = c.Fallback

	return poller
}

func (cfg *Config) registerExtractor(f *configFile, aws *awsContext) error {
	config := f.Extractor

	if f.Mock {
		config.Type = "static"
	}

	p, err := createExtractor(config, aws)

	if err != nil {
		return err
	}

	p = limiter.NewExtractor(createLimiter(config.Limit), p)
	p = otel.NewExtractor(strings.ToLower(config.Type), p)

	cfg.RegisterExtractor(p)

	return nil
}

func createExtractor(cfg extractorConfig, aws *awsContext) (extractor.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "textract":
		return textract.New(
			textract.WithConfig(aws.Config),
			textract.WithPoller(cfg.poller()),
		)

	case "static":
		return static.New(cfg.Text), nil

	default:
		return nil, errors.New("invalid extractor type: " + cfg.Type)
	}
}
