package config

import (
	"context"
	"errors"
	"strings"

	"github.com/MMansij/New-Int/pkg/limiter"
	"github.com/MMansij/New-Int/pkg/otel"
	"github.com/MMansij/New-Int/pkg/parser"
	"github.com/MMansij/New-Int/pkg/parser/llm"
	"github.com/MMansij/New-Int/pkg/provider"
	"github.com/MMansij/New-Int/pkg/provider/anthropic"
	"github.com/MMansij/New-Int/pkg/provider/bedrock"
	"github.com/MMansij/New-Int/pkg/provider/google"
	"github.com/MMansij/New-Int/pkg/provider/openai"
)

func (cfg *Config) RegisterParser(p parser.Provider) {
	cfg.parser = p
}

func (cfg *Config) Parser() (parser.Provider, error) {
	if cfg.parser == nil {
		return nil, errors.New("parser not configured")
	}

	return cfg.parser, nil
}

type parserConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Model string `yaml:"model"`

	// Vertex AI project and location for the google parser
	Project  string `yaml:"project"`
	Location string `yaml:"location"`

	MaxTokens int `yaml:"max_tokens"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerParser(ctx context.Context, f *configFile, aws *awsContext) error {
	config := f.Parser

	token, err := aws.resolve(ctx, config.Token)

	if err != nil {
		return err
	}

	config.Token = token
	config.Model = cleanValue(config.Model)

	completer, err := createCompleter(config, aws)

	if err != nil {
		return err
	}

	completer = limiter.NewCompleter(createLimiter(config.Limit), completer)
	completer = otel.NewCompleter(providerName(config.Type), config.Model, completer)

	var options []llm.Option

	if config.MaxTokens > 0 {
		options = append(options, llm.WithMaxTokens(config.MaxTokens))
	}

	cfg.RegisterParser(llm.New(completer, options...))

	return nil
}

func createCompleter(cfg parserConfig, aws *awsContext) (provider.Completer, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "bedrock":
		model := cfg.Model

		if model == "" {
			model = defaultModel
		}

		return bedrock.NewCompleter(model, bedrock.WithConfig(aws.Config))

	case "anthropic":
		var options []anthropic.Option

		if cfg.URL != "" {
			options = append(options, anthropic.WithURL(cfg.URL))
		}

		if cfg.Token != "" {
			options = append(options, anthropic.WithToken(cfg.Token))
		}

		return anthropic.NewCompleter(cfg.Model, options...)

	case "openai":
		var options []openai.Option

		if cfg.URL != "" {
			options = append(options, openai.WithURL(cfg.URL))
		}

		if cfg.Token != "" {
			options = append(options, openai.WithToken(cfg.Token))
		}

		return openai.NewCompleter(cfg.Model, options...)

	case "google", "gemini":
		var options []google.Option

		if cfg.URL != "" {
			options = append(options, google.WithURL(cfg.URL))
		}

		if cfg.Token != "" {
			options = append(options, google.WithToken(cfg.Token))
		}

		if cfg.Project != "" {
			options = append(options, google.WithVertex(cfg.Project, cfg.Location))
		}

		return google.NewCompleter(cfg.Model, options...)

	default:
		return nil, errors.New("invalid parser type: " + cfg.Type)
	}
}

// providerName maps a backend type to its gen_ai.provider.name value.
func providerName(kind string) string {
	switch strings.ToLower(kind) {
	case "", "bedrock":
		return "aws.bedrock"

	case "google", "gemini":
		return "gcp.gemini"
	}

	return strings.ToLower(kind)
}
