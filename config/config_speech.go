package config

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/MMansij/New-Int/pkg/limiter"
	"github.com/MMansij/New-Int/pkg/otel"
	"github.com/MMansij/New-Int/pkg/provider"
	"github.com/MMansij/New-Int/pkg/provider/openai"
	"github.com/MMansij/New-Int/pkg/provider/polly"
	"github.com/MMansij/New-Int/pkg/speech"
)

func (cfg *Config) RegisterSpeech(c *speech.Client) {
	cfg.speech = c
}

func (cfg *Config) Speech() (*speech.Client, error) {
	if cfg.speech == nil {
		return nil, errors.New("speech not configured")
	}

	return cfg.speech, nil
}

type speechConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Model string `yaml:"model"`
	Voice string `yaml:"voice"`

	Mock bool `yaml:"mock"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerSpeech(ctx context.Context, f *configFile, aws *awsContext) error {
	config := f.Speech

	mock := f.Mock || config.Mock

	token, err := aws.resolve(ctx, config.Token)

	if err != nil {
		return err
	}

	config.Token = token

	var synthesizer provider.Synthesizer

	if !mock {
		synthesizer, err = createSynthesizer(config, aws)

		if err != nil {
			return err
		}
	}

	if synthesizer != nil {
		synthesizer = limiter.NewSynthesizer(createLimiter(config.Limit), synthesizer)
		synthesizer = otel.NewSynthesizer(strings.ToLower(config.Type), config.Voice, synthesizer)
	}

	cfg.RegisterSpeech(speech.New(synthesizer, speech.WithMock(mock)))

	return nil
}

// createSynthesizer returns nil without error when the backend lacks the
// credentials it needs. Speech then degrades to placeholder audio.
func createSynthesizer(cfg speechConfig, aws *awsContext) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "polly":
		if !aws.Credentials {
			slog.Warn("no aws credentials configured, speech uses placeholder audio")
			return nil, nil
		}

		options := []polly.Option{
			polly.WithConfig(aws.Config),
		}

		if cfg.Voice != "" {
			options = append(options, polly.WithVoice(cfg.Voice))
		}

		return polly.NewSynthesizer(options...)

	case "openai":
		model := cfg.Model

		if model == "" {
			model = "tts-1"
		}

		var options []openai.Option

		if cfg.URL != "" {
			options = append(options, openai.WithURL(cfg.URL))
		}

		if cfg.Token != "" {
			options = append(options, openai.WithToken(cfg.Token))
		}

		if cfg.Voice != "" {
			options = append(options, openai.WithVoice(cfg.Voice))
		}

		return openai.NewSynthesizer(model, options...)

	case "none":
		return nil, nil

	default:
		return nil, errors.New("invalid speech type: " + cfg.Type)
	}
}
