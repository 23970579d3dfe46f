package polly

import (
	"context"

	"github.com/MMansij/New-Int/pkg/audio"
	"github.com/MMansij/New-Int/pkg/awsutil"
	"github.com/MMansij/New-Int/pkg/provider"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

const DefaultVoice = "Joanna"

type API interface {
	SynthesizeSpeech(ctx context.Context, params *polly.SynthesizeSpeechInput, optFns ...func(*polly.Options)) (*polly.SynthesizeSpeechOutput, error)
}

type Synthesizer struct {
	*Config
}

func NewSynthesizer(options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		voice: DefaultVoice,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.api == nil {
		if cfg.config == nil {
			config, err := config.LoadDefaultConfig(context.Background())

			if err != nil {
				return nil, err
			}

			cfg.config = &config
		}

		cfg.api = polly.NewFromConfig(*cfg.config)
	}

	return &Synthesizer{
		Config: cfg,
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	voice := s.voice

	if options.Voice != "" {
		voice = options.Voice
	}

	resp, err := s.api.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Text: aws.String(content),

		VoiceId:      types.VoiceId(voice),
		OutputFormat: types.OutputFormatMp3,
	})

	if err != nil {
		return nil, awsutil.ConvertError(err)
	}

	var stream any

	if resp.AudioStream != nil {
		stream = resp.AudioStream
	}

	producer, err := audio.From(stream)

	if err != nil {
		return nil, err
	}

	data, err := audio.Concat(producer)

	if err != nil {
		return nil, err
	}

	contentType := aws.ToString(resp.ContentType)

	if contentType == "" {
		contentType = provider.ContentTypeMPEG
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: voice,

		Content:     data,
		ContentType: contentType,
	}, nil
}
