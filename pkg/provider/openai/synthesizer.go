package openai

import (
	"context"
	"errors"
	"io"

	"github.com/MMansij/New-Int/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
	speech openai.AudioSpeechService
}

func NewSynthesizer(model string, options ...Option) (*Synthesizer, error) {
	if model == "" {
		return nil, errors.New("invalid model")
	}

	cfg := &Config{
		model: model,
		voice: string(openai.AudioSpeechNewParamsVoiceAlloy),
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
		speech: openai.NewAudioSpeechService(cfg.Options()...),
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

	format := openai.AudioSpeechNewParamsResponseFormatMP3

	if options.Format != "" {
		format = openai.AudioSpeechNewParamsResponseFormat(options.Format)
	}

	resp, err := s.speech.New(ctx, openai.AudioSpeechNewParams{
		Model: openai.SpeechModel(s.model),
		Input: content,

		Voice: openai.AudioSpeechNewParamsVoice(voice),

		ResponseFormat: format,
	})

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")

	if contentType == "" {
		contentType = provider.ContentTypeMPEG
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     data,
		ContentType: contentType,
	}, nil
}
