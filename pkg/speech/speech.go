package speech

import (
	"context"
	"log/slog"

	"github.com/MMansij/New-Int/pkg/provider"
)

const DefaultContentType = provider.ContentTypeMPEG

// Audio is the encoded speech for a summary. Placeholder audio is never
// playable and only marks that synthesis was skipped or degraded.
type Audio struct {
	Content     []byte
	ContentType string

	Placeholder bool
}

// PlaceholderAudio returns the stand-in payload "dummy:<text>".
func PlaceholderAudio(text string) *Audio {
	return &Audio{
		Content:     []byte("dummy:" + text),
		ContentType: DefaultContentType,

		Placeholder: true,
	}
}

type Client struct {
	synthesizer provider.Synthesizer

	mock    bool
	options *provider.SynthesizeOptions
}

type Option func(*Client)

// WithMock makes the client skip the backend entirely.
func WithMock(mock bool) Option {
	return func(c *Client) {
		c.mock = mock
	}
}

func WithVoice(voice string) Option {
	return func(c *Client) {
		if c.options == nil {
			c.options = new(provider.SynthesizeOptions)
		}

		c.options.Voice = voice
	}
}

// New creates a client. A nil synthesizer means no speech backend is
// configured and every call yields placeholder audio.
func New(synthesizer provider.Synthesizer, options ...Option) *Client {
	c := &Client{
		synthesizer: synthesizer,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *Client) Synthesize(ctx context.Context, text string) *Audio {
	if c.mock || c.synthesizer == nil {
		return PlaceholderAudio(text)
	}

	synthesis, err := c.synthesizer.Synthesize(ctx, text, c.options)

	if err != nil {
		slog.WarnContext(ctx, "speech synthesis failed, using placeholder audio", "error", err)
		return PlaceholderAudio(text)
	}

	return &Audio{
		Content:     synthesis.Content,
		ContentType: synthesis.MediaType(),
	}
}
