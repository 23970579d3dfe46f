package otel

import (
	"context"
	"time"

	"github.com/MMansij/New-Int/pkg/provider"
)

type Synthesizer interface {
	Observable
	provider.Synthesizer
}

type observableSynthesizer struct {
	voice string

	metric *stageMetric

	synthesizer provider.Synthesizer
}

// NewSynthesizer traces speech calls. voice is the configured default and is
// overridden by a voice passed per call.
func NewSynthesizer(provider, voice string, p provider.Synthesizer) Synthesizer {
	return &observableSynthesizer{
		synthesizer: p,

		voice:  voice,
		metric: newStageMetric("speech", provider),
	}
}

func (p *observableSynthesizer) otelSetup() {
}

func (p *observableSynthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	ctx, span := p.metric.start(ctx, "synthesize")
	defer span.End()

	voice := p.voice

	if options != nil && options.Voice != "" {
		voice = options.Voice
	}

	span.SetAttributes(
		String("speech.voice", voice),
		Int("speech.input_length", len(content)),
	)

	started := time.Now()

	result, err := p.synthesizer.Synthesize(ctx, content, options)
	p.metric.record(ctx, span, started, err)

	if result != nil {
		span.SetAttributes(
			String("speech.content_type", result.ContentType),
			Int("speech.audio_size", len(result.Content)),
		)
	}

	return result, err
}
