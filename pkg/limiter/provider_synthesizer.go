package limiter

import (
	"context"

	"github.com/MMansij/New-Int/pkg/provider"

	"golang.org/x/time/rate"
)

type Synthesizer interface {
	Limiter
	provider.Synthesizer
}

type limitedSynthesizer struct {
	gate

	synthesizer provider.Synthesizer
}

func NewSynthesizer(l *rate.Limiter, p provider.Synthesizer) Synthesizer {
	return &limitedSynthesizer{
		gate: gate{l},

		synthesizer: p,
	}
}

func (p *limitedSynthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	return p.synthesizer.Synthesize(ctx, content, options)
}
