package limiter

import (
	"context"

	"github.com/MMansij/New-Int/pkg/extractor"

	"golang.org/x/time/rate"
)

type Extractor interface {
	Limiter
	extractor.Provider
}

type limitedExtractor struct {
	gate

	extractor extractor.Provider
}

func NewExtractor(l *rate.Limiter, p extractor.Provider) Extractor {
	return &limitedExtractor{
		gate: gate{l},

		extractor: p,
	}
}

func (p *limitedExtractor) Extract(ctx context.Context, locator string) (string, error) {
	if err := p.wait(ctx); err != nil {
		return "", &extractor.StartError{Locator: locator, Err: err}
	}

	return p.extractor.Extract(ctx, locator)
}
