package otel

import (
	"context"
	"time"

	"github.com/MMansij/New-Int/pkg/extractor"
)

type Extractor interface {
	Observable
	extractor.Provider
}

type observableExtractor struct {
	metric *stageMetric

	extractor extractor.Provider
}

func NewExtractor(provider string, p extractor.Provider) Extractor {
	return &observableExtractor{
		extractor: p,

		metric: newStageMetric("extraction", provider),
	}
}

func (p *observableExtractor) otelSetup() {
}

func (p *observableExtractor) Extract(ctx context.Context, locator string) (string, error) {
	ctx, span := p.metric.start(ctx, "extract")
	defer span.End()

	span.SetAttributes(String("document.locator", locator))

	started := time.Now()

	text, err := p.extractor.Extract(ctx, locator)
	p.metric.record(ctx, span, started, err)

	if err == nil {
		span.SetAttributes(
			Int("document.text_length", len(text)),
			Bool("document.text_fallback", text == extractor.FallbackText),
		)
	}

	return text, err
}
