package otel

import (
	"context"
	"time"

	"github.com/MMansij/New-Int/pkg/storage"
)

type Storage interface {
	Observable
	storage.Provider
}

type observableStorage struct {
	metric *stageMetric

	storage storage.Provider
}

func NewStorage(provider string, p storage.Provider) Storage {
	return &observableStorage{
		storage: p,

		metric: newStageMetric("storage", provider),
	}
}

func (p *observableStorage) otelSetup() {
}

func (p *observableStorage) Store(ctx context.Context, file storage.File) (*storage.Locator, error) {
	ctx, span := p.metric.start(ctx, "store")
	defer span.End()

	span.SetAttributes(
		String("document.name", file.Name),
		String("document.content_type", file.ContentType),
		Int("document.size", len(file.Content)),
	)

	started := time.Now()

	result, err := p.storage.Store(ctx, file)
	p.metric.record(ctx, span, started, err)

	if result != nil {
		span.SetAttributes(String("document.locator", result.String()))
	}

	return result, err
}
