package limiter

import (
	"context"

	"github.com/MMansij/New-Int/pkg/storage"

	"golang.org/x/time/rate"
)

type Storage interface {
	Limiter
	storage.Provider
}

type limitedStorage struct {
	gate

	storage storage.Provider
}

func NewStorage(l *rate.Limiter, p storage.Provider) Storage {
	return &limitedStorage{
		gate: gate{l},

		storage: p,
	}
}

func (p *limitedStorage) Store(ctx context.Context, file storage.File) (*storage.Locator, error) {
	if err := p.wait(ctx); err != nil {
		return nil, &storage.Error{Err: err}
	}

	return p.storage.Store(ctx, file)
}
