package limiter

import (
	"context"

	"github.com/MMansij/New-Int/pkg/provider"

	"golang.org/x/time/rate"
)

type Completer interface {
	Limiter
	provider.Completer
}

type limitedCompleter struct {
	gate

	completer provider.Completer
}

func NewCompleter(l *rate.Limiter, p provider.Completer) Completer {
	return &limitedCompleter{
		gate: gate{l},

		completer: p,
	}
}

func (p *limitedCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	return p.completer.Complete(ctx, messages, options)
}
