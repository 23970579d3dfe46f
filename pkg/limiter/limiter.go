package limiter

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/time/rate"
)

var ErrLimited = errors.New("rate limit wait aborted")

type Limiter interface {
	limiterSetup()
}

// New returns a limiter allowing the given requests per second, or nil when
// limit is not positive. Wrappers treat a nil limiter as unlimited.
func New(limit int) *rate.Limiter {
	if limit <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(limit), limit)
}

// gate is embedded by every wrapper. A nil limiter never blocks.
type gate struct {
	limiter *rate.Limiter
}

func (g gate) limiterSetup() {
}

func (g gate) wait(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrLimited, err)
	}

	return nil
}
