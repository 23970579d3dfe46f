package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type StatusFunc func(ctx context.Context, id string) (*Job, error)

type Poller struct {
	Interval time.Duration
	Attempts int

	// AllowFallback returns FallbackText instead of ErrTimeout once the
	// attempt budget is exhausted.
	AllowFallback bool
}

func DefaultPoller() Poller {
	return Poller{
		Interval: 1200 * time.Millisecond,
		Attempts: 60,
	}
}

func FastPoller() Poller {
	return Poller{
		Interval: 5 * time.Millisecond,
		Attempts: 3,
	}
}

// Poll queries the job status until it reaches a terminal state or the
// attempt budget runs out.
func (p Poller) Poll(ctx context.Context, id string, status StatusFunc) (string, error) {
	attempts := p.Attempts

	if attempts <= 0 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		job, err := status(ctx, id)

		if err != nil {
			return "", err
		}

		switch job.Status {
		case StatusSucceeded:
			return job.Text(), nil

		case StatusFailed:
			if job.Message != "" {
				return "", fmt.Errorf("%w: %s", ErrJobFailed, job.Message)
			}

			return "", ErrJobFailed
		}

		if attempt == attempts {
			break
		}

		if err := sleep(ctx, p.Interval); err != nil {
			return "", err
		}
	}

	if p.AllowFallback {
		slog.WarnContext(ctx, "extraction timed out, using fallback text", "job", id, "attempts", attempts)
		return FallbackText, nil
	}

	return "", fmt.Errorf("%w after %d attempts", ErrTimeout, attempts)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()

	case <-t.C:
		return nil
	}
}
