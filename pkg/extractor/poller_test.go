package extractor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MMansij/New-Int/pkg/extractor"

	"github.com/stretchr/testify/require"
)

func statusSequence(calls *int, jobs ...*extractor.Job) extractor.StatusFunc {
	return func(ctx context.Context, id string) (*extractor.Job, error) {
		*calls++

		if *calls > len(jobs) {
			return jobs[len(jobs)-1], nil
		}

		return jobs[*calls-1], nil
	}
}

func running() *extractor.Job {
	return &extractor.Job{ID: "job-1", Status: extractor.StatusRunning}
}

func TestPollSucceeded(t *testing.T) {
	var calls int

	status := statusSequence(&calls, running(), &extractor.Job{
		ID:     "job-1",
		Status: extractor.StatusSucceeded,
		Lines:  []string{"Hello", "", "World"},
	})

	text, err := extractor.FastPoller().Poll(context.Background(), "job-1", status)
	require.NoError(t, err)

	require.Equal(t, "Hello\nWorld", text)
	require.Equal(t, 2, calls)
}

func TestPollSucceededWithoutLines(t *testing.T) {
	var calls int

	status := statusSequence(&calls, &extractor.Job{ID: "job-1", Status: extractor.StatusSucceeded})

	text, err := extractor.FastPoller().Poll(context.Background(), "job-1", status)
	require.NoError(t, err)

	require.Equal(t, extractor.FallbackText, text)
}

func TestPollFailed(t *testing.T) {
	var calls int

	status := statusSequence(&calls, &extractor.Job{ID: "job-1", Status: extractor.StatusFailed})

	_, err := extractor.FastPoller().Poll(context.Background(), "job-1", status)
	require.ErrorIs(t, err, extractor.ErrJobFailed)
	require.Equal(t, 1, calls)
}

func TestPollTimeout(t *testing.T) {
	for _, attempts := range []int{1, 3, 5} {
		var calls int

		p := extractor.Poller{
			Interval: time.Millisecond,
			Attempts: attempts,
		}

		_, err := p.Poll(context.Background(), "job-1", statusSequence(&calls, running()))

		require.ErrorIs(t, err, extractor.ErrTimeout)
		require.Equal(t, attempts, calls)
	}
}

func TestPollTimeoutFallback(t *testing.T) {
	var calls int

	p := extractor.FastPoller()
	p.AllowFallback = true

	text, err := p.Poll(context.Background(), "job-1", statusSequence(&calls, running()))
	require.NoError(t, err)

	require.Equal(t, extractor.FallbackText, text)
	require.Equal(t, p.Attempts, calls)
}

func TestPollStatusError(t *testing.T) {
	boom := errors.New("throttled")

	status := func(ctx context.Context, id string) (*extractor.Job, error) {
		return nil, boom
	}

	_, err := extractor.FastPoller().Poll(context.Background(), "job-1", status)
	require.ErrorIs(t, err, boom)
}

func TestPollCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls int

	status := func(ctx context.Context, id string) (*extractor.Job, error) {
		calls++
		cancel()

		return running(), nil
	}

	p := extractor.Poller{
		Interval: time.Hour,
		Attempts: 10,
	}

	_, err := p.Poll(ctx, "job-1", status)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, calls)
}

func TestStatusTerminal(t *testing.T) {
	require.False(t, extractor.StatusRunning.Terminal())
	require.True(t, extractor.StatusSucceeded.Terminal())
	require.True(t, extractor.StatusFailed.Terminal())
}
