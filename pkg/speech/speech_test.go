package speech_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MMansij/New-Int/pkg/provider"
	"github.com/MMansij/New-Int/pkg/speech"

	"github.com/stretchr/testify/require"
)

type fakeSynthesizer struct {
	content []byte
	err     error

	calls   int
	options []*provider.SynthesizeOptions
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	f.calls++
	f.options = append(f.options, options)

	if f.err != nil {
		return nil, f.err
	}

	return &provider.Synthesis{
		Content: f.content,
	}, nil
}

func TestSynthesize(t *testing.T) {
	synthesizer := &fakeSynthesizer{
		content: []byte("ID3-real-audio"),
	}

	audio := speech.New(synthesizer, speech.WithVoice("Joanna")).Synthesize(context.Background(), "An invoice.")

	require.False(t, audio.Placeholder)
	require.Equal(t, []byte("ID3-real-audio"), audio.Content)
	require.Equal(t, "audio/mpeg", audio.ContentType)

	require.Equal(t, 1, synthesizer.calls)
	require.Equal(t, "Joanna", synthesizer.options[0].Voice)
}

func TestSynthesizeMock(t *testing.T) {
	synthesizer := &fakeSynthesizer{}

	audio := speech.New(synthesizer, speech.WithMock(true)).Synthesize(context.Background(), "hello")

	require.True(t, audio.Placeholder)
	require.Equal(t, []byte("dummy:hello"), audio.Content)
	require.Zero(t, synthesizer.calls)
}

func TestSynthesizeWithoutBackend(t *testing.T) {
	audio := speech.New(nil).Synthesize(context.Background(), "hello")

	require.True(t, audio.Placeholder)
	require.Equal(t, []byte("dummy:hello"), audio.Content)
	require.Equal(t, "audio/mpeg", audio.ContentType)
}

func TestSynthesizeFailure(t *testing.T) {
	synthesizer := &fakeSynthesizer{
		err: errors.New("polly unavailable"),
	}

	audio := speech.New(synthesizer).Synthesize(context.Background(), "No summary found.")

	require.NotNil(t, audio)
	require.True(t, audio.Placeholder)
	require.Equal(t, []byte("dummy:No summary found."), audio.Content)
	require.Equal(t, 1, synthesizer.calls)
}
