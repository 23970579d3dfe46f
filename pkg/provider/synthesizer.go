package provider

import (
	"context"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, input string, options *SynthesizeOptions) (*Synthesis, error)
}

const (
	SynthesisFormatMP3 = "mp3"

	ContentTypeMPEG = "audio/mpeg"
)

type SynthesizeOptions struct {
	// overrides the backend's configured voice
	Voice string

	// audio container, mp3 unless set
	Format string
}

type Synthesis struct {
	ID    string
	Model string

	Content     []byte
	ContentType string
}

// MediaType returns the synthesis content type, assuming mp3 when the backend
// did not report one.
func (s *Synthesis) MediaType() string {
	if s.ContentType == "" {
		return ContentTypeMPEG
	}

	return s.ContentType
}
