package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MMansij/New-Int/pkg/extractor"
	"github.com/MMansij/New-Int/pkg/parser"
	"github.com/MMansij/New-Int/pkg/provider"
	"github.com/MMansij/New-Int/pkg/speech"
	"github.com/MMansij/New-Int/pkg/storage"
)

type Stage string

const (
	StageStorage    Stage = "storage"
	StageExtraction Stage = "extraction"
	StageParsing    Stage = "parsing"
)

// StageError reports the stage that aborted a run. Its message is the
// message of the underlying cause.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type Speaker interface {
	Synthesize(ctx context.Context, text string) *speech.Audio
}

var _ Speaker = (*speech.Client)(nil)

type Result struct {
	Locator *storage.Locator

	Text     string
	Document parser.Document
	Fallback bool

	Audio *speech.Audio
}

type Pipeline struct {
	storage   storage.Provider
	extractor extractor.Provider
	parser    parser.Provider
	speaker   Speaker
}

func New(storage storage.Provider, extractor extractor.Provider, parser parser.Provider, speaker Speaker) (*Pipeline, error) {
	if storage == nil || extractor == nil || parser == nil || speaker == nil {
		return nil, errors.New("pipeline requires storage, extractor, parser and speech")
	}

	return &Pipeline{
		storage:   storage,
		extractor: extractor,
		parser:    parser,
		speaker:   speaker,
	}, nil
}

// Run stores the file, extracts its text, parses the text into a document
// and voices the summary. Stages run strictly in order and the first failing
// stage ends the run.
func (p *Pipeline) Run(ctx context.Context, file provider.File) (*Result, error) {
	slog.InfoContext(ctx, "storing upload", "name", file.Name, "size", len(file.Content))

	locator, err := p.storage.Store(ctx, file)

	if err != nil {
		return nil, &StageError{Stage: StageStorage, Err: err}
	}

	slog.InfoContext(ctx, "extracting text", "locator", locator.String())

	text, err := p.extractor.Extract(ctx, locator.String())

	if err != nil {
		return nil, &StageError{Stage: StageExtraction, Err: err}
	}

	slog.InfoContext(ctx, "parsing document", "length", len(text))

	parsed, err := p.parser.Parse(ctx, text)

	if err != nil {
		return nil, &StageError{Stage: StageParsing, Err: err}
	}

	slog.InfoContext(ctx, "synthesizing summary", "document_type", parsed.Document.DocumentType, "fallback", parsed.Fallback)

	audio := p.speaker.Synthesize(ctx, parsed.Document.SpokenSummary)

	return &Result{
		Locator: locator,

		Text:     text,
		Document: parsed.Document,
		Fallback: parsed.Fallback,

		Audio: audio,
	}, nil
}
