package parser

import (
	"context"
	"maps"
)

type Provider interface {
	Parse(ctx context.Context, text string) (*Result, error)
}

const (
	DefaultDocumentType  = "Unknown"
	DefaultSpokenSummary = "No summary found."
)

type Document struct {
	DocumentType  string
	KeyValueData  map[string]string
	SpokenSummary string
}

func DefaultDocument() Document {
	return Document{
		DocumentType:  DefaultDocumentType,
		KeyValueData:  map[string]string{},
		SpokenSummary: DefaultSpokenSummary,
	}
}

// Result carries either a parsed document or, with Fallback set, the default
// document that replaces unusable model output.
type Result struct {
	Document Document

	Fallback bool
}

func Parsed(doc Document) *Result {
	return &Result{
		Document: doc,
	}
}

func Fallback() *Result {
	return &Result{
		Document: DefaultDocument(),
		Fallback: true,
	}
}

func (d Document) Clone() Document {
	d.KeyValueData = maps.Clone(d.KeyValueData)

	if d.KeyValueData == nil {
		d.KeyValueData = map[string]string{}
	}

	return d
}

// InvocationError is returned when the model could not be called at all.
type InvocationError struct {
	Err error
}

func (e *InvocationError) Error() string {
	return "parser: " + e.Err.Error()
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}
