package llm

import (
	"context"
	"log/slog"

	"github.com/MMansij/New-Int/pkg/parser"
	"github.com/MMansij/New-Int/pkg/provider"
)

var _ parser.Provider = (*Client)(nil)

const prompt = "You are an expert document parsing assistant.\n" +
	"1) Identify document type.\n" +
	"2) Return key-value data JSON.\n" +
	"3) Provide a short spoken summary.\n\n" +
	`Return: {"document_type": "...", "key_value_data": {...}, "spoken_summary": "..."}` +
	"\n\nOCR:\n"

type Client struct {
	completer provider.Completer

	maxTokens int
}

type Option func(*Client)

func WithMaxTokens(val int) Option {
	return func(c *Client) {
		c.maxTokens = val
	}
}

func New(completer provider.Completer, options ...Option) *Client {
	c := &Client{
		completer: completer,

		maxTokens: 1000,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func Prompt(text string) string {
	return prompt + text
}

func (c *Client) Parse(ctx context.Context, text string) (*parser.Result, error) {
	messages := []provider.Message{
		provider.UserMessage(Prompt(text)),
	}

	options := &provider.CompleteOptions{
		MaxTokens: &c.maxTokens,
	}

	completion, err := c.completer.Complete(ctx, messages, options)

	if err != nil {
		return nil, &parser.InvocationError{Err: err}
	}

	slog.DebugContext(ctx, "document parsed", "model", completion.Model, "tokens", completion.Usage.Total())

	result := parser.Decode(completion.Text())

	if result.Fallback {
		slog.WarnContext(ctx, "model output not parseable, using default document")
	}

	return result, nil
}
