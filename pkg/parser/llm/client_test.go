package llm_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MMansij/New-Int/pkg/parser"
	"github.com/MMansij/New-Int/pkg/parser/llm"
	"github.com/MMansij/New-Int/pkg/provider"

	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	output string
	err    error

	messages [][]provider.Message
	options  []*provider.CompleteOptions
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	f.messages = append(f.messages, messages)
	f.options = append(f.options, options)

	if f.err != nil {
		return nil, f.err
	}

	return &provider.Completion{
		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: []provider.Content{provider.TextContent(f.output)},
		},
	}, nil
}

func TestParse(t *testing.T) {
	completer := &fakeCompleter{
		output: `{"document_type":"Invoice","key_value_data":{"Amount":"$123.45"},"spoken_summary":"An invoice."}`,
	}

	c := llm.New(completer)

	result, err := c.Parse(context.Background(), "Hello\nWorld")
	require.NoError(t, err)

	require.False(t, result.Fallback)
	require.Equal(t, "Invoice", result.Document.DocumentType)
	require.Equal(t, map[string]string{"Amount": "$123.45"}, result.Document.KeyValueData)
	require.Equal(t, "An invoice.", result.Document.SpokenSummary)

	require.Len(t, completer.messages, 1)

	prompt := completer.messages[0][0].Text()

	require.True(t, strings.HasPrefix(prompt, "You are an expert document parsing assistant."))
	require.True(t, strings.HasSuffix(prompt, "OCR:\nHello\nWorld"))
	require.Equal(t, 1000, *completer.options[0].MaxTokens)
}

func TestParseIdempotent(t *testing.T) {
	completer := &fakeCompleter{
		output: `{"document_type":"Receipt","key_value_data":{"Total":"9.99"},"spoken_summary":"A receipt."}`,
	}

	c := llm.New(completer)

	a, err := c.Parse(context.Background(), "Total 9.99")
	require.NoError(t, err)

	b, err := c.Parse(context.Background(), "Total 9.99")
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Equal(t, completer.messages[0], completer.messages[1])
}

func TestParseMalformedOutput(t *testing.T) {
	c := llm.New(&fakeCompleter{
		output: "not-json!!",
	})

	result, err := c.Parse(context.Background(), "anything")
	require.NoError(t, err)

	require.True(t, result.Fallback)
	require.Equal(t, parser.DefaultDocument(), result.Document)
}

func TestParseInvocationError(t *testing.T) {
	boom := errors.New("bedrock boom")

	c := llm.New(&fakeCompleter{
		err: boom,
	})

	_, err := c.Parse(context.Background(), "x")

	var perr *parser.InvocationError
	require.ErrorAs(t, err, &perr)
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "bedrock boom")
}

func TestWithMaxTokens(t *testing.T) {
	completer := &fakeCompleter{output: "{}"}

	_, err := llm.New(completer, llm.WithMaxTokens(256)).Parse(context.Background(), "x")
	require.NoError(t, err)

	require.Equal(t, 256, *completer.options[0].MaxTokens)
}
