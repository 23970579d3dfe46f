package anthropic

import (
	"context"
	"strings"

	"github.com/MMansij/New-Int/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	messages anthropic.MessageService
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	if model == "" {
		model = DefaultModel
	}

	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req := c.convertMessageRequest(messages, options)

	message, err := c.messages.New(ctx, *req)

	if err != nil {
		return nil, err
	}

	result := &provider.Completion{
		ID:    message.ID,
		Model: string(message.Model),

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,
		},

		Usage: toUsage(message.Usage),
	}

	for _, block := range message.Content {
		if block.Type == "text" && block.Text != "" {
			result.Message.Content = append(result.Message.Content, provider.TextContent(block.Text))
		}
	}

	return result, nil
}

func (c *Completer) convertMessageRequest(input []provider.Message, options *provider.CompleteOptions) *anthropic.MessageNewParams {
	req := &anthropic.MessageNewParams{
		Model: anthropic.Model(c.model),

		MaxTokens: 1000,
	}

	if options.Stop != nil {
		req.StopSequences = options.Stop
	}

	if options.MaxTokens != nil {
		req.MaxTokens = int64(*options.MaxTokens)
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	system, messages := provider.SplitSystem(input)

	if system != "" {
		req.System = []anthropic.TextBlockParam{
			{Text: system},
		}
	}

	for _, m := range messages {
		var blocks []anthropic.ContentBlockParamUnion

		for _, c := range m.Content {
			if text := strings.TrimRight(c.Text, " \t\n\r"); text != "" {
				blocks = append(blocks, anthropic.NewTextBlock(text))
			}
		}

		if m.Role == provider.MessageRoleAssistant {
			req.Messages = append(req.Messages, anthropic.NewAssistantMessage(blocks...))
			continue
		}

		req.Messages = append(req.Messages, anthropic.NewUserMessage(blocks...))
	}

	return req
}

func toUsage(usage anthropic.Usage) *provider.Usage {
	if usage.InputTokens == 0 && usage.OutputTokens == 0 {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(usage.InputTokens),
		OutputTokens: int(usage.OutputTokens),
	}
}
