package bedrock

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MMansij/New-Int/pkg/awsutil"
	"github.com/MMansij/New-Int/pkg/provider"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

var _ provider.Completer = (*Completer)(nil)

type API interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

type Completer struct {
	*Config
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	if model == "" {
		return nil, errors.New("invalid model")
	}

	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.api == nil {
		if cfg.config == nil {
			config, err := config.LoadDefaultConfig(context.Background())

			if err != nil {
				return nil, err
			}

			cfg.config = &config
		}

		cfg.api = bedrockruntime.NewFromConfig(*cfg.config)
	}

	return &Completer{
		Config: cfg,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	if isClaudeModel(c.model) {
		return c.invoke(ctx, messages, options)
	}

	return c.converse(ctx, messages, options)
}

// invoke calls the model with the native Anthropic messages body and reads
// the first text block of the response envelope.
func (c *Completer) invoke(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	body, err := json.Marshal(c.convertMessagesRequest(messages, options))

	if err != nil {
		return nil, err
	}

	resp, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId: aws.String(c.model),

		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})

	if err != nil {
		return nil, awsutil.ConvertError(err)
	}

	var envelope MessagesResponse

	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, err
	}

	text := "{}"

	if len(envelope.Content) > 0 && envelope.Content[0].Text != "" {
		text = envelope.Content[0].Text
	}

	id := envelope.ID

	if id == "" {
		id = uuid.NewString()
	}

	result := &provider.Completion{
		ID:    id,
		Model: envelope.Model,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: []provider.Content{
				provider.TextContent(text),
			},
		},
	}

	if envelope.Usage != nil {
		result.Usage = &provider.Usage{
			InputTokens:  envelope.Usage.InputTokens,
			OutputTokens: envelope.Usage.OutputTokens,
		}
	}

	return result, nil
}

func (c *Completer) converse(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	resp, err := c.api.Converse(ctx, c.convertConverseInput(messages, options))

	if err != nil {
		return nil, awsutil.ConvertError(err)
	}

	return &provider.Completion{
		ID:    uuid.NewString(),
		Model: c.model,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: toContent(resp.Output),
		},

		Usage: toUsage(resp.Usage),
	}, nil
}

func (c *Completer) convertMessagesRequest(input []provider.Message, options *provider.CompleteOptions) *MessagesRequest {
	system, messages := provider.SplitSystem(input)

	req := &MessagesRequest{
		AnthropicVersion: anthropicVersion,

		System: system,

		MaxTokens:     1000,
		Temperature:   options.Temperature,
		StopSequences: options.Stop,
	}

	if options.MaxTokens != nil {
		req.MaxTokens = *options.MaxTokens
	}

	for _, m := range messages {
		message := Message{
			Role: string(m.Role),
		}

		for _, c := range m.Content {
			if c.Text == "" {
				continue
			}

			message.Content = append(message.Content, ContentBlock{
				Type: "text",
				Text: c.Text,
			})
		}

		req.Messages = append(req.Messages, message)
	}

	return req
}

func (c *Completer) convertConverseInput(input []provider.Message, options *provider.CompleteOptions) *bedrockruntime.ConverseInput {
	system, messages := provider.SplitSystem(input)

	req := &bedrockruntime.ConverseInput{
		ModelId: aws.String(c.model),

		InferenceConfig: &types.InferenceConfiguration{
			Temperature:   options.Temperature,
			StopSequences: options.Stop,
		},
	}

	if options.MaxTokens != nil {
		req.InferenceConfig.MaxTokens = aws.Int32(int32(*options.MaxTokens))
	}

	if system != "" {
		req.System = []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{
				Value: system,
			},
		}
	}

	for _, m := range messages {
		message := types.Message{
			Role: types.ConversationRoleUser,
		}

		if m.Role == provider.MessageRoleAssistant {
			message.Role = types.ConversationRoleAssistant
		}

		for _, c := range m.Content {
			if c.Text == "" {
				continue
			}

			message.Content = append(message.Content, &types.ContentBlockMemberText{
				Value: c.Text,
			})
		}

		req.Messages = append(req.Messages, message)
	}

	return req
}

func toContent(val types.ConverseOutput) []provider.Content {
	message, ok := val.(*types.ConverseOutputMemberMessage)

	if !ok {
		return nil
	}

	var parts []provider.Content

	for _, b := range message.Value.Content {
		if block, ok := b.(*types.ContentBlockMemberText); ok {
			parts = append(parts, provider.TextContent(block.Value))
		}
	}

	return parts
}

func toUsage(val *types.TokenUsage) *provider.Usage {
	if val == nil {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(aws.ToInt32(val.InputTokens)),
		OutputTokens: int(aws.ToInt32(val.OutputTokens)),
	}
}
