package google

import (
	"context"
	"errors"

	"github.com/MMansij/New-Int/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Completer = (*Completer)(nil)

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

	return &Completer{
		Config: cfg,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	client, err := c.newClient(ctx)

	if err != nil {
		return nil, err
	}

	system, input := provider.SplitSystem(messages)

	config := &genai.GenerateContentConfig{
		StopSequences: options.Stop,
		Temperature:   options.Temperature,
	}

	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, "")
	}

	if options.MaxTokens != nil {
		config.MaxOutputTokens = int32(*options.MaxTokens)
	}

	if options.Format == provider.CompletionFormatJSON {
		config.ResponseMIMEType = "application/json"
	}

	var contents []*genai.Content

	for _, m := range input {
		role := genai.Role(genai.RoleUser)

		if m.Role == provider.MessageRoleAssistant {
			role = genai.RoleModel
		}

		contents = append(contents, genai.NewContentFromText(m.Text(), role))
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, config)

	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 {
		return nil, errors.New("no candidates returned")
	}

	id := resp.ResponseID

	if id == "" {
		id = uuid.NewString()
	}

	return &provider.Completion{
		ID:    id,
		Model: c.model,

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: toContent(resp.Candidates[0].Content),
		},

		Usage: toUsage(resp.UsageMetadata),
	}, nil
}

func toContent(content *genai.Content) []provider.Content {
	if content == nil {
		return nil
	}

	var parts []provider.Content

	for _, p := range content.Parts {
		if p == nil || p.Thought || p.Text == "" {
			continue
		}

		parts = append(parts, provider.TextContent(p.Text))
	}

	return parts
}

func toUsage(metadata *genai.GenerateContentResponseUsageMetadata) *provider.Usage {
	if metadata == nil {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(metadata.PromptTokenCount),
		OutputTokens: int(metadata.CandidatesTokenCount),
	}
}
