package bedrock_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MMansij/New-Int/pkg/provider"
	"github.com/MMansij/New-Int/pkg/provider/bedrock"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	body []byte
	err  error

	invoked   []*bedrockruntime.InvokeModelInput
	conversed []*bedrockruntime.ConverseInput
}

func (f *fakeAPI) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.invoked = append(f.invoked, params)

	if f.err != nil {
		return nil, f.err
	}

	return &bedrockruntime.InvokeModelOutput{
		Body: f.body,
	}, nil
}

func (f *fakeAPI) Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error) {
	f.conversed = append(f.conversed, params)

	if f.err != nil {
		return nil, f.err
	}

	return &bedrockruntime.ConverseOutput{
		Output: &types.ConverseOutputMemberMessage{
			Value: types.Message{
				Role: types.ConversationRoleAssistant,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: `{"document_type":"Invoice"}`},
				},
			},
		},
		Usage: &types.TokenUsage{
			InputTokens:  aws.Int32(12),
			OutputTokens: aws.Int32(5),
		},
	}, nil
}

const claude = "anthropic.claude-3-haiku-20240307-v1:0"

func TestCompleteInvokeModel(t *testing.T) {
	api := &fakeAPI{
		body: []byte(`{"id":"msg_1","model":"claude","content":[{"type":"text","text":"{\"document_type\":\"Invoice\"}"}],"usage":{"input_tokens":10,"output_tokens":4}}`),
	}

	c, err := bedrock.NewCompleter(claude, bedrock.WithAPI(api))
	require.NoError(t, err)

	maxTokens := 1000

	completion, err := c.Complete(context.Background(), []provider.Message{
		provider.UserMessage("hello"),
	}, &provider.CompleteOptions{
		MaxTokens: &maxTokens,
	})

	require.NoError(t, err)
	require.Equal(t, `{"document_type":"Invoice"}`, completion.Text())
	require.Equal(t, "msg_1", completion.ID)
	require.Equal(t, &provider.Usage{InputTokens: 10, OutputTokens: 4}, completion.Usage)

	require.Len(t, api.invoked, 1)
	require.Empty(t, api.conversed)

	input := api.invoked[0]

	require.Equal(t, claude, aws.ToString(input.ModelId))
	require.Equal(t, "application/json", aws.ToString(input.ContentType))
	require.Equal(t, "application/json", aws.ToString(input.Accept))

	var body map[string]any
	require.NoError(t, json.Unmarshal(input.Body, &body))

	require.Equal(t, "bedrock-2023-05-31", body["anthropic_version"])
	require.EqualValues(t, 1000, body["max_tokens"])
	require.Equal(t, []any{
		map[string]any{
			"role": "user",
			"content": []any{
				map[string]any{"type": "text", "text": "hello"},
			},
		},
	}, body["messages"])
}

func TestCompleteInvokeModelEmptyContent(t *testing.T) {
	api := &fakeAPI{
		body: []byte(`{"content":[]}`),
	}

	c, err := bedrock.NewCompleter(claude, bedrock.WithAPI(api))
	require.NoError(t, err)

	completion, err := c.Complete(context.Background(), []provider.Message{provider.UserMessage("x")}, nil)
	require.NoError(t, err)

	require.Equal(t, "{}", completion.Text())
	require.NotEmpty(t, completion.ID)
}

func TestCompleteInvokeModelBadEnvelope(t *testing.T) {
	api := &fakeAPI{
		body: []byte("not-json"),
	}

	c, err := bedrock.NewCompleter(claude, bedrock.WithAPI(api))
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), []provider.Message{provider.UserMessage("x")}, nil)
	require.Error(t, err)
}

func TestCompleteInvokeModelError(t *testing.T) {
	api := &fakeAPI{
		err: &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "no access"},
	}

	c, err := bedrock.NewCompleter(claude, bedrock.WithAPI(api))
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), []provider.Message{provider.UserMessage("x")}, nil)
	require.ErrorContains(t, err, "AccessDeniedException")
	require.ErrorContains(t, err, "no access")
}

func TestCompleteConverse(t *testing.T) {
	api := &fakeAPI{}

	c, err := bedrock.NewCompleter("amazon.nova-lite-v1:0", bedrock.WithAPI(api))
	require.NoError(t, err)

	completion, err := c.Complete(context.Background(), []provider.Message{
		provider.SystemMessage("be brief"),
		provider.UserMessage("hello"),
	}, nil)

	require.NoError(t, err)
	require.Equal(t, `{"document_type":"Invoice"}`, completion.Text())
	require.Equal(t, &provider.Usage{InputTokens: 12, OutputTokens: 5}, completion.Usage)

	require.Empty(t, api.invoked)
	require.Len(t, api.conversed, 1)

	input := api.conversed[0]

	require.Len(t, input.System, 1)
	require.Len(t, input.Messages, 1)
	require.Equal(t, types.ConversationRoleUser, input.Messages[0].Role)
}

func TestNewCompleterInvalidModel(t *testing.T) {
	_, err := bedrock.NewCompleter("", bedrock.WithAPI(&fakeAPI{}))
	require.Error(t, err)
}
