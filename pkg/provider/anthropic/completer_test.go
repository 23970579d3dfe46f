package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MMansij/New-Int/pkg/provider"
	"github.com/MMansij/New-Int/pkg/provider/anthropic"

	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	var request map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/messages", r.URL.Path)
		require.Equal(t, "secret", r.Header.Get("X-Api-Key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-haiku","content":[{"type":"text","text":"{\"document_type\":\"Invoice\"}"}],"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":2}}`))
	}))

	defer server.Close()

	c, err := anthropic.NewCompleter("claude-3-haiku", anthropic.WithURL(server.URL), anthropic.WithToken("secret"))
	require.NoError(t, err)

	completion, err := c.Complete(context.Background(), []provider.Message{
		provider.SystemMessage("be brief"),
		provider.UserMessage("hello"),
	}, nil)

	require.NoError(t, err)
	require.Equal(t, "msg_1", completion.ID)
	require.Equal(t, `{"document_type":"Invoice"}`, completion.Text())
	require.Equal(t, &provider.Usage{InputTokens: 3, OutputTokens: 2}, completion.Usage)

	require.Equal(t, "claude-3-haiku", request["model"])
	require.EqualValues(t, 1000, request["max_tokens"])
	require.NotEmpty(t, request["system"])
	require.Len(t, request["messages"], 1)
}

func TestCompleteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))

	defer server.Close()

	c, err := anthropic.NewCompleter("claude-3-haiku", anthropic.WithURL(server.URL))
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), []provider.Message{provider.UserMessage("x")}, nil)
	require.Error(t, err)
}

func TestCompleteDefaultModel(t *testing.T) {
	var request map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_2","type":"message","role":"assistant","model":"claude","content":[{"type":"text","text":"{}"}],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":1}}`))
	}))

	defer server.Close()

	c, err := anthropic.NewCompleter("", anthropic.WithURL(server.URL+"/"), anthropic.WithTimeout(time.Minute))
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), []provider.Message{provider.UserMessage("x")}, nil)
	require.NoError(t, err)

	require.Equal(t, anthropic.DefaultModel, request["model"])
}
