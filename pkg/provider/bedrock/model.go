package bedrock

const anthropicVersion = "bedrock-2023-05-31"

type MessagesRequest struct {
	AnthropicVersion string `json:"anthropic_version"`

	System   string    `json:"system,omitempty"`
	Messages []Message `json:"messages"`

	MaxTokens     int      `json:"max_tokens"`
	Temperature   *float32 `json:"temperature,omitempty"`
	StopSequences []string `json:"stop_sequences,omitempty"`
}

type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type MessagesResponse struct {
	ID    string `json:"id"`
	Model string `json:"model"`

	Content []ContentBlock `json:"content"`

	Usage *Usage `json:"usage,omitempty"`
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
