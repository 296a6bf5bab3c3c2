package ai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the OpenAI-backed Completer.
type Client struct {
	api  *openai.Client
	spec PromptSpec
}

func NewClient(apiKey string, spec PromptSpec) *Client {
	return &Client{
		api:  openai.NewClient(apiKey),
		spec: spec,
	}
}

// NewClientWithConfig exists so tests can point the client at a fake endpoint.
func NewClientWithConfig(cfg openai.ClientConfig, spec PromptSpec) *Client {
	return &Client{
		api:  openai.NewClientWithConfig(cfg),
		spec: spec,
	}
}

func (c *Client) Complete(ctx context.Context, query string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.spec.Model,
		Temperature: c.spec.Style.Temperature,
		MaxTokens:   c.spec.Style.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.spec.System},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
