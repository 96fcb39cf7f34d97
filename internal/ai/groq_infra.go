package ai

import (
	"context"
	"errors"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// Groq speaks the OpenAI chat protocol, so the same client library works
// with only the base URL swapped.
type GroqClient struct {
	client *openai.Client
	model  string
}

func NewGroqClient(apiKey, model string) *GroqClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &GroqClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GetCompletion streams the completion and concatenates the deltas into
// one string before returning. An empty concatenation is returned as-is,
// emptiness policy belongs to the caller.
func (c *GroqClient) GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	stream, err := c.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 1,
		MaxTokens:   1024,
		TopP:        1,
		Stream:      true,
	})
	if err != nil {
		return "", err
	}
	defer stream.Close()

	var reply strings.Builder
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			continue
		}
		reply.WriteString(resp.Choices[0].Delta.Content)
	}

	return reply.String(), nil
}
