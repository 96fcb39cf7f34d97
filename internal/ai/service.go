package ai

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"
)

type AiService struct {
	client *GroqClient
}

var _ Service = (*AiService)(nil)

func NewAiService(client *GroqClient) *AiService {
	return &AiService{client: client}
}

// === main method ===
func (s *AiService) Reply(ctx context.Context, userText string) (string, error) {
	log.Printf("[ai] >>> reply for %q", userText)

	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: "\n",
		},
		{
			Role: openai.ChatMessageRoleUser,
			Content: fmt.Sprintf("Give a short response to the following sentence: %s",
				userText),
		},
	}

	reply, err := s.client.GetCompletion(ctx, messages)
	if err != nil {
		return "", err
	}

	log.Printf("[ai] <<< %q", reply)
	return reply, nil
}
