package ai

import "context"

type Service interface {
	// Reply returns a short model-generated reaction to a transcribed
	// user sentence. The result is always the complete text, chunked
	// delivery stays inside the client.
	Reply(ctx context.Context, userText string) (string, error)
}
