// Package llm abstracts the opaque model collaborator behind the smallest
// interface the workflow needs, so tests can script responses and any
// OpenAI-compatible backend can be plugged in.
package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the single call shape used by both research steps. Internals of
// the remote service, retries and transport are out of scope here.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider adapts *openai.Client to the Client interface.
type OpenAIProvider struct {
	Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return p.Inner.CreateChatCompletion(ctx, request)
}
