// Package research holds the two model call shapes of the guided workflow:
// reference discovery (with one built-in fallback pass) and report
// generation. Prompts ask for web-augmented answers; the raw text that
// comes back is treated as untrusted and post-processed elsewhere.
package research

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/wikibrief/wikibrief/internal/cache"
	"github.com/wikibrief/wikibrief/internal/llm"
)

type cachedText struct {
	Text string `json:"text"`
}

// completion performs a single chat call and returns the trimmed assistant
// text. When a cache is supplied, the response is keyed by model and full
// prompt so identical steps replay without a remote call.
func completion(ctx context.Context, c llm.Client, lc *cache.LLMCache, model, system, user string, temperature float32) (string, error) {
	key := ""
	if lc != nil {
		key = cache.KeyFrom(model, system+"\n\n"+user)
		if raw, ok, _ := lc.Get(ctx, key); ok {
			var out cachedText
			if err := json.Unmarshal(raw, &out); err == nil && strings.TrimSpace(out.Text) != "" {
				return out.Text, nil
			}
		}
	}

	msgs := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: user})

	resp, err := c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    msgs,
		Temperature: temperature,
		N:           1,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if lc != nil && text != "" {
		if payload, err := json.Marshal(cachedText{Text: text}); err == nil {
			if err := lc.Save(ctx, key, payload); err != nil {
				log.Debug().Err(err).Msg("llm cache save failed")
			}
		}
	}
	return text, nil
}
