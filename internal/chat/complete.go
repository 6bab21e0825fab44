package chat

import (
	"context"

	"aarogya/internal/models"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	CompletionModel = "gpt-4"

	completionMaxTokens = 1000
	// favors deterministic but natural replies
	completionTemperature = 0.7
)

// Completer generates the assistant reply for an ordered, role-tagged
// message sequence.
type Completer interface {
	Complete(ctx context.Context, seq []models.PromptMessage, credential string) (string, error)
}

// CompletionClient talks to the text-completion endpoint.
type CompletionClient struct {
	model string
}

func NewCompletionClient() *CompletionClient {
	return &CompletionClient{model: CompletionModel}
}

func (c *CompletionClient) Complete(ctx context.Context, seq []models.PromptMessage, credential string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(seq))
	for _, m := range seq {
		switch m.Role {
		case models.RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case models.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	client := openai.NewClient(option.WithAPIKey(credential))
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   openai.Int(completionMaxTokens),
		Temperature: openai.Float(completionTemperature),
	})
	if err != nil {
		return "", asProviderError(err, "Failed to get a response")
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
