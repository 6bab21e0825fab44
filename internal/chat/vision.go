package chat

import (
	"context"
	"regexp"

	"aarogya/internal/models"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	VisionModel     = "gpt-4o"
	visionMaxTokens = 1000

	visionPrompt = "Please analyze this medical image carefully. Describe any visible conditions, " +
		"symptoms, or notable features in detail. Be specific about what you observe, including " +
		"colors, shapes, textures, and any other relevant medical observations."
)

var dataURLRE = regexp.MustCompile(`^data:(.+);base64,(.+)$`)

// Analyzer produces a free-text description of a prepared image.
type Analyzer interface {
	Analyze(ctx context.Context, att models.Attachment, credential string) (string, error)
}

// VisionClient sends one image to the vision endpoint with a fixed analysis
// prompt. Single attempt, no retries; failures are reported as typed errors
// and rendered into the conversation by the orchestrator.
type VisionClient struct {
	model string
}

func NewVisionClient() *VisionClient {
	return &VisionClient{model: VisionModel}
}

func (c *VisionClient) Analyze(ctx context.Context, att models.Attachment, credential string) (string, error) {
	m := dataURLRE.FindStringSubmatch(att.DataURL)
	if len(m) != 3 {
		return "", ErrInvalidImageFormat
	}

	client := openai.NewClient(option.WithAPIKey(credential))
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(visionPrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL:    att.DataURL,
					Detail: "high",
				}),
			}),
		},
		MaxTokens: openai.Int(visionMaxTokens),
	})
	if err != nil {
		return "", asProviderError(err, "Failed to analyze image")
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
