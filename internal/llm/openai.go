package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const azureAPIVersion = "2024-02-15-preview"

type OpenAIClient struct {
	client     *openai.Client
	deployment string
}

// NewAzureOpenAI builds a client against an Azure OpenAI resource. The
// deployment name doubles as the model identifier in requests.
func NewAzureOpenAI(endpoint, apiKey, deployment string) *OpenAIClient {
	config := openai.DefaultAzureConfig(apiKey, endpoint)
	config.APIVersion = azureAPIVersion
	config.AzureModelMapperFunc = func(model string) string { return deployment }
	return &OpenAIClient{
		client:     openai.NewClientWithConfig(config),
		deployment: deployment,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, messages []Message) (Response, error) {
	var oaMsgs []openai.ChatCompletionMessage
	for _, m := range messages {
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.deployment,
		Messages: oaMsgs,
	})
	if err != nil {
		return Response{}, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, fmt.Errorf("chat completion returned no choices")
	}

	out := Response{
		Content: resp.Choices[0].Message.Content,
		Model:   c.deployment,
	}
	out.PromptTokens = resp.Usage.PromptTokens
	out.CompletionTokens = resp.Usage.CompletionTokens
	out.TotalTokens = resp.Usage.TotalTokens
	return out, nil
}
