package image

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

const azureAPIVersion = "2024-02-15-preview"

type OpenAIGenerator struct {
	client     *openai.Client
	deployment string
	httpClient *http.Client
}

// NewAzureOpenAI builds an image generator against the Azure OpenAI
// resource hosting the DALL-E deployment.
func NewAzureOpenAI(endpoint, apiKey, deployment string) *OpenAIGenerator {
	config := openai.DefaultAzureConfig(apiKey, endpoint)
	config.APIVersion = azureAPIVersion
	config.AzureModelMapperFunc = func(model string) string { return deployment }
	return &OpenAIGenerator{
		client:     openai.NewClientWithConfig(config),
		deployment: deployment,
		httpClient: http.DefaultClient,
	}
}

// Generate requests one image and fetches its bytes from the returned URL.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Model:          g.deployment,
		Prompt:         prompt,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return nil, fmt.Errorf("image response contained no url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resp.Data[0].URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image fetch request: %w", err)
	}
	fetchResp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch generated image: %w", err)
	}
	defer fetchResp.Body.Close()
	if fetchResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch returned status %d", fetchResp.StatusCode)
	}

	data, err := io.ReadAll(fetchResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image bytes: %w", err)
	}
	return data, nil
}
