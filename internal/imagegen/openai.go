package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/jasonacox/vibescape/internal/httputil"
)

// OpenAIConfig configures the hosted image API provider.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // optional, for OpenAI-compatible endpoints
	Model   string
	Size    string
	Timeout time.Duration
}

// OpenAIProvider generates images through OpenAI's image API or any
// compatible endpoint.
type OpenAIProvider struct {
	client openai.Client
	http   *http.Client
	model  string
	size   string
}

func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai provider requires an API key")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		http:   httputil.NewClientWithTimeout(cfg.Timeout),
		model:  cfg.Model,
		size:   cfg.Size,
	}, nil
}

func (p *OpenAIProvider) Name() string { return "openai" }

// Generate requests one image and returns the raw bytes. The API is
// asked for inline base64; endpoints that only hand back a URL are
// fetched in a second request.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := p.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:          p.model,
		Prompt:         prompt,
		Size:           openai.ImageGenerateParamsSize(p.size),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, errors.New("no image data returned")
	}

	if b64 := resp.Data[0].B64JSON; b64 != "" {
		imageBytes, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image data: %w", err)
		}
		return imageBytes, nil
	}

	if url := resp.Data[0].URL; url != "" {
		return p.fetch(ctx, url)
	}

	return nil, errors.New("empty image data returned")
}

func (p *OpenAIProvider) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image url: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
