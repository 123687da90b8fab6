package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/jasonacox/vibescape/internal/httputil"
)

// SwarmUIConfig configures the local SwarmUI text-to-image backend.
type SwarmUIConfig struct {
	BaseURL  string
	Model    string
	Width    int
	Height   int
	CFGScale float64
	Steps    int
	Seed     int // -1 for random
	Timeout  time.Duration
}

// SwarmUIProvider generates images through a SwarmUI server's HTTP API.
type SwarmUIProvider struct {
	baseURL string
	client  *http.Client
	cfg     SwarmUIConfig
}

func NewSwarmUIProvider(cfg SwarmUIConfig) *SwarmUIProvider {
	return &SwarmUIProvider{
		baseURL: normalizeBaseURL(cfg.BaseURL),
		client:  httputil.NewClientWithTimeout(cfg.Timeout),
		cfg:     cfg,
	}
}

// normalizeBaseURL trims trailing slashes and defaults to http:// for
// plain host:port values.
func normalizeBaseURL(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return raw
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "http://" + raw
	}
	return raw
}

func (p *SwarmUIProvider) Name() string { return "swarmui" }

func (p *SwarmUIProvider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	sessionID, err := p.newSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("swarmui session: %w", err)
	}

	// The API wants stringified params at the top level and typed
	// copies under rawInput.
	payload := map[string]any{
		"session_id": sessionID,
		"images":     "1",
		"prompt":     prompt,
		"model":      p.cfg.Model,
		"width":      strconv.Itoa(p.cfg.Width),
		"height":     strconv.Itoa(p.cfg.Height),
		"cfgscale":   strconv.FormatFloat(p.cfg.CFGScale, 'f', -1, 64),
		"steps":      strconv.Itoa(p.cfg.Steps),
		"seed":       strconv.Itoa(p.cfg.Seed),
		"donotsave":  true,
		"rawInput": map[string]any{
			"model":     p.cfg.Model,
			"width":     p.cfg.Width,
			"height":    p.cfg.Height,
			"cfgscale":  p.cfg.CFGScale,
			"steps":     p.cfg.Steps,
			"seed":      p.cfg.Seed,
			"prompt":    prompt,
			"donotsave": true,
		},
	}

	var result struct {
		Images []string `json:"images"`
		Error  string   `json:"error"`
	}
	if err := p.postJSON(ctx, "/API/GenerateText2Image", payload, &result); err != nil {
		return nil, err
	}
	if result.Error != "" {
		return nil, fmt.Errorf("swarmui: %s", result.Error)
	}
	if len(result.Images) == 0 {
		return nil, errors.New("swarmui returned no images")
	}

	encoded := result.Images[0]
	if idx := strings.Index(encoded, ","); strings.HasPrefix(encoded, "data:") && idx >= 0 {
		encoded = encoded[idx+1:]
	}
	imageBytes, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode swarmui image: %w", err)
	}
	return imageBytes, nil
}

func (p *SwarmUIProvider) newSession(ctx context.Context) (string, error) {
	var result struct {
		SessionID string `json:"session_id"`
	}
	if err := p.postJSON(ctx, "/API/GetNewSession", map[string]any{}, &result); err != nil {
		return "", err
	}
	if result.SessionID == "" {
		return "", errors.New("no session_id in response")
	}
	return result.SessionID, nil
}

// postJSON posts a JSON payload and decodes the response, retrying
// transient failures. Connection errors are retried too since the
// backend may still be loading a model when we first ask for an image.
func (p *SwarmUIProvider) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := p.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			log.Printf("swarmui: %s failed, will retry: %v", path, err)
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			log.Printf("swarmui: %s returned HTTP %d, will retry", path, resp.StatusCode)
			return fmt.Errorf("HTTP %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return backoff.Permanent(fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody))))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode response: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second

	return backoff.Retry(operation, backoff.WithContext(bo, ctx))
}
