package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-localize/pkg/interfaces"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTPProviderConfig configures the JSON-over-HTTP translate capability.
type HTTPProviderConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// HTTPProvider talks to an external translation service exposing
// POST {endpoint} with {"text","source_locale","target_locale"} and a
// {"translated_text"} response. HTTP 429 maps to ErrQuotaExceeded so callers
// can surface the quota case distinctly.
type HTTPProvider struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

var _ interfaces.TranslateProvider = (*HTTPProvider)(nil)

// NewHTTPProvider constructs the provider.
func NewHTTPProvider(cfg HTTPProviderConfig) (*HTTPProvider, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("translate: http provider endpoint is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &HTTPProvider{
		endpoint: endpoint,
		apiKey:   strings.TrimSpace(cfg.APIKey),
		client:   &http.Client{Timeout: timeout},
	}, nil
}

type translatePayload struct {
	Text         string `json:"text"`
	SourceLocale string `json:"source_locale"`
	TargetLocale string `json:"target_locale"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	Error          string `json:"error,omitempty"`
}

// Translate performs one text-in, text-out call.
func (p *HTTPProvider) Translate(ctx context.Context, req interfaces.TranslateRequest) (string, error) {
	body, err := json.Marshal(translatePayload{
		Text:         req.Text,
		SourceLocale: req.SourceLocale,
		TargetLocale: req.TargetLocale,
	})
	if err != nil {
		return "", fmt.Errorf("translate: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("translate: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslateFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrTranslateFailed, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrQuotaExceeded
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d: %s", ErrTranslateFailed, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded translateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrTranslateFailed, err)
	}
	if quotaSignalled(decoded.Error) {
		return "", ErrQuotaExceeded
	}
	if decoded.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrTranslateFailed, decoded.Error)
	}
	return decoded.TranslatedText, nil
}

func quotaSignalled(message string) bool {
	message = strings.ToLower(message)
	return strings.Contains(message, "quota") || strings.Contains(message, "rate limit")
}
