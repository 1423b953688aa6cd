package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/providers"
	"github.com/dento-health/dento-portal/backend/pkg/config"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Client implements the OpenAI diagnosis provider.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	limiter    *tokenBucket
}

// NewClient creates a new OpenAI client.
func NewClient(cfg *config.OpenAIConfig) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: newTokenBucket(cfg.RateLimitRPM, cfg.RateLimitBurst),
	}, nil
}

type chatImageURL struct {
	URL string `json:"url"`
}

type chatContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type chatChoice struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

type chatEnvelope struct {
	Choices []chatChoice `json:"choices"`
}

// Diagnose submits the questionnaire to the chat completions API and
// parses the structured diagnosis out of the JSON-mode response.
func (c *Client) Diagnose(ctx context.Context, req *entities.DiagnosisRequest) (*entities.DiagnosisResult, error) {
	if req == nil {
		return nil, errors.New("diagnosis request is required")
	}

	if c.limiter != nil {
		waitStart := time.Now()
		if err := c.limiter.Wait(ctx); err != nil {
			recordDiagnosisMetric(ctx, c.model, 0, 0, err)
			return nil, err
		}
		recordDiagnosisRateLimitWait(ctx, c.model, time.Since(waitStart))
	}

	userPrompt := buildSymptomPrompt(req.Answers, req.Language)

	var userContent interface{} = userPrompt
	if req.XrayImage != "" {
		userContent = []chatContentPart{
			{Type: "text", Text: userPrompt + "\nPlease also analyze the attached dental X-ray image."},
			{Type: "image_url", ImageURL: &chatImageURL{URL: req.XrayImage}},
		}
	}

	payload := map[string]interface{}{
		"model": c.model,
		"messages": []chatMessage{
			{Role: "system", Content: diagnosisSystemPrompt},
			{Role: "user", Content: userContent},
		},
		"response_format": map[string]string{"type": "json_object"},
		"max_tokens":      2048,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		recordDiagnosisMetric(ctx, c.model, 0, time.Since(start), err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		recordDiagnosisMetric(ctx, c.model, resp.StatusCode, time.Since(start), fmt.Errorf("status %d", resp.StatusCode))
		return nil, fmt.Errorf("openai request failed with status %d", resp.StatusCode)
	}

	var envelope chatEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		recordDiagnosisMetric(ctx, c.model, resp.StatusCode, time.Since(start), err)
		return nil, err
	}

	if len(envelope.Choices) == 0 || envelope.Choices[0].Message.Content == "" {
		recordDiagnosisMetric(ctx, c.model, resp.StatusCode, time.Since(start), errors.New("missing message content"))
		return nil, errors.New("openai response missing message content")
	}

	result, err := parseDiagnosisPayload([]byte(envelope.Choices[0].Message.Content))
	if err != nil {
		recordDiagnosisMetric(ctx, c.model, resp.StatusCode, time.Since(start), err)
		return nil, fmt.Errorf("failed to parse openai response: %w", err)
	}

	recordDiagnosisMetric(ctx, c.model, resp.StatusCode, time.Since(start), nil)
	return result, nil
}

// parseDiagnosisPayload decodes the model's JSON diagnosis. Markdown
// code fences are stripped first since JSON mode still occasionally
// wraps output in them.
func parseDiagnosisPayload(raw []byte) (*entities.DiagnosisResult, error) {
	cleaned := strings.TrimSpace(string(raw))
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	cleaned = strings.TrimSpace(cleaned)

	var result entities.DiagnosisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, err
	}

	if len(result.Conditions) == 0 {
		return nil, providers.ErrEmptyDiagnosis
	}

	return &result, nil
}

func newTokenBucket(rpm int, burst int) *tokenBucket {
	if rpm == 0 {
		rpm = 60
	}
	if rpm < 0 {
		return nil
	}
	if burst <= 0 {
		burst = 5
	}
	return newTokenBucketWithRate(rpm, burst)
}

// tokenBucket refills lazily from elapsed time on each Wait, so a
// client holds no background goroutine.
type tokenBucket struct {
	mu       sync.Mutex
	tokens   float64
	burst    float64
	interval time.Duration
	last     time.Time
}

func newTokenBucketWithRate(rpm int, burst int) *tokenBucket {
	interval := time.Minute / time.Duration(rpm)
	if interval <= 0 {
		interval = time.Millisecond
	}

	return &tokenBucket{
		tokens:   float64(burst),
		burst:    float64(burst),
		interval: interval,
		last:     time.Now(),
	}
}

func (b *tokenBucket) Wait(ctx context.Context) error {
	for {
		b.mu.Lock()
		now := time.Now()
		b.tokens = math.Min(b.burst, b.tokens+float64(now.Sub(b.last))/float64(b.interval))
		b.last = now

		if b.tokens >= 1 {
			b.tokens--
			b.mu.Unlock()
			return nil
		}
		wait := time.Duration((1 - b.tokens) * float64(b.interval))
		b.mu.Unlock()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
