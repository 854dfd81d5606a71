package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/coachshot/internal/imaging"
	"github.com/2beens/coachshot/internal/telemetry/metrics"
	"github.com/2beens/coachshot/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
)

const (
	DefaultModel    = "gemini-2.0-flash"
	DefaultEndpoint = "https://generativelanguage.googleapis.com/"

	apiVersion         = "v1beta"
	maxResponseBytes   = 8 << 20
	defaultHTTPTimeout = 2 * time.Minute
)

var (
	ErrNotConfigured = errors.New("model api key not configured")
	ErrRateLimited   = errors.New("model rate limited")
	ErrEmptyResponse = errors.New("model returned an empty response")
)

const (
	callKindImage = "image"
	callKindText  = "text"
)

type NewClientParams struct {
	APIKey string
	Model  string
	// Endpoint overrides the public API base URL, mostly for tests.
	Endpoint string
	Timeout  time.Duration
	Metrics  *metrics.Manager
}

// Client talks to the multimodal model over the generative language REST API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	model      string
	metrics    *metrics.Manager
}

func NewClient(_ context.Context, params NewClientParams) (*Client, error) {
	model := strings.TrimSpace(params.Model)
	if model == "" {
		model = DefaultModel
	}
	endpoint := strings.TrimSpace(params.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("parse model endpoint: %w", err)
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	// without a key the client still exists, but every call fails with ErrNotConfigured
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		endpoint: endpoint,
		apiKey:   strings.TrimSpace(params.APIKey),
		model:    model,
		metrics:  params.Metrics,
	}, nil
}

func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

func (c *Client) Model() string {
	return c.model
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content *content `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt together with one image and returns the model's raw text answer.
func (c *Client) Generate(ctx context.Context, prompt string, img *imaging.Image) (string, error) {
	if img == nil {
		return "", errors.New("image missing")
	}
	parts := []part{
		{Text: prompt},
		{InlineData: &inlineData{
			MimeType: img.MIMEType,
			Data:     img.Base64(),
		}},
	}
	return c.generate(ctx, callKindImage, parts)
}

// GenerateText sends a text-only prompt.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, callKindText, []part{{Text: prompt}})
}

func (c *Client) generate(ctx context.Context, kind string, parts []part) (_ string, err error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "vision.generate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("model", c.model),
		attribute.String("kind", kind),
	)

	begin := time.Now()
	resp, err := c.send(ctx, generateRequest{
		Contents: []content{{Role: "user", Parts: parts}},
	})
	c.observe(kind, begin, err)
	if err != nil {
		return "", classifyError(err)
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (c *Client) send(ctx context.Context, payload generateRequest) (*generateResponse, error) {
	endpoint, err := url.JoinPath(c.endpoint, apiVersion, "models", c.model+":generateContent")
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	// non 2xx answers come back as *googleapi.Error carrying the status code
	if err := googleapi.CheckResponse(res); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &resp, nil
}

func (c *Client) observe(kind string, begin time.Time, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.HistogramModelCallDuration.Observe(time.Since(begin).Seconds())
	status := "ok"
	if err != nil {
		status = "error"
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			status = strconv.Itoa(apiErr.Code)
		}
	}
	c.metrics.CounterModelCalls.With(prometheus.Labels{
		"kind":   kind,
		"status": status,
	}).Inc()
}

func responseText(resp *generateResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range candidate.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

func classifyError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Message)
	}
	return fmt.Errorf("generate content: %w", err)
}

// IsRateLimited reports whether err came from the model's 429 response.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
