package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type ClientOptions struct {
	// https://generativelanguage.googleapis.com/v1beta
	BaseURL string
	ApiKey  string
	Model   string
	// Upper bound on a single generateContent call. There is no retry; one
	// best-effort attempt per call.
	Timeout time.Duration

	transport *http.Client
}

type Client struct {
	opts *ClientOptions
}

func NewClient(opts *ClientOptions) *Client {
	if opts.transport == nil {
		opts.transport = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	if opts.BaseURL == "" {
		opts.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	if opts.Model == "" {
		opts.Model = "gemini-2.5-flash"
	}

	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}

	return &Client{
		opts: opts,
	}
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error"`
}

type candidate struct {
	Content content `json:"content"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Complete sends one prompt to the generateContent endpoint and returns the
// concatenated candidate text. A JSON response mime type is requested so the
// model answers with a bare JSON document.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	// Format: https://generativelanguage.googleapis.com/v1beta/models/{model}:generateContent
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.opts.BaseURL, c.opts.Model)

	payload, err := sonic.Marshal(&generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.opts.ApiKey != "" {
		// Gemini API uses query parameter for API key
		q := req.URL.Query()
		q.Set("key", c.opts.ApiKey)
		req.URL.RawQuery = q.Encode()
	}

	res, err := c.opts.transport.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var geminiResponse generateContentResponse
	if err := sonic.ConfigDefault.NewDecoder(res.Body).Decode(&geminiResponse); err != nil {
		return "", err
	}

	if geminiResponse.Error != nil {
		return "", fmt.Errorf("gemini API error: %s (code: %d, status: %s)", geminiResponse.Error.Message, geminiResponse.Error.Code, geminiResponse.Error.Status)
	}

	if len(geminiResponse.Candidates) == 0 {
		return "", errors.New("gemini API returned no candidates")
	}

	var text strings.Builder
	for _, p := range geminiResponse.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}

	return text.String(), nil
}
