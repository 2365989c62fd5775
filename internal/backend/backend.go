// Package backend forwards requests to the real College Hub backend. The
// proxy handlers relay its responses verbatim; nothing here retries or
// rewrites payloads.
package backend

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

// DefaultBaseURL is used when BACKEND_URL is unset.
const DefaultBaseURL = "https://backend-college-hub.vercel.app"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a forwarder for baseURL; "" falls back to the BACKEND_URL
// environment variable, then to the hosted default.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("BACKEND_URL")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

// Forward sends one JSON request upstream and returns the response status
// and body untouched, so the caller can relay both to its own client.
func (c *Client) Forward(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, data, nil
}
