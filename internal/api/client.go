// Package api is the College Hub client SDK. Every outbound call to the
// backend goes through Client, which owns the bearer-token lifecycle and the
// uniform request/response handling; the per-resource services wrap it with
// endpoint knowledge and field-casing normalization.
package api

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"golang.org/x/sync/singleflight"

	"collegehub/internal/models"
	"collegehub/internal/session"
)

// Error is a request that reached the backend and came back non-2xx. The
// message is extracted from the best available field in the response body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	httpc   *http.Client
	store   session.Store
	group   singleflight.Group
}

// NewClient returns a client rooted at baseURL ("" means endpoints are used
// as-is). No timeout is enforced beyond the platform defaults; callers cancel
// through the request context.
func NewClient(baseURL string, store session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpc:   http.DefaultClient,
		store:   store,
	}
}

// SetHTTPClient swaps the underlying http.Client, mainly for tests.
func (c *Client) SetHTTPClient(httpc *http.Client) {
	c.httpc = httpc
}

// Token reads the stored session token. Earlier versions of the web client
// persisted placeholder strings instead of clearing the key, so those are
// treated the same as no token.
func (c *Client) Token() string {
	tok := c.store.Get(session.TokenKey)
	switch tok {
	case "", "N/A", "null", "undefined":
		return ""
	}
	return tok
}

// SetToken persists a token. Empty tokens are never stored, so a bogus login
// response cannot wipe a valid session.
func (c *Client) SetToken(token string) {
	if token != "" {
		c.store.Set(session.TokenKey, token)
	}
}

func (c *Client) ClearToken() {
	c.store.Remove(session.TokenKey)
}

// Request issues one call and classifies the response. Semantics:
//
//   - the body is read once and parsed as JSON only when the response
//     declares a JSON content type, so empty and non-JSON bodies never panic
//     the decode path;
//   - a 401 clears the stored token and nothing else; the caller decides how
//     to re-authenticate;
//   - non-2xx statuses become *Error with the message taken from the body's
//     "error" field, then "message", then the raw body, then the status text;
//   - a 2xx with an empty body resolves to nil, a JSON body to its decoded
//     value, anything else to the raw text.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.ClearToken()
		}
		return nil, &Error{Status: resp.StatusCode, Message: errorMessage(resp, text, isJSON)}
	}

	if len(text) == 0 {
		return nil, nil
	}
	if isJSON {
		var v any
		if err := json.Unmarshal(text, &v); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return v, nil
	}
	return string(text), nil
}

func errorMessage(resp *http.Response, text []byte, isJSON bool) string {
	if isJSON && len(text) > 0 {
		var body map[string]any
		if err := json.Unmarshal(text, &body); err == nil {
			if msg, ok := body["error"].(string); ok && msg != "" {
				return msg
			}
			if msg, ok := body["message"].(string); ok && msg != "" {
				return msg
			}
			return string(text)
		}
	}
	if len(text) > 0 {
		return string(text)
	}
	return "API Error: " + http.StatusText(resp.StatusCode)
}

func (c *Client) Get(ctx context.Context, endpoint string) (any, error) {
	return c.Request(ctx, http.MethodGet, endpoint, nil)
}

func (c *Client) Post(ctx context.Context, endpoint string, data any) (any, error) {
	return c.mutate(ctx, http.MethodPost, endpoint, data)
}

func (c *Client) Put(ctx context.Context, endpoint string, data any) (any, error) {
	return c.mutate(ctx, http.MethodPut, endpoint, data)
}

func (c *Client) Delete(ctx context.Context, endpoint string) (any, error) {
	return c.mutate(ctx, http.MethodDelete, endpoint, nil)
}

// mutate single-flights writes, so a rapid double dispatch of the same
// command shares one round trip instead of issuing two.
func (c *Client) mutate(ctx context.Context, method, endpoint string, data any) (any, error) {
	v, err, _ := c.group.Do(mutationKey(method, endpoint, data), func() (any, error) {
		return c.Request(ctx, method, endpoint, data)
	})
	return v, err
}

// mutationKey identifies one command. Two dispatches share a round trip only
// when method, endpoint and payload all match; concurrent mutations to the
// same route with different payloads must each reach the backend.
func mutationKey(method, endpoint string, data any) string {
	key := method + " " + endpoint
	if data == nil {
		return key
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return key
	}
	sum := sha256.Sum256(payload)
	return key + " " + hex.EncodeToString(sum[:])
}

// UploadFile posts a multipart form (the file plus any extra string fields)
// to endpoint. The content type is left to the multipart writer so the
// boundary survives. Unlike Request, a 401 always surfaces as an unauthorized
// error: uploads are not safely retryable mid-flow, so the caller has to
// re-authenticate explicitly.
func (c *Client) UploadFile(ctx context.Context, endpoint, filename string, r io.Reader, fields map[string]string) (*models.UploadResult, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	for key, value := range fields {
		if err := form.WriteField(key, value); err != nil {
			return nil, err
		}
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.ClearToken()
			return nil, &Error{Status: resp.StatusCode, Message: "Unauthorized - please login again"}
		}
		return nil, &Error{Status: resp.StatusCode, Message: uploadErrorMessage(resp)}
	}

	result := new(models.UploadResult)
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	return result, nil
}

func uploadErrorMessage(resp *http.Response) string {
	fallback := "Upload failed: " + http.StatusText(resp.StatusCode)

	text, err := io.ReadAll(resp.Body)
	if err != nil || len(text) == 0 {
		return fallback
	}
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var body map[string]any
		if err := json.Unmarshal(text, &body); err != nil {
			return fallback
		}
		msg := fallback
		if m, ok := body["error"].(string); ok && m != "" {
			msg = m
		} else if m, ok := body["message"].(string); ok && m != "" {
			msg = m
		}
		if details, ok := body["details"].(string); ok && details != "" {
			msg = fmt.Sprintf("%s (%s)", msg, details)
		}
		return msg
	}
	return string(text)
}
