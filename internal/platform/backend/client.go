package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"raffle-admin-panel/internal/common/errors"
)

// Header suppressing the interstitial warning page of the zrok tunnel the
// backend is exposed through during development.
const interstitialHeader = "skip_zrok_interstitial"

// Client is a pre-configured request client for the platform REST API.
// The anonymous variant carries no credentials; the authenticated variant
// re-reads the bearer token from its TokenStore on every outgoing request,
// so a token refreshed elsewhere is picked up without rebuilding the client.
//
// There is deliberately no timeout, retry or circuit breaking: any network
// error surfaces to the caller as a single failed call.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *TokenStore // nil on the anonymous client
}

// New creates the anonymous client.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// NewWithAuth creates the authenticated client.
func NewWithAuth(baseURL string, tokens *TokenStore) *Client {
	c := New(baseURL)
	c.tokens = tokens
	return c
}

func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", out)
}

// PostMultipart submits a multipart form, used by the media-carrying
// create/update endpoints. The caller builds the body and content type.
func (c *Client) PostMultipart(ctx context.Context, path string, body io.Reader, contentType string, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, contentType, out)
}

func (c *Client) PutMultipart(ctx context.Context, path string, body io.Reader, contentType string, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, contentType, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, errors.CodeValidation, "failed to encode request body")
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, nil, reader, "application/json", out)
}

// errorEnvelope is the backend's JSON error body.
type errorEnvelope struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return errors.Wrap(err, errors.CodeNetwork, "failed to build request")
	}

	req.Header.Set(interstitialHeader, "true")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		req.Header.Set("Authorization", "Bearer "+c.tokens.Get())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, errors.CodeNetwork, "request to backend failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, errors.CodeNetwork, "failed to read response")
	}

	if resp.StatusCode >= 400 {
		var envelope errorEnvelope
		_ = json.Unmarshal(data, &envelope)
		return errors.FromStatus(resp.StatusCode, envelope.Message)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, errors.CodeBackend, "malformed response from backend")
		}
	}

	return nil
}
