// Package amethyste is a client for the Améthyste image generation API
// (https://api.amethyste.moe/). Every generate method performs a single
// authenticated round trip and returns the raw image bytes.
package amethyste

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jdufort/amethystebot/internal/log"
)

const defaultBaseURL = "https://v1.api.amethyste.moe"

// Client holds the API key and transport used for every call. It is
// immutable after New and safe for concurrent use.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type Option func(*Client)

// WithBaseURL points the client at a different API address.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient swaps the underlying transport. Use this to set timeouts.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// New returns a Client authenticating with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) request(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(resp.StatusCode, data)
	}
	return data, nil
}

func (c *Client) generate(ctx context.Context, name string, payload any) ([]byte, error) {
	log := log.FromContextOrDiscard(ctx).With("endpoint", name)
	log.Info("generating image via api.amethyste.moe")
	return c.request(ctx, http.MethodPost, "/generate/"+name, payload)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	data, err := c.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

type endpointsResponse struct {
	Endpoints struct {
		Free    []string `json:"free"`
		Premium []string `json:"premium"`
	} `json:"endpoints"`
}

// FreeEndpoints lists the generate endpoints available without a premium key.
func (c *Client) FreeEndpoints(ctx context.Context) ([]string, error) {
	var out endpointsResponse
	if err := c.getJSON(ctx, "/generate", &out); err != nil {
		return nil, err
	}
	return out.Endpoints.Free, nil
}

// PremiumEndpoints lists the generate endpoints requiring a premium key.
func (c *Client) PremiumEndpoints(ctx context.Context) ([]string, error) {
	var out endpointsResponse
	if err := c.getJSON(ctx, "/generate", &out); err != nil {
		return nil, err
	}
	return out.Endpoints.Premium, nil
}

// RandomWallpaper returns the url of a random wallpaper.
func (c *Client) RandomWallpaper(ctx context.Context) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.getJSON(ctx, "/image/wallpaper", &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
