package amethyste

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAttachesAPIKey(t *testing.T) {
	var header atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header.Store(r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("png"))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))
	_, err := c.Wanted(context.Background(), "https://example.com/a.png")
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", header.Load())

	_, err = c.FreeEndpoints(context.Background())
	// The fake payload is not valid JSON, but the key must still be attached.
	assert.Error(t, err)
	assert.Equal(t, "Bearer test-key", header.Load())
}

func TestClientReturnsBodyUnmodified(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff, 0x01}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	c := New("key", WithBaseURL(srv.URL))
	data, err := c.Triggered(context.Background(), "https://example.com/a.png", TriggeredOptions{})
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestClientGeneratePayloads(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c *Client) error
		path     string
		expected map[string]any
	}{
		{
			name: "versus",
			call: func(c *Client) error {
				_, err := c.Versus(context.Background(), "left.png", "right.png", VersusRedAndBlue)
				return err
			},
			path:     "/generate/vs",
			expected: map[string]any{"url": "left.png", "avatar": "right.png", "type": "red_and_blue"},
		},
		{
			name: "discordhouse",
			call: func(c *Client) error {
				_, err := c.DiscordHouse(context.Background(), "a.png", HouseBravery)
				return err
			},
			path:     "/generate/discordhouse",
			expected: map[string]any{"url": "a.png", "house": "hypesquad_bravery"},
		},
		{
			name: "symmetry",
			call: func(c *Client) error {
				_, err := c.Symmetry(context.Background(), "a.png", OrientationTopBottom)
				return err
			},
			path:     "/generate/symmetry",
			expected: map[string]any{"url": "a.png", "orientation": "top_bottom"},
		},
		{
			name: "trinity",
			call: func(c *Client) error {
				_, err := c.Trinity(context.Background(), "a.png", TrinityRemastered)
				return err
			},
			path:     "/generate/trinity",
			expected: map[string]any{"url": "a.png", "type": "remastered"},
		},
		{
			name: "badge",
			call: func(c *Client) error {
				_, err := c.Badge(context.Background(), "a.png", BadgeParams{Username: "bot", Servers: 12, Users: 3400})
				return err
			},
			path:     "/generate/badge",
			expected: map[string]any{"url": "a.png", "text": "bot", "numberserver": float64(12), "numberusers": float64(3400)},
		},
		{
			name: "triggered omits unset filters",
			call: func(c *Client) error {
				_, err := c.Triggered(context.Background(), "a.png", TriggeredOptions{Invert: true})
				return err
			},
			path:     "/generate/triggered",
			expected: map[string]any{"url": "a.png", "invert": true},
		},
		{
			name: "whowouldwin",
			call: func(c *Client) error {
				_, err := c.WhoWouldWin(context.Background(), "left.png", "right.png")
				return err
			},
			path:     "/generate/whowouldwin",
			expected: map[string]any{"url": "left.png", "avatar": "right.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			var got map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				_, _ = w.Write([]byte("png"))
			}))
			defer srv.Close()

			c := New("key", WithBaseURL(srv.URL))
			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.path, gotPath)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClientUnauthorized(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"You are not authorized to access this endpoint"}`))
	}))
	defer srv.Close()

	c := New("bad-key", WithBaseURL(srv.URL))
	_, err := c.Jail(context.Background(), "https://example.com/a.png")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.True(t, apiErr.Unauthorized())
	assert.Contains(t, apiErr.Error(), "not authorized")
	assert.Equal(t, int32(1), calls.Load(), "authentication failures must not be retried")
}

func TestClientRemoteErrorWithoutJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := New("key", WithBaseURL(srv.URL))
	_, err := c.Fire(context.Background(), "https://example.com/a.png")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Message)
	assert.False(t, apiErr.Unauthorized())
}

func TestClientTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := New("key", WithBaseURL(srv.URL), WithHTTPClient(&http.Client{Timeout: 100 * time.Millisecond}))
	start := time.Now()
	_, err := c.Wasted(context.Background(), "https://example.com/a.png")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not APIErrors")
}

func TestClientInvalidEnumSkipsDispatch(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte("png"))
	}))
	defer srv.Close()

	c := New("key", WithBaseURL(srv.URL))
	ctx := context.Background()

	_, err := c.DiscordHouse(ctx, "a.png", HypesquadHouse("loyalty"))
	assert.Error(t, err)
	_, err = c.Symmetry(ctx, "a.png", Orientation("diagonal"))
	assert.Error(t, err)
	_, err = c.Trinity(ctx, "a.png", TrinityType("deluxe"))
	assert.Error(t, err)
	_, err = c.Versus(ctx, "a.png", "b.png", VersusColors("green_and_gold"))
	assert.Error(t, err)

	assert.Equal(t, int32(0), calls.Load(), "invalid enums must be rejected before dispatch")
}

func TestClientEndpointListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/generate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"endpoints":{"free":["wanted","wasted"],"premium":["versus"]}}`))
	}))
	defer srv.Close()

	c := New("key", WithBaseURL(srv.URL))
	free, err := c.FreeEndpoints(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"wanted", "wasted"}, free)

	premium, err := c.PremiumEndpoints(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"versus"}, premium)
}

func TestClientRandomWallpaper(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/image/wallpaper", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://cdn.amethyste.moe/wallpaper/42.png"}`))
	}))
	defer srv.Close()

	c := New("key", WithBaseURL(srv.URL))
	url, err := c.RandomWallpaper(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.amethyste.moe/wallpaper/42.png", url)
}
