package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ecoclean/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Client is the HTTP client for the EcoClean core backend. All business
// logic lives there; this client only forwards the caller's bearer token
// and decodes the per-endpoint response envelope.
//
// One attempt per call, no retry, no backoff. The http.Client timeout is
// the only hang guard.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger

	redis    *redis.Client
	cacheTTL time.Duration
}

// NewClient constructs a client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// UseRedisCache configures the read-through cache for GET endpoints.
// Repeat fetches within the TTL (rapid refresh clicks, dashboard plus
// history loading the same lists) are served from Redis instead of racing
// duplicate requests against the backend.
func (c *Client) UseRedisCache(redisClient *redis.Client, ttl time.Duration) {
	c.redis = redisClient
	c.cacheTTL = ttl
}

// envelope is the common part of every backend response. The payload key
// varies per endpoint, so payloads are decoded by the endpoint adapters.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// do issues a single request and returns the raw body after envelope and
// status checks. token may be empty for public endpoints.
func (c *Client) do(ctx context.Context, token, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("backend: encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("backend: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("backend: read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("backend: decode envelope: %w", err)
	}
	if !env.Success {
		return nil, &RejectionError{Message: env.Message}
	}
	return raw, nil
}

// get issues a GET through the response cache when one is configured.
// Cache keys include the caller scope so one user's lists never leak into
// another's view.
func (c *Client) get(ctx context.Context, token, path string, out any) error {
	cacheKey := c.cacheKey(token, path)
	if c.readCache(ctx, cacheKey, out) {
		return nil
	}

	raw, err := c.do(ctx, token, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: decode payload: %w", err)
	}
	c.writeCache(ctx, cacheKey, raw)
	return nil
}

func (c *Client) cacheKey(token, path string) string {
	scope := "public"
	if token != "" {
		scope = utils.HashToken(token)[:12]
	}
	return utils.ResponseCachePrefix + scope + ":" + path
}

func (c *Client) readCache(ctx context.Context, key string, out any) bool {
	if c.redis == nil || c.cacheTTL <= 0 {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	return true
}

func (c *Client) writeCache(ctx context.Context, key string, raw []byte) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	if err := c.redis.Set(ctx, key, raw, c.cacheTTL).Err(); err != nil {
		c.logger.Debug("response cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateUserCache drops every cached GET for the caller. Called after
// mutations so the next list fetch reflects the change immediately.
func (c *Client) InvalidateUserCache(ctx context.Context, token string) {
	if c.redis == nil || token == "" {
		return
	}
	pattern := utils.ResponseCachePrefix + utils.HashToken(token)[:12] + ":*"
	keys, err := c.redis.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("response cache invalidation failed", zap.Error(err))
	}
}
