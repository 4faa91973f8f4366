// Package api talks to the level catalogue service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/atomicstack/smm-uncleared/internal/filter"
	"github.com/atomicstack/smm-uncleared/internal/format"
)

const (
	DefaultRoot        = "https://smm-uncleared.com/api"
	DefaultTimeout     = 15 * time.Second
	DefaultMinInterval = 250 * time.Millisecond

	markClearedPath = "/smm2/mark_cleared"
	clientSource    = "smm-uncleared-cli"
	userAgent       = "smm-uncleared/1.0"

	// burst lets a game switch and a reload go out back to back.
	defaultBurst = 2
)

// Options configure a Client. Zero values pick the defaults.
type Options struct {
	Root        string
	Timeout     time.Duration
	MinInterval time.Duration
	HTTPClient  *http.Client
}

// Client is a rate-limited API client.
type Client struct {
	root    string
	http    *http.Client
	limiter *rate.Limiter
}

func New(opts Options) *Client {
	root := strings.TrimRight(opts.Root, "/")
	if root == "" {
		root = DefaultRoot
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	limit := rate.Inf
	if opts.MinInterval > 0 {
		limit = rate.Every(opts.MinInterval)
	}
	return &Client{
		root:    root,
		http:    httpClient,
		limiter: rate.NewLimiter(limit, defaultBurst),
	}
}

// RandomLevel fetches a random level from endpoint (for example
// "/smm2/random_level") matching params.
func (c *Client) RandomLevel(ctx context.Context, endpoint string, params filter.State) (Level, error) {
	var level Level
	target := c.root + endpoint
	if q := params.Values().Encode(); q != "" {
		target += "?" + q
	}
	body, err := c.do(ctx, "random level", http.MethodGet, target, nil)
	if err != nil {
		return level, err
	}
	if err := json.Unmarshal(body, &level); err != nil {
		return level, fmt.Errorf("random level: parse response: %w", err)
	}
	return level, nil
}

// MarkCleared reports an SMM2 level as cleared. The id is normalised first
// and rejected locally when it cannot be a course ID. The body is
// {"level_id": id, "source": "smm-uncleared-cli"}; the server treats source
// as optional and uses it only to attribute the report.
func (c *Client) MarkCleared(ctx context.Context, levelID string) error {
	id := format.NormalizeLevelID(levelID)
	if !format.ValidSMM2LevelID(id) {
		return fmt.Errorf("mark cleared %q: %w", levelID, ErrInvalidLevelID)
	}
	payload, err := json.Marshal(markClearedRequest{LevelID: id, Source: clientSource})
	if err != nil {
		return fmt.Errorf("mark cleared: encode payload: %w", err)
	}
	_, err = c.do(ctx, "mark cleared", http.MethodPost, c.root+markClearedPath, payload)
	return err
}

func (c *Client) do(ctx context.Context, op, method, target string, payload []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: rate limit wait: %w", op, err)
	}
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: execute request: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: op, Code: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
