// Package scorer is the client for the external compatibility scoring service.
//
// Every failure mode (timeout, transport error, non-2xx, malformed body) is
// reported as an error wrapping errors.ErrUnavailable. The client never
// retries; callers treat an unavailable score as "no score this cycle".
package scorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	svcErr "github.com/oggyb/bloom/internal/errors"
	"github.com/oggyb/bloom/internal/logger"
	"github.com/oggyb/bloom/internal/metrics"
)

const (
	DefaultTimeout = 1500 * time.Millisecond

	// maxBodyBytes bounds how much of a response we are willing to decode.
	maxBodyBytes = 64 << 10
)

// Subject identifies one side of a scored pair.
type Subject struct {
	// Key is the id the scoring service indexes users by (roll number).
	Key string
	// Group is the preference group; it orders the pair on the wire.
	Group string
}

// Client calls GET {baseURL}/score?idA=&idB=.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     *slog.Logger
	metrics *metrics.Registry
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func WithMetrics(m *metrics.Registry) Option {
	return func(c *Client) { c.metrics = m }
}

// New returns a client for the scoring service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Named(nil, "scorer")
	}
	return c
}

// WithCallTimeout returns a copy of c bounded by d instead of c's timeout.
func (c *Client) WithCallTimeout(d time.Duration) *Client {
	cp := *c
	if d > 0 {
		cp.timeout = d
	}
	return &cp
}

// Timeout returns the per-call bound.
func (c *Client) Timeout() time.Duration { return c.timeout }

type scoreResponse struct {
	Score *float64 `json:"score"`
}

// Score returns the compatibility of a and b in [0,1]. The pair is put in
// canonical order first, so Score(a,b) and Score(b,a) hit the same key.
func (c *Client) Score(ctx context.Context, a, b Subject) (float64, error) {
	idA, idB := Canonical(a, b)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	score, err := c.fetch(ctx, idA, idB)
	elapsed := time.Since(start)

	if err != nil {
		outcome := "error"
		if errors.Is(err, context.DeadlineExceeded) {
			outcome = "timeout"
		}
		c.metrics.ObserveScorerCall(outcome, elapsed)
		c.log.Debug("score unavailable", "idA", idA, "idB", idB, "outcome", outcome, "err", err)
		return 0, svcErr.Unavailable(err)
	}

	c.metrics.ObserveScorerCall("ok", elapsed)
	return score, nil
}

func (c *Client) fetch(ctx context.Context, idA, idB string) (float64, error) {
	q := url.Values{}
	q.Set("idA", idA)
	q.Set("idB", idB)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/score?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call scorer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return 0, fmt.Errorf("scorer returned status %d", resp.StatusCode)
	}

	var body scoreResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode score: %w", err)
	}
	if body.Score == nil {
		return 0, errors.New("score missing from response")
	}

	s := *body.Score
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 || s > 1 {
		return 0, fmt.Errorf("score %v outside [0,1]", s)
	}
	return s, nil
}

// Canonical orders a pair by (group, key) so both directions of a pair
// produce the same request.
func Canonical(a, b Subject) (string, string) {
	if a.Group > b.Group || (a.Group == b.Group && a.Key > b.Key) {
		a, b = b, a
	}
	return a.Key, b.Key
}
