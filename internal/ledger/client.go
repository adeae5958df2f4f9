package ledger

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

	"golang.org/x/time/rate"

	"nanocamo/internal/domain"
	"nanocamo/internal/protocol/camo"
)

// ErrStatus is wrapped by every non-2xx response.
var ErrStatus = errors.New("ledger: unexpected status")

// Options tunes an HTTPClient. Zero fields take defaults.
type Options struct {
	// RequestsPerSecond caps outgoing requests. 0 means 10.
	RequestsPerSecond float64
	// Burst is the limiter bucket size. 0 means 1.
	Burst int
	// Timeout bounds each request. 0 means 15s.
	Timeout time.Duration
}

// HTTPClient talks to a ledger over HTTP with JSON bodies.
type HTTPClient struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter
}

// NewHTTPClient returns a client for the ledger at base.
func NewHTTPClient(base string, opts Options) *HTTPClient {
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 10
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	return &HTTPClient{
		base:    strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst),
	}
}

var _ domain.LedgerClient = (*HTTPClient)(nil)

// URL returns the base URL, used to key scan cursors.
func (c *HTTPClient) URL() string { return c.base }

// PublishPayment appends payment to the ledger.
func (c *HTTPClient) PublishPayment(ctx context.Context, payment camo.Payment) (domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	if err := c.do(ctx, http.MethodPost, "/payments", payment, &entry); err != nil {
		return domain.LedgerEntry{}, err
	}
	return entry, nil
}

// FetchPayments lists up to limit entries after the given sequence.
func (c *HTTPClient) FetchPayments(ctx context.Context, after domain.Sequence, limit int) ([]domain.LedgerEntry, error) {
	q := url.Values{}
	q.Set("after", strconv.FormatUint(uint64(after), 10))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var entries []domain.LedgerEntry
	if err := c.do(ctx, http.MethodGet, "/payments?"+q.Encode(), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(method, "error").Inc()
		return err
	}
	defer resp.Body.Close()
	requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s: %s: %s", ErrStatus, method, path, resp.Status, strings.TrimSpace(string(msg)))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
