// Package iciba talks to iciba dictionary service.
package iciba

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"fanyi/config"
)

// TransportError is returned for any failure to obtain response body. Its
// message is opaque and is meant to be shown as is.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client issues dictionary requests, one request per lookup and no retries.
type Client struct {
	endpoint string
	key      config.SecretString
	http     *resty.Client
	log      *zap.Logger
}

func NewClient(cfg *config.ServiceConfig, log *zap.Logger) *Client {
	c := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/xml, text/xml")
	if len(cfg.UserAgent) > 0 {
		c.SetHeader("User-Agent", cfg.UserAgent)
	}
	return &Client{
		endpoint: cfg.Endpoint,
		key:      cfg.Key,
		http:     c,
		log:      log,
	}
}

// Fetch requests dictionary entry for text and returns raw response body.
// Text is sent as "w" query parameter and gets properly encoded.
func (c *Client) Fetch(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &TransportError{Err: err}
	}

	c.log.Debug("Requesting dictionary entry", zap.String("endpoint", c.endpoint), zap.String("text", text), zap.Stringer("key", c.key))

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.key.Value()).
		SetQueryParam("w", text).
		Get(c.endpoint)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("request failed: %w", err)}
	}

	c.log.Debug("Dictionary response received",
		zap.Int("status", resp.StatusCode()),
		zap.String("content-type", resp.Header().Get("Content-Type")),
		zap.Int("bytes", len(resp.Body())),
		zap.Duration("elapsed", resp.Time()))

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return "", &TransportError{Err: fmt.Errorf("unexpected response status: %s", resp.Status())}
	}

	body := resp.Body()
	if kind, err := filetype.Match(body); err == nil && kind != filetype.Unknown {
		return "", &TransportError{Err: fmt.Errorf("unexpected response body: %s (%s)", kind.MIME.Value, kind.Extension)}
	}
	return string(body), nil
}
