// Package jsonclient is a thin JSON-over-HTTP collaborator: fetch a URL,
// insist on a 200, decode the body. It performs no retries; failures
// propagate to the caller as ErrIO or ErrInvalidArgument.
package jsonclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	pkgerrors "textkit/pkg/errors"
	"textkit/pkg/logger"
)

type Client struct {
	http   *http.Client
	logger *slog.Logger
}

func New(timeout time.Duration) *Client {
	return &Client{
		http:   &http.Client{Timeout: timeout},
		logger: logger.WithComponent("json-client"),
	}
}

// FetchInto GETs url and decodes the JSON response body into v.
func (c *Client) FetchInto(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "building request for %s: %v", url, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.Newf(pkgerrors.ErrIO, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return pkgerrors.Newf(pkgerrors.ErrIO, "fetching %s: status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "decoding response from %s: %v", url, err)
	}
	c.logger.Debug("fetched json", "url", url)
	return nil
}

// Encode marshals v to a JSON string.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "encoding json: %v", err)
	}
	return string(data), nil
}
