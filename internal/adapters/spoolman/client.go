// Package spoolman implements the transport adapters for the Spoolman
// inventory: the HTTP snapshot client and the websocket event stream.
package spoolman

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ohler55/ojg/oj"
	"go.bittr.nu/spoolsync/internal/core/domain"
	"go.bittr.nu/spoolsync/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	requestTimeout = 10 * time.Second
	maxAttempts    = 3
)

// Client implements ports.Inventory against the Spoolman REST API.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     ports.Logger
}

var _ ports.Inventory = (*Client)(nil)

// NewClient creates a snapshot client for the Spoolman installation at
// baseURL.
func NewClient(baseURL string, log ports.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

// Vendors fetches the full vendor snapshot.
func (c *Client) Vendors(ctx context.Context) ([]*domain.Vendor, error) {
	records, err := c.fetch(ctx, "/api/v1/vendor")
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Vendor, 0, len(records))
	for _, fields := range records {
		out = append(out, domain.VendorFromFields(fields))
	}
	return out, nil
}

// Filaments fetches the full filament snapshot.
func (c *Client) Filaments(ctx context.Context) ([]*domain.Filament, error) {
	records, err := c.fetch(ctx, "/api/v1/filament")
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Filament, 0, len(records))
	for _, fields := range records {
		out = append(out, domain.FilamentFromFields(fields))
	}
	return out, nil
}

// Spools fetches the full spool snapshot.
func (c *Client) Spools(ctx context.Context) ([]*domain.Spool, error) {
	records, err := c.fetch(ctx, "/api/v1/spool")
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Spool, 0, len(records))
	for _, fields := range records {
		out = append(out, domain.SpoolFromFields(fields))
	}
	return out, nil
}

// fetch GETs a resource listing, retrying connection-level failures with
// exponential backoff. HTTP status errors and malformed bodies are
// terminal immediately: retrying won't change what the server said.
func (c *Client) fetch(ctx context.Context, path string) ([]map[string]any, error) {
	url := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			wait := time.Duration(1<<(attempt-1)) * time.Second
			c.log.Info(fmt.Sprintf("retrying %s in %s (attempt %d of %d)", url, wait, attempt+1, maxAttempts))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		c.log.Debug("fetching: " + url)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrTransport.Error())
		}

		resp, err := c.httpc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= http.StatusBadRequest {
			err := zerr.With(zerr.Wrap(domain.ErrTransport, "unexpected response status"), "status", resp.StatusCode)
			return nil, zerr.With(err, "url", url)
		}

		records, err := parseRecords(body)
		if err != nil {
			return nil, err
		}
		c.log.Info(fmt.Sprintf("loaded %d records from %s", len(records), url))
		return records, nil
	}

	return nil, zerr.Wrap(lastErr, domain.ErrTransport.Error())
}

// parseRecords decodes a JSON array of entity objects.
func parseRecords(body []byte) ([]map[string]any, error) {
	v, err := oj.Parse(body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrMalformedPayload.Error())
	}
	list, ok := v.([]any)
	if !ok {
		return nil, zerr.Wrap(domain.ErrMalformedPayload, "response is not a JSON array")
	}

	records := make([]map[string]any, 0, len(list))
	for _, item := range list {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, zerr.Wrap(domain.ErrMalformedPayload, "record is not a JSON object")
		}
		records = append(records, fields)
	}
	return records, nil
}
