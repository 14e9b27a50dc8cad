// Package remote talks to the spreadsheet-backed HTTP endpoint that mirrors
// the journal. Writes are fire-and-forget; reads are best effort.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// maxResponseBytes caps how much of a read response is buffered.
const maxResponseBytes = 8 << 20

// Client issues requests against a single endpoint URL. The action name is
// carried in the JSON body for writes and in the query string for reads.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. A zero timeout disables the client deadline.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "remote"),
	}
}

// Post sends a write. The response body is never inspected: success is
// assumed unless the request could not be delivered.
func (c *Client) Post(ctx context.Context, action domain.SyncAction, payload map[string]any) error {
	body := maps.Clone(payload)
	if body == nil {
		body = make(map[string]any, 1)
	}
	body["action"] = action.String()

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("remote: encode %s: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("remote: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "remote post", slog.String("action", action.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remote: post %s: %w: %w", action, domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.WarnContext(ctx, "remote post answered with error status",
			slog.String("action", action.String()),
			slog.Int("status", resp.StatusCode),
		)
	}

	return nil
}

// FetchDaily reads the daily record of subject on date.
func (c *Client) FetchDaily(ctx context.Context, subject, date string) (*domain.DailyRecord, error) {
	raw, err := c.get(ctx, domain.ActionGetDaily, url.Values{"cat": {subject}, "date": {date}})
	if err != nil {
		return nil, err
	}
	if !isObject(raw) {
		return nil, fmt.Errorf("remote: %s: %w: expected object", domain.ActionGetDaily, domain.ErrMalformedResponse)
	}

	var p dailyPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("remote: %s: %w: %w", domain.ActionGetDaily, domain.ErrMalformedResponse, err)
	}
	rec := p.record()
	return &rec, nil
}

// FetchToiletList reads the toilet log of subject on date.
func (c *Client) FetchToiletList(ctx context.Context, subject, date string) ([]domain.ToiletRecord, error) {
	raw, err := c.get(ctx, domain.ActionListToilet, url.Values{"cat": {subject}, "date": {date}})
	if err != nil {
		return nil, err
	}
	if !isArray(raw) {
		return nil, fmt.Errorf("remote: %s: %w: expected array", domain.ActionListToilet, domain.ErrMalformedResponse)
	}

	var items []toiletPayload
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("remote: %s: %w: %w", domain.ActionListToilet, domain.ErrMalformedResponse, err)
	}

	out := make([]domain.ToiletRecord, 0, len(items))
	for _, it := range items {
		out = append(out, it.record())
	}
	return out, nil
}

// FetchPeriod reads the aggregate of subject between start and end inclusive.
func (c *Client) FetchPeriod(ctx context.Context, subject, start, end string) ([]domain.PeriodDay, error) {
	raw, err := c.get(ctx, domain.ActionGetPeriod, url.Values{
		"cat":       {subject},
		"startDate": {start},
		"endDate":   {end},
	})
	if err != nil {
		return nil, err
	}
	if !isArray(raw) {
		return nil, fmt.Errorf("remote: %s: %w: expected array", domain.ActionGetPeriod, domain.ErrMalformedResponse)
	}

	var items []periodPayload
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("remote: %s: %w: %w", domain.ActionGetPeriod, domain.ErrMalformedResponse, err)
	}

	out := make([]domain.PeriodDay, 0, len(items))
	for _, it := range items {
		out = append(out, it.day())
	}
	return out, nil
}

// get performs a read and returns the raw JSON document. A null or empty
// body is domain.ErrNotFound; an object carrying a truthy "error" field is
// domain.ErrUnavailable.
func (c *Client) get(ctx context.Context, action domain.SyncAction, params url.Values) (json.RawMessage, error) {
	reqURL, err := c.readURL(action, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("remote: create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote: get %s: %w: %w", action, domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote: get %s: %w: status %d", action, domain.ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("remote: read %s: %w: %w", action, domain.ErrUnavailable, err)
	}

	c.log.DebugContext(ctx, "remote get",
		slog.String("action", action.String()),
		slog.Int("bytes", len(body)),
		slog.Duration("took", time.Since(start)),
	)

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, fmt.Errorf("remote: %s: %w", action, domain.ErrNotFound)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("remote: %s: %w: invalid json", action, domain.ErrMalformedResponse)
	}
	if isObject(body) {
		var probe struct {
			Error json.RawMessage `json:"error"`
		}
		if err := json.Unmarshal(body, &probe); err == nil && truthy(probe.Error) {
			return nil, fmt.Errorf("remote: %s: %w: %s", action, domain.ErrUnavailable, probe.Error)
		}
	}

	return body, nil
}

func (c *Client) readURL(action domain.SyncAction, params url.Values) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("remote: parse base url: %w", err)
	}
	q := u.Query()
	q.Set("action", action.String())
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
