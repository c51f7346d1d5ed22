// Package rest implements the CMS client port against the CMS
// management HTTP API.
//
// Every request carries the X-Localsync-Origin marker header so the
// CMS-side export hook can recognise writes originating from the
// import sync and suppress the feedback loop. That contract must not
// change: it is the seam preventing infinite sync cycles between the
// import and export pipelines.
package rest

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

	"github.com/avast/retry-go/v4"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/meridianhq/localsync/internal/core/domain"
	"github.com/meridianhq/localsync/internal/core/ports/driven"
	"github.com/meridianhq/localsync/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.CMSClient = (*Client)(nil)

const (
	originHeader = "X-Localsync-Origin"
	originValue  = "mdx-import"

	pageSize      = 100
	retryAttempts = 4

	defaultRequestsPerSecond = 5
)

// Client talks to the CMS management API over HTTP with bearer-token
// auth, client-side rate limiting and bounded retries on 429/5xx.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a CMS API client. requestsPerSecond <= 0 selects
// the default rate cap.
func NewClient(baseURL, token string, requestsPerSecond float64) *Client {
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultRequestsPerSecond
	}
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    oauth2.NewClient(context.Background(), source),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// wireDocument is the API's document representation.
type wireDocument struct {
	ID     string         `json:"id"`
	Slug   string         `json:"slug"`
	Locale string         `json:"locale"`
	Fields map[string]any `json:"fields"`
}

func (w *wireDocument) toDomain() domain.CMSDocument {
	return domain.CMSDocument{ID: w.ID, Slug: w.Slug, Locale: w.Locale, Fields: w.Fields}
}

type listResponse struct {
	Items []wireDocument `json:"items"`
	Total int            `json:"total"`
}

type entryRequest struct {
	ContentType string         `json:"contentType,omitempty"`
	Locale      string         `json:"locale,omitempty"`
	Fields      map[string]any `json:"fields"`
}

// GetAllEntries lists all documents of a type in a locale, following
// pagination to exhaustion. domain.LocaleAll omits the locale filter.
func (c *Client) GetAllEntries(ctx context.Context, typeID, locale string) ([]domain.CMSDocument, error) {
	var docs []domain.CMSDocument
	skip := 0
	for {
		query := url.Values{
			"contentType": {typeID},
			"skip":        {strconv.Itoa(skip)},
			"limit":       {strconv.Itoa(pageSize)},
		}
		if locale != domain.LocaleAll && locale != "" {
			query.Set("locale", locale)
		}

		var page listResponse
		if err := c.do(ctx, http.MethodGet, "/entries", query, nil, &page); err != nil {
			return nil, fmt.Errorf("list %s entries: %w", typeID, err)
		}

		for i := range page.Items {
			docs = append(docs, page.Items[i].toDomain())
		}
		skip += len(page.Items)
		if len(page.Items) < pageSize || skip >= page.Total {
			return docs, nil
		}
	}
}

// FindBySlug looks up one document by slug within a locale.
func (c *Client) FindBySlug(ctx context.Context, typeID, slug, locale string) (*domain.CMSDocument, error) {
	query := url.Values{
		"contentType": {typeID},
		"slug":        {slug},
		"limit":       {"1"},
	}
	if locale != "" {
		query.Set("locale", locale)
	}

	var page listResponse
	if err := c.do(ctx, http.MethodGet, "/entries", query, nil, &page); err != nil {
		return nil, fmt.Errorf("find %s %q: %w", typeID, slug, err)
	}
	if len(page.Items) == 0 {
		return nil, fmt.Errorf("find %s %q (%s): %w", typeID, slug, locale, domain.ErrNotFound)
	}
	doc := page.Items[0].toDomain()
	return &doc, nil
}

// CreateEntry creates a new document.
func (c *Client) CreateEntry(ctx context.Context, typeID string, fields map[string]any, locale string) (*domain.CMSDocument, error) {
	var out wireDocument
	body := entryRequest{ContentType: typeID, Locale: locale, Fields: fields}
	if err := c.do(ctx, http.MethodPost, "/entries", nil, body, &out); err != nil {
		return nil, fmt.Errorf("create %s entry: %w", typeID, err)
	}
	doc := out.toDomain()
	return &doc, nil
}

// UpdateEntry overwrites an existing document's fields.
func (c *Client) UpdateEntry(ctx context.Context, typeID, documentID string, fields map[string]any, locale string) (*domain.CMSDocument, error) {
	var out wireDocument
	body := entryRequest{ContentType: typeID, Locale: locale, Fields: fields}
	if err := c.do(ctx, http.MethodPut, "/entries/"+documentID, nil, body, &out); err != nil {
		return nil, fmt.Errorf("update %s %s: %w", typeID, documentID, err)
	}
	doc := out.toDomain()
	return &doc, nil
}

// CreateLocalization attaches a new locale variant to an existing
// document. The API responds 404 when the base document is missing,
// which surfaces as a wrapped ErrNotFound.
func (c *Client) CreateLocalization(ctx context.Context, typeID, documentID, locale string, fields map[string]any) error {
	body := entryRequest{ContentType: typeID, Fields: fields}
	path := "/entries/" + documentID + "/localizations/" + url.PathEscape(locale)
	if err := c.do(ctx, http.MethodPost, path, nil, body, nil); err != nil {
		return fmt.Errorf("create %s localization %s (%s): %w", typeID, documentID, locale, err)
	}
	return nil
}

// UpdateLocalization updates the localization matching the payload's
// slug and the locale, delegating to CreateLocalization when none
// exists yet.
func (c *Client) UpdateLocalization(ctx context.Context, typeID, documentID, locale string, fields map[string]any) error {
	slug, _ := fields["slug"].(string)
	existing, err := c.FindBySlug(ctx, typeID, slug, locale)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("no %s localization %q (%s); creating", typeID, slug, locale)
			return c.CreateLocalization(ctx, typeID, documentID, locale, fields)
		}
		return err
	}

	body := entryRequest{ContentType: typeID, Fields: fields}
	path := "/entries/" + existing.ID + "/localizations/" + url.PathEscape(locale)
	if err := c.do(ctx, http.MethodPut, path, nil, body, nil); err != nil {
		return fmt.Errorf("update %s localization %s (%s): %w", typeID, existing.ID, locale, err)
	}
	return nil
}

// DeleteEntry removes a document.
func (c *Client) DeleteEntry(ctx context.Context, typeID, documentID string) error {
	query := url.Values{"contentType": {typeID}}
	if err := c.do(ctx, http.MethodDelete, "/entries/"+documentID, query, nil, nil); err != nil {
		return fmt.Errorf("delete %s %s: %w", typeID, documentID, err)
	}
	return nil
}

// DeleteLocalization removes one locale variant of a document.
func (c *Client) DeleteLocalization(ctx context.Context, typeID, documentID, locale string) error {
	path := "/entries/" + documentID + "/localizations/" + url.PathEscape(locale)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete %s localization %s (%s): %w", typeID, documentID, locale, err)
	}
	return nil
}

// do performs one API call with rate limiting and bounded retries.
// 429 and 5xx responses are retried; everything else fails fast.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	return retry.Do(
		func() error {
			var reader io.Reader
			if payload != nil {
				reader = bytes.NewReader(payload)
			}
			req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set(originHeader, originValue)
			req.Header.Set("Accept", "application/json")
			if payload != nil {
				req.Header.Set("Content-Type", "application/json")
			}

			resp, err := c.http.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			switch {
			case resp.StatusCode == http.StatusNotFound:
				return retry.Unrecoverable(domain.ErrNotFound)
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
			case resp.StatusCode < 200 || resp.StatusCode >= 300:
				snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
				return retry.Unrecoverable(fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(snippet))))
			}

			if out == nil {
				return nil
			}
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decode response: %w", err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(retryAttempts),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			logger.Debug("retrying %s %s (attempt %d): %v", method, path, attempt+1, err)
		}),
	)
}
