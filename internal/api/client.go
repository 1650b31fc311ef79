// Package api is the authenticated client for the campaign backend REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/session"
)

const refreshPath = "/api/auth/refresh"

// Client issues REST calls with the cached bearer token, refreshing it first
// when it is about to expire.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *session.Manager
	logger  *slog.Logger

	// one refresh per session ID at a time
	refreshGroup singleflight.Group

	Auth           *AuthAPI
	Templates      *TemplatesAPI
	CsvFiles       *CsvFilesAPI
	Campaigns      *CampaignsAPI
	Reports        *ReportsAPI
	Advertisements *AdvertisementsAPI
	Images         *ImagesAPI
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func New(baseURL string, tokens *session.Manager, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthAPI{c: c}
	c.Templates = &TemplatesAPI{c: c}
	c.CsvFiles = &CsvFilesAPI{c: c}
	c.Campaigns = &CampaignsAPI{c: c}
	c.Reports = &ReportsAPI{c: c}
	c.Advertisements = &AdvertisementsAPI{c: c}
	c.Images = &ImagesAPI{c: c}
	return c
}

// BaseURL is the backend root without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Tokens exposes the session cache, e.g. to check HasTokens before rendering.
func (c *Client) Tokens() *session.Manager { return c.tokens }

type request struct {
	method   string
	path     string
	params   url.Values
	body     any
	skipAuth bool
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	u := c.baseURL + req.path
	if len(req.params) > 0 {
		u += "?" + req.params.Encode()
	}

	var body io.Reader
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", req.path, err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	if !req.skipAuth {
		token, err := c.refreshTokenIfNeeded(ctx)
		if err != nil {
			return err
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer resp.Body.Close()

	return c.decode(ctx, resp, out, appErrors.DefaultMessage)
}

// upload posts a multipart form with one file part. Unlike do it refuses to
// run without a usable token.
func (c *Client) upload(ctx context.Context, path, fileField, filename string, file io.Reader, fields map[string]string, out any) error {
	token, err := c.refreshTokenIfNeeded(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return appErrors.ErrSessionExpired
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(fileField, filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("upload %s: %w", filename, err)
	}
	defer resp.Body.Close()

	return c.decode(ctx, resp, out, "Upload failed")
}

func (c *Client) decode(ctx context.Context, resp *http.Response, out any, fallback string) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
			body.Message = fallback
		}

		if resp.StatusCode == http.StatusUnauthorized && c.tokens.HasTokens(ctx) {
			if err := c.tokens.Clear(ctx); err != nil {
				c.logger.Warn("Failed to clear session after 401", "error", err)
			}
		}
		if resp.StatusCode == http.StatusNotFound {
			return appErrors.NewNotFound(resp.Request.URL.Path, body.Message)
		}
		return appErrors.NewAPIError(resp.StatusCode, body.Message)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// refreshTokenIfNeeded returns the access token to send, or "" to send none.
func (c *Client) refreshTokenIfNeeded(ctx context.Context) (string, error) {
	t, err := c.tokens.Tokens(ctx)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if t.AccessToken == "" {
		return "", nil
	}
	if !c.tokens.Expired(t) {
		return t.AccessToken, nil
	}

	v, err, _ := c.refreshGroup.Do(session.IDFromContext(ctx), func() (any, error) {
		return c.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) refresh(ctx context.Context) (string, error) {
	// Another caller may have refreshed while we waited.
	t, err := c.tokens.Tokens(ctx)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if t.AccessToken == "" {
		return "", nil
	}
	if !c.tokens.Expired(t) {
		return t.AccessToken, nil
	}
	if t.RefreshToken == "" {
		return "", c.tokens.Clear(ctx)
	}

	var out model.AuthResponse
	err = c.do(ctx, request{
		method:   http.MethodPost,
		path:     refreshPath,
		body:     map[string]string{"refreshToken": t.RefreshToken},
		skipAuth: true,
	}, &out)
	if err != nil || out.Session == nil {
		c.logger.Warn("Token refresh failed, clearing session", "error", err)
		return "", c.tokens.Clear(ctx)
	}

	if err := c.tokens.SetTokens(ctx, *out.Session); err != nil {
		return "", fmt.Errorf("store refreshed session: %w", err)
	}
	c.logger.Debug("Refreshed access token", "session", session.IDFromContext(ctx))
	return out.Session.AccessToken, nil
}

// query builds url.Values from key/value pairs, skipping empty values.
func query(kv ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			v.Set(kv[i], kv[i+1])
		}
	}
	return v
}

func itoa(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprint(n)
}

func path(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}
