package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource hands out the credential currently stored for the session.
// It is read again for every call, so a re-login is picked up without
// rebuilding anything.
type TokenSource interface {
	Token() string
}

// Factory builds request clients against one backend. Screens keep the
// factory and construct a fresh client per call.
type Factory struct {
	base  string
	http  *http.Client
	creds TokenSource
	log   *zap.Logger
}

func NewFactory(baseURL string, creds TokenSource, log *zap.Logger) *Factory {
	return &Factory{
		base:  strings.TrimRight(baseURL, "/") + "/",
		http:  &http.Client{},
		creds: creds,
		log:   log,
	}
}

// Public returns a client that sends no credential.
func (f *Factory) Public() *Client {
	return &Client{base: f.base, http: f.http, log: f.log}
}

// Authed returns a client carrying the credential stored right now.
func (f *Factory) Authed() *Client {
	c := f.Public()
	if f.creds != nil {
		c.token = f.creds.Token()
	}
	return c
}

// Bearer returns a client carrying an explicit credential. The login
// exchange uses this before the session holds anything.
func (f *Factory) Bearer(token string) *Client {
	c := f.Public()
	c.token = token
	return c
}

type Client struct {
	base  string
	http  *http.Client
	token string
	log   *zap.Logger
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, "", nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	r, err := jsonBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, "application/json", r, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	r, err := jsonBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, path, nil, "application/json", r, out)
}

// Delete sends an optional JSON body; the cart removal endpoint expects one.
func (c *Client) Delete(ctx context.Context, path string, body any) error {
	var r io.Reader
	ct := ""
	if body != nil {
		var err error
		if r, err = jsonBody(body); err != nil {
			return err
		}
		ct = "application/json"
	}
	return c.do(ctx, http.MethodDelete, path, nil, ct, r, nil)
}

// Upload is one file part of a multipart request.
type Upload struct {
	Field    string
	FileName string
	Reader   io.Reader
}

// PostMultipart sends form fields plus files. A positive timeout bounds the
// whole call; store creation uses this, everything else passes zero.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files []Upload, out any, timeout time.Duration) error {
	return c.multipart(ctx, http.MethodPost, path, fields, files, out, timeout)
}

// PatchMultipart is PostMultipart for partial updates carrying files.
func (c *Client) PatchMultipart(ctx context.Context, path string, fields map[string]string, files []Upload, out any) error {
	return c.multipart(ctx, http.MethodPatch, path, fields, files, out, 0)
}

func (c *Client) multipart(ctx context.Context, method, path string, fields map[string]string, files []Upload, out any, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return transportErr(err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return transportErr(err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return transportErr(fmt.Errorf("read upload %s: %w", f.FileName, err))
		}
	}
	if err := w.Close(); err != nil {
		return transportErr(err)
	}
	return c.do(ctx, method, path, nil, w.FormDataContentType(), &buf, out)
}

func jsonBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, transportErr(fmt.Errorf("encode request: %w", err))
	}
	return bytes.NewReader(data), nil
}

// do performs one fire-once call. No retries: a failed call surfaces its
// classified error and the caller decides.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return transportErr(err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return transportErr(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportErr(err)
	}

	c.log.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
		zap.String("request_id", requestID))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Classify(resp.StatusCode, respBody)
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return transportErr(fmt.Errorf("decode response of %s: %w", path, err))
	}
	return nil
}
