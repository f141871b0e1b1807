package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/mcountryman/auth0-management-codegen/errors"
	"github.com/mcountryman/auth0-management-codegen/version"
)

const (
	defaultMaxRedirects = 10
	// maxDocumentBytes caps a single description document.
	maxDocumentBytes = 16 << 20
)

// Client wraps http.Client with a scheme allow-list and a redirect cap
type Client struct {
	*http.Client
	allowedSchemes []string
	maxRedirects   int
	maxBytes       int64
	userAgent      string
}

// NewClient creates a client whose requests time out after timeout
func NewClient(timeout time.Duration) *Client {
	c := &Client{
		Client:         &http.Client{Timeout: timeout},
		allowedSchemes: []string{"http", "https"},
		maxRedirects:   defaultMaxRedirects,
		maxBytes:       maxDocumentBytes,
		userAgent:      version.Get().UserAgent(),
	}
	c.CheckRedirect = c.checkRedirect
	return c
}

// WrapClient copies an existing http.Client, e.g. one from httptest.Server,
// and applies the redirect policy to the copy
func WrapClient(client *http.Client) *Client {
	cp := *client
	c := NewClient(client.Timeout)
	c.Client = &cp
	c.CheckRedirect = c.checkRedirect
	return c
}

func (c *Client) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= c.maxRedirects {
		return errors.Newf("stopped after %d redirects", c.maxRedirects)
	}
	if err := c.validateURL(req.URL); err != nil {
		return errors.Wrap(err, "redirect blocked")
	}
	return nil
}

func (c *Client) validateURL(u *url.URL) error {
	scheme := strings.ToLower(u.Scheme)
	if !slices.Contains(c.allowedSchemes, scheme) {
		return errors.Newf("scheme %q not allowed (allowed: %v)", scheme, c.allowedSchemes)
	}
	if u.User != nil {
		return errors.New("URL must not carry credentials")
	}
	if u.Hostname() == "" {
		return errors.New("URL missing hostname")
	}
	return nil
}

// GetDocument fetches rawURL and returns the body of a 200 response
func (c *Client) GetDocument(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid URL")
	}
	if err := c.validateURL(u); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", u.Redacted())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("GET %s: unexpected status %s", u.Redacted(), resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", u.Redacted())
	}
	if int64(len(body)) > c.maxBytes {
		return nil, errors.Newf("GET %s: document too large (over %d bytes)", u.Redacted(), c.maxBytes)
	}
	return body, nil
}
