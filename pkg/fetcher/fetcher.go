// Package fetcher wraps http.Client with the fixed checker user agent and a
// configurable timeout. All discovery and schema fetches go through it.
package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// UserAgent identifies the toolkit on every outbound request.
const UserAgent = "aimanifest-checker/1.0"

// DefaultTimeout bounds every fetch unless overridden at construction.
const DefaultTimeout = 10 * time.Second

// Response carries the parts of an HTTP response the callers care about.
// Non-2xx statuses are returned here, not as errors; only transport-level
// failures surface as errors.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// OK reports whether the response carries a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with the default timeout.
func NewFetcher() *Fetcher {
	return NewFetcherWithTimeout(DefaultTimeout)
}

// NewFetcherWithTimeout creates a Fetcher with a caller-chosen timeout.
func NewFetcherWithTimeout(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET with the fixed user agent. An optional accept header
// can be supplied for HTML page fetches.
func (f *Fetcher) Get(url string, accept string) (*Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Header:     resp.Header,
	}, nil
}

// GetHtml fetches a page and parses it into a goquery document.
func (f *Fetcher) GetHtml(url string) (*goquery.Document, error) {
	resp, err := f.Get(url, "text/html,application/xhtml+xml")
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(resp.Body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// Head issues a HEAD request and returns the response headers.
func (f *Fetcher) Head(url string) (http.Header, int, error) {
	req, err := http.NewRequest(http.MethodHead, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to make HEAD request: %w", err)
	}
	defer resp.Body.Close()

	return resp.Header, resp.StatusCode, nil
}
