package fetcher

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"
)

// userAgents is the rotation pool for outgoing requests. Rotating the
// agent between fetches lowers the chance of being blocked by the menu
// sites.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
}

// HTTPFetcher retrieves pages with plain HTTP requests, with browser-like
// headers, user-agent rotation, and an optional proxy.
type HTTPFetcher struct {
	client  *http.Client
	counter atomic.Uint64
}

// NewHTTPFetcher builds a static fetcher. proxyURL may be empty.
func NewHTTPFetcher(proxyURL string) (*HTTPFetcher, error) {
	transport := &http.Transport{}
	if proxyURL != "" {
		proxy, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("parse proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &HTTPFetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
	}, nil
}

// Fetch retrieves the raw response body. Timeouts, connection errors,
// and non-2xx statuses are returned as errors; the caller skips the
// source for this cycle.
func (f *HTTPFetcher) Fetch(pageURL string, opts Options) (string, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if len(opts.Payload) > 0 {
		body = bytes.NewReader(opts.Payload)
	}

	req, err := http.NewRequest(method, pageURL, body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	f.setHeaders(req)
	if len(opts.Payload) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", pageURL, err)
	}
	return string(data), nil
}

func (f *HTTPFetcher) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", f.nextUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "es-ES,es;q=0.9,en;q=0.8")
	req.Header.Set("Connection", "keep-alive")
}

func (f *HTTPFetcher) nextUserAgent() string {
	n := f.counter.Add(1)
	return userAgents[int(n)%len(userAgents)]
}
