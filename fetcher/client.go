package fetcher

import (
	"fmt"
	"log"
)

// Client dispatches fetches to the static or rendered fetcher by mode.
// The browser is launched on first rendered fetch so static-only
// configurations never need Chromium.
type Client struct {
	http     *HTTPFetcher
	browser  *BrowserFetcher
	proxyURL string
}

// NewClient builds a fetch client. proxyURL may be empty.
func NewClient(proxyURL string) (*Client, error) {
	httpFetcher, err := NewHTTPFetcher(proxyURL)
	if err != nil {
		return nil, err
	}
	return &Client{http: httpFetcher, proxyURL: proxyURL}, nil
}

// Fetch retrieves a page according to opts.Mode.
func (c *Client) Fetch(pageURL string, opts Options) (string, error) {
	switch opts.Mode {
	case ModeRendered:
		if c.browser == nil {
			log.Printf("Launching headless browser for rendered fetches")
			browser, err := NewBrowserFetcher(c.proxyURL)
			if err != nil {
				return "", fmt.Errorf("rendered fetch unavailable: %w", err)
			}
			c.browser = browser
		}
		return c.browser.Fetch(pageURL, opts)
	case ModeStatic, "":
		return c.http.Fetch(pageURL, opts)
	default:
		return "", fmt.Errorf("unknown fetch mode %q", opts.Mode)
	}
}

// Close releases the browser if one was launched.
func (c *Client) Close() {
	if c.browser != nil {
		c.browser.Close()
	}
}
