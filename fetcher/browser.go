package fetcher

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

// navigationTimeout bounds a single rendered page load end to end.
const navigationTimeout = 60 * time.Second

// selectorTimeout bounds the wait for a readiness selector; a miss is
// logged but the DOM is still snapshotted.
const selectorTimeout = 20 * time.Second

// settleDelay gives JavaScript-heavy menus a final moment to populate
// prices after load.
const settleDelay = 3 * time.Second

// BrowserFetcher renders pages in headless Chromium via rod, with
// stealth page creation to avoid bot detection on the menu sites.
type BrowserFetcher struct {
	browser *rod.Browser
}

// NewBrowserFetcher launches the browser. Uses system Chromium when
// available (Docker), auto-detects otherwise. proxyURL may be empty.
func NewBrowserFetcher(proxyURL string) (*BrowserFetcher, error) {
	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Leakless(false)

	if _, err := os.Stat("/usr/bin/chromium-browser"); err == nil {
		l = l.Bin("/usr/bin/chromium-browser")
		log.Printf("Using system Chromium in Docker environment")
	} else {
		log.Printf("Using auto-detected Chromium (local environment)")
	}

	if proxyURL != "" {
		l = l.Proxy(proxyURL)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	return &BrowserFetcher{browser: browser}, nil
}

// Fetch navigates to the URL in a fresh stealth page and returns the
// rendered DOM.
func (f *BrowserFetcher) Fetch(pageURL string, opts Options) (string, error) {
	page, err := stealth.Page(f.browser)
	if err != nil {
		return "", fmt.Errorf("create page: %w", err)
	}
	defer page.Close()

	page = page.Timeout(navigationTimeout)
	if err := page.Navigate(pageURL); err != nil {
		return "", fmt.Errorf("navigate %s: %w", pageURL, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("wait load %s: %w", pageURL, err)
	}

	if opts.WaitFor != "" {
		if _, err := page.Timeout(selectorTimeout).Element(opts.WaitFor); err != nil {
			log.Printf("   Timeout waiting for selector %q on %s", opts.WaitFor, pageURL)
		}
	}
	time.Sleep(settleDelay)

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("snapshot %s: %w", pageURL, err)
	}
	return html, nil
}

// Close shuts the browser down.
func (f *BrowserFetcher) Close() {
	if f.browser != nil {
		if err := f.browser.Close(); err != nil {
			log.Printf("Failed to close browser: %v", err)
		}
	}
}
