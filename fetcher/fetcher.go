package fetcher

// Mode selects how a page is retrieved.
type Mode string

const (
	// ModeStatic fetches the raw response over plain HTTP.
	ModeStatic Mode = "static"
	// ModeRendered loads the page in a headless browser and returns the
	// rendered DOM, for sites that build their menus with JavaScript.
	ModeRendered Mode = "rendered"
)

// Options controls a single fetch.
type Options struct {
	Mode Mode
	// WaitFor is a CSS selector the rendered fetch waits for before
	// snapshotting the DOM. Ignored for static fetches.
	WaitFor string
	// Method overrides the HTTP method for static fetches ("GET" when
	// empty). Rendered fetches always navigate.
	Method string
	// Payload is sent as a JSON body with POST static fetches.
	Payload []byte
}

// Fetcher retrieves raw page content. An empty result with a nil error
// is a valid "no data this cycle" outcome; callers skip the source and
// continue.
type Fetcher interface {
	Fetch(url string, opts Options) (string, error)
}
